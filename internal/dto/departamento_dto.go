package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarDepartamentoRequest struct {
	Nome        string          `json:"nome"        validate:"required,min=2"`
	Orcamento   decimal.Decimal `json:"orcamento"   validate:"required,gt=0"`
	Localizacao string          `json:"localizacao" validate:"required"`
	Descricao   *string         `json:"descricao"`
}

// AtualizarDepartamentoRequest is a full replace of the mutable fields.
type AtualizarDepartamentoRequest struct {
	Nome        string          `json:"nome"        validate:"required,min=2"`
	Orcamento   decimal.Decimal `json:"orcamento"   validate:"required,gt=0"`
	Localizacao string          `json:"localizacao" validate:"required"`
	Descricao   *string         `json:"descricao"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DepartamentoResponse struct {
	ID                string  `json:"id"`
	Nome              string  `json:"nome"`
	Orcamento         float64 `json:"orcamento"`
	Localizacao       string  `json:"localizacao"`
	DataCriacao       string  `json:"dataCriacao"`
	Descricao         *string `json:"descricao,omitempty"`
	FuncionariosCount int     `json:"funcionariosCount"`
}

// FuncionarioResumoResponse is the short employee row embedded in a
// department detail.
type FuncionarioResumoResponse struct {
	ID      string  `json:"id"`
	Nome    string  `json:"nome"`
	Email   string  `json:"email"`
	Cargo   string  `json:"cargo"`
	Salario float64 `json:"salario"`
}

type DepartamentoDetalheResponse struct {
	ID           string                      `json:"id"`
	Nome         string                      `json:"nome"`
	Orcamento    float64                     `json:"orcamento"`
	Localizacao  string                      `json:"localizacao"`
	DataCriacao  string                      `json:"dataCriacao"`
	Descricao    *string                     `json:"descricao,omitempty"`
	Funcionarios []FuncionarioResumoResponse `json:"funcionarios"`
}
