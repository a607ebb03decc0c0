package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CriarFuncionarioRequest carries the employee core fields plus the optional
// perfil block. The perfil is only persisted when all five perfil fields are
// present. SupervisorID accepts the sentinel "none" as an explicit null.
type CriarFuncionarioRequest struct {
	Nome            string          `json:"nome"            validate:"required"`
	Email           string          `json:"email"           validate:"required,email"`
	CPF             string          `json:"cpf"             validate:"required"`
	Cargo           string          `json:"cargo"           validate:"required"`
	Salario         decimal.Decimal `json:"salario"         validate:"required,gt=0"`
	DataContratacao string          `json:"dataContratacao" validate:"required"`
	DepartamentoID  string          `json:"departamentoId"  validate:"required,uuid"`
	SupervisorID    *string         `json:"supervisorId"`

	Idade       *int    `json:"idade"`
	Endereco    *string `json:"endereco"`
	Telefone    *string `json:"telefone"`
	Genero      *string `json:"genero"`
	EstadoCivil *string `json:"estadoCivil"`
}

// PerfilCompleto reports whether the full perfil field set was supplied.
func (r CriarFuncionarioRequest) PerfilCompleto() bool {
	return r.Idade != nil && r.Endereco != nil && r.Telefone != nil &&
		r.Genero != nil && r.EstadoCivil != nil
}

// AtualizarFuncionarioRequest overwrites the employee core fields and upserts
// the perfil when complete. Motivo and AprovadoPor feed the historico entry
// appended when the cargo changes.
type AtualizarFuncionarioRequest struct {
	Nome            string          `json:"nome"            validate:"required"`
	Email           string          `json:"email"           validate:"required,email"`
	CPF             string          `json:"cpf"             validate:"required"`
	Cargo           string          `json:"cargo"           validate:"required"`
	Salario         decimal.Decimal `json:"salario"         validate:"required,gt=0"`
	DataContratacao string          `json:"dataContratacao" validate:"required"`
	DepartamentoID  string          `json:"departamentoId"  validate:"required,uuid"`
	SupervisorID    *string         `json:"supervisorId"`

	Idade       *int    `json:"idade"`
	Endereco    *string `json:"endereco"`
	Telefone    *string `json:"telefone"`
	Genero      *string `json:"genero"`
	EstadoCivil *string `json:"estadoCivil"`

	Motivo      *string `json:"motivo"`
	AprovadoPor *string `json:"aprovadoPor"`
}

func (r AtualizarFuncionarioRequest) PerfilCompleto() bool {
	return r.Idade != nil && r.Endereco != nil && r.Telefone != nil &&
		r.Genero != nil && r.EstadoCivil != nil
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DepartamentoRefResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type SupervisorResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

type PerfilResponse struct {
	Idade       int    `json:"idade"`
	Endereco    string `json:"endereco"`
	Telefone    string `json:"telefone"`
	Genero      string `json:"genero"`
	EstadoCivil string `json:"estadoCivil"`
}

type HistoricoCargoResponse struct {
	ID            string `json:"id"`
	CargoAnterior string `json:"cargoAnterior"`
	NovoCargo     string `json:"novoCargo"`
	DataAlteracao string `json:"dataAlteracao"`
	Motivo        string `json:"motivo"`
	AprovadoPor   string `json:"aprovadoPor"`
}

type FuncionarioResponse struct {
	ID              string                  `json:"id"`
	Nome            string                  `json:"nome"`
	Email           string                  `json:"email"`
	CPF             string                  `json:"cpf"`
	Cargo           string                  `json:"cargo"`
	Salario         float64                 `json:"salario"`
	DataContratacao string                  `json:"dataContratacao"`
	Departamento    DepartamentoRefResponse `json:"departamento"`
}

type FuncionarioDetalheResponse struct {
	ID              string                   `json:"id"`
	Nome            string                   `json:"nome"`
	Email           string                   `json:"email"`
	CPF             string                   `json:"cpf"`
	Cargo           string                   `json:"cargo"`
	Salario         float64                  `json:"salario"`
	DataContratacao string                   `json:"dataContratacao"`
	Departamento    DepartamentoRefResponse  `json:"departamento"`
	Supervisor      *SupervisorResponse      `json:"supervisor"`
	Perfil          *PerfilResponse          `json:"perfil"`
	HistoricoCargos []HistoricoCargoResponse `json:"historicoCargos"`
}
