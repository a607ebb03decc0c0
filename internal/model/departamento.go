package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Departamento is an organizational unit with an annual budget and a location.
// Deletion is blocked while any Funcionario still references it.
type Departamento struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome        string          `gorm:"index;not null"`
	Orcamento   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Localizacao string          `gorm:"not null"`
	DataCriacao time.Time       `gorm:"not null"`
	Descricao   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Funcionarios []Funcionario `gorm:"foreignKey:DepartamentoID"`
}

func (Departamento) TableName() string { return "departamentos" }
