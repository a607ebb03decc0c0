package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Funcionario is the central employee record. Email and CPF carry unique
// indexes so that concurrent check-then-insert races still fail at the store
// instead of silently duplicating.
type Funcionario struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome            string          `gorm:"index;not null"`
	Email           string          `gorm:"uniqueIndex;not null"`
	CPF             string          `gorm:"column:cpf;uniqueIndex;not null"`
	Cargo           string          `gorm:"not null"`
	Salario         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DataContratacao time.Time       `gorm:"index;not null"`
	DepartamentoID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	SupervisorID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Departamento *Departamento `gorm:"foreignKey:DepartamentoID"`
	// Self-reference; no cycle check is enforced here.
	Supervisor      *Funcionario     `gorm:"foreignKey:SupervisorID"`
	Perfil          *Perfil          `gorm:"foreignKey:FuncionarioID;constraint:OnDelete:CASCADE"`
	HistoricoCargos []HistoricoCargo `gorm:"foreignKey:FuncionarioID;constraint:OnDelete:CASCADE"`
}

func (Funcionario) TableName() string { return "funcionarios" }
