package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoricoCargo records one title transition of a Funcionario. Rows are
// append-only; they are never updated and only disappear when the owning
// funcionario is deleted (cascade).
type HistoricoCargo struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FuncionarioID uuid.UUID `gorm:"type:uuid;index;not null"`
	CargoAnterior string    `gorm:"not null"`
	NovoCargo     string    `gorm:"not null"`
	DataAlteracao time.Time `gorm:"not null"`
	Motivo        string
	AprovadoPor   string
	CreatedAt     time.Time
}

func (HistoricoCargo) TableName() string { return "historico_cargos" }
