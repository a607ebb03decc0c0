package model

import (
	"time"

	"github.com/google/uuid"
)

// Perfil holds the optional personal-detail extension of a Funcionario.
// A row only exists when the full field set was supplied on create/update.
type Perfil struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FuncionarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Idade         int       `gorm:"not null"`
	Endereco      string    `gorm:"not null"`
	Telefone      string    `gorm:"not null"`
	Genero        string    `gorm:"not null"`
	EstadoCivil   string    `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Perfil) TableName() string { return "perfis" }
