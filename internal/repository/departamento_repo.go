package repository

import (
	"context"
	"time"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DepartamentoComContagem is a department row joined with its employee count.
type DepartamentoComContagem struct {
	ID                uuid.UUID
	Nome              string
	Orcamento         decimal.Decimal
	Localizacao       string
	DataCriacao       time.Time
	Descricao         *string
	FuncionariosCount int64
}

type DepartamentoRepository interface {
	ListarComContagem(ctx context.Context) ([]DepartamentoComContagem, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Departamento, error)
	ListarFuncionarios(ctx context.Context, id uuid.UUID) ([]model.Funcionario, error)
	ContarFuncionarios(ctx context.Context, id uuid.UUID) (int64, error)
	ContarFuncionariosTx(tx *gorm.DB, id uuid.UUID) (int64, error)
	Criar(ctx context.Context, d *model.Departamento) error
	AtualizarTx(tx *gorm.DB, d *model.Departamento) error
	Excluir(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type departamentoRepo struct{ db *gorm.DB }

func NewDepartamentoRepository(db *gorm.DB) DepartamentoRepository {
	return &departamentoRepo{db: db}
}

func (r *departamentoRepo) ListarComContagem(ctx context.Context) ([]DepartamentoComContagem, error) {
	var rows []DepartamentoComContagem
	err := r.db.WithContext(ctx).
		Table("departamentos d").
		Select(`d.id, d.nome, d.orcamento, d.localizacao, d.data_criacao, d.descricao,
			COUNT(f.id) AS funcionarios_count`).
		Joins("LEFT JOIN funcionarios f ON f.departamento_id = d.id").
		Group("d.id, d.nome, d.orcamento, d.localizacao, d.data_criacao, d.descricao").
		Order("d.nome").
		Scan(&rows).Error
	return rows, err
}

func (r *departamentoRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Departamento, error) {
	var d model.Departamento
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *departamentoRepo) ListarFuncionarios(ctx context.Context, id uuid.UUID) ([]model.Funcionario, error) {
	var funcionarios []model.Funcionario
	err := r.db.WithContext(ctx).
		Where("departamento_id = ?", id).
		Order("nome").
		Find(&funcionarios).Error
	return funcionarios, err
}

func (r *departamentoRepo) ContarFuncionarios(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.contarFuncionarios(r.db.WithContext(ctx), id)
}

func (r *departamentoRepo) ContarFuncionariosTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	return r.contarFuncionarios(tx, id)
}

func (r *departamentoRepo) contarFuncionarios(db *gorm.DB, id uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&model.Funcionario{}).Where("departamento_id = ?", id).Count(&count).Error
	return count, err
}

func (r *departamentoRepo) Criar(ctx context.Context, d *model.Departamento) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *departamentoRepo) AtualizarTx(tx *gorm.DB, d *model.Departamento) error {
	return tx.Save(d).Error
}

func (r *departamentoRepo) Excluir(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Departamento{}, "id = ?", id).Error
}

func (r *departamentoRepo) DB() *gorm.DB { return r.db }
