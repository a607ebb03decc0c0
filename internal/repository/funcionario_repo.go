package repository

import (
	"context"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FuncionarioRepository covers the employee aggregate: the funcionario row
// plus its perfil and append-only historico_cargos. The *Tx variants run
// against a caller-provided transaction so that multi-step writes (employee
// + perfil, update + historico) commit atomically.
type FuncionarioRepository interface {
	Listar(ctx context.Context) ([]model.Funcionario, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error)
	Existe(ctx context.Context, id uuid.UUID) (bool, error)
	ExisteEmail(ctx context.Context, email string) (bool, error)
	ExisteCPF(ctx context.Context, cpf string) (bool, error)
	CriarTx(tx *gorm.DB, f *model.Funcionario) error
	AtualizarTx(tx *gorm.DB, f *model.Funcionario) error
	Excluir(ctx context.Context, id uuid.UUID) error

	ObterPerfilTx(tx *gorm.DB, funcionarioID uuid.UUID) (*model.Perfil, error)
	CriarPerfilTx(tx *gorm.DB, p *model.Perfil) error
	AtualizarPerfilTx(tx *gorm.DB, p *model.Perfil) error
	CriarHistoricoTx(tx *gorm.DB, h *model.HistoricoCargo) error

	DB() *gorm.DB
}

type funcionarioRepo struct{ db *gorm.DB }

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository {
	return &funcionarioRepo{db: db}
}

func (r *funcionarioRepo) Listar(ctx context.Context) ([]model.Funcionario, error) {
	var funcionarios []model.Funcionario
	err := r.db.WithContext(ctx).
		Preload("Departamento").
		Order("nome").
		Find(&funcionarios).Error
	return funcionarios, err
}

func (r *funcionarioRepo) ObterPorID(ctx context.Context, id uuid.UUID) (*model.Funcionario, error) {
	var f model.Funcionario
	err := r.db.WithContext(ctx).
		Preload("Departamento").
		Preload("Supervisor").
		Preload("Perfil").
		Preload("HistoricoCargos", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_alteracao DESC")
		}).
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *funcionarioRepo) Existe(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Funcionario{}).
		Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *funcionarioRepo) ExisteEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Funcionario{}).
		Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *funcionarioRepo) ExisteCPF(ctx context.Context, cpf string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Funcionario{}).
		Where("cpf = ?", cpf).Count(&count).Error
	return count > 0, err
}

func (r *funcionarioRepo) CriarTx(tx *gorm.DB, f *model.Funcionario) error {
	return tx.Create(f).Error
}

func (r *funcionarioRepo) AtualizarTx(tx *gorm.DB, f *model.Funcionario) error {
	return tx.Save(f).Error
}

// Excluir removes the funcionario row; perfil and historico_cargos go with it
// via ON DELETE CASCADE.
func (r *funcionarioRepo) Excluir(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Funcionario{}, "id = ?", id).Error
}

func (r *funcionarioRepo) ObterPerfilTx(tx *gorm.DB, funcionarioID uuid.UUID) (*model.Perfil, error) {
	var p model.Perfil
	err := tx.First(&p, "funcionario_id = ?", funcionarioID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *funcionarioRepo) CriarPerfilTx(tx *gorm.DB, p *model.Perfil) error {
	return tx.Create(p).Error
}

func (r *funcionarioRepo) AtualizarPerfilTx(tx *gorm.DB, p *model.Perfil) error {
	return tx.Save(p).Error
}

func (r *funcionarioRepo) CriarHistoricoTx(tx *gorm.DB, h *model.HistoricoCargo) error {
	return tx.Create(h).Error
}

func (r *funcionarioRepo) DB() *gorm.DB { return r.db }
