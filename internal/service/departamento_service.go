package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/apperror"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/dto"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/model"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartamentoService interface {
	Listar(ctx context.Context) ([]dto.DepartamentoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.DepartamentoDetalheResponse, error)
	Criar(ctx context.Context, req dto.CriarDepartamentoRequest) (*dto.DepartamentoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarDepartamentoRequest) (*dto.DepartamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type departamentoService struct {
	repo repository.DepartamentoRepository
}

func NewDepartamentoService(repo repository.DepartamentoRepository) DepartamentoService {
	return &departamentoService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *departamentoService) Listar(ctx context.Context) ([]dto.DepartamentoResponse, error) {
	rows, err := s.repo.ListarComContagem(ctx)
	if err != nil {
		return nil, apperror.Store("Erro ao buscar departamentos", err)
	}
	result := make([]dto.DepartamentoResponse, 0, len(rows))
	for _, row := range rows {
		orcamento, _ := row.Orcamento.Float64()
		result = append(result, dto.DepartamentoResponse{
			ID:                row.ID.String(),
			Nome:              row.Nome,
			Orcamento:         orcamento,
			Localizacao:       row.Localizacao,
			DataCriacao:       row.DataCriacao.Format(time.RFC3339),
			Descricao:         row.Descricao,
			FuncionariosCount: int(row.FuncionariosCount),
		})
	}
	return result, nil
}

func (s *departamentoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.DepartamentoDetalheResponse, error) {
	d, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Departamento não encontrado")
		}
		return nil, apperror.Store("Erro ao buscar departamento", err)
	}

	funcionarios, err := s.repo.ListarFuncionarios(ctx, id)
	if err != nil {
		return nil, apperror.Store("Erro ao buscar funcionários do departamento", err)
	}

	resumo := make([]dto.FuncionarioResumoResponse, 0, len(funcionarios))
	for _, f := range funcionarios {
		salario, _ := f.Salario.Float64()
		resumo = append(resumo, dto.FuncionarioResumoResponse{
			ID:      f.ID.String(),
			Nome:    f.Nome,
			Email:   f.Email,
			Cargo:   f.Cargo,
			Salario: salario,
		})
	}

	orcamento, _ := d.Orcamento.Float64()
	return &dto.DepartamentoDetalheResponse{
		ID:           d.ID.String(),
		Nome:         d.Nome,
		Orcamento:    orcamento,
		Localizacao:  d.Localizacao,
		DataCriacao:  d.DataCriacao.Format(time.RFC3339),
		Descricao:    d.Descricao,
		Funcionarios: resumo,
	}, nil
}

func (s *departamentoService) Criar(ctx context.Context, req dto.CriarDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	d := &model.Departamento{
		Nome:        req.Nome,
		Orcamento:   req.Orcamento,
		Localizacao: req.Localizacao,
		DataCriacao: time.Now(),
		Descricao:   req.Descricao,
	}
	if err := s.repo.Criar(ctx, d); err != nil {
		return nil, apperror.FromStore("Erro ao criar departamento", err)
	}

	orcamento, _ := d.Orcamento.Float64()
	return &dto.DepartamentoResponse{
		ID:                d.ID.String(),
		Nome:              d.Nome,
		Orcamento:         orcamento,
		Localizacao:       d.Localizacao,
		DataCriacao:       d.DataCriacao.Format(time.RFC3339),
		Descricao:         d.Descricao,
		FuncionariosCount: 0,
	}, nil
}

// Atualizar replaces the mutable fields and recomputes the employee count.
// Select, update and recount run inside one transaction so the returned
// count matches the committed row.
func (s *departamentoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	d, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Departamento não encontrado")
		}
		return nil, apperror.Store("Erro ao buscar departamento", err)
	}

	d.Nome = req.Nome
	d.Orcamento = req.Orcamento
	d.Localizacao = req.Localizacao
	d.Descricao = req.Descricao

	var count int64
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.AtualizarTx(tx, d); err != nil {
			return err
		}
		count, err = s.repo.ContarFuncionariosTx(tx, id)
		return err
	})
	if txErr != nil {
		return nil, apperror.FromStore("Erro ao atualizar departamento", txErr)
	}

	orcamento, _ := d.Orcamento.Float64()
	return &dto.DepartamentoResponse{
		ID:                d.ID.String(),
		Nome:              d.Nome,
		Orcamento:         orcamento,
		Localizacao:       d.Localizacao,
		DataCriacao:       d.DataCriacao.Format(time.RFC3339),
		Descricao:         d.Descricao,
		FuncionariosCount: int(count),
	}, nil
}

func (s *departamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObterPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Departamento não encontrado")
		}
		return apperror.Store("Erro ao buscar departamento", err)
	}

	count, err := s.repo.ContarFuncionarios(ctx, id)
	if err != nil {
		return apperror.Store("Erro ao contar funcionários", err)
	}
	if count > 0 {
		return apperror.Conflict(fmt.Sprintf(
			"Não é possível excluir o departamento porque existem %d funcionários associados a ele. Transfira ou remova os funcionários primeiro.",
			count))
	}

	if err := s.repo.Excluir(ctx, id); err != nil {
		return apperror.Store("Erro ao excluir departamento", err)
	}
	return nil
}
