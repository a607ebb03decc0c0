package service

import (
	"context"
	"errors"
	"time"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/apperror"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/dto"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/model"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupervisorNone is the sentinel accepted in supervisorId meaning
// "explicitly no supervisor".
const SupervisorNone = "none"

type FuncionarioService interface {
	Listar(ctx context.Context) ([]dto.FuncionarioResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FuncionarioDetalheResponse, error)
	Criar(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFuncionarioRequest) (*dto.FuncionarioResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type funcionarioService struct {
	repo    repository.FuncionarioRepository
	depRepo repository.DepartamentoRepository
}

func NewFuncionarioService(repo repository.FuncionarioRepository, depRepo repository.DepartamentoRepository) FuncionarioService {
	return &funcionarioService{repo: repo, depRepo: depRepo}
}

func parseDataContratacao(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperror.Validation("dataContratacao inválida")
	}
	return t, nil
}

// resolveSupervisor maps the wire value to an optional UUID. nil, "" and the
// "none" sentinel all mean no supervisor.
func resolveSupervisor(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" || *raw == SupervisorNone {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperror.Validation("supervisorId inválido")
	}
	return &id, nil
}

func funcionarioToResponse(f *model.Funcionario) dto.FuncionarioResponse {
	salario, _ := f.Salario.Float64()
	resp := dto.FuncionarioResponse{
		ID:              f.ID.String(),
		Nome:            f.Nome,
		Email:           f.Email,
		CPF:             f.CPF,
		Cargo:           f.Cargo,
		Salario:         salario,
		DataContratacao: f.DataContratacao.Format(time.RFC3339),
	}
	if f.Departamento != nil {
		resp.Departamento = dto.DepartamentoRefResponse{
			ID:   f.Departamento.ID.String(),
			Nome: f.Departamento.Nome,
		}
	}
	return resp
}

func (s *funcionarioService) Listar(ctx context.Context) ([]dto.FuncionarioResponse, error) {
	funcionarios, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apperror.Store("Erro ao buscar funcionários", err)
	}
	result := make([]dto.FuncionarioResponse, 0, len(funcionarios))
	for i := range funcionarios {
		result = append(result, funcionarioToResponse(&funcionarios[i]))
	}
	return result, nil
}

func (s *funcionarioService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.FuncionarioDetalheResponse, error) {
	f, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Funcionário não encontrado")
		}
		return nil, apperror.Store("Erro ao buscar funcionário", err)
	}

	salario, _ := f.Salario.Float64()
	resp := &dto.FuncionarioDetalheResponse{
		ID:              f.ID.String(),
		Nome:            f.Nome,
		Email:           f.Email,
		CPF:             f.CPF,
		Cargo:           f.Cargo,
		Salario:         salario,
		DataContratacao: f.DataContratacao.Format(time.RFC3339),
		HistoricoCargos: []dto.HistoricoCargoResponse{},
	}
	if f.Departamento != nil {
		resp.Departamento = dto.DepartamentoRefResponse{
			ID:   f.Departamento.ID.String(),
			Nome: f.Departamento.Nome,
		}
	}
	if f.Supervisor != nil {
		resp.Supervisor = &dto.SupervisorResponse{
			ID:   f.Supervisor.ID.String(),
			Nome: f.Supervisor.Nome,
		}
	}
	if f.Perfil != nil {
		resp.Perfil = &dto.PerfilResponse{
			Idade:       f.Perfil.Idade,
			Endereco:    f.Perfil.Endereco,
			Telefone:    f.Perfil.Telefone,
			Genero:      f.Perfil.Genero,
			EstadoCivil: f.Perfil.EstadoCivil,
		}
	}
	for _, h := range f.HistoricoCargos {
		resp.HistoricoCargos = append(resp.HistoricoCargos, dto.HistoricoCargoResponse{
			ID:            h.ID.String(),
			CargoAnterior: h.CargoAnterior,
			NovoCargo:     h.NovoCargo,
			DataAlteracao: h.DataAlteracao.Format(time.RFC3339),
			Motivo:        h.Motivo,
			AprovadoPor:   h.AprovadoPor,
		})
	}
	return resp, nil
}

// Criar validates the references and uniqueness in a fixed order, then writes
// the funcionario and its optional perfil in one transaction. The unique
// indexes on email and cpf backstop the pre-checks under concurrency.
func (s *funcionarioService) Criar(ctx context.Context, req dto.CriarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	dataContratacao, err := parseDataContratacao(req.DataContratacao)
	if err != nil {
		return nil, err
	}
	depID, err := uuid.Parse(req.DepartamentoID)
	if err != nil {
		return nil, apperror.Validation("departamentoId inválido")
	}
	supervisorID, err := resolveSupervisor(req.SupervisorID)
	if err != nil {
		return nil, err
	}

	dep, err := s.depRepo.ObterPorID(ctx, depID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Conflict("Departamento não encontrado")
		}
		return nil, apperror.Store("Erro ao buscar departamento", err)
	}

	if supervisorID != nil {
		exists, err := s.repo.Existe(ctx, *supervisorID)
		if err != nil {
			return nil, apperror.Store("Erro ao buscar supervisor", err)
		}
		if !exists {
			return nil, apperror.Conflict("Supervisor não encontrado")
		}
	}

	emailUsed, err := s.repo.ExisteEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Store("Erro ao verificar email", err)
	}
	if emailUsed {
		return nil, apperror.Conflict("Email já cadastrado")
	}

	cpfUsed, err := s.repo.ExisteCPF(ctx, req.CPF)
	if err != nil {
		return nil, apperror.Store("Erro ao verificar CPF", err)
	}
	if cpfUsed {
		return nil, apperror.Conflict("CPF já cadastrado")
	}

	f := &model.Funcionario{
		Nome:            req.Nome,
		Email:           req.Email,
		CPF:             req.CPF,
		Cargo:           req.Cargo,
		Salario:         req.Salario,
		DataContratacao: dataContratacao,
		DepartamentoID:  depID,
		SupervisorID:    supervisorID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CriarTx(tx, f); err != nil {
			return err
		}
		if req.PerfilCompleto() {
			return s.repo.CriarPerfilTx(tx, &model.Perfil{
				FuncionarioID: f.ID,
				Idade:         *req.Idade,
				Endereco:      *req.Endereco,
				Telefone:      *req.Telefone,
				Genero:        *req.Genero,
				EstadoCivil:   *req.EstadoCivil,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, apperror.FromStore("Erro ao criar funcionário", txErr)
	}

	f.Departamento = dep
	resp := funcionarioToResponse(f)
	return &resp, nil
}

// Atualizar overwrites the core fields, appends a historico entry when the
// cargo changed and upserts the perfil, all inside one transaction. Unlike
// Criar it does not re-check email/cpf uniqueness; the unique indexes catch
// actual collisions.
func (s *funcionarioService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	f, err := s.repo.ObterPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Funcionário não encontrado")
		}
		return nil, apperror.Store("Erro ao buscar funcionário", err)
	}

	dataContratacao, err := parseDataContratacao(req.DataContratacao)
	if err != nil {
		return nil, err
	}
	depID, err := uuid.Parse(req.DepartamentoID)
	if err != nil {
		return nil, apperror.Validation("departamentoId inválido")
	}
	supervisorID, err := resolveSupervisor(req.SupervisorID)
	if err != nil {
		return nil, err
	}

	cargoAnterior := f.Cargo

	f.Nome = req.Nome
	f.Email = req.Email
	f.CPF = req.CPF
	f.Cargo = req.Cargo
	f.Salario = req.Salario
	f.DataContratacao = dataContratacao
	f.DepartamentoID = depID
	f.SupervisorID = supervisorID

	// Detach the preloads so Save only touches the funcionarios row.
	f.Departamento = nil
	f.Supervisor = nil
	f.Perfil = nil
	f.HistoricoCargos = nil

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.AtualizarTx(tx, f); err != nil {
			return err
		}

		if cargoAnterior != req.Cargo {
			h := &model.HistoricoCargo{
				FuncionarioID: f.ID,
				CargoAnterior: cargoAnterior,
				NovoCargo:     req.Cargo,
				DataAlteracao: time.Now(),
			}
			if req.Motivo != nil {
				h.Motivo = *req.Motivo
			}
			if req.AprovadoPor != nil {
				h.AprovadoPor = *req.AprovadoPor
			}
			if err := s.repo.CriarHistoricoTx(tx, h); err != nil {
				return err
			}
		}

		if req.PerfilCompleto() {
			perfil, err := s.repo.ObterPerfilTx(tx, f.ID)
			switch {
			case err == nil:
				perfil.Idade = *req.Idade
				perfil.Endereco = *req.Endereco
				perfil.Telefone = *req.Telefone
				perfil.Genero = *req.Genero
				perfil.EstadoCivil = *req.EstadoCivil
				return s.repo.AtualizarPerfilTx(tx, perfil)
			case errors.Is(err, gorm.ErrRecordNotFound):
				return s.repo.CriarPerfilTx(tx, &model.Perfil{
					FuncionarioID: f.ID,
					Idade:         *req.Idade,
					Endereco:      *req.Endereco,
					Telefone:      *req.Telefone,
					Genero:        *req.Genero,
					EstadoCivil:   *req.EstadoCivil,
				})
			default:
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, apperror.FromStore("Erro ao atualizar funcionário", txErr)
	}

	if dep, err := s.depRepo.ObterPorID(ctx, depID); err == nil {
		f.Departamento = dep
	}
	resp := funcionarioToResponse(f)
	return &resp, nil
}

func (s *funcionarioService) Excluir(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Existe(ctx, id)
	if err != nil {
		return apperror.Store("Erro ao buscar funcionário", err)
	}
	if !exists {
		return apperror.NotFound("Funcionário não encontrado")
	}
	if err := s.repo.Excluir(ctx, id); err != nil {
		return apperror.Store("Erro ao excluir funcionário", err)
	}
	return nil
}
