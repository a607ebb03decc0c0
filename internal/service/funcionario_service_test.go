package service

import (
	"context"
	"testing"
	"time"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/apperror"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/dto"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/model"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubFuncionarioRepo is an in-memory FuncionarioRepository for testing.
type stubFuncionarioRepo struct {
	funcionarios map[uuid.UUID]*model.Funcionario
	perfis       map[uuid.UUID]*model.Perfil
	historico    map[uuid.UUID][]model.HistoricoCargo
}

func newStubFuncionarioRepo() *stubFuncionarioRepo {
	return &stubFuncionarioRepo{
		funcionarios: make(map[uuid.UUID]*model.Funcionario),
		perfis:       make(map[uuid.UUID]*model.Perfil),
		historico:    make(map[uuid.UUID][]model.HistoricoCargo),
	}
}

func (r *stubFuncionarioRepo) Listar(_ context.Context) ([]model.Funcionario, error) {
	var out []model.Funcionario
	for _, f := range r.funcionarios {
		out = append(out, *f)
	}
	return out, nil
}

func (r *stubFuncionarioRepo) ObterPorID(_ context.Context, id uuid.UUID) (*model.Funcionario, error) {
	f, ok := r.funcionarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	if p, ok := r.perfis[id]; ok {
		pcp := *p
		cp.Perfil = &pcp
	}
	cp.HistoricoCargos = append([]model.HistoricoCargo(nil), r.historico[id]...)
	return &cp, nil
}

func (r *stubFuncionarioRepo) Existe(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.funcionarios[id]
	return ok, nil
}

func (r *stubFuncionarioRepo) ExisteEmail(_ context.Context, email string) (bool, error) {
	for _, f := range r.funcionarios {
		if f.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubFuncionarioRepo) ExisteCPF(_ context.Context, cpf string) (bool, error) {
	for _, f := range r.funcionarios {
		if f.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubFuncionarioRepo) CriarTx(_ *gorm.DB, f *model.Funcionario) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	cp := *f
	r.funcionarios[f.ID] = &cp
	return nil
}

func (r *stubFuncionarioRepo) AtualizarTx(_ *gorm.DB, f *model.Funcionario) error {
	cp := *f
	r.funcionarios[f.ID] = &cp
	return nil
}

func (r *stubFuncionarioRepo) Excluir(_ context.Context, id uuid.UUID) error {
	delete(r.funcionarios, id)
	delete(r.perfis, id)
	delete(r.historico, id)
	return nil
}

func (r *stubFuncionarioRepo) ObterPerfilTx(_ *gorm.DB, funcionarioID uuid.UUID) (*model.Perfil, error) {
	p, ok := r.perfis[funcionarioID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubFuncionarioRepo) CriarPerfilTx(_ *gorm.DB, p *model.Perfil) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.perfis[p.FuncionarioID] = &cp
	return nil
}

func (r *stubFuncionarioRepo) AtualizarPerfilTx(_ *gorm.DB, p *model.Perfil) error {
	cp := *p
	r.perfis[p.FuncionarioID] = &cp
	return nil
}

func (r *stubFuncionarioRepo) CriarHistoricoTx(_ *gorm.DB, h *model.HistoricoCargo) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.historico[h.FuncionarioID] = append(r.historico[h.FuncionarioID], *h)
	return nil
}

func (r *stubFuncionarioRepo) DB() *gorm.DB { return nil }

var _ repository.FuncionarioRepository = (*stubFuncionarioRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func newFuncionarioFixture() (*stubFuncionarioRepo, *stubDepartamentoRepo, FuncionarioService, uuid.UUID) {
	repo := newStubFuncionarioRepo()
	depRepo := newStubDepartamentoRepo()
	depID := seedDepartamento(depRepo, "TI", 0)
	return repo, depRepo, NewFuncionarioService(repo, depRepo), depID
}

func criarRequest(depID uuid.UUID) dto.CriarFuncionarioRequest {
	return dto.CriarFuncionarioRequest{
		Nome:            "João Silva",
		Email:           "joao.silva@empresa.com",
		CPF:             "333.444.555-66",
		Cargo:           "Desenvolvedor Pleno",
		Salario:         decimal.NewFromInt(8500),
		DataContratacao: "2024-03-01",
		DepartamentoID:  depID.String(),
	}
}

func ptr[T any](v T) *T { return &v }

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestFuncionarioCriar(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	resp, err := svc.Criar(context.Background(), criarRequest(depID))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "João Silva", resp.Nome)
	assert.Equal(t, "TI", resp.Departamento.Nome)
	assert.Len(t, repo.funcionarios, 1)
	assert.Empty(t, repo.perfis, "perfil parcial não deve ser criado")
}

func TestFuncionarioCriarComPerfilCompleto(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	req := criarRequest(depID)
	req.Idade = ptr(29)
	req.Endereco = ptr("Rua das Flores, 123")
	req.Telefone = ptr("(11) 98765-4321")
	req.Genero = ptr("Masculino")
	req.EstadoCivil = ptr("Solteiro")

	resp, err := svc.Criar(context.Background(), req)
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	require.Contains(t, repo.perfis, id)
	assert.Equal(t, 29, repo.perfis[id].Idade)
}

func TestFuncionarioCriarPerfilIncompletoIgnorado(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	req := criarRequest(depID)
	req.Idade = ptr(29)
	req.Endereco = ptr("Rua das Flores, 123")

	_, err := svc.Criar(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, repo.perfis)
}

func TestFuncionarioCriarDepartamentoInexistente(t *testing.T) {
	_, _, svc, _ := newFuncionarioFixture()

	_, err := svc.Criar(context.Background(), criarRequest(uuid.New()))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
	assert.Equal(t, "Departamento não encontrado", err.Error())
}

func TestFuncionarioCriarSupervisorInexistente(t *testing.T) {
	_, _, svc, depID := newFuncionarioFixture()

	req := criarRequest(depID)
	req.SupervisorID = ptr(uuid.NewString())

	_, err := svc.Criar(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
	assert.Equal(t, "Supervisor não encontrado", err.Error())
}

func TestFuncionarioCriarSupervisorNone(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	req := criarRequest(depID)
	req.SupervisorID = ptr(SupervisorNone)

	resp, err := svc.Criar(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, repo.funcionarios[uuid.MustParse(resp.ID)].SupervisorID)
}

func TestFuncionarioCriarEmailDuplicado(t *testing.T) {
	_, _, svc, depID := newFuncionarioFixture()

	_, err := svc.Criar(context.Background(), criarRequest(depID))
	require.NoError(t, err)

	req := criarRequest(depID)
	req.CPF = "999.888.777-66"
	_, err = svc.Criar(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
	assert.Equal(t, "Email já cadastrado", err.Error())
}

func TestFuncionarioCriarCPFDuplicado(t *testing.T) {
	_, _, svc, depID := newFuncionarioFixture()

	_, err := svc.Criar(context.Background(), criarRequest(depID))
	require.NoError(t, err)

	req := criarRequest(depID)
	req.Email = "outro@empresa.com"
	_, err = svc.Criar(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
	assert.Equal(t, "CPF já cadastrado", err.Error())
}

func TestFuncionarioCriarDataInvalida(t *testing.T) {
	_, _, svc, depID := newFuncionarioFixture()

	req := criarRequest(depID)
	req.DataContratacao = "01/03/2024"

	_, err := svc.Criar(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
}

func TestFuncionarioAtualizarRegistraHistorico(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	created, err := svc.Criar(context.Background(), criarRequest(depID))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	req := dto.AtualizarFuncionarioRequest{
		Nome:            created.Nome,
		Email:           created.Email,
		CPF:             created.CPF,
		Cargo:           "Desenvolvedor Sênior",
		Salario:         decimal.NewFromInt(12000),
		DataContratacao: "2024-03-01",
		DepartamentoID:  depID.String(),
		Motivo:          ptr("Promoção por desempenho"),
		AprovadoPor:     ptr("Carlos Mendes"),
	}
	resp, err := svc.Atualizar(context.Background(), id, req)
	require.NoError(t, err)
	assert.Equal(t, "Desenvolvedor Sênior", resp.Cargo)

	require.Len(t, repo.historico[id], 1)
	h := repo.historico[id][0]
	assert.Equal(t, "Desenvolvedor Pleno", h.CargoAnterior)
	assert.Equal(t, "Desenvolvedor Sênior", h.NovoCargo)
	assert.Equal(t, "Promoção por desempenho", h.Motivo)
	assert.Equal(t, "Carlos Mendes", h.AprovadoPor)
	assert.WithinDuration(t, time.Now(), h.DataAlteracao, time.Minute)
}

func TestFuncionarioAtualizarMesmoCargoSemHistorico(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	created, err := svc.Criar(context.Background(), criarRequest(depID))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Atualizar(context.Background(), id, dto.AtualizarFuncionarioRequest{
		Nome:            "João S. Silva",
		Email:           created.Email,
		CPF:             created.CPF,
		Cargo:           created.Cargo,
		Salario:         decimal.NewFromInt(9000),
		DataContratacao: "2024-03-01",
		DepartamentoID:  depID.String(),
	})
	require.NoError(t, err)
	assert.Empty(t, repo.historico[id])
	assert.Equal(t, "João S. Silva", repo.funcionarios[id].Nome)
}

func TestFuncionarioAtualizarUpsertPerfil(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	created, err := svc.Criar(context.Background(), criarRequest(depID))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	base := dto.AtualizarFuncionarioRequest{
		Nome:            created.Nome,
		Email:           created.Email,
		CPF:             created.CPF,
		Cargo:           created.Cargo,
		Salario:         decimal.NewFromInt(8500),
		DataContratacao: "2024-03-01",
		DepartamentoID:  depID.String(),
		Idade:           ptr(29),
		Endereco:        ptr("Rua A, 1"),
		Telefone:        ptr("(11) 90000-0000"),
		Genero:          ptr("Masculino"),
		EstadoCivil:     ptr("Solteiro"),
	}
	_, err = svc.Atualizar(context.Background(), id, base)
	require.NoError(t, err)
	require.Contains(t, repo.perfis, id)
	assert.Equal(t, 29, repo.perfis[id].Idade)

	base.Idade = ptr(30)
	base.EstadoCivil = ptr("Casado")
	_, err = svc.Atualizar(context.Background(), id, base)
	require.NoError(t, err)
	assert.Equal(t, 30, repo.perfis[id].Idade)
	assert.Equal(t, "Casado", repo.perfis[id].EstadoCivil)
}

func TestFuncionarioAtualizarNaoEncontrado(t *testing.T) {
	_, _, svc, depID := newFuncionarioFixture()

	_, err := svc.Atualizar(context.Background(), uuid.New(), dto.AtualizarFuncionarioRequest{
		Nome:            "X",
		Email:           "x@empresa.com",
		CPF:             "000.000.000-00",
		Cargo:           "Analista",
		Salario:         decimal.NewFromInt(1000),
		DataContratacao: "2024-01-01",
		DepartamentoID:  depID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	assert.Equal(t, "Funcionário não encontrado", err.Error())
}

func TestFuncionarioObterPorIDDetalhe(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	req := criarRequest(depID)
	req.Idade = ptr(29)
	req.Endereco = ptr("Rua A, 1")
	req.Telefone = ptr("(11) 90000-0000")
	req.Genero = ptr("Masculino")
	req.EstadoCivil = ptr("Solteiro")
	created, err := svc.Criar(context.Background(), req)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	repo.historico[id] = append(repo.historico[id], model.HistoricoCargo{
		ID:            uuid.New(),
		FuncionarioID: id,
		CargoAnterior: "Desenvolvedor Júnior",
		NovoCargo:     "Desenvolvedor Pleno",
		DataAlteracao: time.Now().AddDate(0, -3, 0),
	})

	resp, err := svc.ObterPorID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, resp.Perfil)
	assert.Equal(t, 29, resp.Perfil.Idade)
	require.Len(t, resp.HistoricoCargos, 1)
	assert.Equal(t, "Desenvolvedor Pleno", resp.HistoricoCargos[0].NovoCargo)
	assert.Nil(t, resp.Supervisor)
}

func TestFuncionarioExcluir(t *testing.T) {
	repo, _, svc, depID := newFuncionarioFixture()

	created, err := svc.Criar(context.Background(), criarRequest(depID))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Excluir(context.Background(), id))
	assert.NotContains(t, repo.funcionarios, id)

	err = svc.Excluir(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
}
