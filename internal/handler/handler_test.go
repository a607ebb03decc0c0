package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/apperror"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/dto"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubDepartamentoService answers with canned values; err wins when set.
type stubDepartamentoService struct {
	err     error
	resp    *dto.DepartamentoResponse
	detalhe *dto.DepartamentoDetalheResponse
	lista   []dto.DepartamentoResponse
}

func (s *stubDepartamentoService) Listar(_ context.Context) ([]dto.DepartamentoResponse, error) {
	return s.lista, s.err
}
func (s *stubDepartamentoService) ObterPorID(_ context.Context, _ uuid.UUID) (*dto.DepartamentoDetalheResponse, error) {
	return s.detalhe, s.err
}
func (s *stubDepartamentoService) Criar(_ context.Context, _ dto.CriarDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	return s.resp, s.err
}
func (s *stubDepartamentoService) Atualizar(_ context.Context, _ uuid.UUID, _ dto.AtualizarDepartamentoRequest) (*dto.DepartamentoResponse, error) {
	return s.resp, s.err
}
func (s *stubDepartamentoService) Excluir(_ context.Context, _ uuid.UUID) error { return s.err }

var _ service.DepartamentoService = (*stubDepartamentoService)(nil)

// stubRelatorioService drives the report and dashboard handlers.
type stubRelatorioService struct {
	dashboard    *dto.DashboardResponse
	dashboardErr error
	niveis       []dto.SalarioNivelItem
	faixas       []dto.DistribuicaoItem
	crescimento  []dto.CrescimentoItem
	orcamento    []dto.OrcamentoItem
	csv          []byte
	csvErr       error
}

func (s *stubRelatorioService) Dashboard(_ context.Context) (*dto.DashboardResponse, error) {
	return s.dashboard, s.dashboardErr
}
func (s *stubRelatorioService) SalarioPorNivel(_ context.Context) ([]dto.SalarioNivelItem, error) {
	return s.niveis, nil
}
func (s *stubRelatorioService) FaixasEtarias(_ context.Context) ([]dto.DistribuicaoItem, error) {
	return s.faixas, nil
}
func (s *stubRelatorioService) Crescimento(_ context.Context) ([]dto.CrescimentoItem, error) {
	return s.crescimento, nil
}
func (s *stubRelatorioService) Orcamento(_ context.Context) ([]dto.OrcamentoItem, error) {
	return s.orcamento, nil
}
func (s *stubRelatorioService) ExportarCSV(_ context.Context, tipo string) ([]byte, error) {
	if s.csvErr != nil {
		return nil, s.csvErr
	}
	return s.csv, nil
}

var _ service.RelatorioService = (*stubRelatorioService)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func departamentosRouter(svc service.DepartamentoService) *gin.Engine {
	r := gin.New()
	h := NewDepartamentosHandler(svc)
	r.GET("/departments", h.Listar)
	r.GET("/departments/:id", h.ObterPorID)
	r.POST("/departments", h.Criar)
	r.PUT("/departments/:id", h.Atualizar)
	r.DELETE("/departments/:id", h.Excluir)
	return r
}

func relatoriosRouter(svc service.RelatorioService) *gin.Engine {
	r := gin.New()
	h := NewRelatoriosHandler(svc)
	r.GET("/dashboard", h.Dashboard)
	r.GET("/reports", h.Relatorio)
	r.GET("/reports/export", h.Exportar)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) apperror.Response {
	t.Helper()
	var resp apperror.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestDepartamentoIDInvalido(t *testing.T) {
	r := departamentosRouter(&stubDepartamentoService{})

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := doJSON(r, method, "/departments/nao-e-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ID inválido", errorBody(t, w).Error)
	}
}

func TestDepartamentoCriarCamposObrigatorios(t *testing.T) {
	r := departamentosRouter(&stubDepartamentoService{})

	w := doJSON(r, http.MethodPost, "/departments", `{"nome":"TI"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := errorBody(t, w)
	assert.Contains(t, body.Error, "Campos obrigatórios faltando")
	assert.Contains(t, body.Error, "orcamento")
	assert.Contains(t, body.Error, "localizacao")
}

func TestDepartamentoCriarJSONMalformado(t *testing.T) {
	r := departamentosRouter(&stubDepartamentoService{})

	w := doJSON(r, http.MethodPost, "/departments", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Formato de dados inválido", errorBody(t, w).Error)
}

func TestDepartamentoCriarOrcamentoNegativo(t *testing.T) {
	r := departamentosRouter(&stubDepartamentoService{})

	w := doJSON(r, http.MethodPost, "/departments",
		`{"nome":"TI","orcamento":-10,"localizacao":"SP"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w).Error, "orcamento")
}

func TestDepartamentoCriarCreated(t *testing.T) {
	svc := &stubDepartamentoService{resp: &dto.DepartamentoResponse{ID: uuid.NewString(), Nome: "TI"}}
	r := departamentosRouter(svc)

	w := doJSON(r, http.MethodPost, "/departments",
		`{"nome":"TI","orcamento":500000,"localizacao":"São Paulo"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDepartamentoExcluirSucesso(t *testing.T) {
	r := departamentosRouter(&stubDepartamentoService{})

	w := doJSON(r, http.MethodDelete, "/departments/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestDepartamentoErroTaxonomia(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperror.NotFound("Departamento não encontrado"), http.StatusNotFound},
		{apperror.Conflict("bloqueado"), http.StatusBadRequest},
		{apperror.Store("Erro ao buscar departamentos", assert.AnError), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := departamentosRouter(&stubDepartamentoService{err: tc.err})
		w := doJSON(r, http.MethodGet, "/departments/"+uuid.NewString(), "")
		assert.Equal(t, tc.status, w.Code)
		assert.Equal(t, tc.err.Error(), errorBody(t, w).Error)
	}
}

func TestDepartamentoErroStoreExpoeDetails(t *testing.T) {
	r := departamentosRouter(&stubDepartamentoService{
		err: apperror.Store("Erro ao buscar departamentos", assert.AnError),
	})
	w := doJSON(r, http.MethodGet, "/departments", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, "Erro ao buscar departamentos", body.Error)
	assert.Equal(t, assert.AnError.Error(), body.Details)
}

func TestRelatorioTipoInvalido(t *testing.T) {
	r := relatoriosRouter(&stubRelatorioService{})

	for _, path := range []string{"/reports", "/reports?type=payroll"} {
		w := doJSON(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Tipo de relatório inválido", errorBody(t, w).Error)
	}
}

func TestRelatorioSalary(t *testing.T) {
	r := relatoriosRouter(&stubRelatorioService{
		niveis: []dto.SalarioNivelItem{{Name: "TI", Pleno: 8500, Senior: 15000}},
	})

	w := doJSON(r, http.MethodGet, "/reports?type=salary", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SalarioNivelItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "TI", resp[0].Name)
}

func TestDashboardFalhaAindaDevolvePayload(t *testing.T) {
	r := relatoriosRouter(&stubRelatorioService{
		dashboard: &dto.DashboardResponse{
			DistribuicaoDepartamentos: []dto.DistribuicaoItem{},
			DistribuicaoSalarial:      []dto.SalarioMensalItem{},
			Error:                     "Erro ao buscar estatísticas",
		},
		dashboardErr: apperror.Store("Erro ao buscar estatísticas", assert.AnError),
	})

	w := doJSON(r, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.TotalFuncionarios)
	assert.Equal(t, "Erro ao buscar estatísticas", resp.Error)
}

func TestDashboardSucesso(t *testing.T) {
	r := relatoriosRouter(&stubRelatorioService{
		dashboard: &dto.DashboardResponse{
			TotalFuncionarios:         4,
			MediaSalarial:             10250,
			TotalDepartamentos:        3,
			DistribuicaoDepartamentos: []dto.DistribuicaoItem{{Name: "TI", Value: 2}},
			DistribuicaoSalarial:      []dto.SalarioMensalItem{{Name: "Jun", Total: 8500}},
		},
	})

	w := doJSON(r, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalFuncionarios":4`)
	assert.NotContains(t, w.Body.String(), `"error"`)
}

func TestExportarCSV(t *testing.T) {
	r := relatoriosRouter(&stubRelatorioService{
		csv: []byte("departamento,junior,pleno,senior\nTI,0.00,8500.00,15000.00\n"),
	})

	w := doJSON(r, http.MethodGet, "/reports/export?type=salary&format=csv", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=relatorio-salary.csv", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "8500.00")
}

func TestExportarCSVTipoInvalido(t *testing.T) {
	r := relatoriosRouter(&stubRelatorioService{
		csvErr: apperror.Validation("Tipo de relatório inválido"),
	})

	w := doJSON(r, http.MethodGet, "/reports/export?type=payroll", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Tipo de relatório inválido", errorBody(t, w).Error)
}

func TestExportarFormatoInvalido(t *testing.T) {
	r := relatoriosRouter(&stubRelatorioService{})

	w := doJSON(r, http.MethodGet, "/reports/export?type=salary&format=xml", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Formato de exportação inválido", errorBody(t, w).Error)
}
