package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/apperror"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/dto"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/repository"
)

// Report type selectors as they appear on the wire.
const (
	RelatorioSalario     = "salary"
	RelatorioIdade       = "age"
	RelatorioCrescimento = "growth"
	RelatorioOrcamento   = "budget"
)

type RelatorioService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	SalarioPorNivel(ctx context.Context) ([]dto.SalarioNivelItem, error)
	FaixasEtarias(ctx context.Context) ([]dto.DistribuicaoItem, error)
	Crescimento(ctx context.Context) ([]dto.CrescimentoItem, error)
	Orcamento(ctx context.Context) ([]dto.OrcamentoItem, error)
	ExportarCSV(ctx context.Context, tipo string) ([]byte, error)
}

type relatorioService struct {
	repo repository.RelatorioRepository
}

func NewRelatorioService(repo repository.RelatorioRepository) RelatorioService {
	return &relatorioService{repo: repo}
}

func dashboardZerado() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		DistribuicaoDepartamentos: []dto.DistribuicaoItem{},
		DistribuicaoSalarial:      []dto.SalarioMensalItem{},
		Error:                     "Erro ao buscar estatísticas",
	}
}

// Dashboard assembles the snapshot from three queries. On any store failure
// it returns the zeroed shape with the error field set alongside a non-nil
// error, so the handler can emit both the 500 status and the fallback body.
func (s *relatorioService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := s.repo.Estatisticas(ctx)
	if err != nil {
		return dashboardZerado(), apperror.Store("Erro ao buscar estatísticas", err)
	}
	dist, err := s.repo.DistribuicaoDepartamentos(ctx)
	if err != nil {
		return dashboardZerado(), apperror.Store("Erro ao buscar estatísticas", err)
	}
	mensal, err := s.repo.DistribuicaoSalarialMensal(ctx)
	if err != nil {
		return dashboardZerado(), apperror.Store("Erro ao buscar estatísticas", err)
	}

	resp := &dto.DashboardResponse{
		TotalFuncionarios:         int(stats.TotalFuncionarios),
		MediaSalarial:             stats.MediaSalarial,
		TotalDepartamentos:        int(stats.TotalDepartamentos),
		ContratacoesRecentes:      int(stats.ContratacoesRecentes),
		DistribuicaoDepartamentos: make([]dto.DistribuicaoItem, 0, len(dist)),
		DistribuicaoSalarial:      make([]dto.SalarioMensalItem, 0, len(mensal)),
	}
	for _, row := range dist {
		resp.DistribuicaoDepartamentos = append(resp.DistribuicaoDepartamentos, dto.DistribuicaoItem{
			Name:  row.Name,
			Value: int(row.Value),
		})
	}
	for _, row := range mensal {
		resp.DistribuicaoSalarial = append(resp.DistribuicaoSalarial, dto.SalarioMensalItem{
			Name:  row.Name,
			Total: row.Total,
		})
	}
	return resp, nil
}

func (s *relatorioService) SalarioPorNivel(ctx context.Context) ([]dto.SalarioNivelItem, error) {
	rows, err := s.repo.SalarioPorNivel(ctx)
	if err != nil {
		return nil, apperror.Store("Erro ao buscar relatório de salários", err)
	}
	result := make([]dto.SalarioNivelItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.SalarioNivelItem{
			Name:   row.Name,
			Junior: row.Junior,
			Pleno:  row.Pleno,
			Senior: row.Senior,
		})
	}
	return result, nil
}

func (s *relatorioService) FaixasEtarias(ctx context.Context) ([]dto.DistribuicaoItem, error) {
	rows, err := s.repo.FaixasEtarias(ctx)
	if err != nil {
		return nil, apperror.Store("Erro ao buscar relatório de faixas etárias", err)
	}
	result := make([]dto.DistribuicaoItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.DistribuicaoItem{Name: row.Name, Value: int(row.Value)})
	}
	return result, nil
}

func (s *relatorioService) Crescimento(ctx context.Context) ([]dto.CrescimentoItem, error) {
	rows, err := s.repo.Crescimento(ctx)
	if err != nil {
		return nil, apperror.Store("Erro ao buscar relatório de crescimento", err)
	}
	result := make([]dto.CrescimentoItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.CrescimentoItem{Name: row.Name, Employees: int(row.Employees)})
	}
	return result, nil
}

func (s *relatorioService) Orcamento(ctx context.Context) ([]dto.OrcamentoItem, error) {
	rows, err := s.repo.OrcamentoPorDepartamento(ctx)
	if err != nil {
		return nil, apperror.Store("Erro ao buscar relatório de orçamento", err)
	}
	result := make([]dto.OrcamentoItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.OrcamentoItem{
			Name:   row.Name,
			Budget: row.Budget,
			Spent:  row.Spent,
		})
	}
	return result, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ExportarCSV renders one report dataset as CSV with a Portuguese header row.
func (s *relatorioService) ExportarCSV(ctx context.Context, tipo string) ([]byte, error) {
	var records [][]string

	switch tipo {
	case RelatorioSalario:
		rows, err := s.SalarioPorNivel(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, []string{"departamento", "junior", "pleno", "senior"})
		for _, row := range rows {
			records = append(records, []string{
				row.Name,
				formatFloat(row.Junior),
				formatFloat(row.Pleno),
				formatFloat(row.Senior),
			})
		}
	case RelatorioIdade:
		rows, err := s.FaixasEtarias(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, []string{"faixa", "quantidade"})
		for _, row := range rows {
			records = append(records, []string{row.Name, strconv.Itoa(row.Value)})
		}
	case RelatorioCrescimento:
		rows, err := s.Crescimento(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, []string{"mes", "funcionarios"})
		for _, row := range rows {
			records = append(records, []string{row.Name, strconv.Itoa(row.Employees)})
		}
	case RelatorioOrcamento:
		rows, err := s.Orcamento(ctx)
		if err != nil {
			return nil, err
		}
		records = append(records, []string{"departamento", "orcamento", "gasto"})
		for _, row := range rows {
			records = append(records, []string{
				row.Name,
				formatFloat(row.Budget),
				formatFloat(row.Spent),
			})
		}
	default:
		return nil, apperror.Validation("Tipo de relatório inválido")
	}

	var buf bytes.Buffer
	if err := csv.NewWriter(&buf).WriteAll(records); err != nil {
		return nil, apperror.Store("Erro ao gerar CSV", err)
	}
	return buf.Bytes(), nil
}
