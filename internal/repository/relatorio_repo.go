package repository

import (
	"context"

	"gorm.io/gorm"
)

// Row types for the aggregation queries. Column aliases in the SQL match the
// struct field names so gorm can scan directly.

type EstatisticasRow struct {
	TotalFuncionarios    int64
	MediaSalarial        float64
	TotalDepartamentos   int64
	ContratacoesRecentes int64
}

type NomeValorRow struct {
	Name  string
	Value int64
}

type SalarioMensalRow struct {
	Name  string
	Total float64
}

type SalarioNivelRow struct {
	Name   string
	Junior float64
	Pleno  float64
	Senior float64
}

type CrescimentoRow struct {
	Name      string
	Employees int64
}

type OrcamentoRow struct {
	Name   string
	Budget float64
	Spent  float64
}

// RelatorioRepository holds the pure read/derive queries behind the dashboard
// and the report datasets. All grouping, bucketing and NULL coercion happens
// in SQL; callers only reshape rows into DTOs.
type RelatorioRepository interface {
	Estatisticas(ctx context.Context) (EstatisticasRow, error)
	DistribuicaoDepartamentos(ctx context.Context) ([]NomeValorRow, error)
	DistribuicaoSalarialMensal(ctx context.Context) ([]SalarioMensalRow, error)
	SalarioPorNivel(ctx context.Context) ([]SalarioNivelRow, error)
	FaixasEtarias(ctx context.Context) ([]NomeValorRow, error)
	Crescimento(ctx context.Context) ([]CrescimentoRow, error)
	OrcamentoPorDepartamento(ctx context.Context) ([]OrcamentoRow, error)
}

type relatorioRepo struct{ db *gorm.DB }

func NewRelatorioRepository(db *gorm.DB) RelatorioRepository {
	return &relatorioRepo{db: db}
}

func (r *relatorioRepo) Estatisticas(ctx context.Context) (EstatisticasRow, error) {
	var row EstatisticasRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM funcionarios) AS total_funcionarios,
			(SELECT COALESCE(AVG(salario), 0) FROM funcionarios) AS media_salarial,
			(SELECT COUNT(*) FROM departamentos) AS total_departamentos,
			(SELECT COUNT(*) FROM funcionarios
			  WHERE data_contratacao >= NOW() - INTERVAL '30 days') AS contratacoes_recentes
	`).Scan(&row).Error
	return row, err
}

// DistribuicaoDepartamentos includes every department, zero counts included.
func (r *relatorioRepo) DistribuicaoDepartamentos(ctx context.Context) ([]NomeValorRow, error) {
	var rows []NomeValorRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.nome AS name, COUNT(f.id) AS value
		FROM departamentos d
		LEFT JOIN funcionarios f ON d.id = f.departamento_id
		GROUP BY d.nome
		ORDER BY d.nome
	`).Scan(&rows).Error
	return rows, err
}

// DistribuicaoSalarialMensal averages salaries per calendar month of hire
// over the trailing six months, in chronological order.
func (r *relatorioRepo) DistribuicaoSalarialMensal(ctx context.Context) ([]SalarioMensalRow, error) {
	var rows []SalarioMensalRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(date_trunc('month', data_contratacao), 'Mon') AS name,
			ROUND(AVG(salario)::numeric, 2) AS total
		FROM funcionarios
		WHERE data_contratacao >= NOW() - INTERVAL '6 months'
		GROUP BY date_trunc('month', data_contratacao)
		ORDER BY date_trunc('month', data_contratacao)
	`).Scan(&rows).Error
	return rows, err
}

// SalarioPorNivel computes three independent conditional averages per
// department. The level markers are case-sensitive substring matches on the
// cargo text; departments without matches report 0.
func (r *relatorioRepo) SalarioPorNivel(ctx context.Context) ([]SalarioNivelRow, error) {
	var rows []SalarioNivelRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.nome AS name,
			COALESCE(ROUND(AVG(CASE WHEN f.cargo LIKE '%Júnior%' OR f.cargo LIKE '%Junior%'
				THEN f.salario END)::numeric, 2), 0) AS junior,
			COALESCE(ROUND(AVG(CASE WHEN f.cargo LIKE '%Pleno%'
				THEN f.salario END)::numeric, 2), 0) AS pleno,
			COALESCE(ROUND(AVG(CASE WHEN f.cargo LIKE '%Sênior%' OR f.cargo LIKE '%Senior%'
				THEN f.salario END)::numeric, 2), 0) AS senior
		FROM departamentos d
		LEFT JOIN funcionarios f ON d.id = f.departamento_id
		GROUP BY d.nome
		ORDER BY d.nome
	`).Scan(&rows).Error
	return rows, err
}

// FaixasEtarias buckets by perfil age; employees without a perfil are
// excluded and empty buckets are omitted (no zero-fill).
func (r *relatorioRepo) FaixasEtarias(ctx context.Context) ([]NomeValorRow, error) {
	var rows []NomeValorRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			CASE
				WHEN p.idade BETWEEN 18 AND 25 THEN '18-25 anos'
				WHEN p.idade BETWEEN 26 AND 35 THEN '26-35 anos'
				WHEN p.idade BETWEEN 36 AND 45 THEN '36-45 anos'
				WHEN p.idade BETWEEN 46 AND 55 THEN '46-55 anos'
				ELSE '56+ anos'
			END AS name,
			COUNT(*) AS value
		FROM perfis p
		GROUP BY name
		ORDER BY name
	`).Scan(&rows).Error
	return rows, err
}

// Crescimento builds a synthetic series of the trailing six month boundaries
// and left-joins hires against each, producing a cumulative
// headcount-to-date curve rather than per-month deltas.
func (r *relatorioRepo) Crescimento(ctx context.Context) ([]CrescimentoRow, error) {
	var rows []CrescimentoRow
	err := r.db.WithContext(ctx).Raw(`
		WITH months AS (
			SELECT generate_series(
				date_trunc('month', NOW()) - INTERVAL '5 months',
				date_trunc('month', NOW()),
				INTERVAL '1 month'
			) AS month
		)
		SELECT
			TO_CHAR(months.month, 'Mon') AS name,
			COUNT(f.id) AS employees
		FROM months
		LEFT JOIN funcionarios f
			ON f.data_contratacao <= months.month + INTERVAL '1 month' - INTERVAL '1 day'
		GROUP BY months.month, name
		ORDER BY months.month
	`).Scan(&rows).Error
	return rows, err
}

// OrcamentoPorDepartamento compares the configured annual budget against an
// estimated spend of sum(salario * 12). An approximation, not expenditure
// tracking.
func (r *relatorioRepo) OrcamentoPorDepartamento(ctx context.Context) ([]OrcamentoRow, error) {
	var rows []OrcamentoRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.nome AS name,
			d.orcamento AS budget,
			COALESCE(SUM(f.salario * 12), 0) AS spent
		FROM departamentos d
		LEFT JOIN funcionarios f ON d.id = f.departamento_id
		GROUP BY d.nome, d.orcamento
		ORDER BY d.nome
	`).Scan(&rows).Error
	return rows, err
}
