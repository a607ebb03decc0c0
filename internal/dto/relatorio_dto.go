package dto

// Aggregation outputs. All numeric aggregates are float64 at this boundary;
// NULL aggregates are coerced to 0 upstream, except age buckets which omit
// empty bands entirely.

// DistribuicaoItem is a generic name/count pair (department distribution,
// age buckets).
type DistribuicaoItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SalarioMensalItem is the average salary of one calendar month, labeled
// with the abbreviated month name ("Jan", "Feb", …).
type SalarioMensalItem struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// DashboardResponse mirrors the original snapshot contract: on store failure
// a zeroed shape is returned with Error set, so callers must inspect the
// payload rather than rely on the status code alone.
type DashboardResponse struct {
	TotalFuncionarios         int                 `json:"totalFuncionarios"`
	MediaSalarial             float64             `json:"mediaSalarial"`
	TotalDepartamentos        int                 `json:"totalDepartamentos"`
	ContratacoesRecentes      int                 `json:"contratacoesRecentes"`
	DistribuicaoDepartamentos []DistribuicaoItem  `json:"distribuicaoDepartamentos"`
	DistribuicaoSalarial      []SalarioMensalItem `json:"distribuicaoSalarial"`
	Error                     string              `json:"error,omitempty"`
}

// SalarioNivelItem holds the three conditional level averages per department.
// A level with no matching employees reports 0, never null.
type SalarioNivelItem struct {
	Name   string  `json:"name"`
	Junior float64 `json:"junior"`
	Pleno  float64 `json:"pleno"`
	Senior float64 `json:"senior"`
}

// CrescimentoItem is one point of the cumulative headcount-to-date curve.
type CrescimentoItem struct {
	Name      string `json:"name"`
	Employees int    `json:"employees"`
}

// OrcamentoItem compares the configured annual budget against the estimated
// spend (sum of monthly salaries × 12).
type OrcamentoItem struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`
}
