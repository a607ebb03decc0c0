package handler

import (
	"fmt"
	"net/http"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/apperror"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// Dashboard GET /dashboard
//
// On store failure the zeroed snapshot is still written with the 500 status,
// so clients always receive the full payload shape.
func (h *RelatoriosHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Relatorio GET /reports?type={salary|age|growth|budget}
func (h *RelatoriosHandler) Relatorio(c *gin.Context) {
	ctx := c.Request.Context()
	switch c.Query("type") {
	case service.RelatorioSalario:
		resp, err := h.svc.SalarioPorNivel(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	case service.RelatorioIdade:
		resp, err := h.svc.FaixasEtarias(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	case service.RelatorioCrescimento:
		resp, err := h.svc.Crescimento(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	case service.RelatorioOrcamento:
		resp, err := h.svc.Orcamento(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	default:
		c.JSON(http.StatusBadRequest, apperror.Response{Error: "Tipo de relatório inválido"})
	}
}

// Exportar GET /reports/export?type=...&format={csv|json}
func (h *RelatoriosHandler) Exportar(c *gin.Context) {
	tipo := c.Query("type")
	format := c.DefaultQuery("format", "csv")

	switch format {
	case "csv":
		data, err := h.svc.ExportarCSV(c.Request.Context(), tipo)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=relatorio-%s.csv", tipo))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "json":
		h.Relatorio(c)
	default:
		c.JSON(http.StatusBadRequest, apperror.Response{Error: "Formato de exportação inválido"})
	}
}
