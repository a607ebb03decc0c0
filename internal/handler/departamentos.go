package handler

import (
	"net/http"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/dto"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/service"

	"github.com/gin-gonic/gin"
)

type DepartamentosHandler struct{ svc service.DepartamentoService }

func NewDepartamentosHandler(svc service.DepartamentoService) *DepartamentosHandler {
	return &DepartamentosHandler{svc: svc}
}

// Listar GET /departments
func (h *DepartamentosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObterPorID GET /departments/:id
func (h *DepartamentosHandler) ObterPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar POST /departments
func (h *DepartamentosHandler) Criar(c *gin.Context) {
	var req dto.CriarDepartamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Atualizar PUT /departments/:id
func (h *DepartamentosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarDepartamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir DELETE /departments/:id
func (h *DepartamentosHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
