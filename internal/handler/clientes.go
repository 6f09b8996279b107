package handler

import (
	"net/http"

	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "clientes", "clientes", resp)
}

func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "cliente", "cliente", resp)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), middleware.GetClaims(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "cliente actualizado", "cliente", resp)
}

func (h *ClientesHandler) Desactivar(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
