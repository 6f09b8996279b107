package handler

import (
	"net/http"

	"comidapp/internal/dto"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
)

type OfertasHandler struct{ svc service.OfertaService }

func NewOfertasHandler(svc service.OfertaService) *OfertasHandler {
	return &OfertasHandler{svc: svc}
}

func (h *OfertasHandler) Crear(c *gin.Context) {
	var req dto.CrearOfertaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "oferta creada", "oferta", resp)
}

func (h *OfertasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "ofertas", "ofertas", resp)
}

// ListarVigentes godoc
// @Summary      Listar ofertas vigentes
// @Description  Devuelve solo las ofertas activas cuyo rango de fechas incluye el momento actual.
// @Tags         ofertas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.OfertaResponse
// @Router       /api/ofertas/vigentes [get]
func (h *OfertasHandler) ListarVigentes(c *gin.Context) {
	resp, err := h.svc.ListarVigentes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "ofertas vigentes", "ofertas", resp)
}

func (h *OfertasHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "oferta", "oferta", resp)
}

func (h *OfertasHandler) Actualizar(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.ActualizarOfertaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "oferta actualizada", "oferta", resp)
}

func (h *OfertasHandler) CambiarEstado(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.CambiarEstadoOfertaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, *req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "estado de oferta actualizado", "oferta", resp)
}

func (h *OfertasHandler) Eliminar(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
