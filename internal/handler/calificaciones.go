package handler

import (
	"net/http"

	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
)

type CalificacionesHandler struct{ svc service.CalificacionService }

func NewCalificacionesHandler(svc service.CalificacionService) *CalificacionesHandler {
	return &CalificacionesHandler{svc: svc}
}

// Crear godoc
// @Summary      Calificar un pedido entregado
// @Description  Una calificacion por pedido; el detalle por producto solo acepta productos que formaron parte del pedido.
// @Tags         calificaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearCalificacionRequest true "Puntuaciones"
// @Success      201  {object} dto.CalificacionResponse
// @Failure      409  {object} apierror.Respuesta
// @Router       /api/calificaciones [post]
func (h *CalificacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCalificacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.GetClaims(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "calificacion registrada", "calificacion", resp)
}

func (h *CalificacionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.GetClaims(c))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "calificaciones", "calificaciones", resp)
}

func (h *CalificacionesHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "calificacion", "calificacion", resp)
}

func (h *CalificacionesHandler) ObtenerPorPedido(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.ObtenerPorPedido(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "calificacion", "calificacion", resp)
}
