package handler

import (
	"net/http"

	"comidapp/internal/dto"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
)

type RepartidoresHandler struct{ svc service.RepartidorService }

func NewRepartidoresHandler(svc service.RepartidorService) *RepartidoresHandler {
	return &RepartidoresHandler{svc: svc}
}

func (h *RepartidoresHandler) Crear(c *gin.Context) {
	var req dto.CrearRepartidorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "repartidor creado", "repartidor", resp)
}

func (h *RepartidoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "repartidores", "repartidores", resp)
}

func (h *RepartidoresHandler) ListarDisponibles(c *gin.Context) {
	resp, err := h.svc.ListarDisponibles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "repartidores disponibles", "repartidores", resp)
}

func (h *RepartidoresHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "repartidor", "repartidor", resp)
}

// CambiarEstado godoc
// @Summary      Cambiar el estado de un repartidor
// @Description  Estados validos: disponible, en_entrega, fuera_de_servicio. El campo disponible se deriva del estado y nunca se acepta del cliente.
// @Tags         repartidores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "ID del repartidor"
// @Param        body body dto.CambiarEstadoRepartidorRequest true "Nuevo estado"
// @Success      200  {object} dto.RepartidorResponse
// @Router       /api/repartidores/{id}/estado [patch]
func (h *RepartidoresHandler) CambiarEstado(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.CambiarEstadoRepartidorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "estado de repartidor actualizado", "repartidor", resp)
}

// RegistrarEntrega godoc
// @Summary      Registrar una entrega completada
// @Description  Agrega la entrega al historial, marca el pedido como entregado, devuelve al repartidor a disponible y recalcula su promedio sobre las entregas calificadas.
// @Tags         repartidores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "ID del repartidor"
// @Param        body body dto.RegistrarEntregaRequest true "Pedido entregado y calificacion opcional"
// @Success      201  {object} dto.RepartidorResponse
// @Router       /api/repartidores/{id}/entregas [post]
func (h *RepartidoresHandler) RegistrarEntrega(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.RegistrarEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarEntrega(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "entrega registrada", "repartidor", resp)
}

func (h *RepartidoresHandler) Eliminar(c *gin.Context) {
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
