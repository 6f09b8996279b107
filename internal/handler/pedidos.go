package handler

import (
	"net/http"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear un pedido
// @Description  Valida cada item, congela el precio unitario aplicando la oferta vigente de mayor descuento y crea el pedido en estado pendiente.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Items y direccion de entrega"
// @Success      201  {object} dto.PedidoResponse
// @Failure      400  {object} apierror.Respuesta
// @Router       /api/pedido [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), middleware.GetClaims(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "pedido creado", "pedido", resp)
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.GetClaims(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "pedido", "pedido", resp)
}

// CambiarEstado godoc
// @Summary      Cambiar el estado de un pedido
// @Description  Aplica una transicion de la maquina de estados; las transiciones invalidas devuelven 400.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "ID del pedido"
// @Param        body body dto.CambiarEstadoPedidoRequest true "Nuevo estado"
// @Success      200  {object} dto.PedidoResponse
// @Router       /api/pedido/{id}/estado [patch]
func (h *PedidosHandler) CambiarEstado(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.CambiarEstadoPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "estado de pedido actualizado", "pedido", resp)
}

func (h *PedidosHandler) AsignarRepartidor(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.AsignarRepartidorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	repartidorID, err := uuid.Parse(req.RepartidorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("repartidor_id invalido"))
		return
	}
	resp, err := h.svc.AsignarRepartidor(c.Request.Context(), id, repartidorID)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "repartidor asignado", "pedido", resp)
}
