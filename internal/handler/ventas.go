package handler

import (
	"net/http"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// Crear godoc
// @Summary      Registrar la venta de un pedido entregado
// @Description  Crea la venta con estado de pago pendiente. Un segundo intento sobre el mismo pedido devuelve 409.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearVentaRequest true "Pedido y metodo de pago"
// @Success      201  {object} dto.VentaResponse
// @Failure      409  {object} apierror.Respuesta
// @Router       /api/ventas [post]
func (h *VentasHandler) Crear(c *gin.Context) {
	var req dto.CrearVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "venta registrada", "venta", resp)
}

func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
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

func (h *VentasHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "venta", "venta", resp)
}

// GenerarFactura godoc
// @Summary      Generar el numero de factura de una venta
// @Description  Asigna el numero una sola vez; llamadas repetidas devuelven el numero ya asignado. El PDF y el email se procesan en segundo plano.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID de la venta"
// @Success      200  {object} dto.VentaResponse
// @Router       /api/ventas/{id}/generar-factura [post]
func (h *VentasHandler) GenerarFactura(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.GenerarFactura(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "factura generada", "venta", resp)
}

// DescargarFactura streams the rendered invoice PDF.
func (h *VentasHandler) DescargarFactura(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	path, err := h.svc.RutaFacturaPDF(c.Request.Context(), middleware.GetClaims(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "factura.pdf")
}

func (h *VentasHandler) CambiarEstadoPago(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.CambiarEstadoPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarEstadoPago(c.Request.Context(), id, req.EstadoPago)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "estado de pago actualizado", "venta", resp)
}
