package handler

import (
	"net/http"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "producto creado", "producto", resp)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "producto", "producto", resp)
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "producto actualizado", "producto", resp)
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
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

// GenerarImagen godoc
// @Summary      Generar la imagen de un producto
// @Description  Pide una imagen al servicio externo (protegido por circuit breaker) y guarda la URL resultante.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "ID del producto"
// @Param        body body dto.GenerarImagenRequest true "Prompt descriptivo"
// @Success      200  {object} dto.ProductoResponse
// @Router       /api/productos/{id}/imagen [post]
func (h *ProductosHandler) GenerarImagen(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.GenerarImagenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.GenerarImagen(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "imagen generada", "producto", resp)
}
