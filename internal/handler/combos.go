package handler

import (
	"net/http"

	"comidapp/internal/dto"
	"comidapp/internal/service"

	"github.com/gin-gonic/gin"
)

type CombosHandler struct{ svc service.ComboService }

func NewCombosHandler(svc service.ComboService) *CombosHandler { return &CombosHandler{svc: svc} }

// Crear godoc
// @Summary      Crear un combo
// @Description  Valida los productos miembros y deriva precio_combo y precio_final; ninguno de los dos es aceptado del cliente.
// @Tags         combos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearComboRequest true "Datos del combo"
// @Success      201  {object} dto.ComboResponse
// @Failure      400  {object} apierror.Respuesta
// @Router       /api/combos [post]
func (h *CombosHandler) Crear(c *gin.Context) {
	var req dto.CrearComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, "combo creado", "combo", resp)
}

func (h *CombosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "combos", "combos", resp)
}

func (h *CombosHandler) Obtener(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "combo", "combo", resp)
}

func (h *CombosHandler) Actualizar(c *gin.Context) {
	id, valid := parseID(c)
	if !valid {
		return
	}
	var req dto.ActualizarComboRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, "combo actualizado", "combo", resp)
}

func (h *CombosHandler) Eliminar(c *gin.Context) {
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
