package dto

import "github.com/shopspring/decimal"

// Requests never carry precio_combo or precio_final: both are derived by the
// pricing engine and not independently settable.

type CrearComboRequest struct {
	Nombre       string          `json:"nombre"        validate:"required,min=2,max=120"`
	Descripcion  *string         `json:"descripcion"`
	ProductosIDs []string        `json:"productos_ids" validate:"required,min=1,dive,uuid"`
	Descuento    decimal.Decimal `json:"descuento"`
}

type ActualizarComboRequest struct {
	Nombre       *string          `json:"nombre"        validate:"omitempty,min=2,max=120"`
	Descripcion  *string          `json:"descripcion"`
	ProductosIDs []string         `json:"productos_ids" validate:"omitempty,min=1,dive,uuid"`
	Descuento    *decimal.Decimal `json:"descuento"`
	Estado       *bool            `json:"estado"`
}

type ComboResponse struct {
	ID          string             `json:"id"`
	Nombre      string             `json:"nombre"`
	Descripcion *string            `json:"descripcion"`
	Productos   []ProductoResponse `json:"productos"`
	PrecioCombo decimal.Decimal    `json:"precio_combo"`
	Descuento   decimal.Decimal    `json:"descuento"`
	PrecioFinal decimal.Decimal    `json:"precio_final"`
	Estado      bool               `json:"estado"`
}
