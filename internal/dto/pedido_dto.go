package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type ItemPedidoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type CrearPedidoRequest struct {
	Items            []ItemPedidoRequest `json:"items"             validate:"required,min=1,dive"`
	DireccionEntrega string              `json:"direccion_entrega" validate:"required,min=5"`
}

type CambiarEstadoPedidoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

type AsignarRepartidorRequest struct {
	RepartidorID string `json:"repartidor_id" validate:"required,uuid"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type PedidoFilter struct {
	ClienteID    string `form:"cliente_id"`
	RepartidorID string `form:"repartidor_id"`
	Estado       string `form:"estado"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ItemPedidoResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID               string               `json:"id"`
	ClienteID        string               `json:"cliente_id"`
	RepartidorID     *string              `json:"repartidor_id,omitempty"`
	Items            []ItemPedidoResponse `json:"items"`
	Estado           string               `json:"estado"`
	Total            decimal.Decimal      `json:"total"`
	DireccionEntrega string               `json:"direccion_entrega"`
	CreatedAt        string               `json:"created_at"`
}

type PedidoListResponse struct {
	Data  []PedidoResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}
