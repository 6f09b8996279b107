package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type CrearVentaRequest struct {
	PedidoID   string `json:"pedido_id"   validate:"required,uuid"`
	MetodoPago string `json:"metodo_pago" validate:"required,oneof=efectivo tarjeta transferencia"`
}

type CambiarEstadoPagoRequest struct {
	EstadoPago string `json:"estado_pago" validate:"required,oneof=pendiente pagado reembolsado"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type VentaFilter struct {
	ClienteID  string `form:"cliente_id"`
	EstadoPago string `form:"estado_pago"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type VentaResponse struct {
	ID            string          `json:"id"`
	PedidoID      string          `json:"pedido_id"`
	ClienteID     string          `json:"cliente_id"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
	MetodoPago    string          `json:"metodo_pago"`
	EstadoPago    string          `json:"estado_pago"`
	NumeroFactura *string         `json:"numero_factura,omitempty"`
	FacturaURL    *string         `json:"factura_url,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
