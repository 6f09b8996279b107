package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// Neither disponible nor calificacion_promedio appear in any request: both are
// derived and recomputed by the service at every mutation.

type CrearRepartidorRequest struct {
	UsuarioID string  `json:"usuario_id" validate:"required,uuid"`
	Telefono  *string `json:"telefono"`
	Vehiculo  *string `json:"vehiculo"`
}

type CambiarEstadoRepartidorRequest struct {
	Estado string `json:"estado" validate:"required"`
}

type RegistrarEntregaRequest struct {
	PedidoID     string `json:"pedido_id"    validate:"required,uuid"`
	Calificacion *int   `json:"calificacion" validate:"omitempty,min=1,max=5"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type EntregaResponse struct {
	PedidoID     string `json:"pedido_id"`
	Calificacion *int   `json:"calificacion,omitempty"`
	FechaEntrega string `json:"fecha_entrega"`
}

type RepartidorResponse struct {
	ID                   string            `json:"id"`
	UsuarioID            string            `json:"usuario_id"`
	Telefono             *string           `json:"telefono"`
	Vehiculo             *string           `json:"vehiculo"`
	Estado               string            `json:"estado"`
	Disponible           bool              `json:"disponible"`
	CalificacionPromedio decimal.Decimal   `json:"calificacion_promedio"`
	HistorialEntregas    []EntregaResponse `json:"historial_entregas,omitempty"`
}
