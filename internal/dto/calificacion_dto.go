package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type CalificacionProductoRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Puntuacion int    `json:"puntuacion"  validate:"required,min=1,max=5"`
}

type CrearCalificacionRequest struct {
	PedidoID           string                        `json:"pedido_id"           validate:"required,uuid"`
	PuntuacionComida   int                           `json:"puntuacion_comida"   validate:"required,min=1,max=5"`
	PuntuacionServicio int                           `json:"puntuacion_servicio" validate:"required,min=1,max=5"`
	PuntuacionEntrega  int                           `json:"puntuacion_entrega"  validate:"required,min=1,max=5"`
	Comentario         *string                       `json:"comentario"`
	DetalleProductos   []CalificacionProductoRequest `json:"detalle_productos"   validate:"omitempty,dive"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type CalificacionProductoResponse struct {
	ProductoID string `json:"producto_id"`
	Puntuacion int    `json:"puntuacion"`
}

type CalificacionResponse struct {
	ID                 string                         `json:"id"`
	PedidoID           string                         `json:"pedido_id"`
	ClienteID          string                         `json:"cliente_id"`
	PuntuacionComida   int                            `json:"puntuacion_comida"`
	PuntuacionServicio int                            `json:"puntuacion_servicio"`
	PuntuacionEntrega  int                            `json:"puntuacion_entrega"`
	Comentario         *string                        `json:"comentario"`
	DetalleProductos   []CalificacionProductoResponse `json:"detalle_productos"`
	CreatedAt          string                         `json:"created_at"`
}
