package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pedido estados. "entregado" is the terminal state that gates rating and
// sale creation.
const (
	PedidoPendiente     = "pendiente"
	PedidoConfirmado    = "confirmado"
	PedidoEnPreparacion = "en_preparacion"
	PedidoEnCamino      = "en_camino"
	PedidoEntregado     = "entregado"
	PedidoCancelado     = "cancelado"
)

// Pedido is a customer order with its line items.
type Pedido struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RepartidorID     *uuid.UUID      `gorm:"type:uuid;index"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	Total            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DireccionEntrega string          `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items      []PedidoItem `gorm:"foreignKey:PedidoID"`
	Cliente    *Cliente     `gorm:"foreignKey:ClienteID"`
	Repartidor *Repartidor  `gorm:"foreignKey:RepartidorID"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem is one line of a pedido. PrecioUnitario captures the price paid
// (after any vigente offer discount), so later catalog changes do not rewrite
// order history.
type PedidoItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (PedidoItem) TableName() string { return "pedido_items" }
