package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta payment states.
const (
	PagoPendiente   = "pendiente"
	PagoPagado      = "pagado"
	PagoReembolsado = "reembolsado"
)

// Venta is the financial record tied to a pedido. The unique index on
// PedidoID is the sole mechanism guaranteeing at most one sale per order.
// NumeroFactura is generated lazily, exactly once, and never changes.
type Venta struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	ClienteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MontoTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago    string          `gorm:"type:varchar(30);not null"`
	EstadoPago    string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	NumeroFactura *string         `gorm:"uniqueIndex"`
	// FacturaPDFPath is relative to PDF_STORAGE_PATH; set by the invoice worker
	FacturaPDFPath *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Pedido  *Pedido  `gorm:"foreignKey:PedidoID"`
	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Venta) TableName() string { return "ventas" }
