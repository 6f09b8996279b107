package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Combo is a bundled set of products sold at a computed discounted price.
// PrecioCombo and PrecioFinal are derived by the pricing engine from the
// member products and Descuento; they are recomputed on every mutation that
// touches membership or discount and are never set independently.
type Combo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Productos   []Producto      `gorm:"many2many:combo_productos"`
	PrecioCombo decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Descuento is a percentage in [0,100]
	Descuento   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PrecioFinal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estado      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Combo) TableName() string { return "combos" }
