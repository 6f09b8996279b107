package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Oferta is a time-bounded percentage discount. It must target at least one
// product AND at least one category. Whether it currently applies ("vigente")
// is a derived predicate, never stored.
type Oferta struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	// Descuento is a percentage in [0,100]
	Descuento            decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FechaInicio          time.Time       `gorm:"not null"`
	FechaFin             time.Time       `gorm:"not null"`
	ProductosAplicables  []Producto      `gorm:"many2many:oferta_productos"`
	CategoriasAplicables []Categoria     `gorm:"many2many:oferta_categorias"`
	Estado               bool            `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Oferta) TableName() string { return "ofertas" }
