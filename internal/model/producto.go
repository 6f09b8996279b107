package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is a catalog item. Products are never hard-deleted: Eliminado marks
// them as removed while order history keeps referencing them.
type Producto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Disponible  bool            `gorm:"not null;default:true"`
	Stock       int             `gorm:"not null;default:0"`
	CategoriaID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ImagenURL   *string
	Eliminado   bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (Producto) TableName() string { return "productos" }
