package model

import (
	"time"

	"github.com/google/uuid"
)

// Calificacion is a post-delivery customer rating. At most one per pedido
// (unique index on PedidoID); sub-scores range over [1,5]. Per-product
// ratings may only reference products that were in the order.
type Calificacion struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ClienteID          uuid.UUID `gorm:"type:uuid;not null;index"`
	PuntuacionComida   int       `gorm:"not null"`
	PuntuacionServicio int       `gorm:"not null"`
	PuntuacionEntrega  int       `gorm:"not null"`
	Comentario         *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	DetalleProductos []CalificacionProducto `gorm:"foreignKey:CalificacionID"`
	Pedido           *Pedido                `gorm:"foreignKey:PedidoID"`
	Cliente          *Cliente               `gorm:"foreignKey:ClienteID"`
}

func (Calificacion) TableName() string { return "calificaciones" }

// CalificacionProducto is an optional per-product sub-rating.
type CalificacionProducto struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CalificacionID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID     uuid.UUID `gorm:"type:uuid;not null"`
	Puntuacion     int       `gorm:"not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (CalificacionProducto) TableName() string { return "calificacion_productos" }
