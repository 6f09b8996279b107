package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repartidor estados.
const (
	RepartidorDisponible      = "disponible"
	RepartidorEnEntrega       = "en_entrega"
	RepartidorFueraDeServicio = "fuera_de_servicio"
)

// EstadoRepartidorValido reports whether s is one of the three allowed states.
func EstadoRepartidorValido(s string) bool {
	switch s {
	case RepartidorDisponible, RepartidorEnEntrega, RepartidorFueraDeServicio:
		return true
	}
	return false
}

// Repartidor is a delivery courier. Disponible and CalificacionPromedio are
// derived fields: Disponible is a pure function of Estado, and the promedio is
// the mean over delivery history entries that carry a rating. Both are
// recomputed at every mutation site, never set from a request.
type Repartidor struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Telefono             *string
	Vehiculo             *string
	Estado               string          `gorm:"type:varchar(20);not null;default:'disponible'"`
	Disponible           bool            `gorm:"not null;default:true"`
	CalificacionPromedio decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Entregas []Entrega `gorm:"foreignKey:RepartidorID"`
	Usuario  *Usuario  `gorm:"foreignKey:UsuarioID"`
}

func (Repartidor) TableName() string { return "repartidores" }

// Entrega is one append-only delivery-history entry. Calificacion is nil when
// the customer did not rate the delivery; unrated entries are excluded from
// the promedio.
type Entrega struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RepartidorID uuid.UUID `gorm:"type:uuid;not null;index"`
	PedidoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Calificacion *int
	CreatedAt    time.Time
}

func (Entrega) TableName() string { return "entregas" }
