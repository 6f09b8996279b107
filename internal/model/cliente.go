package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is the customer profile referenced by pedidos, ventas and
// calificaciones. Created automatically when a user registers with role
// "cliente".
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Apellido  string    `gorm:"not null"`
	Telefono  *string
	Email     string `gorm:"index;not null"`
	Direccion *string
	Estado    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
