package model

import (
	"time"

	"github.com/google/uuid"
)

// Role names recognized by the authorization layer.
const (
	RolAdministrador = "administrador"
	RolSupervisor    = "supervisor"
	RolCliente       = "cliente"
	RolRepartidor    = "repartidor"
)

// Rol is a named role referenced by Usuario via RolID.
type Rol struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion *string
	Estado      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Rol) TableName() string { return "roles" }
