package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// When the role is "cliente", ClienteID links to the Cliente profile created
// at registration time.
type Usuario struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NombreUsuario string     `gorm:"uniqueIndex;not null"`
	Email         string     `gorm:"uniqueIndex;not null"`
	PasswordHash  string     `gorm:"not null"`
	RolID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ClienteID     *uuid.UUID `gorm:"type:uuid;index"`
	Estado        bool       `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Rol     *Rol     `gorm:"foreignKey:RolID"`
	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Usuario) TableName() string { return "usuarios" }
