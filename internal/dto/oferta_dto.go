package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearOfertaRequest struct {
	Nombre        string          `json:"nombre"         validate:"required,min=2,max=120"`
	Descripcion   *string         `json:"descripcion"`
	Descuento     decimal.Decimal `json:"descuento"`
	FechaInicio   time.Time       `json:"fecha_inicio"   validate:"required"`
	FechaFin      time.Time       `json:"fecha_fin"      validate:"required"`
	ProductosIDs  []string        `json:"productos_ids"  validate:"required,min=1,dive,uuid"`
	CategoriasIDs []string        `json:"categorias_ids" validate:"required,min=1,dive,uuid"`
}

type ActualizarOfertaRequest struct {
	Nombre        *string          `json:"nombre"         validate:"omitempty,min=2,max=120"`
	Descripcion   *string          `json:"descripcion"`
	Descuento     *decimal.Decimal `json:"descuento"`
	FechaInicio   *time.Time       `json:"fecha_inicio"`
	FechaFin      *time.Time       `json:"fecha_fin"`
	ProductosIDs  []string         `json:"productos_ids"  validate:"omitempty,min=1,dive,uuid"`
	CategoriasIDs []string         `json:"categorias_ids" validate:"omitempty,min=1,dive,uuid"`
}

type CambiarEstadoOfertaRequest struct {
	Estado *bool `json:"estado" validate:"required"`
}

type OfertaResponse struct {
	ID                   string              `json:"id"`
	Nombre               string              `json:"nombre"`
	Descripcion          *string             `json:"descripcion"`
	Descuento            decimal.Decimal     `json:"descuento"`
	FechaInicio          time.Time           `json:"fecha_inicio"`
	FechaFin             time.Time           `json:"fecha_fin"`
	ProductosAplicables  []ProductoResponse  `json:"productos_aplicables"`
	CategoriasAplicables []CategoriaResponse `json:"categorias_aplicables"`
	Estado               bool                `json:"estado"`
	// Vigente is derived at serialization time, never stored
	Vigente bool `json:"vigente"`
}
