package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,min=2,max=120"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"       validate:"min=0"`
	Disponible  *bool           `json:"disponible"`
	Stock       int             `json:"stock"        validate:"min=0"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	ImagenURL   *string         `json:"imagen_url"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,min=2,max=120"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Disponible  *bool            `json:"disponible"`
	Stock       *int             `json:"stock"        validate:"omitempty,min=0"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	ImagenURL   *string          `json:"imagen_url"`
}

type GenerarImagenRequest struct {
	Prompt string `json:"prompt" validate:"required,min=3,max=400"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	CategoriaID string `form:"categoria_id"`
	Disponible  *bool  `form:"disponible"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Disponible  bool            `json:"disponible"`
	Stock       int             `json:"stock"`
	CategoriaID string          `json:"categoria_id"`
	Categoria   *string         `json:"categoria,omitempty"`
	ImagenURL   *string         `json:"imagen_url"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
