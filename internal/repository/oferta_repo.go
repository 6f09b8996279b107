package repository

import (
	"context"
	"time"

	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfertaRepository defines data access for offers.
type OfertaRepository interface {
	Crear(ctx context.Context, o *model.Oferta) error
	Listar(ctx context.Context) ([]model.Oferta, error)
	ListarVigentes(ctx context.Context, now time.Time) ([]model.Oferta, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Oferta, error)
	Actualizar(ctx context.Context, o *model.Oferta) error
	ReemplazarProductos(ctx context.Context, o *model.Oferta, productos []model.Producto) error
	ReemplazarCategorias(ctx context.Context, o *model.Oferta, categorias []model.Categoria) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ofertaRepository struct{ db *gorm.DB }

func NewOfertaRepository(db *gorm.DB) OfertaRepository { return &ofertaRepository{db: db} }

func (r *ofertaRepository) Crear(ctx context.Context, o *model.Oferta) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ofertaRepository) Listar(ctx context.Context) ([]model.Oferta, error) {
	var list []model.Oferta
	err := r.db.WithContext(ctx).
		Preload("ProductosAplicables").Preload("CategoriasAplicables").
		Order("fecha_inicio desc").Find(&list).Error
	return list, err
}

// ListarVigentes filters by the vigente predicate in SQL: estado activo and
// the instant inside [fecha_inicio, fecha_fin].
func (r *ofertaRepository) ListarVigentes(ctx context.Context, now time.Time) ([]model.Oferta, error) {
	var list []model.Oferta
	err := r.db.WithContext(ctx).
		Preload("ProductosAplicables").Preload("CategoriasAplicables").
		Where("estado = true AND fecha_inicio <= ? AND fecha_fin >= ?", now, now).
		Order("fecha_fin asc").Find(&list).Error
	return list, err
}

func (r *ofertaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Oferta, error) {
	var o model.Oferta
	err := r.db.WithContext(ctx).
		Preload("ProductosAplicables").Preload("CategoriasAplicables").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ofertaRepository) Actualizar(ctx context.Context, o *model.Oferta) error {
	return r.db.WithContext(ctx).Omit("ProductosAplicables", "CategoriasAplicables").Save(o).Error
}

func (r *ofertaRepository) ReemplazarProductos(ctx context.Context, o *model.Oferta, productos []model.Producto) error {
	return r.db.WithContext(ctx).Model(o).Association("ProductosAplicables").Replace(productos)
}

func (r *ofertaRepository) ReemplazarCategorias(ctx context.Context, o *model.Oferta, categorias []model.Categoria) error {
	return r.db.WithContext(ctx).Model(o).Association("CategoriasAplicables").Replace(categorias)
}

func (r *ofertaRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Select("ProductosAplicables", "CategoriasAplicables").
		Delete(&model.Oferta{ID: id}).Error
}
