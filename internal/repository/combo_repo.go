package repository

import (
	"context"

	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComboRepository defines data access for combos, including replacing the
// product membership set as a whole.
type ComboRepository interface {
	Crear(ctx context.Context, c *model.Combo) error
	Listar(ctx context.Context) ([]model.Combo, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Combo, error)
	Actualizar(ctx context.Context, c *model.Combo) error
	ReemplazarProductos(ctx context.Context, c *model.Combo, productos []model.Producto) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type comboRepository struct{ db *gorm.DB }

func NewComboRepository(db *gorm.DB) ComboRepository { return &comboRepository{db: db} }

func (r *comboRepository) Crear(ctx context.Context, c *model.Combo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *comboRepository) Listar(ctx context.Context) ([]model.Combo, error) {
	var list []model.Combo
	err := r.db.WithContext(ctx).Preload("Productos").Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *comboRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Combo, error) {
	var c model.Combo
	if err := r.db.WithContext(ctx).Preload("Productos").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Actualizar persists scalar fields only; membership changes go through
// ReemplazarProductos so the association table stays in sync.
func (r *comboRepository) Actualizar(ctx context.Context, c *model.Combo) error {
	return r.db.WithContext(ctx).Omit("Productos").Save(c).Error
}

func (r *comboRepository) ReemplazarProductos(ctx context.Context, c *model.Combo, productos []model.Producto) error {
	return r.db.WithContext(ctx).Model(c).Association("Productos").Replace(productos)
}

func (r *comboRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Productos").Delete(&model.Combo{ID: id}).Error
}
