package repository

import (
	"context"

	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RolRepository defines data access for roles.
type RolRepository interface {
	Crear(ctx context.Context, r *model.Rol) error
	Listar(ctx context.Context) ([]model.Rol, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Rol, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Rol, error)
	Actualizar(ctx context.Context, r *model.Rol) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type rolRepository struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepository{db: db} }

func (r *rolRepository) Crear(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepository) Listar(ctx context.Context) ([]model.Rol, error) {
	var list []model.Rol
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&list).Error
	return list, err
}

func (r *rolRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).First(&rol, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	if err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&rol).Error; err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepository) Actualizar(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Save(rol).Error
}

func (r *rolRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Rol{}, "id = ?", id).Error
}
