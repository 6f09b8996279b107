package repository

import (
	"context"

	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RepartidorRepository defines data access for couriers and their append-only
// delivery history.
type RepartidorRepository interface {
	Crear(ctx context.Context, r *model.Repartidor) error
	Listar(ctx context.Context) ([]model.Repartidor, error)
	ListarDisponibles(ctx context.Context) ([]model.Repartidor, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Repartidor, error)
	ObtenerPorUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Repartidor, error)
	Actualizar(ctx context.Context, r *model.Repartidor) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	CrearEntrega(ctx context.Context, e *model.Entrega) error
	ListarEntregas(ctx context.Context, repartidorID uuid.UUID) ([]model.Entrega, error)
}

type repartidorRepository struct{ db *gorm.DB }

func NewRepartidorRepository(db *gorm.DB) RepartidorRepository {
	return &repartidorRepository{db: db}
}

func (r *repartidorRepository) Crear(ctx context.Context, rep *model.Repartidor) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repartidorRepository) Listar(ctx context.Context) ([]model.Repartidor, error) {
	var list []model.Repartidor
	err := r.db.WithContext(ctx).Preload("Usuario").Find(&list).Error
	return list, err
}

func (r *repartidorRepository) ListarDisponibles(ctx context.Context) ([]model.Repartidor, error) {
	var list []model.Repartidor
	err := r.db.WithContext(ctx).Where("disponible = true").Find(&list).Error
	return list, err
}

func (r *repartidorRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Repartidor, error) {
	var rep model.Repartidor
	err := r.db.WithContext(ctx).Preload("Entregas").First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repartidorRepository) ObtenerPorUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Repartidor, error) {
	var rep model.Repartidor
	if err := r.db.WithContext(ctx).First(&rep, "usuario_id = ?", usuarioID).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repartidorRepository) Actualizar(ctx context.Context, rep *model.Repartidor) error {
	return r.db.WithContext(ctx).Omit("Entregas").Save(rep).Error
}

func (r *repartidorRepository) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Repartidor{}, "id = ?", id).Error
}

func (r *repartidorRepository) CrearEntrega(ctx context.Context, e *model.Entrega) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repartidorRepository) ListarEntregas(ctx context.Context, repartidorID uuid.UUID) ([]model.Entrega, error) {
	var list []model.Entrega
	err := r.db.WithContext(ctx).
		Where("repartidor_id = ?", repartidorID).Order("created_at asc").Find(&list).Error
	return list, err
}
