package repository

import (
	"context"

	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalificacionRepository defines data access for ratings. The unique index on
// pedido_id rejects a second rating for the same order.
type CalificacionRepository interface {
	Crear(ctx context.Context, c *model.Calificacion) error
	Listar(ctx context.Context) ([]model.Calificacion, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Calificacion, error)
	ObtenerPorPedidoID(ctx context.Context, pedidoID uuid.UUID) (*model.Calificacion, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Calificacion, error)
}

type calificacionRepository struct{ db *gorm.DB }

func NewCalificacionRepository(db *gorm.DB) CalificacionRepository {
	return &calificacionRepository{db: db}
}

func (r *calificacionRepository) Crear(ctx context.Context, c *model.Calificacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *calificacionRepository) Listar(ctx context.Context) ([]model.Calificacion, error) {
	var list []model.Calificacion
	err := r.db.WithContext(ctx).
		Preload("DetalleProductos").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *calificacionRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Calificacion, error) {
	var c model.Calificacion
	err := r.db.WithContext(ctx).
		Preload("DetalleProductos.Producto").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *calificacionRepository) ObtenerPorPedidoID(ctx context.Context, pedidoID uuid.UUID) (*model.Calificacion, error) {
	var c model.Calificacion
	if err := r.db.WithContext(ctx).First(&c, "pedido_id = ?", pedidoID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *calificacionRepository) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Calificacion, error) {
	var list []model.Calificacion
	err := r.db.WithContext(ctx).
		Preload("DetalleProductos").
		Where("cliente_id = ?", clienteID).Order("created_at desc").Find(&list).Error
	return list, err
}
