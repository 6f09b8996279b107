package repository

import (
	"context"

	"comidapp/internal/dto"
	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository defines data access for orders and their line items.
type PedidoRepository interface {
	Crear(ctx context.Context, p *model.Pedido) error
	Listar(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error
	AsignarRepartidor(ctx context.Context, id uuid.UUID, repartidorID uuid.UUID) error
}

type pedidoRepository struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepository{db: db} }

func (r *pedidoRepository) Crear(ctx context.Context, p *model.Pedido) error {
	// Items are created in the same INSERT batch via the association.
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepository) Listar(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error) {
	var pedidos []model.Pedido
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Pedido{})
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.RepartidorID != "" {
		q = q.Where("repartidor_id = ?", filter.RepartidorID)
	}
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items.Producto").Preload("Cliente").
		Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&pedidos).Error
	return pedidos, total, err
}

func (r *pedidoRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Items.Producto").Preload("Cliente").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepository) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *pedidoRepository) AsignarRepartidor(ctx context.Context, id uuid.UUID, repartidorID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).
		Update("repartidor_id", repartidorID).Error
}
