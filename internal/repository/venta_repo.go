package repository

import (
	"context"

	"comidapp/internal/dto"
	"comidapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentaRepository defines data access for sales. The unique index on
// pedido_id makes Crear fail with gorm.ErrDuplicatedKey when a sale for the
// same order already exists.
type VentaRepository interface {
	Crear(ctx context.Context, v *model.Venta) error
	Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	ObtenerPorPedidoID(ctx context.Context, pedidoID uuid.UUID) (*model.Venta, error)
	AsignarNumeroFactura(ctx context.Context, id uuid.UUID, numero string) (bool, error)
	ActualizarEstadoPago(ctx context.Context, id uuid.UUID, estado string) error
	ActualizarPDFPath(ctx context.Context, id uuid.UUID, path string) error
}

type ventaRepository struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepository{db: db} }

func (r *ventaRepository) Crear(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepository) Listar(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.EstadoPago != "" {
		q = q.Where("estado_pago = ?", filter.EstadoPago)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Cliente").Order("created_at desc").
		Limit(filter.Limit).Offset(offset).Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Pedido.Items.Producto").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepository) ObtenerPorPedidoID(ctx context.Context, pedidoID uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	if err := r.db.WithContext(ctx).First(&v, "pedido_id = ?", pedidoID).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// AsignarNumeroFactura writes the invoice number only when none is stored yet
// and reports whether this call performed the write. A false result means a
// concurrent request assigned first; the caller must re-read the stored
// number. The number stays immutable once set.
func (r *ventaRepository) AsignarNumeroFactura(ctx context.Context, id uuid.UUID, numero string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Venta{}).
		Where("id = ? AND numero_factura IS NULL", id).
		Update("numero_factura", numero)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ventaRepository) ActualizarEstadoPago(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Venta{}).Where("id = ?", id).
		Update("estado_pago", estado).Error
}

func (r *ventaRepository) ActualizarPDFPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Venta{}).Where("id = ?", id).
		Update("factura_pdf_path", path).Error
}
