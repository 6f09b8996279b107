package service

import (
	"context"
	"errors"
	"fmt"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/model"
	"comidapp/internal/pricing"
	"comidapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComboService interface {
	Crear(ctx context.Context, req dto.CrearComboRequest) (*dto.ComboResponse, error)
	Listar(ctx context.Context) ([]dto.ComboResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ComboResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarComboRequest) (*dto.ComboResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type comboService struct {
	repo         repository.ComboRepository
	productoRepo repository.ProductoRepository
}

func NewComboService(repo repository.ComboRepository, productoRepo repository.ProductoRepository) ComboService {
	return &comboService{repo: repo, productoRepo: productoRepo}
}

func (s *comboService) Crear(ctx context.Context, req dto.CrearComboRequest) (*dto.ComboResponse, error) {
	productos, err := s.resolverProductos(ctx, req.ProductosIDs)
	if err != nil {
		return nil, err
	}

	descuento := pricing.ClampDescuento(req.Descuento)
	precioCombo, precioFinal := pricing.ComboPricing(productos, descuento)

	combo := &model.Combo{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Productos:   productos,
		PrecioCombo: precioCombo,
		Descuento:   descuento,
		PrecioFinal: precioFinal,
		Estado:      true,
	}
	if err := s.repo.Crear(ctx, combo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe un combo con ese nombre")
		}
		return nil, err
	}
	resp := comboToResponse(combo)
	return &resp, nil
}

func (s *comboService) Listar(ctx context.Context) ([]dto.ComboResponse, error) {
	combos, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ComboResponse, len(combos))
	for i := range combos {
		resp[i] = comboToResponse(&combos[i])
	}
	return resp, nil
}

func (s *comboService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ComboResponse, error) {
	combo, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("combo no encontrado")
	}
	resp := comboToResponse(combo)
	return &resp, nil
}

// Actualizar recomputes precio_combo and precio_final whenever the membership
// or the discount changes, keeping the derived fields a pure function of the
// current inputs.
func (s *comboService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarComboRequest) (*dto.ComboResponse, error) {
	combo, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("combo no encontrado")
	}

	if req.Nombre != nil {
		combo.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		combo.Descripcion = req.Descripcion
	}
	if req.Estado != nil {
		combo.Estado = *req.Estado
	}

	reprice := false
	if req.ProductosIDs != nil {
		productos, err := s.resolverProductos(ctx, req.ProductosIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReemplazarProductos(ctx, combo, productos); err != nil {
			return nil, err
		}
		combo.Productos = productos
		reprice = true
	}
	if req.Descuento != nil {
		combo.Descuento = pricing.ClampDescuento(*req.Descuento)
		reprice = true
	}
	if reprice {
		combo.PrecioCombo, combo.PrecioFinal = pricing.ComboPricing(combo.Productos, combo.Descuento)
	}

	if err := s.repo.Actualizar(ctx, combo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe un combo con ese nombre")
		}
		return nil, err
	}
	resp := comboToResponse(combo)
	return &resp, nil
}

func (s *comboService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.NotFound("combo no encontrado")
	}
	return s.repo.Eliminar(ctx, id)
}

// resolverProductos validates every referenced product before anything is
// written: all ids must exist, be disponible and have stock. The reply lists
// every violation, not just the first.
func (s *comboService) resolverProductos(ctx context.Context, ids []string) ([]model.Producto, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("producto_id invalido: %s", raw))
		}
		parsed = append(parsed, id)
	}

	productos, err := s.productoRepo.ObtenerPorIDs(ctx, parsed)
	if err != nil {
		return nil, err
	}

	porID := make(map[uuid.UUID]model.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}

	var violaciones []string
	resueltos := make([]model.Producto, 0, len(parsed))
	for _, id := range parsed {
		p, ok := porID[id]
		if !ok {
			violaciones = append(violaciones, fmt.Sprintf("el producto %s no existe", id))
			continue
		}
		if !p.Disponible {
			violaciones = append(violaciones, fmt.Sprintf("el producto %s no esta disponible", p.Nombre))
			continue
		}
		if p.Stock <= 0 {
			violaciones = append(violaciones, fmt.Sprintf("el producto %s no tiene stock", p.Nombre))
			continue
		}
		resueltos = append(resueltos, p)
	}
	if len(violaciones) > 0 {
		return nil, apierror.Violations("productos invalidos para el combo", violaciones)
	}
	return resueltos, nil
}

func comboToResponse(c *model.Combo) dto.ComboResponse {
	productos := make([]dto.ProductoResponse, len(c.Productos))
	for i := range c.Productos {
		productos[i] = productoToResponse(&c.Productos[i])
	}
	return dto.ComboResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Productos:   productos,
		PrecioCombo: c.PrecioCombo,
		Descuento:   c.Descuento,
		PrecioFinal: c.PrecioFinal,
		Estado:      c.Estado,
	}
}
