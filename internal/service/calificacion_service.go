package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/model"
	"comidapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalificacionService interface {
	Crear(ctx context.Context, claims *middleware.JWTClaims, req dto.CrearCalificacionRequest) (*dto.CalificacionResponse, error)
	Listar(ctx context.Context, claims *middleware.JWTClaims) ([]dto.CalificacionResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.CalificacionResponse, error)
	ObtenerPorPedido(ctx context.Context, pedidoID uuid.UUID) (*dto.CalificacionResponse, error)
}

type calificacionService struct {
	repo       repository.CalificacionRepository
	pedidoRepo repository.PedidoRepository
}

func NewCalificacionService(
	repo repository.CalificacionRepository,
	pedidoRepo repository.PedidoRepository,
) CalificacionService {
	return &calificacionService{repo: repo, pedidoRepo: pedidoRepo}
}

// Crear records the rating for a delivered order. Gates, in order: the caller
// must be the cliente that owns the pedido, the pedido must be entregado, no
// prior rating may exist, and every per-product sub-rating must reference a
// product that was actually in the order.
func (s *calificacionService) Crear(ctx context.Context, claims *middleware.JWTClaims, req dto.CrearCalificacionRequest) (*dto.CalificacionResponse, error) {
	if claims == nil || claims.ClienteID == nil {
		return nil, apierror.Forbidden("solo un cliente puede calificar pedidos")
	}

	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, apierror.Validation("pedido_id invalido")
	}
	pedido, err := s.pedidoRepo.ObtenerPorID(ctx, pedidoID)
	if err != nil {
		return nil, apierror.NotFound("pedido no encontrado")
	}
	if *claims.ClienteID != pedido.ClienteID.String() {
		return nil, apierror.Forbidden("no puede calificar pedidos de otro cliente")
	}
	if pedido.Estado != model.PedidoEntregado {
		middleware.RecordPedidoOperation("calificacion", false)
		return nil, apierror.InvalidState("solo un pedido entregado puede calificarse")
	}

	enPedido := make(map[uuid.UUID]bool, len(pedido.Items))
	for _, item := range pedido.Items {
		enPedido[item.ProductoID] = true
	}
	detalle := make([]model.CalificacionProducto, 0, len(req.DetalleProductos))
	var violaciones []string
	for _, d := range req.DetalleProductos {
		pid, err := uuid.Parse(d.ProductoID)
		if err != nil {
			violaciones = append(violaciones, fmt.Sprintf("producto_id invalido: %s", d.ProductoID))
			continue
		}
		if !enPedido[pid] {
			violaciones = append(violaciones, fmt.Sprintf("el producto %s no forma parte del pedido", pid))
			continue
		}
		detalle = append(detalle, model.CalificacionProducto{ProductoID: pid, Puntuacion: d.Puntuacion})
	}
	if len(violaciones) > 0 {
		return nil, apierror.Violations("detalle de productos invalido", violaciones)
	}

	calificacion := &model.Calificacion{
		PedidoID:           pedidoID,
		ClienteID:          pedido.ClienteID,
		PuntuacionComida:   req.PuntuacionComida,
		PuntuacionServicio: req.PuntuacionServicio,
		PuntuacionEntrega:  req.PuntuacionEntrega,
		Comentario:         req.Comentario,
		DetalleProductos:   detalle,
	}
	if err := s.repo.Crear(ctx, calificacion); err != nil {
		middleware.RecordPedidoOperation("calificacion", false)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("el pedido ya fue calificado")
		}
		return nil, err
	}
	middleware.RecordPedidoOperation("calificacion", true)

	resp := calificacionToResponse(calificacion)
	return &resp, nil
}

func (s *calificacionService) Listar(ctx context.Context, claims *middleware.JWTClaims) ([]dto.CalificacionResponse, error) {
	var (
		calificaciones []model.Calificacion
		err            error
	)
	if claims != nil && claims.Rol == model.RolCliente {
		if claims.ClienteID == nil {
			return nil, apierror.Forbidden("el usuario no tiene perfil de cliente")
		}
		clienteID, perr := uuid.Parse(*claims.ClienteID)
		if perr != nil {
			return nil, apierror.Forbidden("el usuario no tiene perfil de cliente")
		}
		calificaciones, err = s.repo.ListarPorCliente(ctx, clienteID)
	} else {
		calificaciones, err = s.repo.Listar(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CalificacionResponse, len(calificaciones))
	for i := range calificaciones {
		resp[i] = calificacionToResponse(&calificaciones[i])
	}
	return resp, nil
}

func (s *calificacionService) Obtener(ctx context.Context, id uuid.UUID) (*dto.CalificacionResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("calificacion no encontrada")
	}
	resp := calificacionToResponse(c)
	return &resp, nil
}

func (s *calificacionService) ObtenerPorPedido(ctx context.Context, pedidoID uuid.UUID) (*dto.CalificacionResponse, error) {
	c, err := s.repo.ObtenerPorPedidoID(ctx, pedidoID)
	if err != nil {
		return nil, apierror.NotFound("el pedido no tiene calificacion")
	}
	resp := calificacionToResponse(c)
	return &resp, nil
}

func calificacionToResponse(c *model.Calificacion) dto.CalificacionResponse {
	detalle := make([]dto.CalificacionProductoResponse, len(c.DetalleProductos))
	for i, d := range c.DetalleProductos {
		detalle[i] = dto.CalificacionProductoResponse{
			ProductoID: d.ProductoID.String(),
			Puntuacion: d.Puntuacion,
		}
	}
	return dto.CalificacionResponse{
		ID:                 c.ID.String(),
		PedidoID:           c.PedidoID.String(),
		ClienteID:          c.ClienteID.String(),
		PuntuacionComida:   c.PuntuacionComida,
		PuntuacionServicio: c.PuntuacionServicio,
		PuntuacionEntrega:  c.PuntuacionEntrega,
		Comentario:         c.Comentario,
		DetalleProductos:   detalle,
		CreatedAt:          c.CreatedAt.Format(time.RFC3339),
	}
}
