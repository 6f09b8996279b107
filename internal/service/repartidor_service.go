package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/model"
	"comidapp/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RepartidorService interface {
	Crear(ctx context.Context, req dto.CrearRepartidorRequest) (*dto.RepartidorResponse, error)
	Listar(ctx context.Context) ([]dto.RepartidorResponse, error)
	ListarDisponibles(ctx context.Context) ([]dto.RepartidorResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.RepartidorResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.RepartidorResponse, error)
	RegistrarEntrega(ctx context.Context, id uuid.UUID, req dto.RegistrarEntregaRequest) (*dto.RepartidorResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type repartidorService struct {
	repo        repository.RepartidorRepository
	usuarioRepo repository.UsuarioRepository
	pedidoRepo  repository.PedidoRepository
}

func NewRepartidorService(
	repo repository.RepartidorRepository,
	usuarioRepo repository.UsuarioRepository,
	pedidoRepo repository.PedidoRepository,
) RepartidorService {
	return &repartidorService{repo: repo, usuarioRepo: usuarioRepo, pedidoRepo: pedidoRepo}
}

func (s *repartidorService) Crear(ctx context.Context, req dto.CrearRepartidorRequest) (*dto.RepartidorResponse, error) {
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apierror.Validation("usuario_id invalido")
	}
	usuario, err := s.usuarioRepo.ObtenerPorID(ctx, usuarioID)
	if err != nil {
		return nil, apierror.Validation("el usuario indicado no existe")
	}
	if usuario.Rol != nil && usuario.Rol.Nombre != model.RolRepartidor {
		return nil, apierror.Validation("el usuario no tiene rol repartidor")
	}

	repartidor := &model.Repartidor{
		UsuarioID:            usuarioID,
		Telefono:             req.Telefono,
		Vehiculo:             req.Vehiculo,
		Estado:               model.RepartidorDisponible,
		Disponible:           true,
		CalificacionPromedio: decimal.Zero,
	}
	if err := s.repo.Crear(ctx, repartidor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("el usuario ya tiene un perfil de repartidor")
		}
		return nil, err
	}
	resp := repartidorToResponse(repartidor, nil)
	return &resp, nil
}

func (s *repartidorService) Listar(ctx context.Context) ([]dto.RepartidorResponse, error) {
	repartidores, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RepartidorResponse, len(repartidores))
	for i := range repartidores {
		resp[i] = repartidorToResponse(&repartidores[i], nil)
	}
	return resp, nil
}

func (s *repartidorService) ListarDisponibles(ctx context.Context) ([]dto.RepartidorResponse, error) {
	repartidores, err := s.repo.ListarDisponibles(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RepartidorResponse, len(repartidores))
	for i := range repartidores {
		resp[i] = repartidorToResponse(&repartidores[i], nil)
	}
	return resp, nil
}

func (s *repartidorService) Obtener(ctx context.Context, id uuid.UUID) (*dto.RepartidorResponse, error) {
	repartidor, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("repartidor no encontrado")
	}
	entregas, err := s.repo.ListarEntregas(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := repartidorToResponse(repartidor, entregas)
	return &resp, nil
}

// CambiarEstado switches the courier state and rederives Disponible, which is
// true exactly when estado == "disponible".
func (s *repartidorService) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.RepartidorResponse, error) {
	if !model.EstadoRepartidorValido(estado) {
		return nil, apierror.InvalidState(fmt.Sprintf("estado de repartidor invalido: %s", estado))
	}
	repartidor, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("repartidor no encontrado")
	}
	repartidor.Estado = estado
	repartidor.Disponible = estado == model.RepartidorDisponible
	if err := s.repo.Actualizar(ctx, repartidor); err != nil {
		return nil, err
	}
	resp := repartidorToResponse(repartidor, nil)
	return &resp, nil
}

// RegistrarEntrega appends one delivery-history entry, marks the pedido as
// entregado, returns the courier to "disponible" and recomputes the
// calificacion promedio over the rated entries only.
func (s *repartidorService) RegistrarEntrega(ctx context.Context, id uuid.UUID, req dto.RegistrarEntregaRequest) (*dto.RepartidorResponse, error) {
	repartidor, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("repartidor no encontrado")
	}
	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, apierror.Validation("pedido_id invalido")
	}
	pedido, err := s.pedidoRepo.ObtenerPorID(ctx, pedidoID)
	if err != nil {
		return nil, apierror.NotFound("pedido no encontrado")
	}
	if pedido.RepartidorID == nil || *pedido.RepartidorID != id {
		return nil, apierror.InvalidState("el pedido no esta asignado a este repartidor")
	}
	if pedido.Estado != model.PedidoEnCamino {
		return nil, apierror.InvalidState(fmt.Sprintf("no se puede entregar un pedido %s", pedido.Estado))
	}

	entrega := &model.Entrega{
		RepartidorID: id,
		PedidoID:     pedidoID,
		Calificacion: req.Calificacion,
	}
	if err := s.repo.CrearEntrega(ctx, entrega); err != nil {
		return nil, err
	}
	if err := s.pedidoRepo.ActualizarEstado(ctx, pedidoID, model.PedidoEntregado); err != nil {
		return nil, err
	}

	entregas, err := s.repo.ListarEntregas(ctx, id)
	if err != nil {
		return nil, err
	}
	repartidor.Estado = model.RepartidorDisponible
	repartidor.Disponible = true
	repartidor.CalificacionPromedio = PromedioCalificaciones(entregas)
	if err := s.repo.Actualizar(ctx, repartidor); err != nil {
		return nil, err
	}

	resp := repartidorToResponse(repartidor, entregas)
	return &resp, nil
}

func (s *repartidorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	repartidor, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return apierror.NotFound("repartidor no encontrado")
	}
	if repartidor.Estado == model.RepartidorEnEntrega {
		return apierror.InvalidState("no se puede eliminar un repartidor en entrega")
	}
	return s.repo.Eliminar(ctx, id)
}

// PromedioCalificaciones computes the mean rating over the entries that carry
// one. Unrated deliveries are excluded from both sum and count; with no rated
// entries the promedio is zero.
func PromedioCalificaciones(entregas []model.Entrega) decimal.Decimal {
	suma, n := 0, 0
	for _, e := range entregas {
		if e.Calificacion != nil {
			suma += *e.Calificacion
			n++
		}
	}
	if n == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(suma)).Div(decimal.NewFromInt(int64(n))).Round(2)
}

func repartidorToResponse(r *model.Repartidor, entregas []model.Entrega) dto.RepartidorResponse {
	resp := dto.RepartidorResponse{
		ID:                   r.ID.String(),
		UsuarioID:            r.UsuarioID.String(),
		Telefono:             r.Telefono,
		Vehiculo:             r.Vehiculo,
		Estado:               r.Estado,
		Disponible:           r.Disponible,
		CalificacionPromedio: r.CalificacionPromedio,
	}
	if entregas != nil {
		resp.HistorialEntregas = make([]dto.EntregaResponse, len(entregas))
		for i, e := range entregas {
			resp.HistorialEntregas[i] = dto.EntregaResponse{
				PedidoID:     e.PedidoID.String(),
				Calificacion: e.Calificacion,
				FechaEntrega: e.CreatedAt.Format(time.RFC3339),
			}
		}
	}
	return resp
}
