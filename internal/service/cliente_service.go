package service

import (
	"context"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/model"
	"comidapp/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = clienteToResponse(&clientes[i])
	}
	return resp, nil
}

func (s *clienteService) Obtener(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (*dto.ClienteResponse, error) {
	if err := requireClienteOwnership(claims, id); err != nil {
		return nil, err
	}
	cliente, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("cliente no encontrado")
	}
	resp := clienteToResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	if err := requireClienteOwnership(claims, id); err != nil {
		return nil, err
	}
	cliente, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("cliente no encontrado")
	}
	if req.Nombre != nil {
		cliente.Nombre = *req.Nombre
	}
	if req.Apellido != nil {
		cliente.Apellido = *req.Apellido
	}
	if req.Telefono != nil {
		cliente.Telefono = req.Telefono
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Direccion != nil {
		cliente.Direccion = req.Direccion
	}
	if err := s.repo.Actualizar(ctx, cliente); err != nil {
		return nil, err
	}
	resp := clienteToResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.NotFound("cliente no encontrado")
	}
	return s.repo.Desactivar(ctx, id)
}

// requireClienteOwnership enforces row-level access: a caller with the
// cliente role may only touch its own profile. Staff roles pass the
// capability check in the router and are not restricted here.
func requireClienteOwnership(claims *middleware.JWTClaims, id uuid.UUID) error {
	if claims == nil || claims.Rol != model.RolCliente {
		return nil
	}
	if claims.ClienteID == nil || *claims.ClienteID != id.String() {
		return apierror.Forbidden("no puede acceder a datos de otro cliente")
	}
	return nil
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Direccion: c.Direccion,
		Estado:    c.Estado,
	}
}
