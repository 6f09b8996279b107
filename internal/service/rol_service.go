package service

import (
	"context"
	"errors"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/model"
	"comidapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RolService interface {
	Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error)
	Listar(ctx context.Context) ([]dto.RolResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.RolResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRolRequest) (*dto.RolResponse, error)
}

type rolService struct {
	repo repository.RolRepository
}

func NewRolService(repo repository.RolRepository) RolService {
	return &rolService{repo: repo}
}

func (s *rolService) Crear(ctx context.Context, req dto.CrearRolRequest) (*dto.RolResponse, error) {
	rol := &model.Rol{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Estado:      true,
	}
	if err := s.repo.Crear(ctx, rol); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe un rol con ese nombre")
		}
		return nil, err
	}
	resp := rolToResponse(rol)
	return &resp, nil
}

func (s *rolService) Listar(ctx context.Context) ([]dto.RolResponse, error) {
	roles, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RolResponse, len(roles))
	for i := range roles {
		resp[i] = rolToResponse(&roles[i])
	}
	return resp, nil
}

func (s *rolService) Obtener(ctx context.Context, id uuid.UUID) (*dto.RolResponse, error) {
	rol, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("rol no encontrado")
	}
	resp := rolToResponse(rol)
	return &resp, nil
}

func (s *rolService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRolRequest) (*dto.RolResponse, error) {
	rol, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("rol no encontrado")
	}
	if req.Nombre != nil {
		rol.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		rol.Descripcion = req.Descripcion
	}
	if req.Estado != nil {
		rol.Estado = *req.Estado
	}
	if err := s.repo.Actualizar(ctx, rol); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe un rol con ese nombre")
		}
		return nil, err
	}
	resp := rolToResponse(rol)
	return &resp, nil
}

func rolToResponse(r *model.Rol) dto.RolResponse {
	return dto.RolResponse{
		ID:          r.ID.String(),
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Estado:      r.Estado,
	}
}
