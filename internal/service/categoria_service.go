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

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
}

func NewCategoriaService(repo repository.CategoriaRepository, productoRepo repository.ProductoRepository) CategoriaService {
	return &categoriaService{repo: repo, productoRepo: productoRepo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	cat := &model.Categoria{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Estado:      true,
	}
	if err := s.repo.Crear(ctx, cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe una categoria con ese nombre")
		}
		return nil, err
	}
	resp := categoriaToResponse(cat)
	return &resp, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	cats, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CategoriaResponse, len(cats))
	for i := range cats {
		resp[i] = categoriaToResponse(&cats[i])
	}
	return resp, nil
}

func (s *categoriaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.CategoriaResponse, error) {
	cat, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("categoria no encontrada")
	}
	resp := categoriaToResponse(cat)
	return &resp, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	cat, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("categoria no encontrada")
	}
	if req.Nombre != nil {
		cat.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		cat.Descripcion = req.Descripcion
	}
	if req.Estado != nil {
		cat.Estado = *req.Estado
	}
	if err := s.repo.Actualizar(ctx, cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe una categoria con ese nombre")
		}
		return nil, err
	}
	resp := categoriaToResponse(cat)
	return &resp, nil
}

// Eliminar removes a category only when it is inactive and no product still
// references it.
func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	cat, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return apierror.NotFound("categoria no encontrada")
	}
	if cat.Estado {
		return apierror.Conflict("la categoria esta activa y no puede eliminarse")
	}
	count, err := s.productoRepo.ContarPorCategoria(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apierror.Conflict("la categoria tiene productos asociados y no puede eliminarse")
	}
	return s.repo.Eliminar(ctx, id)
}

func categoriaToResponse(c *model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID.String(),
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Estado:      c.Estado,
	}
}
