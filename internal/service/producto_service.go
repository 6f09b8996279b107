package service

import (
	"context"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/infra"
	"comidapp/internal/model"
	"comidapp/internal/repository"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	GenerarImagen(ctx context.Context, id uuid.UUID, req dto.GenerarImagenRequest) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	imagenClient  *infra.ImagenClient
}

func NewProductoService(
	repo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
	imagenClient *infra.ImagenClient,
) ProductoService {
	return &productoService{repo: repo, categoriaRepo: categoriaRepo, imagenClient: imagenClient}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	catID, err := uuid.Parse(req.CategoriaID)
	if err != nil {
		return nil, apierror.Validation("categoria_id invalido")
	}
	if _, err := s.categoriaRepo.ObtenerPorID(ctx, catID); err != nil {
		return nil, apierror.Validation("la categoria indicada no existe")
	}

	disponible := true
	if req.Disponible != nil {
		disponible = *req.Disponible
	}
	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Disponible:  disponible,
		Stock:       req.Stock,
		CategoriaID: catID,
		ImagenURL:   req.ImagenURL,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	productos, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		data[i] = productoToResponse(&productos[i])
	}
	return &dto.ProductoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("producto no encontrado")
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("producto no encontrado")
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, apierror.Validation("el precio no puede ser negativo")
		}
		p.Precio = *req.Precio
	}
	if req.Disponible != nil {
		p.Disponible = *req.Disponible
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.CategoriaID != nil {
		catID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.Validation("categoria_id invalido")
		}
		if _, err := s.categoriaRepo.ObtenerPorID(ctx, catID); err != nil {
			return nil, apierror.Validation("la categoria indicada no existe")
		}
		p.CategoriaID = catID
	}
	if req.ImagenURL != nil {
		p.ImagenURL = req.ImagenURL
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

// Eliminar is a soft delete: order history keeps the product row.
func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.NotFound("producto no encontrado")
	}
	return s.repo.Eliminar(ctx, id)
}

// GenerarImagen asks the external image service for a picture of the product
// and stores the returned URL. The call goes through a circuit breaker; when
// the breaker is open the client returns an error and the product is left
// untouched.
func (s *productoService) GenerarImagen(ctx context.Context, id uuid.UUID, req dto.GenerarImagenRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("producto no encontrado")
	}
	url, err := s.imagenClient.Generar(ctx, req.Prompt)
	if err != nil {
		return nil, apierror.Internal("no se pudo generar la imagen: " + err.Error())
	}
	p.ImagenURL = &url
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Disponible:  p.Disponible,
		Stock:       p.Stock,
		CategoriaID: p.CategoriaID.String(),
		ImagenURL:   p.ImagenURL,
	}
	if p.Categoria != nil {
		resp.Categoria = &p.Categoria.Nombre
	}
	return resp
}
