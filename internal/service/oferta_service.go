package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/model"
	"comidapp/internal/pricing"
	"comidapp/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfertaService interface {
	Crear(ctx context.Context, req dto.CrearOfertaRequest) (*dto.OfertaResponse, error)
	Listar(ctx context.Context) ([]dto.OfertaResponse, error)
	ListarVigentes(ctx context.Context) ([]dto.OfertaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.OfertaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOfertaRequest) (*dto.OfertaResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado bool) (*dto.OfertaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ofertaService struct {
	repo          repository.OfertaRepository
	productoRepo  repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
	now           func() time.Time
}

func NewOfertaService(
	repo repository.OfertaRepository,
	productoRepo repository.ProductoRepository,
	categoriaRepo repository.CategoriaRepository,
) OfertaService {
	return &ofertaService{
		repo:          repo,
		productoRepo:  productoRepo,
		categoriaRepo: categoriaRepo,
		now:           time.Now,
	}
}

func (s *ofertaService) Crear(ctx context.Context, req dto.CrearOfertaRequest) (*dto.OfertaResponse, error) {
	if req.FechaFin.Before(req.FechaInicio) {
		return nil, apierror.Validation("fecha_inicio debe ser anterior o igual a fecha_fin")
	}
	// an offer always targets at least one product and at least one category
	if len(req.ProductosIDs) == 0 {
		return nil, apierror.Validation("la oferta debe aplicar al menos a un producto")
	}
	if len(req.CategoriasIDs) == 0 {
		return nil, apierror.Validation("la oferta debe aplicar al menos a una categoria")
	}

	productos, categorias, err := s.resolverAplicables(ctx, req.ProductosIDs, req.CategoriasIDs)
	if err != nil {
		return nil, err
	}

	oferta := &model.Oferta{
		Nombre:               req.Nombre,
		Descripcion:          req.Descripcion,
		Descuento:            pricing.ClampDescuento(req.Descuento),
		FechaInicio:          req.FechaInicio,
		FechaFin:             req.FechaFin,
		ProductosAplicables:  productos,
		CategoriasAplicables: categorias,
		Estado:               true,
	}
	if err := s.repo.Crear(ctx, oferta); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe una oferta con ese nombre")
		}
		return nil, err
	}
	resp := s.ofertaToResponse(oferta)
	return &resp, nil
}

func (s *ofertaService) Listar(ctx context.Context) ([]dto.OfertaResponse, error) {
	ofertas, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OfertaResponse, len(ofertas))
	for i := range ofertas {
		resp[i] = s.ofertaToResponse(&ofertas[i])
	}
	return resp, nil
}

// ListarVigentes returns only the offers applicable right now:
// estado ∧ fecha_inicio ≤ now ≤ fecha_fin, both bounds inclusive.
func (s *ofertaService) ListarVigentes(ctx context.Context) ([]dto.OfertaResponse, error) {
	ofertas, err := s.repo.ListarVigentes(ctx, s.now())
	if err != nil {
		return nil, err
	}
	resp := make([]dto.OfertaResponse, len(ofertas))
	for i := range ofertas {
		resp[i] = s.ofertaToResponse(&ofertas[i])
	}
	return resp, nil
}

func (s *ofertaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.OfertaResponse, error) {
	oferta, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("oferta no encontrada")
	}
	resp := s.ofertaToResponse(oferta)
	return &resp, nil
}

func (s *ofertaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOfertaRequest) (*dto.OfertaResponse, error) {
	oferta, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("oferta no encontrada")
	}

	if req.Nombre != nil {
		oferta.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		oferta.Descripcion = req.Descripcion
	}
	if req.Descuento != nil {
		oferta.Descuento = pricing.ClampDescuento(*req.Descuento)
	}
	if req.FechaInicio != nil {
		oferta.FechaInicio = *req.FechaInicio
	}
	if req.FechaFin != nil {
		oferta.FechaFin = *req.FechaFin
	}
	if oferta.FechaFin.Before(oferta.FechaInicio) {
		return nil, apierror.Validation("fecha_inicio debe ser anterior o igual a fecha_fin")
	}

	if req.ProductosIDs != nil {
		productos, _, err := s.resolverAplicables(ctx, req.ProductosIDs, nil)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReemplazarProductos(ctx, oferta, productos); err != nil {
			return nil, err
		}
		oferta.ProductosAplicables = productos
	}
	if req.CategoriasIDs != nil {
		_, categorias, err := s.resolverAplicables(ctx, nil, req.CategoriasIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReemplazarCategorias(ctx, oferta, categorias); err != nil {
			return nil, err
		}
		oferta.CategoriasAplicables = categorias
	}

	if err := s.repo.Actualizar(ctx, oferta); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("ya existe una oferta con ese nombre")
		}
		return nil, err
	}
	resp := s.ofertaToResponse(oferta)
	return &resp, nil
}

func (s *ofertaService) CambiarEstado(ctx context.Context, id uuid.UUID, estado bool) (*dto.OfertaResponse, error) {
	oferta, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("oferta no encontrada")
	}
	oferta.Estado = estado
	if err := s.repo.Actualizar(ctx, oferta); err != nil {
		return nil, err
	}
	resp := s.ofertaToResponse(oferta)
	return &resp, nil
}

func (s *ofertaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return apierror.NotFound("oferta no encontrada")
	}
	return s.repo.Eliminar(ctx, id)
}

// resolverAplicables checks every referenced product and category before
// anything is written. A nil slice means "leave that side untouched"; an
// empty one is rejected because an offer always targets at least one product
// and at least one category.
func (s *ofertaService) resolverAplicables(ctx context.Context, productosIDs, categoriasIDs []string) ([]model.Producto, []model.Categoria, error) {
	var violaciones []string
	var productos []model.Producto
	var categorias []model.Categoria

	if productosIDs != nil {
		if len(productosIDs) == 0 {
			return nil, nil, apierror.Validation("la oferta debe aplicar al menos a un producto")
		}
		ids, err := parseUUIDs(productosIDs)
		if err != nil {
			return nil, nil, err
		}
		productos, err = s.productoRepo.ObtenerPorIDs(ctx, ids)
		if err != nil {
			return nil, nil, err
		}
		vistos := make(map[uuid.UUID]bool, len(productos))
		for _, p := range productos {
			vistos[p.ID] = true
		}
		for _, id := range ids {
			if !vistos[id] {
				violaciones = append(violaciones, fmt.Sprintf("el producto %s no existe", id))
			}
		}
	}

	if categoriasIDs != nil {
		if len(categoriasIDs) == 0 {
			return nil, nil, apierror.Validation("la oferta debe aplicar al menos a una categoria")
		}
		ids, err := parseUUIDs(categoriasIDs)
		if err != nil {
			return nil, nil, err
		}
		categorias, err = s.categoriaRepo.ObtenerPorIDs(ctx, ids)
		if err != nil {
			return nil, nil, err
		}
		vistas := make(map[uuid.UUID]bool, len(categorias))
		for _, c := range categorias {
			vistas[c.ID] = true
		}
		for _, id := range ids {
			if !vistas[id] {
				violaciones = append(violaciones, fmt.Sprintf("la categoria %s no existe", id))
			}
		}
	}

	if len(violaciones) > 0 {
		return nil, nil, apierror.Violations("referencias invalidas para la oferta", violaciones)
	}
	return productos, categorias, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("id invalido: %s", r))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *ofertaService) ofertaToResponse(o *model.Oferta) dto.OfertaResponse {
	productos := make([]dto.ProductoResponse, len(o.ProductosAplicables))
	for i := range o.ProductosAplicables {
		productos[i] = productoToResponse(&o.ProductosAplicables[i])
	}
	categorias := make([]dto.CategoriaResponse, len(o.CategoriasAplicables))
	for i := range o.CategoriasAplicables {
		categorias[i] = categoriaToResponse(&o.CategoriasAplicables[i])
	}
	return dto.OfertaResponse{
		ID:                   o.ID.String(),
		Nombre:               o.Nombre,
		Descripcion:          o.Descripcion,
		Descuento:            o.Descuento,
		FechaInicio:          o.FechaInicio,
		FechaFin:             o.FechaFin,
		ProductosAplicables:  productos,
		CategoriasAplicables: categorias,
		Estado:               o.Estado,
		Vigente:              pricing.OfertaVigente(o, s.now()),
	}
}
