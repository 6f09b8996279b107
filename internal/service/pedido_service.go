package service

import (
	"context"
	"fmt"
	"time"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/model"
	"comidapp/internal/pricing"
	"comidapp/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transicionesPedido enumerates the valid state machine of a pedido. A
// cancelled or delivered order accepts no further transitions.
var transicionesPedido = map[string][]string{
	model.PedidoPendiente:     {model.PedidoConfirmado, model.PedidoCancelado},
	model.PedidoConfirmado:    {model.PedidoEnPreparacion, model.PedidoCancelado},
	model.PedidoEnPreparacion: {model.PedidoEnCamino, model.PedidoCancelado},
	model.PedidoEnCamino:      {model.PedidoEntregado},
	model.PedidoEntregado:     {},
	model.PedidoCancelado:     {},
}

func transicionValida(desde, hacia string) bool {
	for _, s := range transicionesPedido[desde] {
		if s == hacia {
			return true
		}
	}
	return false
}

type PedidoService interface {
	Crear(ctx context.Context, claims *middleware.JWTClaims, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, claims *middleware.JWTClaims, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	Obtener(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (*dto.PedidoResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.PedidoResponse, error)
	AsignarRepartidor(ctx context.Context, pedidoID, repartidorID uuid.UUID) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	repo           repository.PedidoRepository
	productoRepo   repository.ProductoRepository
	ofertaRepo     repository.OfertaRepository
	repartidorRepo repository.RepartidorRepository
	now            func() time.Time
}

func NewPedidoService(
	repo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	ofertaRepo repository.OfertaRepository,
	repartidorRepo repository.RepartidorRepository,
) PedidoService {
	return &pedidoService{
		repo:           repo,
		productoRepo:   productoRepo,
		ofertaRepo:     ofertaRepo,
		repartidorRepo: repartidorRepo,
		now:            time.Now,
	}
}

// Crear validates every line item, snapshots unit prices with any vigente
// offer discount applied, and persists the order as "pendiente". The caller
// must be a cliente; the order is always created for the caller's own profile.
func (s *pedidoService) Crear(ctx context.Context, claims *middleware.JWTClaims, req dto.CrearPedidoRequest) (*dto.PedidoResponse, error) {
	if claims == nil || claims.ClienteID == nil {
		return nil, apierror.Forbidden("solo un cliente puede crear pedidos")
	}
	clienteID, err := uuid.Parse(*claims.ClienteID)
	if err != nil {
		return nil, apierror.Forbidden("solo un cliente puede crear pedidos")
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, apierror.Validation(fmt.Sprintf("producto_id invalido: %s", item.ProductoID))
		}
		ids = append(ids, id)
	}

	productos, err := s.productoRepo.ObtenerPorIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	porID := make(map[uuid.UUID]model.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}

	descuentos, err := s.descuentosVigentes(ctx)
	if err != nil {
		return nil, err
	}

	var violaciones []string
	items := make([]model.PedidoItem, 0, len(req.Items))
	total := decimal.Zero
	for i, reqItem := range req.Items {
		p, ok := porID[ids[i]]
		if !ok {
			violaciones = append(violaciones, fmt.Sprintf("el producto %s no existe", ids[i]))
			continue
		}
		if !p.Disponible {
			violaciones = append(violaciones, fmt.Sprintf("el producto %s no esta disponible", p.Nombre))
			continue
		}
		if p.Stock < reqItem.Cantidad {
			violaciones = append(violaciones, fmt.Sprintf("stock insuficiente para %s", p.Nombre))
			continue
		}

		precio := p.Precio
		if pct, ok := descuentos.paraProducto(&p); ok {
			precio, err = pricing.AplicarDescuentoOferta(p.Precio, pct)
			if err != nil {
				return nil, err
			}
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(reqItem.Cantidad)))
		items = append(items, model.PedidoItem{
			ProductoID:     p.ID,
			Cantidad:       reqItem.Cantidad,
			PrecioUnitario: precio,
			Subtotal:       subtotal,
		})
		total = total.Add(subtotal)
	}
	if len(violaciones) > 0 {
		return nil, apierror.Violations("items invalidos para el pedido", violaciones)
	}

	pedido := &model.Pedido{
		ClienteID:        clienteID,
		Estado:           model.PedidoPendiente,
		Total:            total,
		DireccionEntrega: req.DireccionEntrega,
		Items:            items,
	}
	if err := s.repo.Crear(ctx, pedido); err != nil {
		middleware.RecordPedidoOperation("crear", false)
		return nil, err
	}
	middleware.RecordPedidoOperation("crear", true)

	resp := pedidoToResponse(pedido)
	return &resp, nil
}

func (s *pedidoService) Listar(ctx context.Context, claims *middleware.JWTClaims, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	// A cliente only ever sees its own orders, whatever the filter says.
	if claims != nil && claims.Rol == model.RolCliente {
		if claims.ClienteID == nil {
			return nil, apierror.Forbidden("el usuario no tiene perfil de cliente")
		}
		filter.ClienteID = *claims.ClienteID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	pedidos, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PedidoResponse, len(pedidos))
	for i := range pedidos {
		data[i] = pedidoToResponse(&pedidos[i])
	}
	return &dto.PedidoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *pedidoService) Obtener(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("pedido no encontrado")
	}
	if claims != nil && claims.Rol == model.RolCliente {
		if claims.ClienteID == nil || *claims.ClienteID != pedido.ClienteID.String() {
			return nil, apierror.Forbidden("no puede acceder a pedidos de otro cliente")
		}
	}
	resp := pedidoToResponse(pedido)
	return &resp, nil
}

// CambiarEstado applies one transition of the order state machine.
func (s *pedidoService) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.PedidoResponse, error) {
	if _, conocido := transicionesPedido[estado]; !conocido {
		return nil, apierror.Validation(fmt.Sprintf("estado desconocido: %s", estado))
	}
	pedido, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("pedido no encontrado")
	}
	if !transicionValida(pedido.Estado, estado) {
		middleware.RecordPedidoOperation("cambiar_estado", false)
		return nil, apierror.InvalidState(fmt.Sprintf("no se puede pasar de %s a %s", pedido.Estado, estado))
	}
	if err := s.repo.ActualizarEstado(ctx, id, estado); err != nil {
		middleware.RecordPedidoOperation("cambiar_estado", false)
		return nil, err
	}
	middleware.RecordPedidoOperation("cambiar_estado", true)
	pedido.Estado = estado
	resp := pedidoToResponse(pedido)
	return &resp, nil
}

// AsignarRepartidor attaches an available courier to a confirmed or
// in-preparation order and flips the courier to "en_entrega".
func (s *pedidoService) AsignarRepartidor(ctx context.Context, pedidoID, repartidorID uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.ObtenerPorID(ctx, pedidoID)
	if err != nil {
		return nil, apierror.NotFound("pedido no encontrado")
	}
	switch pedido.Estado {
	case model.PedidoConfirmado, model.PedidoEnPreparacion:
	default:
		return nil, apierror.InvalidState(fmt.Sprintf("no se puede asignar repartidor a un pedido %s", pedido.Estado))
	}

	repartidor, err := s.repartidorRepo.ObtenerPorID(ctx, repartidorID)
	if err != nil {
		return nil, apierror.NotFound("repartidor no encontrado")
	}
	if repartidor.Estado != model.RepartidorDisponible {
		return nil, apierror.InvalidState("el repartidor no esta disponible")
	}

	if err := s.repo.AsignarRepartidor(ctx, pedidoID, repartidorID); err != nil {
		return nil, err
	}
	repartidor.Estado = model.RepartidorEnEntrega
	repartidor.Disponible = false
	if err := s.repartidorRepo.Actualizar(ctx, repartidor); err != nil {
		return nil, err
	}

	pedido.RepartidorID = &repartidorID
	resp := pedidoToResponse(pedido)
	return &resp, nil
}

// descuentosOferta indexes the vigente offers by applicable product and
// category so each line item resolves its discount in O(1). When several
// offers apply to one product the largest percentage wins.
type descuentosOferta struct {
	porProducto  map[uuid.UUID]decimal.Decimal
	porCategoria map[uuid.UUID]decimal.Decimal
}

func (d *descuentosOferta) paraProducto(p *model.Producto) (decimal.Decimal, bool) {
	mejor, ok := d.porProducto[p.ID]
	if pct, hay := d.porCategoria[p.CategoriaID]; hay && (!ok || pct.GreaterThan(mejor)) {
		mejor, ok = pct, true
	}
	return mejor, ok
}

func (s *pedidoService) descuentosVigentes(ctx context.Context) (*descuentosOferta, error) {
	ofertas, err := s.ofertaRepo.ListarVigentes(ctx, s.now())
	if err != nil {
		return nil, err
	}
	d := &descuentosOferta{
		porProducto:  make(map[uuid.UUID]decimal.Decimal),
		porCategoria: make(map[uuid.UUID]decimal.Decimal),
	}
	for i := range ofertas {
		pct := ofertas[i].Descuento
		for _, p := range ofertas[i].ProductosAplicables {
			if actual, ok := d.porProducto[p.ID]; !ok || pct.GreaterThan(actual) {
				d.porProducto[p.ID] = pct
			}
		}
		for _, c := range ofertas[i].CategoriasAplicables {
			if actual, ok := d.porCategoria[c.ID]; !ok || pct.GreaterThan(actual) {
				d.porCategoria[c.ID] = pct
			}
		}
	}
	return d, nil
}

func pedidoToResponse(p *model.Pedido) dto.PedidoResponse {
	items := make([]dto.ItemPedidoResponse, len(p.Items))
	for i, item := range p.Items {
		items[i] = dto.ItemPedidoResponse{
			ProductoID:     item.ProductoID.String(),
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       item.Subtotal,
		}
		if item.Producto != nil {
			items[i].Producto = item.Producto.Nombre
		}
	}
	resp := dto.PedidoResponse{
		ID:               p.ID.String(),
		ClienteID:        p.ClienteID.String(),
		Items:            items,
		Estado:           p.Estado,
		Total:            p.Total,
		DireccionEntrega: p.DireccionEntrega,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
	if p.RepartidorID != nil {
		id := p.RepartidorID.String()
		resp.RepartidorID = &id
	}
	return resp
}
