package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/model"
	"comidapp/internal/repository"
	"comidapp/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error)
	Listar(ctx context.Context, claims *middleware.JWTClaims, filter dto.VentaFilter) (*dto.VentaListResponse, error)
	Obtener(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (*dto.VentaResponse, error)
	GenerarFactura(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	RutaFacturaPDF(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (string, error)
	CambiarEstadoPago(ctx context.Context, id uuid.UUID, estado string) (*dto.VentaResponse, error)
}

type ventaService struct {
	repo       repository.VentaRepository
	pedidoRepo repository.PedidoRepository
	dispatcher *worker.Dispatcher
	pdfStorage string
	now        func() time.Time
}

func NewVentaService(
	repo repository.VentaRepository,
	pedidoRepo repository.PedidoRepository,
	dispatcher *worker.Dispatcher,
	pdfStorage string,
) VentaService {
	return &ventaService{repo: repo, pedidoRepo: pedidoRepo, dispatcher: dispatcher, pdfStorage: pdfStorage, now: time.Now}
}

// Crear registers the sale for a delivered order. The unique index on
// pedido_id makes a second attempt surface as a duplicate-key conflict even
// under concurrent requests.
func (s *ventaService) Crear(ctx context.Context, req dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	pedidoID, err := uuid.Parse(req.PedidoID)
	if err != nil {
		return nil, apierror.Validation("pedido_id invalido")
	}
	pedido, err := s.pedidoRepo.ObtenerPorID(ctx, pedidoID)
	if err != nil {
		return nil, apierror.NotFound("pedido no encontrado")
	}
	if pedido.Estado != model.PedidoEntregado {
		middleware.RecordPedidoOperation("venta", false)
		return nil, apierror.InvalidState("solo un pedido entregado puede facturarse")
	}

	venta := &model.Venta{
		PedidoID:   pedido.ID,
		ClienteID:  pedido.ClienteID,
		MontoTotal: pedido.Total,
		MetodoPago: req.MetodoPago,
		EstadoPago: model.PagoPendiente,
	}
	if err := s.repo.Crear(ctx, venta); err != nil {
		middleware.RecordPedidoOperation("venta", false)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("el pedido ya tiene una venta registrada")
		}
		return nil, err
	}
	middleware.RecordPedidoOperation("venta", true)
	resp := ventaToResponse(venta)
	return &resp, nil
}

func (s *ventaService) Listar(ctx context.Context, claims *middleware.JWTClaims, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
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
	ventas, total, err := s.repo.Listar(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		data[i] = ventaToResponse(&ventas[i])
	}
	return &dto.VentaListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *ventaService) Obtener(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("venta no encontrada")
	}
	if claims != nil && claims.Rol == model.RolCliente {
		if claims.ClienteID == nil || *claims.ClienteID != venta.ClienteID.String() {
			return nil, apierror.Forbidden("no puede acceder a ventas de otro cliente")
		}
	}
	resp := ventaToResponse(venta)
	return &resp, nil
}

// GenerarFactura assigns the invoice number lazily and exactly once: repeated
// calls return the stored number without generating a new one. After the
// number is persisted the PDF render and email delivery run asynchronously.
func (s *ventaService) GenerarFactura(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	venta, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("venta no encontrada")
	}
	if venta.NumeroFactura != nil {
		resp := ventaToResponse(venta)
		return &resp, nil
	}

	numero := s.generarNumeroFactura()
	asignado, err := s.repo.AsignarNumeroFactura(ctx, id, numero)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The random suffix collided with another venta's number; one retry.
		numero = s.generarNumeroFactura()
		asignado, err = s.repo.AsignarNumeroFactura(ctx, id, numero)
	}
	if err != nil {
		return nil, err
	}
	if !asignado {
		// Lost the race against a concurrent call; the stored number wins.
		venta, err = s.repo.ObtenerPorID(ctx, id)
		if err != nil {
			return nil, err
		}
		resp := ventaToResponse(venta)
		return &resp, nil
	}
	venta.NumeroFactura = &numero

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueFactura(ctx, worker.FacturaJobPayload{VentaID: venta.ID.String()}); err != nil {
			log.Error().Err(err).Str("venta_id", venta.ID.String()).Msg("no se pudo encolar la factura")
		}
	}

	resp := ventaToResponse(venta)
	return &resp, nil
}

// RutaFacturaPDF resolves the on-disk path of a rendered invoice. It fails
// until the async worker has produced the file.
func (s *ventaService) RutaFacturaPDF(ctx context.Context, claims *middleware.JWTClaims, id uuid.UUID) (string, error) {
	venta, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return "", apierror.NotFound("venta no encontrada")
	}
	if claims != nil && claims.Rol == model.RolCliente {
		if claims.ClienteID == nil || *claims.ClienteID != venta.ClienteID.String() {
			return "", apierror.Forbidden("no puede acceder a ventas de otro cliente")
		}
	}
	if venta.NumeroFactura == nil {
		return "", apierror.InvalidState("la venta no tiene factura generada")
	}
	if venta.FacturaPDFPath == nil {
		return "", apierror.NotFound("la factura todavia se esta generando")
	}
	return filepath.Join(s.pdfStorage, *venta.FacturaPDFPath), nil
}

func (s *ventaService) CambiarEstadoPago(ctx context.Context, id uuid.UUID, estado string) (*dto.VentaResponse, error) {
	venta, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("venta no encontrada")
	}
	if venta.EstadoPago == model.PagoReembolsado {
		return nil, apierror.InvalidState("una venta reembolsada no admite mas cambios")
	}
	if err := s.repo.ActualizarEstadoPago(ctx, id, estado); err != nil {
		return nil, err
	}
	venta.EstadoPago = estado
	resp := ventaToResponse(venta)
	return &resp, nil
}

// generarNumeroFactura builds INV-YYYYMMDD-XXXXXX with a random 6-character
// suffix. Uniqueness is ultimately enforced by the index on numero_factura.
func (s *ventaService) generarNumeroFactura() string {
	const alfabeto = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// math-free fallback: derive from a fresh uuid
		copy(buf, uuid.NewString())
	}
	for i := range buf {
		buf[i] = alfabeto[int(buf[i])%len(alfabeto)]
	}
	return fmt.Sprintf("INV-%s-%s", s.now().Format("20060102"), string(buf))
}

func ventaToResponse(v *model.Venta) dto.VentaResponse {
	resp := dto.VentaResponse{
		ID:            v.ID.String(),
		PedidoID:      v.PedidoID.String(),
		ClienteID:     v.ClienteID.String(),
		MontoTotal:    v.MontoTotal,
		MetodoPago:    v.MetodoPago,
		EstadoPago:    v.EstadoPago,
		NumeroFactura: v.NumeroFactura,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
	}
	if v.NumeroFactura != nil {
		url := fmt.Sprintf("/api/ventas/%s/factura", v.ID)
		resp.FacturaURL = &url
	}
	return resp
}
