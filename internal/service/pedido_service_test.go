package service

import (
	"context"
	"testing"
	"time"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/middleware"
	"comidapp/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claimsCliente(clienteID uuid.UUID) *middleware.JWTClaims {
	id := clienteID.String()
	return &middleware.JWTClaims{
		UserID:    uuid.NewString(),
		Usuario:   "cliente1",
		Rol:       model.RolCliente,
		ClienteID: &id,
	}
}

type pedidoFixture struct {
	svc        *pedidoService
	pedidoRepo *stubPedidoRepo
	prodRepo   *stubProductoRepo
	ofertaRepo *stubOfertaRepo
	repRepo    *stubRepartidorRepo
	clienteID  uuid.UUID
	producto   *model.Producto
}

func newPedidoFixture() *pedidoFixture {
	prodRepo := newStubProductoRepo()
	producto := prodRepo.seed(model.Producto{
		Nombre: "Lomito", Precio: decimal.NewFromInt(100),
		Disponible: true, Stock: 10, CategoriaID: uuid.New(),
	})
	pedidoRepo := newStubPedidoRepo()
	ofertaRepo := newStubOfertaRepo()
	repRepo := newStubRepartidorRepo()
	svc := NewPedidoService(pedidoRepo, prodRepo, ofertaRepo, repRepo).(*pedidoService)
	return &pedidoFixture{
		svc: svc, pedidoRepo: pedidoRepo, prodRepo: prodRepo,
		ofertaRepo: ofertaRepo, repRepo: repRepo,
		clienteID: uuid.New(), producto: producto,
	}
}

func TestPedidoCrear_CongelaPrecios(t *testing.T) {
	f := newPedidoFixture()

	resp, err := f.svc.Crear(context.Background(), claimsCliente(f.clienteID), dto.CrearPedidoRequest{
		Items:            []dto.ItemPedidoRequest{{ProductoID: f.producto.ID.String(), Cantidad: 3}},
		DireccionEntrega: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)

	assert.Equal(t, model.PedidoPendiente, resp.Estado)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].PrecioUnitario.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(300)))
}

func TestPedidoCrear_AplicaOfertaVigente(t *testing.T) {
	f := newPedidoFixture()
	ahora := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return ahora }

	f.ofertaRepo.ofertas[uuid.New()] = &model.Oferta{
		ID: uuid.New(), Nombre: "Descuento lomitos",
		Descuento:           decimal.NewFromInt(25),
		FechaInicio:         ahora.Add(-time.Hour),
		FechaFin:            ahora.Add(time.Hour),
		ProductosAplicables: []model.Producto{*f.producto},
		Estado:              true,
	}

	resp, err := f.svc.Crear(context.Background(), claimsCliente(f.clienteID), dto.CrearPedidoRequest{
		Items:            []dto.ItemPedidoRequest{{ProductoID: f.producto.ID.String(), Cantidad: 2}},
		DireccionEntrega: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)

	// 100 * 0.75 = 75 per unit, frozen on the item
	assert.True(t, resp.Items[0].PrecioUnitario.Equal(decimal.NewFromInt(75)), "precio = %s", resp.Items[0].PrecioUnitario)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(150)))
}

func TestPedidoCrear_OfertaVencidaNoAplica(t *testing.T) {
	f := newPedidoFixture()
	ahora := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return ahora }

	f.ofertaRepo.ofertas[uuid.New()] = &model.Oferta{
		ID: uuid.New(), Nombre: "Vencida",
		Descuento:           decimal.NewFromInt(50),
		FechaInicio:         ahora.Add(-48 * time.Hour),
		FechaFin:            ahora.Add(-24 * time.Hour),
		ProductosAplicables: []model.Producto{*f.producto},
		Estado:              true,
	}

	resp, err := f.svc.Crear(context.Background(), claimsCliente(f.clienteID), dto.CrearPedidoRequest{
		Items:            []dto.ItemPedidoRequest{{ProductoID: f.producto.ID.String(), Cantidad: 1}},
		DireccionEntrega: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)
	assert.True(t, resp.Items[0].PrecioUnitario.Equal(decimal.NewFromInt(100)))
}

func TestPedidoCrear_StockInsuficiente(t *testing.T) {
	f := newPedidoFixture()

	_, err := f.svc.Crear(context.Background(), claimsCliente(f.clienteID), dto.CrearPedidoRequest{
		Items:            []dto.ItemPedidoRequest{{ProductoID: f.producto.ID.String(), Cantidad: 99}},
		DireccionEntrega: "Av. Siempre Viva 742",
	})
	require.Error(t, err)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Violaciones)
}

func TestPedidoCrear_SinPerfilCliente(t *testing.T) {
	f := newPedidoFixture()
	claims := &middleware.JWTClaims{UserID: uuid.NewString(), Rol: model.RolSupervisor}

	_, err := f.svc.Crear(context.Background(), claims, dto.CrearPedidoRequest{
		Items:            []dto.ItemPedidoRequest{{ProductoID: f.producto.ID.String(), Cantidad: 1}},
		DireccionEntrega: "Av. Siempre Viva 742",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindForbidden, apierror.KindOf(err))
}

func TestPedidoCambiarEstado_TransicionValida(t *testing.T) {
	f := newPedidoFixture()
	p := f.pedidoRepo.seed(model.Pedido{ClienteID: f.clienteID, Estado: model.PedidoPendiente})

	resp, err := f.svc.CambiarEstado(context.Background(), p.ID, model.PedidoConfirmado)
	require.NoError(t, err)
	assert.Equal(t, model.PedidoConfirmado, resp.Estado)
}

func TestPedidoCambiarEstado_TransicionInvalida(t *testing.T) {
	f := newPedidoFixture()
	p := f.pedidoRepo.seed(model.Pedido{ClienteID: f.clienteID, Estado: model.PedidoPendiente})

	// pendiente no puede saltar directo a entregado
	_, err := f.svc.CambiarEstado(context.Background(), p.ID, model.PedidoEntregado)
	require.Error(t, err)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))
}

func TestPedidoCambiarEstado_EntregadoEsTerminal(t *testing.T) {
	f := newPedidoFixture()
	p := f.pedidoRepo.seed(model.Pedido{ClienteID: f.clienteID, Estado: model.PedidoEntregado})

	_, err := f.svc.CambiarEstado(context.Background(), p.ID, model.PedidoCancelado)
	require.Error(t, err)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))
}

func TestPedidoAsignarRepartidor(t *testing.T) {
	f := newPedidoFixture()
	p := f.pedidoRepo.seed(model.Pedido{ClienteID: f.clienteID, Estado: model.PedidoConfirmado})
	rep := f.repRepo.seed(model.Repartidor{
		UsuarioID: uuid.New(), Estado: model.RepartidorDisponible, Disponible: true,
	})

	resp, err := f.svc.AsignarRepartidor(context.Background(), p.ID, rep.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.RepartidorID)
	assert.Equal(t, rep.ID.String(), *resp.RepartidorID)

	// courier flipped to en_entrega, no longer disponible
	actualizado, err := f.repRepo.ObtenerPorID(context.Background(), rep.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RepartidorEnEntrega, actualizado.Estado)
	assert.False(t, actualizado.Disponible)
}

func TestPedidoAsignarRepartidor_NoDisponible(t *testing.T) {
	f := newPedidoFixture()
	p := f.pedidoRepo.seed(model.Pedido{ClienteID: f.clienteID, Estado: model.PedidoConfirmado})
	rep := f.repRepo.seed(model.Repartidor{
		UsuarioID: uuid.New(), Estado: model.RepartidorEnEntrega, Disponible: false,
	})

	_, err := f.svc.AsignarRepartidor(context.Background(), p.ID, rep.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))
}

func TestPedidoListar_ClienteSoloVeLosSuyos(t *testing.T) {
	f := newPedidoFixture()
	otro := uuid.New()
	f.pedidoRepo.seed(model.Pedido{ClienteID: f.clienteID, Estado: model.PedidoPendiente})
	f.pedidoRepo.seed(model.Pedido{ClienteID: otro, Estado: model.PedidoPendiente})

	resp, err := f.svc.Listar(context.Background(), claimsCliente(f.clienteID), dto.PedidoFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, f.clienteID.String(), resp.Data[0].ClienteID)
}

func TestPedidoObtener_DeOtroCliente(t *testing.T) {
	f := newPedidoFixture()
	ajeno := f.pedidoRepo.seed(model.Pedido{ClienteID: uuid.New(), Estado: model.PedidoPendiente})

	_, err := f.svc.Obtener(context.Background(), claimsCliente(f.clienteID), ajeno.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindForbidden, apierror.KindOf(err))
}
