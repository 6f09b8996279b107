package service

import (
	"context"
	"testing"

	"comidapp/internal/apierror"
	"comidapp/internal/dto"
	"comidapp/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repartidorFixture() (RepartidorService, *stubRepartidorRepo, *stubPedidoRepo, *model.Repartidor) {
	repRepo := newStubRepartidorRepo()
	pedidoRepo := newStubPedidoRepo()
	rep := repRepo.seed(model.Repartidor{
		UsuarioID: uuid.New(), Estado: model.RepartidorDisponible, Disponible: true,
	})
	svc := NewRepartidorService(repRepo, newStubUsuarioRepo(), pedidoRepo)
	return svc, repRepo, pedidoRepo, rep
}

func intPtr(n int) *int { return &n }

func TestRepartidorCambiarEstado_DerivaDisponible(t *testing.T) {
	svc, _, _, rep := repartidorFixture()

	resp, err := svc.CambiarEstado(context.Background(), rep.ID, model.RepartidorFueraDeServicio)
	require.NoError(t, err)
	assert.False(t, resp.Disponible)

	resp, err = svc.CambiarEstado(context.Background(), rep.ID, model.RepartidorDisponible)
	require.NoError(t, err)
	assert.True(t, resp.Disponible)
}

func TestRepartidorCambiarEstado_Invalido(t *testing.T) {
	svc, repRepo, _, rep := repartidorFixture()

	_, err := svc.CambiarEstado(context.Background(), rep.ID, "volando")
	require.Error(t, err)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))

	// the rejected transition must leave the repartidor as it was
	intacto, err := repRepo.ObtenerPorID(context.Background(), rep.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RepartidorDisponible, intacto.Estado)
	assert.True(t, intacto.Disponible)
}

func TestRegistrarEntrega_PromedioSoloSobreCalificadas(t *testing.T) {
	svc, _, pedidoRepo, rep := repartidorFixture()

	entregar := func(calificacion *int) *dto.RepartidorResponse {
		p := pedidoRepo.seed(model.Pedido{
			ClienteID: uuid.New(), Estado: model.PedidoEnCamino, RepartidorID: &rep.ID,
		})
		resp, err := svc.RegistrarEntrega(context.Background(), rep.ID, dto.RegistrarEntregaRequest{
			PedidoID: p.ID.String(), Calificacion: calificacion,
		})
		require.NoError(t, err)
		return resp
	}

	entregar(intPtr(4))
	entregar(nil) // unrated, excluded from the mean
	resp := entregar(intPtr(5))

	// (4+5)/2 = 4.5
	assert.True(t, resp.CalificacionPromedio.Equal(decimal.RequireFromString("4.5")),
		"promedio = %s", resp.CalificacionPromedio)
	assert.Len(t, resp.HistorialEntregas, 3)
	assert.Equal(t, model.RepartidorDisponible, resp.Estado)
	assert.True(t, resp.Disponible)
}

func TestRegistrarEntrega_MarcaPedidoEntregado(t *testing.T) {
	svc, _, pedidoRepo, rep := repartidorFixture()
	p := pedidoRepo.seed(model.Pedido{
		ClienteID: uuid.New(), Estado: model.PedidoEnCamino, RepartidorID: &rep.ID,
	})

	_, err := svc.RegistrarEntrega(context.Background(), rep.ID, dto.RegistrarEntregaRequest{
		PedidoID: p.ID.String(),
	})
	require.NoError(t, err)

	actualizado, err := pedidoRepo.ObtenerPorID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PedidoEntregado, actualizado.Estado)
}

func TestRegistrarEntrega_PedidoNoAsignado(t *testing.T) {
	svc, _, pedidoRepo, rep := repartidorFixture()
	p := pedidoRepo.seed(model.Pedido{ClienteID: uuid.New(), Estado: model.PedidoEnCamino})

	_, err := svc.RegistrarEntrega(context.Background(), rep.ID, dto.RegistrarEntregaRequest{
		PedidoID: p.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))
}

func TestRegistrarEntrega_PedidoNoEnCamino(t *testing.T) {
	svc, _, pedidoRepo, rep := repartidorFixture()
	p := pedidoRepo.seed(model.Pedido{
		ClienteID: uuid.New(), Estado: model.PedidoConfirmado, RepartidorID: &rep.ID,
	})

	_, err := svc.RegistrarEntrega(context.Background(), rep.ID, dto.RegistrarEntregaRequest{
		PedidoID: p.ID.String(),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindInvalidState, apierror.KindOf(err))
}

func TestRepartidorCrear_UsuarioDuplicado(t *testing.T) {
	repRepo := newStubRepartidorRepo()
	usuarioRepo := newStubUsuarioRepo()
	rolRepo := newStubRolRepo()
	rol := rolRepo.seed(model.RolRepartidor)
	usuario := &model.Usuario{
		NombreUsuario: "moto1", Email: "moto1@comidapp.test",
		RolID: rol.ID, Rol: rol, Estado: true,
	}
	require.NoError(t, usuarioRepo.Crear(context.Background(), usuario))

	svc := NewRepartidorService(repRepo, usuarioRepo, newStubPedidoRepo())
	req := dto.CrearRepartidorRequest{UsuarioID: usuario.ID.String()}

	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}
