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

func seedComboProductos(repo *stubProductoRepo) (*model.Producto, *model.Producto) {
	catID := uuid.New()
	hamburguesa := repo.seed(model.Producto{
		Nombre: "Hamburguesa", Precio: decimal.NewFromInt(100),
		Disponible: true, Stock: 10, CategoriaID: catID,
	})
	papas := repo.seed(model.Producto{
		Nombre: "Papas", Precio: decimal.NewFromInt(50),
		Disponible: true, Stock: 10, CategoriaID: catID,
	})
	return hamburguesa, papas
}

func TestComboCrear_DerivaPrecios(t *testing.T) {
	productoRepo := newStubProductoRepo()
	p1, p2 := seedComboProductos(productoRepo)
	svc := NewComboService(newStubComboRepo(), productoRepo)

	resp, err := svc.Crear(context.Background(), dto.CrearComboRequest{
		Nombre:       "Combo clasico",
		ProductosIDs: []string{p1.ID.String(), p2.ID.String()},
		Descuento:    decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	assert.True(t, resp.PrecioCombo.Equal(decimal.NewFromInt(150)), "precio_combo = %s", resp.PrecioCombo)
	assert.True(t, resp.PrecioFinal.Equal(decimal.NewFromInt(120)), "precio_final = %s", resp.PrecioFinal)
}

func TestComboCrear_DescuentoTotal_PrecioFinalCero(t *testing.T) {
	productoRepo := newStubProductoRepo()
	p1, p2 := seedComboProductos(productoRepo)
	svc := NewComboService(newStubComboRepo(), productoRepo)

	resp, err := svc.Crear(context.Background(), dto.CrearComboRequest{
		Nombre:       "Combo gratis",
		ProductosIDs: []string{p1.ID.String(), p2.ID.String()},
		Descuento:    decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.True(t, resp.PrecioFinal.IsZero())
}

func TestComboCrear_ProductoInexistente(t *testing.T) {
	productoRepo := newStubProductoRepo()
	p1, _ := seedComboProductos(productoRepo)
	svc := NewComboService(newStubComboRepo(), productoRepo)

	_, err := svc.Crear(context.Background(), dto.CrearComboRequest{
		Nombre:       "Combo roto",
		ProductosIDs: []string{p1.ID.String(), uuid.NewString()},
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestComboCrear_ProductoSinStock(t *testing.T) {
	productoRepo := newStubProductoRepo()
	catID := uuid.New()
	agotado := productoRepo.seed(model.Producto{
		Nombre: "Agotado", Precio: decimal.NewFromInt(30),
		Disponible: true, Stock: 0, CategoriaID: catID,
	})
	svc := NewComboService(newStubComboRepo(), productoRepo)

	_, err := svc.Crear(context.Background(), dto.CrearComboRequest{
		Nombre:       "Combo agotado",
		ProductosIDs: []string{agotado.ID.String()},
	})
	require.Error(t, err)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Violaciones)
}

func TestComboActualizar_RecalculaAlCambiarDescuento(t *testing.T) {
	productoRepo := newStubProductoRepo()
	p1, p2 := seedComboProductos(productoRepo)
	comboRepo := newStubComboRepo()
	svc := NewComboService(comboRepo, productoRepo)

	creado, err := svc.Crear(context.Background(), dto.CrearComboRequest{
		Nombre:       "Combo",
		ProductosIDs: []string{p1.ID.String(), p2.ID.String()},
		Descuento:    decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	nuevo := decimal.NewFromInt(50)
	id, _ := uuid.Parse(creado.ID)
	resp, err := svc.Actualizar(context.Background(), id, dto.ActualizarComboRequest{Descuento: &nuevo})
	require.NoError(t, err)

	assert.True(t, resp.PrecioCombo.Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.PrecioFinal.Equal(decimal.NewFromInt(75)), "precio_final = %s", resp.PrecioFinal)
}

func TestComboActualizar_RecalculaAlCambiarMembresia(t *testing.T) {
	productoRepo := newStubProductoRepo()
	p1, p2 := seedComboProductos(productoRepo)
	svc := NewComboService(newStubComboRepo(), productoRepo)

	creado, err := svc.Crear(context.Background(), dto.CrearComboRequest{
		Nombre:       "Combo",
		ProductosIDs: []string{p1.ID.String(), p2.ID.String()},
		Descuento:    decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	// drop papas: 100 * 0.8 = 80
	id, _ := uuid.Parse(creado.ID)
	resp, err := svc.Actualizar(context.Background(), id, dto.ActualizarComboRequest{
		ProductosIDs: []string{p1.ID.String()},
	})
	require.NoError(t, err)
	assert.True(t, resp.PrecioCombo.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.PrecioFinal.Equal(decimal.NewFromInt(80)))
}

func TestComboCrear_NombreDuplicado(t *testing.T) {
	productoRepo := newStubProductoRepo()
	p1, _ := seedComboProductos(productoRepo)
	svc := NewComboService(newStubComboRepo(), productoRepo)

	req := dto.CrearComboRequest{Nombre: "Repetido", ProductosIDs: []string{p1.ID.String()}}
	_, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}
