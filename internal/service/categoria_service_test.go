package service

import (
	"context"
	"testing"

	"comidapp/internal/apierror"
	"comidapp/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoriaFixture() (CategoriaService, *stubCategoriaRepo, *stubProductoRepo) {
	catRepo := newStubCategoriaRepo()
	prodRepo := newStubProductoRepo()
	return NewCategoriaService(catRepo, prodRepo), catRepo, prodRepo
}

func TestCategoriaEliminar_ActivaSinProductos(t *testing.T) {
	svc, catRepo, _ := categoriaFixture()
	cat := catRepo.seed("Bebidas") // seeded active, no products

	err := svc.Eliminar(context.Background(), cat.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))

	_, err = catRepo.ObtenerPorID(context.Background(), cat.ID)
	assert.NoError(t, err, "la categoria debe seguir existiendo")
}

func TestCategoriaEliminar_InactivaConProductos(t *testing.T) {
	svc, catRepo, prodRepo := categoriaFixture()
	cat := catRepo.seed("Postres")
	cat.Estado = false
	prodRepo.seed(model.Producto{
		Nombre: "Flan", Precio: decimal.RequireFromString("30"),
		CategoriaID: cat.ID, Disponible: true, Stock: 5,
	})

	err := svc.Eliminar(context.Background(), cat.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestCategoriaEliminar_InactivaSinProductos(t *testing.T) {
	svc, catRepo, _ := categoriaFixture()
	cat := catRepo.seed("Temporada")
	cat.Estado = false

	require.NoError(t, svc.Eliminar(context.Background(), cat.ID))

	_, err := catRepo.ObtenerPorID(context.Background(), cat.ID)
	assert.Error(t, err)
}
