package pricing

import (
	"testing"
	"time"

	"comidapp/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productos(precios ...float64) []model.Producto {
	out := make([]model.Producto, 0, len(precios))
	for _, p := range precios {
		out = append(out, model.Producto{Precio: decimal.NewFromFloat(p)})
	}
	return out
}

func TestComboPricing_DosProductosConDescuento(t *testing.T) {
	// 100 + 50 con 20% → precioCombo=150, precioFinal=120
	base, final := ComboPricing(productos(100, 50), decimal.NewFromInt(20))
	assert.True(t, base.Equal(decimal.NewFromInt(150)), "precioCombo = %s", base)
	assert.True(t, final.Equal(decimal.NewFromInt(120)), "precioFinal = %s", final)
}

func TestComboPricing_SinDescuento(t *testing.T) {
	base, final := ComboPricing(productos(10.50, 4.25), decimal.Zero)
	assert.True(t, base.Equal(decimal.NewFromFloat(14.75)))
	assert.True(t, final.Equal(base))
}

func TestComboPricing_DescuentoCien_FuerzaCeroExacto(t *testing.T) {
	// Prices chosen so the naive formula would leave a rounding residue.
	_, final := ComboPricing(productos(33.33, 66.67), decimal.NewFromInt(100))
	assert.True(t, final.IsZero(), "precioFinal debe ser exactamente 0, fue %s", final)
}

func TestComboPricing_DescuentoFueraDeRango_SeClampa(t *testing.T) {
	base, final := ComboPricing(productos(100), decimal.NewFromInt(150))
	assert.True(t, base.Equal(decimal.NewFromInt(100)))
	assert.True(t, final.IsZero())

	_, final = ComboPricing(productos(100), decimal.NewFromInt(-10))
	assert.True(t, final.Equal(decimal.NewFromInt(100)))
}

func TestComboPricing_InvarianteDerivada(t *testing.T) {
	// precioFinal == precioCombo·(1−descuento/100) para todo descuento válido.
	for _, pct := range []int64{0, 1, 15, 33, 50, 75, 99} {
		base, final := ComboPricing(productos(80, 19.99), decimal.NewFromInt(pct))
		factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(pct).Div(decimal.NewFromInt(100)))
		esperado := base.Mul(factor).Round(2)
		assert.True(t, final.Equal(esperado), "descuento=%d: %s != %s", pct, final, esperado)
	}
}

func TestAplicarDescuentoOferta(t *testing.T) {
	r, err := AplicarDescuentoOferta(decimal.NewFromInt(200), decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.True(t, r.Equal(decimal.NewFromInt(150)))
}

func TestAplicarDescuentoOferta_PrecioNegativo(t *testing.T) {
	_, err := AplicarDescuentoOferta(decimal.NewFromInt(-1), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrPrecioNegativo)
}

func TestAplicarDescuentoOferta_CienPorCiento_SinPisoCero(t *testing.T) {
	// Ofertas keep the plain formula at 100%; only combos force exact zero.
	r, err := AplicarDescuentoOferta(decimal.NewFromFloat(99.99), decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, r.Equal(decimal.Zero.Round(2)), "resultado = %s", r)
}

func TestOfertaVigente(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	o := &model.Oferta{
		Estado:      true,
		FechaInicio: now.Add(-24 * time.Hour),
		FechaFin:    now.Add(24 * time.Hour),
	}
	assert.True(t, OfertaVigente(o, now))

	t.Run("estado_false", func(t *testing.T) {
		inactiva := *o
		inactiva.Estado = false
		assert.False(t, OfertaVigente(&inactiva, now))
	})
	t.Run("antes_de_inicio", func(t *testing.T) {
		assert.False(t, OfertaVigente(o, o.FechaInicio.Add(-time.Second)))
	})
	t.Run("despues_de_fin", func(t *testing.T) {
		assert.False(t, OfertaVigente(o, o.FechaFin.Add(time.Second)))
	})
	t.Run("bordes_inclusivos", func(t *testing.T) {
		assert.True(t, OfertaVigente(o, o.FechaInicio))
		assert.True(t, OfertaVigente(o, o.FechaFin))
	})
}
