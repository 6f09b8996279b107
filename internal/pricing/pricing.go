// Package pricing keeps derived monetary fields consistent whenever a Combo or
// Oferta changes. Every function is pure: callers invoke them at each mutation
// site and persist the result, so a derived field is always a function of its
// inputs and never independently mutable.
package pricing

import (
	"errors"
	"time"

	"comidapp/internal/model"

	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// ErrPrecioNegativo is returned by AplicarDescuentoOferta for negative inputs.
var ErrPrecioNegativo = errors.New("el precio original no puede ser negativo")

// ClampDescuento restricts a discount percentage to [0,100].
func ClampDescuento(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(cien) {
		return cien
	}
	return pct
}

// ComboPricing computes both derived prices of a combo from its member
// products and discount percentage:
//
//	precioCombo = Σ precio
//	precioFinal = precioCombo · (1 − descuento/100)
//
// At descuento=100 the final price is forced to exactly zero so decimal
// rounding can never leave a residue.
func ComboPricing(productos []model.Producto, descuento decimal.Decimal) (precioCombo, precioFinal decimal.Decimal) {
	precioCombo = decimal.Zero
	for _, p := range productos {
		precioCombo = precioCombo.Add(p.Precio)
	}
	pct := ClampDescuento(descuento)
	if pct.Equal(cien) {
		return precioCombo, decimal.Zero
	}
	factor := decimal.NewFromInt(1).Sub(pct.Div(cien))
	return precioCombo, precioCombo.Mul(factor).Round(2)
}

// AplicarDescuentoOferta applies an offer discount to a single price.
// Unlike ComboPricing there is no zero-floor at 100%: the plain formula is
// used for every percentage. This asymmetry is intentional and mirrors how
// combos and offers have always behaved differently.
func AplicarDescuentoOferta(precioOriginal, descuento decimal.Decimal) (decimal.Decimal, error) {
	if precioOriginal.IsNegative() {
		return decimal.Zero, ErrPrecioNegativo
	}
	pct := ClampDescuento(descuento)
	factor := decimal.NewFromInt(1).Sub(pct.Div(cien))
	return precioOriginal.Mul(factor).Round(2), nil
}

// OfertaVigente reports whether the offer applies at the given instant:
// estado ∧ fechaInicio ≤ now ≤ fechaFin.
func OfertaVigente(o *model.Oferta, now time.Time) bool {
	if o == nil || !o.Estado {
		return false
	}
	return !now.Before(o.FechaInicio) && !now.After(o.FechaFin)
}
