package arqueo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa/internal/arqueo"
	"puntoventa/internal/model"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func sesion(inicial, efectivo, tarjeta, transfer, ingresos, egresos int64) *model.SesionCaja {
	return &model.SesionCaja{
		Estado:              model.EstadoAbierta,
		MontoInicial:        d(inicial),
		VentasEfectivo:      d(efectivo),
		VentasTarjeta:       d(tarjeta),
		VentasTransferencia: d(transfer),
		IngresosManuales:    d(ingresos),
		EgresosManuales:     d(egresos),
	}
}

func TestEfectivoEsperado(t *testing.T) {
	// opening + cash sales + ingresos - egresos; card/transfer excluded
	s := sesion(100000, 20000, 15000, 8000, 0, 5000)
	assert.Equal(t, "115000", arqueo.EfectivoEsperado(s).String())
}

func TestEfectivoEsperadoSoloEfectivo(t *testing.T) {
	// Card and transfer sales never touch the drawer.
	conTarjeta := sesion(50000, 10000, 99999, 88888, 2000, 1000)
	sinTarjeta := sesion(50000, 10000, 0, 0, 2000, 1000)
	assert.True(t, arqueo.EfectivoEsperado(conTarjeta).Equal(arqueo.EfectivoEsperado(sinTarjeta)))
}

func TestDescuadreCuadrado(t *testing.T) {
	s := sesion(100000, 20000, 15000, 0, 0, 5000)
	assert.True(t, arqueo.Descuadre(s, d(115000)).IsZero())
}

func TestDescuadreFaltante(t *testing.T) {
	s := sesion(100000, 20000, 15000, 0, 0, 5000)
	assert.Equal(t, "-5000", arqueo.Descuadre(s, d(110000)).String())
}

func TestDescuadreSobrante(t *testing.T) {
	s := sesion(100000, 20000, 0, 0, 0, 5000)
	assert.Equal(t, "2500", arqueo.Descuadre(s, d(117500)).String())
}

func TestEsperadoNegativoPorSobregiro(t *testing.T) {
	// Egresos are not capped by drawer contents: an over-withdrawal leaves
	// a negative expected cash, and the descuadre reflects it.
	s := sesion(10000, 0, 0, 0, 0, 25000)
	assert.Equal(t, "-15000", arqueo.EfectivoEsperado(s).String())
	assert.Equal(t, "15000", arqueo.Descuadre(s, d(0)).String())
}

func TestSinDerivaPorSumasRepetidas(t *testing.T) {
	// Exact decimal arithmetic: a long run of odd amounts must reconcile
	// to the paper sum, not to a float approximation.
	s := sesion(0, 0, 0, 0, 0, 0)
	total := decimal.Zero
	monto := decimal.RequireFromString("3333.33")
	for i := 0; i < 3000; i++ {
		s.VentasEfectivo = s.VentasEfectivo.Add(monto)
		total = total.Add(monto)
	}
	require.True(t, arqueo.EfectivoEsperado(s).Equal(total))
	assert.True(t, total.Equal(decimal.RequireFromString("9999990")))
}

func TestLineas(t *testing.T) {
	s := sesion(100000, 20000, 15000, 8000, 0, 5000)
	lineas := arqueo.Lineas(s, d(110000))
	require.Len(t, lineas, 3)

	assert.Equal(t, model.MetodoEfectivo, lineas[0].Metodo)
	assert.Equal(t, "115000", lineas[0].Esperado.String())
	assert.Equal(t, "-5000", lineas[0].Descuadre.String())

	// Non-cash lines carry their totals with a zero descuadre by definition.
	assert.Equal(t, model.MetodoTarjeta, lineas[1].Metodo)
	assert.Equal(t, "15000", lineas[1].Esperado.String())
	assert.True(t, lineas[1].Descuadre.IsZero())

	assert.Equal(t, model.MetodoTransferencia, lineas[2].Metodo)
	assert.Equal(t, "8000", lineas[2].Esperado.String())
	assert.True(t, lineas[2].Descuadre.IsZero())
}
