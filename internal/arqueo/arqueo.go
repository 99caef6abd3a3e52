// Package arqueo computes the close-time reconciliation of a cash session:
// expected drawer cash versus what the operator physically counted. Pure
// functions only — persistence and state checks live in the service layer.
package arqueo

import (
	"github.com/shopspring/decimal"

	"puntoventa/internal/model"
)

// EfectivoEsperado is the cash that should be in the drawer at close:
// opening float plus cash-method sales plus manual ingresos minus manual
// egresos. Card and transfer sales never touch the drawer, so they are
// excluded here on purpose. Egresos are not capped by drawer contents, so
// the result can go negative after an over-withdrawal.
func EfectivoEsperado(s *model.SesionCaja) decimal.Decimal {
	return s.MontoInicial.
		Add(s.VentasEfectivo).
		Add(s.IngresosManuales).
		Sub(s.EgresosManuales)
}

// Descuadre is contado - esperado. Positive means the drawer holds more
// than expected (sobrante), negative means a faltante.
func Descuadre(s *model.SesionCaja, contado decimal.Decimal) decimal.Decimal {
	return contado.Sub(EfectivoEsperado(s))
}

// Linea is one per-method reconciliation row of the arqueo report.
type Linea struct {
	Metodo    string          `json:"metodo"`
	Esperado  decimal.Decimal `json:"esperado"`
	Contado   decimal.Decimal `json:"contado"`
	Descuadre decimal.Decimal `json:"descuadre"`
}

// Lineas builds the full arqueo report. Only the efectivo line carries a
// real count; tarjeta and transferencia are reported with their accumulated
// totals and a zero descuadre by definition — there is nothing physical to
// count against them.
func Lineas(s *model.SesionCaja, contado decimal.Decimal) []Linea {
	esperado := EfectivoEsperado(s)
	return []Linea{
		{
			Metodo:    model.MetodoEfectivo,
			Esperado:  esperado,
			Contado:   contado,
			Descuadre: contado.Sub(esperado),
		},
		{
			Metodo:    model.MetodoTarjeta,
			Esperado:  s.VentasTarjeta,
			Contado:   s.VentasTarjeta,
			Descuadre: decimal.Zero,
		},
		{
			Metodo:    model.MetodoTransferencia,
			Esperado:  s.VentasTransferencia,
			Contado:   s.VentasTransferencia,
			Descuadre: decimal.Zero,
		},
	}
}
