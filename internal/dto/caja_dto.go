package dto

import (
	"github.com/shopspring/decimal"

	"puntoventa/internal/arqueo"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCajaRequest struct {
	MontoInicial decimal.Decimal `json:"monto_inicial" validate:"min=0"`
	Nota         string          `json:"nota"`
	Operador     string          `json:"operador"      validate:"required,min=1"`
}

type MovimientoManualRequest struct {
	Tipo        string          `json:"tipo"        validate:"required,oneof=ingreso_manual egreso_manual"`
	Monto       decimal.Decimal `json:"monto"       validate:"required"`
	Descripcion string          `json:"descripcion"`
}

type CerrarCajaRequest struct {
	EfectivoContado decimal.Decimal `json:"efectivo_contado" validate:"min=0"`
	NotaCierre      string          `json:"nota_cierre"`
}

// VentaCompletadaRequest is what checkout reports once per order, after the
// order exists durably on its side. The caja never sees line items.
type VentaCompletadaRequest struct {
	MetodoPago string          `json:"metodo_pago" validate:"required"`
	Monto      decimal.Decimal `json:"monto"       validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SesionCajaResponse struct {
	SesionID     string          `json:"sesion_id"`
	Estado       string          `json:"estado"`
	ClaveDia     string          `json:"clave_dia"`
	Operador     string          `json:"operador"`
	MontoInicial decimal.Decimal `json:"monto_inicial"`
	NotaApertura string          `json:"nota_apertura"`

	VentasEfectivo      decimal.Decimal `json:"ventas_efectivo"`
	VentasTarjeta       decimal.Decimal `json:"ventas_tarjeta"`
	VentasTransferencia decimal.Decimal `json:"ventas_transferencia"`
	IngresosManuales    decimal.Decimal `json:"ingresos_manuales"`
	EgresosManuales     decimal.Decimal `json:"egresos_manuales"`

	AbiertaEn string `json:"abierta_en"`
}

// ArqueoPreviaResponse is the close-preview screen: expected amounts before
// the operator declares a count.
type ArqueoPreviaResponse struct {
	SesionID         string          `json:"sesion_id"`
	EfectivoEsperado decimal.Decimal `json:"efectivo_esperado"`
	Lineas           []arqueo.Linea  `json:"lineas"`
}

type CierreCajaResponse struct {
	CierreID string `json:"cierre_id"`
	SesionID string `json:"sesion_id"`
	ClaveDia string `json:"clave_dia"`
	Operador string `json:"operador"`

	MontoInicial        decimal.Decimal `json:"monto_inicial"`
	VentasEfectivo      decimal.Decimal `json:"ventas_efectivo"`
	VentasTarjeta       decimal.Decimal `json:"ventas_tarjeta"`
	VentasTransferencia decimal.Decimal `json:"ventas_transferencia"`
	IngresosManuales    decimal.Decimal `json:"ingresos_manuales"`
	EgresosManuales     decimal.Decimal `json:"egresos_manuales"`

	NotaApertura string `json:"nota_apertura"`
	NotaCierre   string `json:"nota_cierre"`

	EfectivoContado  decimal.Decimal `json:"efectivo_contado"`
	EfectivoEsperado decimal.Decimal `json:"efectivo_esperado"`
	Descuadre        decimal.Decimal `json:"descuadre"`
	Lineas           []arqueo.Linea  `json:"lineas,omitempty"`

	AbiertaEn string `json:"abierta_en"`
	CerradaEn string `json:"cerrada_en"`
}

// StatsDiaResponse are the day-scoped dashboard counters kept in Redis.
// Derived data: the session row is authoritative, these are display-only.
type StatsDiaResponse struct {
	ClaveDia      string          `json:"clave_dia"`
	Efectivo      decimal.Decimal `json:"efectivo"`
	Tarjeta       decimal.Decimal `json:"tarjeta"`
	Transferencia decimal.Decimal `json:"transferencia"`
	Ordenes       int64           `json:"ordenes"`
}
