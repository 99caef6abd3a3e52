package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted by the POS. Anything else is rejected at the
// service layer — an unknown method must never be dropped silently.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTarjeta       = "tarjeta"
	MetodoTransferencia = "transferencia"
)

// Manual cash movement kinds. Ingresos put cash into the drawer, egresos
// take it out. Sales are not movements; they land on the per-method
// accumulators directly.
const (
	MovimientoIngreso = "ingreso_manual"
	MovimientoEgreso  = "egreso_manual"
)

const (
	EstadoAbierta = "abierta"
	EstadoCerrada = "cerrada"
)

// SesionCaja is the single open drawer session: one row with
// estado='abierta', enforced at most once by a partial unique index
// (see infra.NewDatabase). The five accumulators only ever grow while the
// session is open; an adjustment is a compensating movement of the opposite
// kind, never a decrement.
type SesionCaja struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Estado       string          `gorm:"type:varchar(20);not null;default:'abierta'"`
	ClaveDia     string          `gorm:"type:varchar(10);not null;index"`
	Operador     string          `gorm:"type:varchar(100);not null"`
	MontoInicial decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	NotaApertura string

	VentasEfectivo      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	VentasTarjeta       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	VentasTransferencia decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	IngresosManuales    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	EgresosManuales     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	AbiertaEn time.Time
}

func (SesionCaja) TableName() string { return "sesiones_caja" }

// Abierta reports whether the session is accepting sales and movements.
func (s *SesionCaja) Abierta() bool { return s != nil && s.Estado == EstadoAbierta }

// AcumularVenta routes a sale amount to the accumulator of its payment
// method. Returns false for an unknown method; the caller decides how loud
// to be about it.
func (s *SesionCaja) AcumularVenta(metodo string, monto decimal.Decimal) bool {
	switch metodo {
	case MetodoEfectivo:
		s.VentasEfectivo = s.VentasEfectivo.Add(monto)
	case MetodoTarjeta:
		s.VentasTarjeta = s.VentasTarjeta.Add(monto)
	case MetodoTransferencia:
		s.VentasTransferencia = s.VentasTransferencia.Add(monto)
	default:
		return false
	}
	return true
}

// CierreCaja is the immutable snapshot appended to history when a session is
// closed. Rows are insert-only; nothing in the codebase updates or deletes
// them. Ordering by cerrada_en is the reader's job, not a storage guarantee.
type CierreCaja struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SesionID uuid.UUID `gorm:"type:uuid;not null;index"`
	ClaveDia string    `gorm:"type:varchar(10);not null;index"`
	Operador string    `gorm:"type:varchar(100);not null"`

	MontoInicial        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	VentasEfectivo      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	VentasTarjeta       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	VentasTransferencia decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	IngresosManuales    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	EgresosManuales     decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	NotaApertura string
	NotaCierre   string

	// EfectivoContado is taken as declared by the operator; there is no
	// cross-check against a physical device.
	EfectivoContado  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	EfectivoEsperado decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	// Descuadre = contado - esperado. Positive: sobrante. Negative: faltante.
	Descuadre decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	AbiertaEn time.Time
	CerradaEn time.Time
}

func (CierreCaja) TableName() string { return "cierres_caja" }
