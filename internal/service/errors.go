package service

import "errors"

// Validation and state errors surfaced synchronously to callers. Handlers
// map them to HTTP status codes with errors.Is; messages are user-facing.
var (
	// ErrCajaYaAbierta: open requested while a session is already open.
	// The legacy behavior silently overwrote the open session and discarded
	// its totals; that was a defect, not a feature.
	ErrCajaYaAbierta = errors.New("ya existe una caja abierta")

	// ErrCajaNoAbierta: sale, movement or close attempted with no open
	// session. Closing a closed caja must never produce a history record.
	ErrCajaNoAbierta = errors.New("no hay caja abierta")

	// ErrMontoInvalido: zero or negative amount.
	ErrMontoInvalido = errors.New("monto invalido: debe ser mayor a cero")

	// ErrMetodoDesconocido: payment method outside efectivo/tarjeta/transferencia.
	ErrMetodoDesconocido = errors.New("metodo de pago desconocido")

	// ErrTipoMovimientoDesconocido: movement kind outside ingreso/egreso manual.
	ErrTipoMovimientoDesconocido = errors.New("tipo de movimiento desconocido")
)
