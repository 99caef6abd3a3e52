package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"puntoventa/internal/arqueo"
	"puntoventa/internal/dto"
	"puntoventa/internal/fecha"
	"puntoventa/internal/model"
	"puntoventa/internal/repository"
)

// CajaService is the drawer lifecycle state machine: CLOSED → Abrir → OPEN
// → (RegistrarVenta / RegistrarMovimiento)* → Cerrar → CLOSED. Every
// mutation is persisted before returning so a process restart never loses a
// recorded sale.
type CajaService interface {
	Abrir(ctx context.Context, req dto.AbrirCajaRequest) (*dto.SesionCajaResponse, error)
	// RegistrarVenta is called by VentaService once per completed order.
	RegistrarVenta(ctx context.Context, metodo string, monto decimal.Decimal) error
	RegistrarMovimiento(ctx context.Context, req dto.MovimientoManualRequest) error
	Cerrar(ctx context.Context, req dto.CerrarCajaRequest) (*dto.CierreCajaResponse, error)
	// SesionActual returns the open session for display, nil when closed.
	SesionActual(ctx context.Context) (*dto.SesionCajaResponse, error)
	// ArqueoPrevia is the close-preview: expected amounts before counting.
	ArqueoPrevia(ctx context.Context) (*dto.ArqueoPreviaResponse, error)
	Historial(ctx context.Context, page, limit int) ([]dto.CierreCajaResponse, int64, error)
}

type cajaService struct {
	repo repository.CajaRepository
	tz   *time.Location
}

func NewCajaService(repo repository.CajaRepository, tz *time.Location) CajaService {
	return &cajaService{repo: repo, tz: tz}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *cajaService) Abrir(ctx context.Context, req dto.AbrirCajaRequest) (*dto.SesionCajaResponse, error) {
	if req.MontoInicial.IsNegative() {
		return nil, fmt.Errorf("%w: monto inicial %s", ErrMontoInvalido, req.MontoInicial)
	}

	// Guard: single till, single open session
	if existing, err := s.repo.CargarActual(ctx); err != nil {
		return nil, err
	} else if existing.Abierta() {
		return nil, ErrCajaYaAbierta
	}

	ahora := time.Now()
	sesion := &model.SesionCaja{
		ID:           uuid.New(),
		Estado:       model.EstadoAbierta,
		ClaveDia:     fecha.ClaveDia(ahora, s.tz),
		Operador:     req.Operador,
		MontoInicial: req.MontoInicial,
		NotaApertura: req.Nota,

		// All accumulators start at zero; nothing carries over between
		// sessions, not even within the same business day.
		VentasEfectivo:      decimal.Zero,
		VentasTarjeta:       decimal.Zero,
		VentasTransferencia: decimal.Zero,
		IngresosManuales:    decimal.Zero,
		EgresosManuales:     decimal.Zero,

		AbiertaEn: ahora,
	}
	if err := s.repo.GuardarActual(ctx, sesion); err != nil {
		return nil, err
	}

	log.Info().
		Str("sesion_id", sesion.ID.String()).
		Str("operador", sesion.Operador).
		Str("clave_dia", sesion.ClaveDia).
		Str("monto_inicial", sesion.MontoInicial.String()).
		Msg("caja abierta")

	return sesionToResponse(sesion), nil
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// One-way accumulation: there is no undo. A mistaken sale is compensated by
// a manual movement, never by decrementing a total.

func (s *cajaService) RegistrarVenta(ctx context.Context, metodo string, monto decimal.Decimal) error {
	if !monto.IsPositive() {
		return fmt.Errorf("%w: %s", ErrMontoInvalido, monto)
	}

	sesion, err := s.repo.CargarActual(ctx)
	if err != nil {
		return err
	}
	if !sesion.Abierta() {
		return ErrCajaNoAbierta
	}

	if !sesion.AcumularVenta(metodo, monto) {
		return fmt.Errorf("%w: %q", ErrMetodoDesconocido, metodo)
	}
	return s.repo.GuardarActual(ctx, sesion)
}

// ── RegistrarMovimiento ───────────────────────────────────────────────────────

func (s *cajaService) RegistrarMovimiento(ctx context.Context, req dto.MovimientoManualRequest) error {
	if !req.Monto.IsPositive() {
		return fmt.Errorf("%w: %s", ErrMontoInvalido, req.Monto)
	}

	sesion, err := s.repo.CargarActual(ctx)
	if err != nil {
		return err
	}
	if !sesion.Abierta() {
		return ErrCajaNoAbierta
	}

	switch req.Tipo {
	case model.MovimientoIngreso:
		sesion.IngresosManuales = sesion.IngresosManuales.Add(req.Monto)
	case model.MovimientoEgreso:
		// Egresos are not capped by drawer contents. An over-withdrawal
		// simply shows up as negative expected cash at close.
		sesion.EgresosManuales = sesion.EgresosManuales.Add(req.Monto)
	default:
		return fmt.Errorf("%w: %q", ErrTipoMovimientoDesconocido, req.Tipo)
	}
	return s.repo.GuardarActual(ctx, sesion)
}

// ── Cerrar ────────────────────────────────────────────────────────────────────
// Computes the arqueo, appends the immutable cierre to history, then clears
// the current session. History first: losing the open row without its
// cierre would silently erase the day's numbers.

func (s *cajaService) Cerrar(ctx context.Context, req dto.CerrarCajaRequest) (*dto.CierreCajaResponse, error) {
	if req.EfectivoContado.IsNegative() {
		return nil, fmt.Errorf("%w: efectivo contado %s", ErrMontoInvalido, req.EfectivoContado)
	}

	sesion, err := s.repo.CargarActual(ctx)
	if err != nil {
		return nil, err
	}
	if !sesion.Abierta() {
		return nil, ErrCajaNoAbierta
	}

	esperado := arqueo.EfectivoEsperado(sesion)
	descuadre := arqueo.Descuadre(sesion, req.EfectivoContado)

	cierre := &model.CierreCaja{
		ID:       uuid.New(),
		SesionID: sesion.ID,
		ClaveDia: sesion.ClaveDia,
		Operador: sesion.Operador,

		MontoInicial:        sesion.MontoInicial,
		VentasEfectivo:      sesion.VentasEfectivo,
		VentasTarjeta:       sesion.VentasTarjeta,
		VentasTransferencia: sesion.VentasTransferencia,
		IngresosManuales:    sesion.IngresosManuales,
		EgresosManuales:     sesion.EgresosManuales,

		NotaApertura: sesion.NotaApertura,
		NotaCierre:   req.NotaCierre,

		EfectivoContado:  req.EfectivoContado,
		EfectivoEsperado: esperado,
		Descuadre:        descuadre,

		AbiertaEn: sesion.AbiertaEn,
		CerradaEn: time.Now(),
	}

	if err := s.repo.AgregarCierre(ctx, cierre); err != nil {
		return nil, err
	}
	if err := s.repo.LimpiarActual(ctx, sesion.ID.String()); err != nil {
		// The cierre exists; the stale open row would block the next Abrir.
		// Surface it so the operator retries the close.
		return nil, fmt.Errorf("cierre registrado pero la sesion no pudo limpiarse: %w", err)
	}

	log.Info().
		Str("sesion_id", sesion.ID.String()).
		Str("clave_dia", sesion.ClaveDia).
		Str("esperado", esperado.String()).
		Str("contado", req.EfectivoContado.String()).
		Str("descuadre", descuadre.String()).
		Msg("caja cerrada")

	resp := cierreToResponse(cierre)
	resp.Lineas = arqueo.Lineas(sesion, req.EfectivoContado)
	return resp, nil
}

// ── Read accessors ────────────────────────────────────────────────────────────

func (s *cajaService) SesionActual(ctx context.Context) (*dto.SesionCajaResponse, error) {
	sesion, err := s.repo.CargarActual(ctx)
	if err != nil || sesion == nil {
		return nil, err
	}
	return sesionToResponse(sesion), nil
}

func (s *cajaService) ArqueoPrevia(ctx context.Context) (*dto.ArqueoPreviaResponse, error) {
	sesion, err := s.repo.CargarActual(ctx)
	if err != nil {
		return nil, err
	}
	if !sesion.Abierta() {
		return nil, ErrCajaNoAbierta
	}
	esperado := arqueo.EfectivoEsperado(sesion)
	return &dto.ArqueoPreviaResponse{
		SesionID:         sesion.ID.String(),
		EfectivoEsperado: esperado,
		// Preview counts nothing yet: contado mirrors esperado so every
		// línea renders with a zero descuadre.
		Lineas: arqueo.Lineas(sesion, esperado),
	}, nil
}

func (s *cajaService) Historial(ctx context.Context, page, limit int) ([]dto.CierreCajaResponse, int64, error) {
	cierres, total, err := s.repo.ListarCierres(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.CierreCajaResponse, 0, len(cierres))
	for i := range cierres {
		out = append(out, *cierreToResponse(&cierres[i]))
	}
	return out, total, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func sesionToResponse(s *model.SesionCaja) *dto.SesionCajaResponse {
	return &dto.SesionCajaResponse{
		SesionID:     s.ID.String(),
		Estado:       s.Estado,
		ClaveDia:     s.ClaveDia,
		Operador:     s.Operador,
		MontoInicial: s.MontoInicial,
		NotaApertura: s.NotaApertura,

		VentasEfectivo:      s.VentasEfectivo,
		VentasTarjeta:       s.VentasTarjeta,
		VentasTransferencia: s.VentasTransferencia,
		IngresosManuales:    s.IngresosManuales,
		EgresosManuales:     s.EgresosManuales,

		AbiertaEn: s.AbiertaEn.Format(time.RFC3339),
	}
}

func cierreToResponse(c *model.CierreCaja) *dto.CierreCajaResponse {
	return &dto.CierreCajaResponse{
		CierreID: c.ID.String(),
		SesionID: c.SesionID.String(),
		ClaveDia: c.ClaveDia,
		Operador: c.Operador,

		MontoInicial:        c.MontoInicial,
		VentasEfectivo:      c.VentasEfectivo,
		VentasTarjeta:       c.VentasTarjeta,
		VentasTransferencia: c.VentasTransferencia,
		IngresosManuales:    c.IngresosManuales,
		EgresosManuales:     c.EgresosManuales,

		NotaApertura: c.NotaApertura,
		NotaCierre:   c.NotaCierre,

		EfectivoContado:  c.EfectivoContado,
		EfectivoEsperado: c.EfectivoEsperado,
		Descuadre:        c.Descuadre,

		AbiertaEn: c.AbiertaEn.Format(time.RFC3339),
		CerradaEn: c.CerradaEn.Format(time.RFC3339),
	}
}
