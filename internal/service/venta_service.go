package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"puntoventa/internal/dto"
	"puntoventa/internal/fecha"
	"puntoventa/internal/model"
	"puntoventa/internal/repository"
)

// VentaService is the seam between checkout and the caja. Checkout calls
// VentaCompletada exactly once per order, after the order exists durably on
// its side; dashboards read TotalesActuales and StatsHoy. No business logic
// lives here — it delegates to CajaService and keeps the derived Redis day
// counters in step.
type VentaService interface {
	VentaCompletada(ctx context.Context, req dto.VentaCompletadaRequest) error
	MovimientoManual(ctx context.Context, req dto.MovimientoManualRequest) error
	TotalesActuales(ctx context.Context) (*dto.SesionCajaResponse, error)
	StatsHoy(ctx context.Context) (*dto.StatsDiaResponse, error)
}

type ventaService struct {
	caja  CajaService
	stats repository.StatsRepository
	tz    *time.Location
}

func NewVentaService(caja CajaService, stats repository.StatsRepository, tz *time.Location) VentaService {
	return &ventaService{caja: caja, stats: stats, tz: tz}
}

func (s *ventaService) VentaCompletada(ctx context.Context, req dto.VentaCompletadaRequest) error {
	// Session row first: it is the authoritative record. Validation
	// (estado, monto, metodo) happens there.
	if err := s.caja.RegistrarVenta(ctx, req.MetodoPago, req.Monto); err != nil {
		return err
	}

	// Day counters are display-only; a Redis hiccup must not fail a sale
	// that is already recorded on the session.
	claveDia := fecha.ClaveDia(time.Now(), s.tz)
	if err := s.stats.BumpVenta(ctx, claveDia, req.MetodoPago, req.Monto); err != nil {
		log.Warn().Err(err).
			Str("clave_dia", claveDia).
			Str("metodo", req.MetodoPago).
			Msg("no se pudo actualizar stats del dia")
	}
	return nil
}

func (s *ventaService) MovimientoManual(ctx context.Context, req dto.MovimientoManualRequest) error {
	return s.caja.RegistrarMovimiento(ctx, req)
}

func (s *ventaService) TotalesActuales(ctx context.Context) (*dto.SesionCajaResponse, error) {
	return s.caja.SesionActual(ctx)
}

func (s *ventaService) StatsHoy(ctx context.Context) (*dto.StatsDiaResponse, error) {
	claveDia := fecha.ClaveDia(time.Now(), s.tz)
	sums, ordenes, err := s.stats.StatsDia(ctx, claveDia)
	if err != nil {
		return nil, err
	}
	return &dto.StatsDiaResponse{
		ClaveDia:      claveDia,
		Efectivo:      sums[model.MetodoEfectivo],
		Tarjeta:       sums[model.MetodoTarjeta],
		Transferencia: sums[model.MetodoTransferencia],
		Ordenes:       ordenes,
	}, nil
}
