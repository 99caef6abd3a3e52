package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"puntoventa/internal/model"
)

// CajaRepository is the durable session store: at most one current (open)
// session plus the append-only cierre history. Single active writer by
// construction — the design does not support two tills sharing a store.
type CajaRepository interface {
	// CargarActual returns the open session, or nil when there is none.
	// A row that exists but cannot be decoded degrades to nil (logged):
	// corrupt state must not take checkout down. Infrastructure failures
	// (connection down, query error) are returned as-is.
	CargarActual(ctx context.Context) (*model.SesionCaja, error)
	// GuardarActual upserts the current session. Called after every
	// accumulator mutation so a restart never loses a recorded sale.
	GuardarActual(ctx context.Context, s *model.SesionCaja) error
	// LimpiarActual removes the current session row after a successful close.
	LimpiarActual(ctx context.Context, id string) error
	// AgregarCierre appends one immutable record to history. Insert-only.
	AgregarCierre(ctx context.Context, c *model.CierreCaja) error
	ListarCierres(ctx context.Context, page, limit int) ([]model.CierreCaja, int64, error)
}

type cajaRepo struct{ db *gorm.DB }

func NewCajaRepository(db *gorm.DB) CajaRepository { return &cajaRepo{db: db} }

func (r *cajaRepo) CargarActual(ctx context.Context) (*model.SesionCaja, error) {
	var s model.SesionCaja
	err := r.db.WithContext(ctx).Where("estado = ?", model.EstadoAbierta).First(&s).Error
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	}

	// Distinguish an unreadable row from an unreachable store: if the row can
	// still be counted, the connection works and the row itself is the problem
	// (manual edits, partial migration). Only then assume "sin sesion".
	// A caida de base de datos must surface as an error, not as caja cerrada.
	var abiertas int64
	probe := r.db.WithContext(ctx).
		Model(&model.SesionCaja{}).
		Where("estado = ?", model.EstadoAbierta).
		Count(&abiertas).Error
	if probe == nil && abiertas > 0 {
		log.Warn().Err(err).Msg("sesion de caja ilegible, se asume sin sesion")
		return nil, nil
	}
	return nil, err
}

func (r *cajaRepo) GuardarActual(ctx context.Context, s *model.SesionCaja) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *cajaRepo) LimpiarActual(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SesionCaja{}).Error
}

func (r *cajaRepo) AgregarCierre(ctx context.Context, c *model.CierreCaja) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cajaRepo) ListarCierres(ctx context.Context, page, limit int) ([]model.CierreCaja, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.CierreCaja{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var cierres []model.CierreCaja
	err := r.db.WithContext(ctx).
		Order("cerrada_en DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&cierres).Error
	return cierres, total, err
}
