package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"puntoventa/internal/model"
)

// statsTTL keeps day counters around long enough for end-of-day reports and
// lets yesterday's keys expire on their own.
const statsTTL = 48 * time.Hour

// StatsRepository keeps the day-scoped sale counters and the order counter
// in Redis, keyed by clave_dia so a new business day always starts from
// zero. These are derived, display-only numbers — the session row is the
// authoritative record.
type StatsRepository interface {
	// BumpVenta accumulates one sale on the (claveDia, metodo) counter and
	// increments the day's order counter.
	BumpVenta(ctx context.Context, claveDia, metodo string, monto decimal.Decimal) error
	// StatsDia reads the day's counters. Missing or unparsable values
	// degrade to zero, logged — never an error for the dashboard.
	StatsDia(ctx context.Context, claveDia string) (map[string]decimal.Decimal, int64, error)
}

type statsRepo struct{ rdb *redis.Client }

func NewStatsRepository(rdb *redis.Client) StatsRepository { return &statsRepo{rdb: rdb} }

func claveVentas(claveDia, metodo string) string {
	return fmt.Sprintf("pos:stats:%s:%s", claveDia, metodo)
}

func claveOrdenes(claveDia string) string {
	return fmt.Sprintf("pos:stats:%s:ordenes", claveDia)
}

func (r *statsRepo) BumpVenta(ctx context.Context, claveDia, metodo string, monto decimal.Decimal) error {
	pipe := r.rdb.TxPipeline()
	kVenta := claveVentas(claveDia, metodo)
	kOrd := claveOrdenes(claveDia)
	// IncrByFloat keeps the stored value numeric; CLP amounts are integral
	// so no binary drift can accumulate at display precision.
	pipe.IncrByFloat(ctx, kVenta, monto.InexactFloat64())
	pipe.Incr(ctx, kOrd)
	pipe.Expire(ctx, kVenta, statsTTL)
	pipe.Expire(ctx, kOrd, statsTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *statsRepo) StatsDia(ctx context.Context, claveDia string) (map[string]decimal.Decimal, int64, error) {
	metodos := []string{model.MetodoEfectivo, model.MetodoTarjeta, model.MetodoTransferencia}
	sums := make(map[string]decimal.Decimal, len(metodos))

	for _, m := range metodos {
		raw, err := r.rdb.Get(ctx, claveVentas(claveDia, m)).Result()
		if err == redis.Nil {
			sums[m] = decimal.Zero
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		d, perr := decimal.NewFromString(raw)
		if perr != nil {
			log.Warn().Str("metodo", m).Str("valor", raw).Msg("contador de ventas ilegible, se asume 0")
			d = decimal.Zero
		}
		sums[m] = d
	}

	var ordenes int64
	raw, err := r.rdb.Get(ctx, claveOrdenes(claveDia)).Result()
	switch {
	case err == redis.Nil:
		// no sales yet today
	case err != nil:
		return nil, 0, err
	default:
		n, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			log.Warn().Str("valor", raw).Msg("contador de ordenes ilegible, se asume 0")
		}
		ordenes = n
	}
	return sums, ordenes, nil
}
