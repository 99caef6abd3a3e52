package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"puntoventa/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for the caja tables, then applies the idempotent SQL patches that GORM
// cannot express (partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates the caja schema. Shared with integration
// tests so they run against the exact production schema.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.SesionCaja{},
		&model.CierreCaja{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// Each statement is guarded by an existence check so re-running on an
// already-patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Single till: at most one open session, enforced at the DB level so
		// not even a buggy writer can open two drawers.
		{"partial unique index on the single open session", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'uni_sesiones_caja_abierta') THEN
    CREATE UNIQUE INDEX uni_sesiones_caja_abierta
        ON sesiones_caja ((estado))
        WHERE estado = 'abierta';
  END IF;
END $$`},
		// History reads are always "latest first" per business day.
		{"cierres_caja day/close index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_cierres_caja_dia_cerrada') THEN
    CREATE INDEX idx_cierres_caja_dia_cerrada
        ON cierres_caja (clave_dia, cerrada_en DESC);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
