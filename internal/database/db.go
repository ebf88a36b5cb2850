package database

import (
	"context"
	"fmt"

	"palmcafe/internal/config"
	"palmcafe/internal/logger"
	"palmcafe/internal/model"
	"palmcafe/internal/repository"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// activeIndexes keep at most one active row per settings table. The swap
// transaction keeps at least one.
var activeIndexes = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_tax_settings_active ON tax_settings (active) WHERE active",
	"CREATE UNIQUE INDEX IF NOT EXISTS ux_currency_settings_active ON currency_settings (active) WHERE active",
}

// NewConnection opens the PostgreSQL pool with zap-backed SQL logging.
func NewConnection(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 logger.NewGormLogger(log, logger.GormLevel(cfg.LogLevel), cfg.SlowThreshold),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Migrate creates the schema, seeds default settings and makes sure the
// invoice counter exists. It is safe to run on every start.
func Migrate(ctx context.Context, db *gorm.DB, numberBaseline int64) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.TaxSetting{},
		&model.CurrencySetting{},
		&model.InvoiceSequence{},
	); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	for _, stmt := range activeIndexes {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create settings index: %w", err)
		}
	}

	if err := repository.NewSettingRepository(db).SeedDefaults(ctx); err != nil {
		return err
	}
	if err := repository.NewInvoiceSequencer(db).Ensure(ctx, numberBaseline); err != nil {
		return err
	}
	return nil
}

// Ping checks the connection for the health endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
