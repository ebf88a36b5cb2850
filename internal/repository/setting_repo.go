package repository

import (
	"context"
	"fmt"

	"palmcafe/internal/model"

	"gorm.io/gorm"
)

// SettingRepository stores the append-only tax and currency histories.
// "Current" is always the row with active = true.
type SettingRepository interface {
	ActiveTax(ctx context.Context) (*model.TaxSetting, error)
	TaxHistory(ctx context.Context) ([]model.TaxSetting, error)
	SwapTax(ctx context.Context, setting *model.TaxSetting) error

	ActiveCurrency(ctx context.Context) (*model.CurrencySetting, error)
	CurrencyHistory(ctx context.Context) ([]model.CurrencySetting, error)
	SwapCurrency(ctx context.Context, setting *model.CurrencySetting) error

	// SeedDefaults inserts the default rows for any kind that has no history yet.
	SeedDefaults(ctx context.Context) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) ActiveTax(ctx context.Context) (*model.TaxSetting, error) {
	return findActive[model.TaxSetting](GetDB(ctx, r.db))
}

func (r *settingRepository) TaxHistory(ctx context.Context) ([]model.TaxSetting, error) {
	return findHistory[model.TaxSetting](GetDB(ctx, r.db))
}

func (r *settingRepository) SwapTax(ctx context.Context, setting *model.TaxSetting) error {
	if !InTx(ctx) {
		return ErrNoTransaction
	}
	db := GetDB(ctx, r.db)
	if err := deactivate[model.TaxSetting](db); err != nil {
		return err
	}
	setting.ID = 0
	setting.Active = true
	return db.Create(setting).Error
}

func (r *settingRepository) ActiveCurrency(ctx context.Context) (*model.CurrencySetting, error) {
	return findActive[model.CurrencySetting](GetDB(ctx, r.db))
}

func (r *settingRepository) CurrencyHistory(ctx context.Context) ([]model.CurrencySetting, error) {
	return findHistory[model.CurrencySetting](GetDB(ctx, r.db))
}

func (r *settingRepository) SwapCurrency(ctx context.Context, setting *model.CurrencySetting) error {
	if !InTx(ctx) {
		return ErrNoTransaction
	}
	db := GetDB(ctx, r.db)
	if err := deactivate[model.CurrencySetting](db); err != nil {
		return err
	}
	setting.ID = 0
	setting.Active = true
	return db.Create(setting).Error
}

func (r *settingRepository) SeedDefaults(ctx context.Context) error {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.Model(&model.TaxSetting{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count tax settings: %w", err)
	}
	if count == 0 {
		tax := model.DefaultTaxSetting()
		if err := db.Create(&tax).Error; err != nil && !IsUniqueViolation(err) {
			return fmt.Errorf("failed to seed tax setting: %w", err)
		}
	}

	if err := db.Model(&model.CurrencySetting{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count currency settings: %w", err)
	}
	if count == 0 {
		currency := model.DefaultCurrencySetting()
		if err := db.Create(&currency).Error; err != nil && !IsUniqueViolation(err) {
			return fmt.Errorf("failed to seed currency setting: %w", err)
		}
	}
	return nil
}

func findActive[T any](db *gorm.DB) (*T, error) {
	var row T
	if err := db.Where("active = ?", true).Order("id desc").First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func findHistory[T any](db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.Order("created_at desc, id desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func deactivate[T any](db *gorm.DB) error {
	if err := db.Model(new(T)).Where("active = ?", true).Update("active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate current setting: %w", err)
	}
	return nil
}
