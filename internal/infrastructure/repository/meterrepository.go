package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aquameter/internal/domain/meter"
	"aquameter/internal/infrastructure/persistence/mappers"
	"aquameter/internal/infrastructure/persistence/models"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/errors"
)

type MeterRepository struct {
	db     *gorm.DB
	mapper mappers.MeterMapper
}

func NewMeterRepository(db *gorm.DB) *MeterRepository {
	return &MeterRepository{
		db:     db,
		mapper: mappers.NewMeterMapper(),
	}
}

func (r *MeterRepository) Create(ctx context.Context, m *meter.Meter) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create meter: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MeterRepository) FindByID(ctx context.Context, id uint) (*meter.Meter, error) {
	var model models.MeterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("meter not found")
		}
		return nil, fmt.Errorf("failed to find meter: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MeterRepository) ListByUnit(ctx context.Context, unitID uint) ([]*meter.Meter, error) {
	var modelList []models.MeterModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("unit_id = ?", unitID).Order("utility_type").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list meters: %w", err)
	}

	meters := make([]*meter.Meter, 0, len(modelList))
	for i := range modelList {
		m, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		meters = append(meters, m)
	}

	return meters, nil
}

// TenantIDOf walks meter -> unit -> block to find the owning tenant. A
// meter whose ownership chain is broken is reported as not found rather
// than being attributed to a default tenant.
func (r *MeterRepository) TenantIDOf(ctx context.Context, meterID uint) (uint, error) {
	var tenantID uint
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.MeterModel{}).
		Select("blocks.tenant_id").
		Joins("JOIN units ON units.id = meters.unit_id").
		Joins("JOIN blocks ON blocks.id = units.block_id").
		Where("meters.id = ?", meterID).
		Scan(&tenantID).Error
	if err != nil {
		return 0, fmt.Errorf("failed to resolve meter tenant: %w", err)
	}
	if tenantID == 0 {
		return 0, errors.NewNotFoundError("meter not found")
	}

	return tenantID, nil
}

func (r *MeterRepository) Update(ctx context.Context, m *meter.Meter) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MeterModel{}).
		Where("id = ?", model.ID).
		Select("PreviousReading", "AverageConsumption", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update meter: %w", result.Error)
	}

	return nil
}

func (r *MeterRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.MeterModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("meter not found")
	}

	return nil
}
