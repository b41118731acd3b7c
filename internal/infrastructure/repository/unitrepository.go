package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aquameter/internal/domain/unit"
	"aquameter/internal/infrastructure/persistence/mappers"
	"aquameter/internal/infrastructure/persistence/models"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/errors"
)

type UnitRepository struct {
	db     *gorm.DB
	mapper mappers.UnitMapper
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{
		db:     db,
		mapper: mappers.NewUnitMapper(),
	}
}

func (r *UnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("unit label already exists in block")
		}
		return fmt.Errorf("failed to create unit: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UnitRepository) FindByID(ctx context.Context, id uint) (*unit.Unit, error) {
	var model models.UnitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("unit not found")
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UnitRepository) ListByBlock(ctx context.Context, blockID uint) ([]*unit.Unit, error) {
	var modelList []models.UnitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("block_id = ?", blockID).Order("label").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	units := make([]*unit.Unit, 0, len(modelList))
	for i := range modelList {
		u, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, nil
}

func (r *UnitRepository) ExistsInBlock(ctx context.Context, blockID uint, label string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.UnitModel{}).
		Where("block_id = ? AND label = ?", blockID, label).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check unit existence: %w", err)
	}

	return count > 0, nil
}

func (r *UnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UnitModel{}).
		Where("id = ?", model.ID).
		Select("Label", "FloorLabel", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("unit label already exists in block")
		}
		return fmt.Errorf("failed to update unit: %w", result.Error)
	}

	return nil
}

func (r *UnitRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.UnitModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete unit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("unit not found")
	}

	return nil
}
