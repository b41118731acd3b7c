package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aquameter/internal/domain/block"
	"aquameter/internal/infrastructure/persistence/mappers"
	"aquameter/internal/infrastructure/persistence/models"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/errors"
)

type BlockRepository struct {
	db     *gorm.DB
	mapper mappers.BlockMapper
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{
		db:     db,
		mapper: mappers.NewBlockMapper(),
	}
}

func (r *BlockRepository) Create(ctx context.Context, b *block.Block) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create block: %w", err)
	}

	return b.SetID(model.ID)
}

func (r *BlockRepository) FindByID(ctx context.Context, id uint) (*block.Block, error) {
	var model models.BlockModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("block not found")
		}
		return nil, fmt.Errorf("failed to find block: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BlockRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*block.Block, error) {
	var modelList []models.BlockModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("tenant_id = ?", tenantID).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	blocks := make([]*block.Block, 0, len(modelList))
	for i := range modelList {
		b, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}

	return blocks, nil
}

func (r *BlockRepository) Update(ctx context.Context, b *block.Block) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BlockModel{}).
		Where("id = ?", model.ID).
		Select("Name", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update block: %w", result.Error)
	}

	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.BlockModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete block: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("block not found")
	}

	return nil
}
