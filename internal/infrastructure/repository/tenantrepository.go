package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/infrastructure/persistence/mappers"
	"aquameter/internal/infrastructure/persistence/models"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/errors"
)

type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{
		db:     db,
		mapper: mappers.NewTenantMapper(),
	}
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TenantRepository) FindByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TenantRepository) FindByIDs(ctx context.Context, ids []uint) ([]*tenant.Tenant, error) {
	if len(ids) == 0 {
		return []*tenant.Tenant{}, nil
	}

	var modelList []models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	var modelList []models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TenantModel{}).
		Where("id = ?", model.ID).
		Select("Name", "ColdWaterRate", "HotWaterRate", "GasRate", "BillingCutoffDay", "Active", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}

	return nil
}

func (r *TenantRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TenantModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tenant not found")
	}

	return nil
}

func (r *TenantRepository) CountBlocks(ctx context.Context, id uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.BlockModel{}).Where("tenant_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tenant blocks: %w", err)
	}

	return count, nil
}

func (r *TenantRepository) toDomainList(modelList []models.TenantModel) ([]*tenant.Tenant, error) {
	tenants := make([]*tenant.Tenant, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}
	return tenants, nil
}
