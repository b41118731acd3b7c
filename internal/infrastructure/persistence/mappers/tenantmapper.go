package mappers

import (
	"time"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/infrastructure/persistence/models"
)

// TenantMapper handles the conversion between Tenant domain entities and persistence models.
type TenantMapper interface {
	ToModel(t *tenant.Tenant) *models.TenantModel
	ToDomain(model *models.TenantModel) (*tenant.Tenant, error)
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToModel(t *tenant.Tenant) *models.TenantModel {
	return &models.TenantModel{
		ID:               t.ID(),
		Name:             t.Name(),
		ColdWaterRate:    t.ColdWaterRate(),
		HotWaterRate:     t.HotWaterRate(),
		GasRate:          t.GasRate(),
		BillingCutoffDay: t.BillingCutoffDay(),
		Active:           t.IsActive(),
		CreatedAt:        t.CreatedAt().UnixMilli(),
		UpdatedAt:        t.UpdatedAt().UnixMilli(),
	}
}

func (m *TenantMapperImpl) ToDomain(model *models.TenantModel) (*tenant.Tenant, error) {
	return tenant.ReconstructTenant(
		model.ID,
		model.Name,
		model.ColdWaterRate,
		model.HotWaterRate,
		model.GasRate,
		model.BillingCutoffDay,
		model.Active,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
