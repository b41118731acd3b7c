package usecases

import (
	"context"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type CreateTenantCommand struct {
	Name             string
	ColdWaterRate    float64
	HotWaterRate     float64
	GasRate          float64
	BillingCutoffDay int
}

// TenantResult is the common projection returned by tenant operations.
type TenantResult struct {
	TenantID         uint
	Name             string
	ColdWaterRate    float64
	HotWaterRate     float64
	GasRate          float64
	BillingCutoffDay int
	Active           bool
}

type CreateTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewCreateTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *CreateTenantUseCase {
	return &CreateTenantUseCase{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *CreateTenantUseCase) Execute(ctx context.Context, cmd CreateTenantCommand) (*TenantResult, error) {
	t, err := tenant.NewTenant(cmd.Name, cmd.ColdWaterRate, cmd.HotWaterRate, cmd.GasRate, cmd.BillingCutoffDay)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tenantRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create tenant", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("tenant created", "tenant_id", t.ID(), "name", t.Name())

	return tenantToResult(t), nil
}

func tenantToResult(t *tenant.Tenant) *TenantResult {
	return &TenantResult{
		TenantID:         t.ID(),
		Name:             t.Name(),
		ColdWaterRate:    t.ColdWaterRate(),
		HotWaterRate:     t.HotWaterRate(),
		GasRate:          t.GasRate(),
		BillingCutoffDay: t.BillingCutoffDay(),
		Active:           t.IsActive(),
	}
}
