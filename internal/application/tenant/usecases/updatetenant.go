package usecases

import (
	"context"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type UpdateTenantCommand struct {
	TenantID         uint
	Name             string
	ColdWaterRate    float64
	HotWaterRate     float64
	GasRate          float64
	BillingCutoffDay int
	Active           bool
}

type UpdateTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewUpdateTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *UpdateTenantUseCase {
	return &UpdateTenantUseCase{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *UpdateTenantUseCase) Execute(ctx context.Context, cmd UpdateTenantCommand) (*TenantResult, error) {
	if cmd.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	t, err := uc.tenantRepo.FindByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, err
	}

	if err := t.UpdateName(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := t.UpdateBilling(cmd.ColdWaterRate, cmd.HotWaterRate, cmd.GasRate, cmd.BillingCutoffDay); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active {
		t.Activate()
	} else {
		t.Deactivate()
	}

	if err := uc.tenantRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update tenant", "tenant_id", cmd.TenantID, "error", err)
		return nil, err
	}

	return tenantToResult(t), nil
}
