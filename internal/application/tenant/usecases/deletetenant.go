package usecases

import (
	"context"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type DeleteTenantCommand struct {
	TenantID uint
}

// DeleteTenantUseCase removes a tenant. Deletion is refused while blocks
// still reference the tenant; dependents must be removed first so that a
// slip of the finger cannot drop an entire condominium's history.
type DeleteTenantUseCase struct {
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewDeleteTenantUseCase(tenantRepo tenant.Repository, logger logger.Interface) *DeleteTenantUseCase {
	return &DeleteTenantUseCase{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *DeleteTenantUseCase) Execute(ctx context.Context, cmd DeleteTenantCommand) error {
	if cmd.TenantID == 0 {
		return errors.NewValidationError("tenant ID is required")
	}

	blockCount, err := uc.tenantRepo.CountBlocks(ctx, cmd.TenantID)
	if err != nil {
		return err
	}
	if blockCount > 0 {
		return errors.NewConflictError("tenant still has blocks, remove them first")
	}

	if err := uc.tenantRepo.Delete(ctx, cmd.TenantID); err != nil {
		uc.logger.Errorw("failed to delete tenant", "tenant_id", cmd.TenantID, "error", err)
		return err
	}

	uc.logger.Infow("tenant deleted", "tenant_id", cmd.TenantID)
	return nil
}
