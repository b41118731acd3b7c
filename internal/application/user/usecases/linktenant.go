package usecases

import (
	"context"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/domain/user"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type LinkTenantCommand struct {
	UserID   uint
	TenantID uint
}

// LinkTenantUseCase grants a user access to one tenant's data. The pair is
// unique; linking twice is a conflict.
type LinkTenantUseCase struct {
	userRepo   user.Repository
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewLinkTenantUseCase(userRepo user.Repository, tenantRepo tenant.Repository, logger logger.Interface) *LinkTenantUseCase {
	return &LinkTenantUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *LinkTenantUseCase) Execute(ctx context.Context, cmd LinkTenantCommand) error {
	if cmd.UserID == 0 || cmd.TenantID == 0 {
		return errors.NewValidationError("user ID and tenant ID are required")
	}

	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return err
	}
	if _, err := uc.tenantRepo.FindByID(ctx, cmd.TenantID); err != nil {
		return err
	}

	if err := uc.userRepo.LinkTenant(ctx, cmd.UserID, cmd.TenantID); err != nil {
		return err
	}

	uc.logger.Infow("user linked to tenant", "user_id", cmd.UserID, "tenant_id", cmd.TenantID)
	return nil
}
