package usecases

import (
	"context"

	"aquameter/internal/domain/user"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type UnlinkTenantCommand struct {
	UserID   uint
	TenantID uint
}

type UnlinkTenantUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUnlinkTenantUseCase(userRepo user.Repository, logger logger.Interface) *UnlinkTenantUseCase {
	return &UnlinkTenantUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UnlinkTenantUseCase) Execute(ctx context.Context, cmd UnlinkTenantCommand) error {
	if cmd.UserID == 0 || cmd.TenantID == 0 {
		return errors.NewValidationError("user ID and tenant ID are required")
	}

	if err := uc.userRepo.UnlinkTenant(ctx, cmd.UserID, cmd.TenantID); err != nil {
		return err
	}

	uc.logger.Infow("user unlinked from tenant", "user_id", cmd.UserID, "tenant_id", cmd.TenantID)
	return nil
}
