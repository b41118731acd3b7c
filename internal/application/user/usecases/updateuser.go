package usecases

import (
	"context"

	"aquameter/internal/domain/user"
	vo "aquameter/internal/domain/user/valueobjects"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID      uint
	Name        string
	Role        string
	AccessLevel string
	// Password is optional; empty keeps the current credential.
	Password string
	Active   bool
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(cmd.Name, vo.Role(cmd.Role), vo.AccessLevel(cmd.AccessLevel)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != "" {
		if len(cmd.Password) < 6 {
			return nil, errors.NewValidationError("password must be at least 6 characters")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	if !cmd.Active {
		u.Deactivate()
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return userToResult(u), nil
}
