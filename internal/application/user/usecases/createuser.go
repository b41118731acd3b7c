package usecases

import (
	"context"

	"aquameter/internal/domain/user"
	vo "aquameter/internal/domain/user/valueobjects"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

type CreateUserCommand struct {
	Name        string
	NationalID  string
	Password    string
	Role        string
	AccessLevel string
}

type UserResult struct {
	UserID      uint
	Name        string
	NationalID  string
	Role        string
	AccessLevel string
	Active      bool
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*UserResult, error) {
	if len(cmd.Password) < 6 {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	if err := utils.ValidateNationalID(cmd.NationalID); err != nil {
		return nil, err
	}
	nationalID := utils.DigitsOnly(cmd.NationalID)

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Name, nationalID, hash, vo.Role(cmd.Role), vo.AccessLevel(cmd.AccessLevel))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to create user", "national_id", nationalID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "role", u.Role().String())

	return userToResult(u), nil
}

func userToResult(u *user.User) *UserResult {
	return &UserResult{
		UserID:      u.ID(),
		Name:        u.Name(),
		NationalID:  u.NationalID(),
		Role:        u.Role().String(),
		AccessLevel: u.AccessLevel().String(),
		Active:      u.IsActive(),
	}
}
