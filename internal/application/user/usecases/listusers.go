package usecases

import (
	"context"

	"aquameter/internal/domain/user"
	"aquameter/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, *userToResult(u))
	}

	return results, nil
}
