package usecases

import (
	"context"

	"aquameter/internal/domain/block"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type ListBlocksQuery struct {
	TenantID uint
}

type ListBlocksUseCase struct {
	blockRepo block.Repository
	logger    logger.Interface
}

func NewListBlocksUseCase(blockRepo block.Repository, logger logger.Interface) *ListBlocksUseCase {
	return &ListBlocksUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

func (uc *ListBlocksUseCase) Execute(ctx context.Context, query ListBlocksQuery) ([]BlockResult, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	blocks, err := uc.blockRepo.ListByTenant(ctx, query.TenantID)
	if err != nil {
		return nil, err
	}

	results := make([]BlockResult, 0, len(blocks))
	for _, b := range blocks {
		results = append(results, *blockToResult(b))
	}

	return results, nil
}
