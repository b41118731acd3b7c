package usecases

import (
	"context"

	"aquameter/internal/domain/block"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type UpdateBlockCommand struct {
	BlockID uint
	Name    string
}

type UpdateBlockUseCase struct {
	blockRepo block.Repository
	logger    logger.Interface
}

func NewUpdateBlockUseCase(blockRepo block.Repository, logger logger.Interface) *UpdateBlockUseCase {
	return &UpdateBlockUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

func (uc *UpdateBlockUseCase) Execute(ctx context.Context, cmd UpdateBlockCommand) (*BlockResult, error) {
	if cmd.BlockID == 0 {
		return nil, errors.NewValidationError("block ID is required")
	}

	b, err := uc.blockRepo.FindByID(ctx, cmd.BlockID)
	if err != nil {
		return nil, err
	}

	if err := b.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.blockRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update block", "block_id", cmd.BlockID, "error", err)
		return nil, err
	}

	return blockToResult(b), nil
}
