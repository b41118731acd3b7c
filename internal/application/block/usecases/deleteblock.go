package usecases

import (
	"context"

	"aquameter/internal/domain/block"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type DeleteBlockCommand struct {
	BlockID uint
}

type DeleteBlockUseCase struct {
	blockRepo block.Repository
	logger    logger.Interface
}

func NewDeleteBlockUseCase(blockRepo block.Repository, logger logger.Interface) *DeleteBlockUseCase {
	return &DeleteBlockUseCase{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

func (uc *DeleteBlockUseCase) Execute(ctx context.Context, cmd DeleteBlockCommand) error {
	if cmd.BlockID == 0 {
		return errors.NewValidationError("block ID is required")
	}

	if err := uc.blockRepo.Delete(ctx, cmd.BlockID); err != nil {
		uc.logger.Errorw("failed to delete block", "block_id", cmd.BlockID, "error", err)
		return err
	}

	uc.logger.Infow("block deleted", "block_id", cmd.BlockID)
	return nil
}
