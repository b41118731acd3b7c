package usecases

import (
	"context"

	"aquameter/internal/domain/reading"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type DeleteReadingCommand struct {
	ReadingID uint
}

// DeleteReadingUseCase removes a reading. The meter baseline is left
// untouched; deleting a reading is an audit action, not a rollback of the
// meter state.
type DeleteReadingUseCase struct {
	readingRepo reading.Repository
	logger      logger.Interface
}

func NewDeleteReadingUseCase(readingRepo reading.Repository, logger logger.Interface) *DeleteReadingUseCase {
	return &DeleteReadingUseCase{
		readingRepo: readingRepo,
		logger:      logger,
	}
}

func (uc *DeleteReadingUseCase) Execute(ctx context.Context, cmd DeleteReadingCommand) error {
	if cmd.ReadingID == 0 {
		return errors.NewValidationError("reading ID is required")
	}

	if err := uc.readingRepo.Delete(ctx, cmd.ReadingID); err != nil {
		return err
	}

	uc.logger.Infow("reading deleted", "reading_id", cmd.ReadingID)
	return nil
}
