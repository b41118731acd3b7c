package usecases

import (
	"context"

	"aquameter/internal/domain/meter"
	"aquameter/internal/domain/unit"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type DeleteUnitCommand struct {
	UnitID uint
}

// DeleteUnitUseCase removes a unit and its meters in one transaction.
type DeleteUnitUseCase struct {
	unitRepo  unit.Repository
	meterRepo meter.Repository
	txManager TxManager
	logger    logger.Interface
}

func NewDeleteUnitUseCase(
	unitRepo unit.Repository,
	meterRepo meter.Repository,
	txManager TxManager,
	logger logger.Interface,
) *DeleteUnitUseCase {
	return &DeleteUnitUseCase{
		unitRepo:  unitRepo,
		meterRepo: meterRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *DeleteUnitUseCase) Execute(ctx context.Context, cmd DeleteUnitCommand) error {
	if cmd.UnitID == 0 {
		return errors.NewValidationError("unit ID is required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		meters, err := uc.meterRepo.ListByUnit(txCtx, cmd.UnitID)
		if err != nil {
			return err
		}
		for _, m := range meters {
			if err := uc.meterRepo.Delete(txCtx, m.ID()); err != nil {
				return err
			}
		}
		return uc.unitRepo.Delete(txCtx, cmd.UnitID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete unit", "unit_id", cmd.UnitID, "error", err)
		return err
	}

	uc.logger.Infow("unit deleted", "unit_id", cmd.UnitID)
	return nil
}
