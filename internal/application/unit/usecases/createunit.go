package usecases

import (
	"context"

	"aquameter/internal/domain/block"
	"aquameter/internal/domain/meter"
	meterVO "aquameter/internal/domain/meter/valueobjects"
	"aquameter/internal/domain/unit"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

// MeterSpec describes one meter to initialize together with a new unit.
type MeterSpec struct {
	UtilityType        string
	InitialReading     float64
	AverageConsumption float64
}

type CreateUnitCommand struct {
	BlockID    uint
	Label      string
	FloorLabel string
	Meters     []MeterSpec
}

type CreateUnitResult struct {
	UnitID   uint
	Label    string
	MeterIDs []uint
}

// CreateUnitUseCase creates a unit and its meters in one transaction:
// either all rows are written or none are.
type CreateUnitUseCase struct {
	unitRepo  unit.Repository
	meterRepo meter.Repository
	blockRepo block.Repository
	txManager TxManager
	logger    logger.Interface
}

func NewCreateUnitUseCase(
	unitRepo unit.Repository,
	meterRepo meter.Repository,
	blockRepo block.Repository,
	txManager TxManager,
	logger logger.Interface,
) *CreateUnitUseCase {
	return &CreateUnitUseCase{
		unitRepo:  unitRepo,
		meterRepo: meterRepo,
		blockRepo: blockRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CreateUnitUseCase) Execute(ctx context.Context, cmd CreateUnitCommand) (*CreateUnitResult, error) {
	if _, err := uc.blockRepo.FindByID(ctx, cmd.BlockID); err != nil {
		return nil, err
	}

	u, err := unit.NewUnit(cmd.BlockID, cmd.Label, cmd.FloorLabel)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	specs := cmd.Meters
	for _, spec := range specs {
		if !meterVO.UtilityType(spec.UtilityType).IsValid() {
			return nil, errors.NewValidationError("invalid utility type: " + spec.UtilityType)
		}
	}

	var meterIDs []uint
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.unitRepo.Create(txCtx, u); err != nil {
			return err
		}
		for _, spec := range specs {
			m, err := meter.NewMeter(u.ID(), meterVO.UtilityType(spec.UtilityType), spec.InitialReading, spec.AverageConsumption)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.meterRepo.Create(txCtx, m); err != nil {
				return err
			}
			meterIDs = append(meterIDs, m.ID())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create unit", "block_id", cmd.BlockID, "label", cmd.Label, "error", err)
		return nil, err
	}

	uc.logger.Infow("unit created", "unit_id", u.ID(), "block_id", cmd.BlockID, "meters", len(meterIDs))

	return &CreateUnitResult{
		UnitID:   u.ID(),
		Label:    u.Label(),
		MeterIDs: meterIDs,
	}, nil
}
