package usecases

import (
	"context"
	"strconv"

	"aquameter/internal/domain/block"
	"aquameter/internal/domain/unit"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

// maxGeneratedUnits bounds a single wizard run.
const maxGeneratedUnits = 1000

type GenerateUnitsCommand struct {
	BlockID uint

	// Range mode: create units labeled RangeStart..RangeEnd.
	RangeStart int
	RangeEnd   int

	// Grid mode: create UnitsPerFloor units on each of Floors floors,
	// labeled floor*100 + position ("101", "102", ..., "201", ...).
	Floors        int
	UnitsPerFloor int
}

type GenerateUnitsResult struct {
	Requested int
	Created   int
	Skipped   int
}

// GenerateUnitsUseCase bulk-creates units from a numeric range or a
// floors-by-units grid. Labels already present in the block are skipped,
// which makes the wizard idempotent: re-running the same call creates
// nothing and reports zero created.
type GenerateUnitsUseCase struct {
	unitRepo  unit.Repository
	blockRepo block.Repository
	txManager TxManager
	logger    logger.Interface
}

func NewGenerateUnitsUseCase(
	unitRepo unit.Repository,
	blockRepo block.Repository,
	txManager TxManager,
	logger logger.Interface,
) *GenerateUnitsUseCase {
	return &GenerateUnitsUseCase{
		unitRepo:  unitRepo,
		blockRepo: blockRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *GenerateUnitsUseCase) Execute(ctx context.Context, cmd GenerateUnitsCommand) (*GenerateUnitsResult, error) {
	if _, err := uc.blockRepo.FindByID(ctx, cmd.BlockID); err != nil {
		return nil, err
	}

	labels, floorLabels, err := expandLabels(cmd)
	if err != nil {
		return nil, err
	}

	result := &GenerateUnitsResult{Requested: len(labels)}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for i, label := range labels {
			exists, err := uc.unitRepo.ExistsInBlock(txCtx, cmd.BlockID, label)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped++
				continue
			}

			u, err := unit.NewUnit(cmd.BlockID, label, floorLabels[i])
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.unitRepo.Create(txCtx, u); err != nil {
				return err
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to generate units", "block_id", cmd.BlockID, "error", err)
		return nil, err
	}

	uc.logger.Infow("units generated",
		"block_id", cmd.BlockID,
		"requested", result.Requested,
		"created", result.Created,
		"skipped", result.Skipped,
	)

	return result, nil
}

// expandLabels turns the command into the concrete label list. Exactly one
// of range mode and grid mode must be set.
func expandLabels(cmd GenerateUnitsCommand) (labels, floorLabels []string, err error) {
	rangeMode := cmd.RangeStart != 0 || cmd.RangeEnd != 0
	gridMode := cmd.Floors != 0 || cmd.UnitsPerFloor != 0

	switch {
	case rangeMode && gridMode:
		return nil, nil, errors.NewValidationError("range and grid modes are mutually exclusive")
	case rangeMode:
		if cmd.RangeStart <= 0 || cmd.RangeEnd < cmd.RangeStart {
			return nil, nil, errors.NewValidationError("invalid unit range")
		}
		count := cmd.RangeEnd - cmd.RangeStart + 1
		if count > maxGeneratedUnits {
			return nil, nil, errors.NewValidationError("unit range is too large")
		}
		for n := cmd.RangeStart; n <= cmd.RangeEnd; n++ {
			labels = append(labels, strconv.Itoa(n))
			floorLabels = append(floorLabels, "")
		}
		return labels, floorLabels, nil
	case gridMode:
		if cmd.Floors <= 0 || cmd.UnitsPerFloor <= 0 {
			return nil, nil, errors.NewValidationError("invalid floor grid")
		}
		if cmd.Floors*cmd.UnitsPerFloor > maxGeneratedUnits {
			return nil, nil, errors.NewValidationError("floor grid is too large")
		}
		for floor := 1; floor <= cmd.Floors; floor++ {
			for pos := 1; pos <= cmd.UnitsPerFloor; pos++ {
				labels = append(labels, strconv.Itoa(floor*100+pos))
				floorLabels = append(floorLabels, strconv.Itoa(floor))
			}
		}
		return labels, floorLabels, nil
	default:
		return nil, nil, errors.NewValidationError("either a unit range or a floor grid is required")
	}
}
