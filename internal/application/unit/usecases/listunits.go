package usecases

import (
	"context"

	"aquameter/internal/domain/meter"
	"aquameter/internal/domain/unit"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type ListUnitsQuery struct {
	BlockID uint
}

type UnitMeterResult struct {
	MeterID            uint
	UtilityType        string
	PreviousReading    float64
	AverageConsumption float64
}

type UnitResult struct {
	UnitID     uint
	BlockID    uint
	Label      string
	FloorLabel string
	Meters     []UnitMeterResult
}

type ListUnitsUseCase struct {
	unitRepo  unit.Repository
	meterRepo meter.Repository
	logger    logger.Interface
}

func NewListUnitsUseCase(unitRepo unit.Repository, meterRepo meter.Repository, logger logger.Interface) *ListUnitsUseCase {
	return &ListUnitsUseCase{
		unitRepo:  unitRepo,
		meterRepo: meterRepo,
		logger:    logger,
	}
}

func (uc *ListUnitsUseCase) Execute(ctx context.Context, query ListUnitsQuery) ([]UnitResult, error) {
	if query.BlockID == 0 {
		return nil, errors.NewValidationError("block ID is required")
	}

	units, err := uc.unitRepo.ListByBlock(ctx, query.BlockID)
	if err != nil {
		return nil, err
	}

	results := make([]UnitResult, 0, len(units))
	for _, u := range units {
		meters, err := uc.meterRepo.ListByUnit(ctx, u.ID())
		if err != nil {
			return nil, err
		}

		meterResults := make([]UnitMeterResult, 0, len(meters))
		for _, m := range meters {
			meterResults = append(meterResults, UnitMeterResult{
				MeterID:            m.ID(),
				UtilityType:        m.UtilityType().String(),
				PreviousReading:    m.PreviousReading(),
				AverageConsumption: m.AverageConsumption(),
			})
		}

		results = append(results, UnitResult{
			UnitID:     u.ID(),
			BlockID:    u.BlockID(),
			Label:      u.Label(),
			FloorLabel: u.FloorLabel(),
			Meters:     meterResults,
		})
	}

	return results, nil
}
