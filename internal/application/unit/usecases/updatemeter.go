package usecases

import (
	"context"

	"aquameter/internal/domain/meter"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type UpdateMeterCommand struct {
	MeterID            uint
	AverageConsumption float64
}

type UpdateMeterUseCase struct {
	meterRepo meter.Repository
	logger    logger.Interface
}

func NewUpdateMeterUseCase(meterRepo meter.Repository, logger logger.Interface) *UpdateMeterUseCase {
	return &UpdateMeterUseCase{
		meterRepo: meterRepo,
		logger:    logger,
	}
}

// Execute replaces a meter's sanity-check average consumption. The
// previous-reading baseline is never touched here; it only moves when a
// reading is accepted.
func (uc *UpdateMeterUseCase) Execute(ctx context.Context, cmd UpdateMeterCommand) (*UnitMeterResult, error) {
	if cmd.MeterID == 0 {
		return nil, errors.NewValidationError("meter ID is required")
	}

	m, err := uc.meterRepo.FindByID(ctx, cmd.MeterID)
	if err != nil {
		return nil, err
	}

	if err := m.UpdateAverageConsumption(cmd.AverageConsumption); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.meterRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update meter", "meter_id", cmd.MeterID, "error", err)
		return nil, err
	}

	uc.logger.Infow("meter average consumption updated", "meter_id", m.ID(), "average", cmd.AverageConsumption)

	return &UnitMeterResult{
		MeterID:            m.ID(),
		UtilityType:        m.UtilityType().String(),
		PreviousReading:    m.PreviousReading(),
		AverageConsumption: m.AverageConsumption(),
	}, nil
}
