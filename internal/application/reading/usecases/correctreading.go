package usecases

import (
	"context"

	"aquameter/internal/domain/meter"
	"aquameter/internal/domain/reading"
	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type CorrectReadingCommand struct {
	ReadingID uint
	Value     float64
	// Photo optionally replaces the stored photo reference.
	Photo string
}

type CorrectReadingResult struct {
	ReadingID  uint
	Status     string
	FinalValue float64
}

// CorrectReadingUseCase lets an authorized web operator overwrite a
// settled reading. The meter baseline is re-applied in the same
// transaction so the next capture computes consumption against the
// corrected value.
type CorrectReadingUseCase struct {
	readingRepo reading.Repository
	meterRepo   meter.Repository
	tenantRepo  tenant.Repository
	txManager   TxManager
	logger      logger.Interface
}

func NewCorrectReadingUseCase(
	readingRepo reading.Repository,
	meterRepo meter.Repository,
	tenantRepo tenant.Repository,
	txManager TxManager,
	logger logger.Interface,
) *CorrectReadingUseCase {
	return &CorrectReadingUseCase{
		readingRepo: readingRepo,
		meterRepo:   meterRepo,
		tenantRepo:  tenantRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CorrectReadingUseCase) Execute(ctx context.Context, cmd CorrectReadingCommand) (*CorrectReadingResult, error) {
	if cmd.ReadingID == 0 {
		return nil, errors.NewValidationError("reading ID is required")
	}
	if cmd.Value <= 0 {
		return nil, errors.NewValidationError("corrected value must be positive")
	}

	rd, err := uc.readingRepo.FindByID(ctx, cmd.ReadingID)
	if err != nil {
		return nil, err
	}

	m, err := uc.meterRepo.FindByID(ctx, rd.MeterID())
	if err != nil {
		return nil, err
	}

	t, err := uc.tenantRepo.FindByID(ctx, rd.TenantID())
	if err != nil {
		return nil, err
	}
	rate := t.RateFor(m.UtilityType().String())

	// The correction recomputes consumption against the reading's own
	// baseline snapshot, not the meter's current one, so a late fix does
	// not absorb consumption that belongs to newer readings.
	if err := rd.Correct(cmd.Value, cmd.Photo, rd.PreviousValue(), rate); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.readingRepo.Update(txCtx, rd); err != nil {
			return err
		}
		if err := m.AdvanceBaseline(rd.Value()); err != nil {
			return err
		}
		return uc.meterRepo.Update(txCtx, m)
	})
	if err != nil {
		uc.logger.Errorw("failed to correct reading",
			"reading_id", cmd.ReadingID,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("reading corrected",
		"reading_id", rd.ID(),
		"value", rd.Value(),
	)

	return &CorrectReadingResult{
		ReadingID:  rd.ID(),
		Status:     rd.Status().String(),
		FinalValue: rd.Value(),
	}, nil
}
