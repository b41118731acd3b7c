package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"aquameter/internal/application/reading/recognition"
	"aquameter/internal/domain/meter"
	"aquameter/internal/domain/reading"
	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type CaptureReadingCommand struct {
	MeterID    uint
	CapturedAt time.Time
	Photo      string
	// ManualValue is the value the field worker typed as a fallback. It is
	// kept as a raw string because clients send it formatted; a value that
	// does not parse as a non-negative decimal is treated as absent.
	ManualValue string
	// IgnoreLastDigit drops the final odometer digit, which on many meters
	// is a sub-unit wheel that should not count toward billing.
	IgnoreLastDigit bool
}

type CaptureReadingResult struct {
	ReadingID  uint
	Status     string
	FinalValue float64
}

// CaptureReadingUseCase runs the reading reconciliation workflow: it asks
// the recognition service for the odometer digits, falls back to the
// manually typed value when recognition produces nothing usable, and
// persists the outcome together with the meter baseline update in one
// transaction.
type CaptureReadingUseCase struct {
	meterRepo   meter.Repository
	tenantRepo  tenant.Repository
	readingRepo reading.Repository
	recognizer  recognition.Service
	txManager   TxManager
	logger      logger.Interface
}

// NewCaptureReadingUseCase wires the capture workflow. recognizer may be
// nil when no recognition backend is configured; every capture then takes
// the manual fallback path.
func NewCaptureReadingUseCase(
	meterRepo meter.Repository,
	tenantRepo tenant.Repository,
	readingRepo reading.Repository,
	recognizer recognition.Service,
	txManager TxManager,
	logger logger.Interface,
) *CaptureReadingUseCase {
	return &CaptureReadingUseCase{
		meterRepo:   meterRepo,
		tenantRepo:  tenantRepo,
		readingRepo: readingRepo,
		recognizer:  recognizer,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *CaptureReadingUseCase) Execute(ctx context.Context, cmd CaptureReadingCommand) (*CaptureReadingResult, error) {
	if cmd.MeterID == 0 {
		return nil, errors.NewValidationError("meter ID is required")
	}
	if cmd.Photo == "" {
		return nil, errors.NewValidationError("photo is required")
	}

	// A meter with a broken ownership chain fails the request. Guessing a
	// tenant here would silently file the reading under the wrong
	// organization.
	tenantID, err := uc.meterRepo.TenantIDOf(ctx, cmd.MeterID)
	if err != nil {
		return nil, err
	}

	m, err := uc.meterRepo.FindByID(ctx, cmd.MeterID)
	if err != nil {
		return nil, err
	}

	t, err := uc.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	rate := t.RateFor(m.UtilityType().String())

	rd, err := reading.NewCapturedReading(tenantID, cmd.MeterID, cmd.CapturedAt, cmd.Photo)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	recognized := uc.recognize(ctx, cmd)
	manualValue := parseManualValue(cmd.ManualValue)
	baseline := m.PreviousReading()

	switch {
	case recognized > 0:
		if err := rd.ApplyRecognizedValue(recognized, baseline, rate); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	case manualValue > 0:
		if err := rd.ApplyManualValue(manualValue, baseline, rate); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	default:
		if err := rd.MarkFailed(baseline); err != nil {
			return nil, errors.NewInternalError(err.Error())
		}
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.readingRepo.Create(txCtx, rd); err != nil {
			return err
		}
		if rd.Value() > 0 {
			if err := m.AdvanceBaseline(rd.Value()); err != nil {
				return err
			}
			if err := uc.meterRepo.Update(txCtx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record reading",
			"meter_id", cmd.MeterID,
			"error", err,
		)
		return nil, err
	}

	uc.logger.Infow("reading recorded",
		"reading_id", rd.ID(),
		"meter_id", cmd.MeterID,
		"status", rd.Status().String(),
		"value", rd.Value(),
	)

	return &CaptureReadingResult{
		ReadingID:  rd.ID(),
		Status:     rd.Status().String(),
		FinalValue: rd.Value(),
	}, nil
}

// recognize calls the recognition service and reduces its free-form answer
// to a numeric value. Any failure is demoted to "no result" so that the
// manual fallback still runs.
func (uc *CaptureReadingUseCase) recognize(ctx context.Context, cmd CaptureReadingCommand) float64 {
	if uc.recognizer == nil {
		return 0
	}

	raw, err := uc.recognizer.RecognizeDigits(ctx, cmd.Photo)
	if err != nil {
		uc.logger.Warnw("recognition failed, falling back to manual value",
			"meter_id", cmd.MeterID,
			"error", err,
		)
		return 0
	}

	digits := cleanDigits(raw)
	if cmd.IgnoreLastDigit && len(digits) > 1 {
		digits = digits[:len(digits)-1]
	}
	if digits == "" {
		return 0
	}

	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return value
}

// cleanDigits strips everything that is not a digit from the model answer.
func cleanDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseManualValue parses the fallback value. Absent, malformed or
// negative input counts as zero so the reconciliation can still settle on
// recognition output alone.
func parseManualValue(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
