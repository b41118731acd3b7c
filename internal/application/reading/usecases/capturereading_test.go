package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquameter/internal/domain/meter"
	meterVO "aquameter/internal/domain/meter/valueobjects"
	"aquameter/internal/domain/reading"
	vo "aquameter/internal/domain/reading/valueobjects"
	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

func testMeter(t *testing.T, baseline float64) *meter.Meter {
	t.Helper()
	now := time.Now()
	m, err := meter.ReconstructMeter(10, 5, meterVO.UtilityColdWater, baseline, 30, now, now)
	require.NoError(t, err)
	return m
}

func testTenant(t *testing.T) *tenant.Tenant {
	t.Helper()
	now := time.Now()
	tn, err := tenant.ReconstructTenant(1, "Residencial Aurora", 8.5, 12, 4, 5, true, now, now)
	require.NoError(t, err)
	return tn
}

func captureDeps(t *testing.T, baseline float64) (*mockMeterRepository, *mockTenantRepository, *mockReadingRepository, *meter.Meter) {
	t.Helper()
	m := testMeter(t, baseline)

	meterRepo := &mockMeterRepository{
		TenantIDOfFunc: func(ctx context.Context, meterID uint) (uint, error) {
			return 1, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*meter.Meter, error) {
			return m, nil
		},
	}
	tenantRepo := &mockTenantRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			return testTenant(t), nil
		},
	}
	readingRepo := &mockReadingRepository{
		CreateFunc: func(ctx context.Context, r *reading.Reading) error {
			return r.SetID(42)
		},
	}
	return meterRepo, tenantRepo, readingRepo, m
}

func TestCaptureReading_RecognitionConfirmed(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, m := captureDeps(t, 1200)

	meterUpdated := false
	meterRepo.UpdateFunc = func(ctx context.Context, mt *meter.Meter) error {
		meterUpdated = true
		return nil
	}

	recognizer := &mockRecognitionService{
		RecognizeDigitsFunc: func(ctx context.Context, photo string) (string, error) {
			return "1250", nil
		},
	}

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, recognizer, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID: 10,
		Photo:   "photo-data",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.ReadingID)
	assert.Equal(t, vo.StatusAIConfirmed.String(), result.Status)
	assert.Equal(t, 1250.0, result.FinalValue)
	assert.True(t, meterUpdated)
	assert.Equal(t, 1250.0, m.PreviousReading())
}

func TestCaptureReading_IgnoreLastDigit(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, _ := captureDeps(t, 1200)

	recognizer := &mockRecognitionService{
		RecognizeDigitsFunc: func(ctx context.Context, photo string) (string, error) {
			return "12507", nil
		},
	}

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, recognizer, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID:         10,
		Photo:           "photo-data",
		IgnoreLastDigit: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1250.0, result.FinalValue)
	assert.Equal(t, vo.StatusAIConfirmed.String(), result.Status)
}

func TestCaptureReading_StripsNonDigitsFromModelAnswer(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, _ := captureDeps(t, 1200)

	recognizer := &mockRecognitionService{
		RecognizeDigitsFunc: func(ctx context.Context, photo string) (string, error) {
			return "The meter reads 1250 m3.", nil
		},
	}

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, recognizer, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID: 10,
		Photo:   "photo-data",
	})
	require.NoError(t, err)

	assert.Equal(t, 12503.0, result.FinalValue)
	assert.Equal(t, vo.StatusAIConfirmed.String(), result.Status)
}

func TestCaptureReading_ManualFallbackWhenNoDigits(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, m := captureDeps(t, 790)

	recognizer := &mockRecognitionService{
		RecognizeDigitsFunc: func(ctx context.Context, photo string) (string, error) {
			return "unable to read the meter", nil
		},
	}

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, recognizer, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID:     10,
		Photo:       "photo-data",
		ManualValue: "800",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusManualReview.String(), result.Status)
	assert.Equal(t, 800.0, result.FinalValue)
	assert.Equal(t, 800.0, m.PreviousReading())
}

func TestCaptureReading_RecognitionErrorStillRunsFallback(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, _ := captureDeps(t, 790)

	recognizer := &mockRecognitionService{
		RecognizeDigitsFunc: func(ctx context.Context, photo string) (string, error) {
			return "", fmt.Errorf("recognition API returned status 500")
		},
	}

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, recognizer, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID:     10,
		Photo:       "photo-data",
		ManualValue: "805,5",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusManualReview.String(), result.Status)
	assert.Equal(t, 805.5, result.FinalValue)
}

func TestCaptureReading_NoRecognizerConfigured(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, _ := captureDeps(t, 790)

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, nil, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID:     10,
		Photo:       "photo-data",
		ManualValue: "800",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusManualReview.String(), result.Status)
	assert.Equal(t, 800.0, result.FinalValue)
}

func TestCaptureReading_BothSourcesEmpty(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, m := captureDeps(t, 790)

	meterUpdated := false
	meterRepo.UpdateFunc = func(ctx context.Context, mt *meter.Meter) error {
		meterUpdated = true
		return nil
	}

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, nil, &mockTxManager{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID:     10,
		Photo:       "photo-data",
		ManualValue: "not-a-number",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusFailed.String(), result.Status)
	assert.Zero(t, result.FinalValue)
	assert.False(t, meterUpdated)
	assert.Equal(t, 790.0, m.PreviousReading())
}

func TestCaptureReading_ValidatesRequiredFields(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, _ := captureDeps(t, 790)
	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, nil, &mockTxManager{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CaptureReadingCommand{Photo: "photo"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), CaptureReadingCommand{MeterID: 10})
	assert.True(t, errors.IsValidationError(err))
}

func TestCaptureReading_UnknownMeterFailsInsteadOfDefaulting(t *testing.T) {
	meterRepo := &mockMeterRepository{
		TenantIDOfFunc: func(ctx context.Context, meterID uint) (uint, error) {
			return 0, errors.NewNotFoundError("meter not found")
		},
	}

	uc := NewCaptureReadingUseCase(meterRepo, &mockTenantRepository{}, &mockReadingRepository{}, nil, &mockTxManager{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID: 999,
		Photo:   "photo-data",
	})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCaptureReading_PersistenceFailureAbortsRequest(t *testing.T) {
	meterRepo, tenantRepo, readingRepo, _ := captureDeps(t, 790)
	readingRepo.CreateFunc = func(ctx context.Context, r *reading.Reading) error {
		return fmt.Errorf("connection refused")
	}

	uc := NewCaptureReadingUseCase(meterRepo, tenantRepo, readingRepo, nil, &mockTxManager{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), CaptureReadingCommand{
		MeterID:     10,
		Photo:       "photo-data",
		ManualValue: "800",
	})
	assert.Error(t, err)
}

func TestParseManualValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"empty", "", 0},
		{"plain integer", "800", 800},
		{"decimal", "800.5", 800.5},
		{"comma decimal", "800,5", 800.5},
		{"padded", " 42 ", 42},
		{"negative treated as absent", "-5", 0},
		{"garbage treated as absent", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseManualValue(tt.input))
		})
	}
}

func TestCleanDigits(t *testing.T) {
	assert.Equal(t, "1250", cleanDigits("1250"))
	assert.Equal(t, "1250", cleanDigits(" 12:50 "))
	assert.Equal(t, "", cleanDigits("no reading"))
	assert.Equal(t, "123", cleanDigits("1a2b3c"))
}
