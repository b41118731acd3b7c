package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	meterVO "aquameter/internal/domain/meter/valueobjects"
	"aquameter/internal/domain/reading"
	vo "aquameter/internal/domain/reading/valueobjects"
	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

func statusRow(meterID uint, unit, block string, status *vo.Status) reading.MeterStatusRow {
	row := reading.MeterStatusRow{
		MeterID:     meterID,
		UnitLabel:   unit,
		BlockName:   block,
		UtilityType: meterVO.UtilityColdWater,
		Status:      status,
	}
	if status != nil {
		id := meterID + 100
		value := 1250.0
		captured := time.Now()
		row.ReadingID = &id
		row.Value = &value
		row.CapturedAt = &captured
	}
	return row
}

func statusPtr(s vo.Status) *vo.Status { return &s }

func TestGetDashboard_ColorsFollowLatestReadingState(t *testing.T) {
	readingRepo := &mockReadingRepository{
		LatestPerMeterSinceFunc: func(ctx context.Context, tenantID uint, since time.Time) ([]reading.MeterStatusRow, error) {
			return []reading.MeterStatusRow{
				statusRow(1, "101", "A", statusPtr(vo.StatusAIConfirmed)),
				statusRow(2, "102", "A", statusPtr(vo.StatusWebCorrected)),
				statusRow(3, "103", "A", statusPtr(vo.StatusProcessed)),
				statusRow(4, "104", "A", statusPtr(vo.StatusFailed)),
				statusRow(5, "105", "A", statusPtr(vo.StatusManualReview)),
				statusRow(6, "106", "A", statusPtr(vo.StatusAwaitingAI)),
				statusRow(7, "107", "A", nil),
			}, nil
		},
	}

	uc := NewGetDashboardUseCase(&mockTenantRepository{}, readingRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{TenantID: 1})
	require.NoError(t, err)
	require.Len(t, result.Meters, 7)

	colors := make(map[uint]string, len(result.Meters))
	for _, m := range result.Meters {
		colors[m.MeterID] = m.Color
	}

	assert.Equal(t, ColorGreen, colors[1])
	assert.Equal(t, ColorGreen, colors[2])
	assert.Equal(t, ColorGreen, colors[3])
	assert.Equal(t, ColorRed, colors[4])
	assert.Equal(t, ColorRed, colors[5])
	assert.Equal(t, ColorWhite, colors[6])
	assert.Equal(t, ColorWhite, colors[7])

	assert.Equal(t, 3, result.Totals.Collected)
	assert.Equal(t, 2, result.Totals.Flagged)
	assert.Equal(t, 2, result.Totals.Pending)
}

func TestGetDashboard_WindowStartsAtFirstOfMonth(t *testing.T) {
	var gotSince time.Time
	readingRepo := &mockReadingRepository{
		LatestPerMeterSinceFunc: func(ctx context.Context, tenantID uint, since time.Time) ([]reading.MeterStatusRow, error) {
			gotSince = since
			return nil, nil
		},
	}

	uc := NewGetDashboardUseCase(&mockTenantRepository{}, readingRepo, logger.NewLogger())
	uc.now = func() time.Time {
		return time.Date(2026, time.March, 17, 14, 30, 0, 0, time.UTC)
	}

	result, err := uc.Execute(context.Background(), GetDashboardQuery{TenantID: 1})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), gotSince)
	assert.Equal(t, "2026-03", result.Period)
}

func TestGetDashboard_RequiresTenant(t *testing.T) {
	uc := NewGetDashboardUseCase(&mockTenantRepository{}, &mockReadingRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetDashboardQuery{})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetDashboard_UnknownTenant(t *testing.T) {
	tenantRepo := &mockTenantRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*tenant.Tenant, error) {
			return nil, errors.NewNotFoundError("tenant not found")
		},
	}

	uc := NewGetDashboardUseCase(tenantRepo, &mockReadingRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetDashboardQuery{TenantID: 99})
	assert.True(t, errors.IsNotFoundError(err))
}
