package usecases

import (
	"context"
	"time"

	"aquameter/internal/domain/reading"
	vo "aquameter/internal/domain/reading/valueobjects"
	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

// Meter colors shown on the collection dashboard.
const (
	ColorGreen = "green"
	ColorRed   = "red"
	ColorWhite = "white"
)

type GetDashboardQuery struct {
	TenantID uint
}

type MeterStatusResult struct {
	MeterID     uint
	UnitLabel   string
	BlockName   string
	UtilityType string
	Color       string
	ReadingID   *uint
	Value       *float64
	CapturedAt  *time.Time
	Status      string
}

type GetDashboardResult struct {
	TenantID uint
	Period   string
	Meters   []MeterStatusResult
	Totals   DashboardTotals
}

type DashboardTotals struct {
	Collected int
	Pending   int
	Flagged   int
}

type GetDashboardUseCase struct {
	tenantRepo  tenant.Repository
	readingRepo reading.Repository
	logger      logger.Interface
	now         func() time.Time
}

func NewGetDashboardUseCase(
	tenantRepo tenant.Repository,
	readingRepo reading.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		tenantRepo:  tenantRepo,
		readingRepo: readingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	if _, err := uc.tenantRepo.FindByID(ctx, query.TenantID); err != nil {
		return nil, err
	}

	now := uc.now()
	since := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	rows, err := uc.readingRepo.LatestPerMeterSince(ctx, query.TenantID, since)
	if err != nil {
		uc.logger.Errorw("failed to load dashboard rows", "tenant_id", query.TenantID, "error", err)
		return nil, err
	}

	result := &GetDashboardResult{
		TenantID: query.TenantID,
		Period:   since.Format("2006-01"),
		Meters:   make([]MeterStatusResult, 0, len(rows)),
	}

	for _, row := range rows {
		entry := MeterStatusResult{
			MeterID:     row.MeterID,
			UnitLabel:   row.UnitLabel,
			BlockName:   row.BlockName,
			UtilityType: row.UtilityType.String(),
			Color:       colorFor(row.Status),
			ReadingID:   row.ReadingID,
			Value:       row.Value,
			CapturedAt:  row.CapturedAt,
		}
		if row.Status != nil {
			entry.Status = row.Status.String()
		}

		switch entry.Color {
		case ColorGreen:
			result.Totals.Collected++
		case ColorRed:
			result.Totals.Flagged++
		default:
			result.Totals.Pending++
		}

		result.Meters = append(result.Meters, entry)
	}

	return result, nil
}

// colorFor maps the latest reading state of a meter to its dashboard
// color. A meter with no reading this month, or one still waiting on
// recognition, stays white so field staff can see what is left to visit.
func colorFor(status *vo.Status) string {
	if status == nil {
		return ColorWhite
	}
	switch *status {
	case vo.StatusAIConfirmed, vo.StatusWebCorrected, vo.StatusProcessed:
		return ColorGreen
	case vo.StatusFailed, vo.StatusManualReview:
		return ColorRed
	default:
		return ColorWhite
	}
}
