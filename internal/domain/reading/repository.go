package reading

import (
	"context"
	"time"

	meterVO "aquameter/internal/domain/meter/valueobjects"
	vo "aquameter/internal/domain/reading/valueobjects"
)

// ListFilter narrows reading history queries. TenantID is mandatory to
// preserve isolation between organizations sharing the store. Either the
// Month/Year pair or the StartDate/EndDate pair may be set, not both.
type ListFilter struct {
	TenantID  uint
	Month     int
	Year      int
	StartDate time.Time
	EndDate   time.Time
}

// ListRow is a flattened projection of a reading joined with its meter,
// unit and block for history listings.
type ListRow struct {
	ID          uint
	Value       float64
	Consumption float64
	Total       float64
	CapturedAt  time.Time
	Status      vo.Status
	Origin      vo.Origin
	PhotoRef    string
	MeterID     uint
	UtilityType meterVO.UtilityType
	UnitLabel   string
	BlockName   string
}

// MeterStatusRow carries the latest reading status per meter for the
// dashboard, or a nil status when the meter has no reading in the window.
type MeterStatusRow struct {
	MeterID     uint
	UnitLabel   string
	BlockName   string
	UtilityType meterVO.UtilityType
	ReadingID   *uint
	Status      *vo.Status
	Value       *float64
	CapturedAt  *time.Time
}

// Repository defines the persistence contract for readings.
type Repository interface {
	Create(ctx context.Context, r *Reading) error
	FindByID(ctx context.Context, id uint) (*Reading, error)
	List(ctx context.Context, filter ListFilter) ([]ListRow, error)
	Update(ctx context.Context, r *Reading) error
	Delete(ctx context.Context, id uint) error
	// LatestPerMeterSince returns every meter under the tenant together
	// with its most recent reading captured at or after since, if any.
	LatestPerMeterSince(ctx context.Context, tenantID uint, since time.Time) ([]MeterStatusRow, error)
}
