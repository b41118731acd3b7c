package reading

import (
	"fmt"
	"time"

	vo "aquameter/internal/domain/reading/valueobjects"
)

// Reading is one measurement event for a meter. It snapshots the meter's
// baseline at capture time so that consumption and billing totals remain
// stable even after the meter advances.
type Reading struct {
	id            uint
	tenantID      uint
	meterID       uint
	value         float64
	previousValue float64
	consumption   float64
	total         float64
	period        string
	capturedAt    time.Time
	photoRef      string
	origin        vo.Origin
	status        vo.Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewCapturedReading starts a reading for a photo submitted from the mobile
// client. The reading holds no value yet; one of ApplyRecognizedValue,
// ApplyManualValue or MarkFailed settles it.
func NewCapturedReading(tenantID, meterID uint, capturedAt time.Time, photoRef string) (*Reading, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if meterID == 0 {
		return nil, fmt.Errorf("meter ID is required")
	}
	if len(photoRef) == 0 {
		return nil, fmt.Errorf("photo is required")
	}
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}

	now := time.Now()
	return &Reading{
		tenantID:   tenantID,
		meterID:    meterID,
		capturedAt: capturedAt,
		period:     capturedAt.Format("2006-01"),
		photoRef:   photoRef,
		origin:     vo.OriginMobileCapture,
		status:     vo.StatusAwaitingAI,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewImportedReading builds a reading ingested from a spreadsheet import.
// Imported rows carry their final value up front and need no review.
func NewImportedReading(tenantID, meterID uint, value, previousValue, rate float64, capturedAt time.Time) (*Reading, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if meterID == 0 {
		return nil, fmt.Errorf("meter ID is required")
	}
	if value < 0 {
		return nil, fmt.Errorf("value cannot be negative")
	}
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}

	now := time.Now()
	r := &Reading{
		tenantID:   tenantID,
		meterID:    meterID,
		capturedAt: capturedAt,
		period:     capturedAt.Format("2006-01"),
		origin:     vo.OriginCSVImport,
		status:     vo.StatusProcessed,
		createdAt:  now,
		updatedAt:  now,
	}
	r.settle(value, previousValue, rate)
	return r, nil
}

func ReconstructReading(
	id, tenantID, meterID uint,
	value, previousValue, consumption, total float64,
	period string,
	capturedAt time.Time,
	photoRef string,
	origin vo.Origin,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*Reading, error) {
	if id == 0 {
		return nil, fmt.Errorf("reading ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if meterID == 0 {
		return nil, fmt.Errorf("meter ID is required")
	}
	if !origin.IsValid() {
		return nil, fmt.Errorf("invalid origin")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Reading{
		id:            id,
		tenantID:      tenantID,
		meterID:       meterID,
		value:         value,
		previousValue: previousValue,
		consumption:   consumption,
		total:         total,
		period:        period,
		capturedAt:    capturedAt,
		photoRef:      photoRef,
		origin:        origin,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *Reading) ID() uint               { return r.id }
func (r *Reading) TenantID() uint         { return r.tenantID }
func (r *Reading) MeterID() uint          { return r.meterID }
func (r *Reading) Value() float64         { return r.value }
func (r *Reading) PreviousValue() float64 { return r.previousValue }
func (r *Reading) Consumption() float64   { return r.consumption }
func (r *Reading) Total() float64         { return r.total }
func (r *Reading) Period() string         { return r.period }
func (r *Reading) CapturedAt() time.Time  { return r.capturedAt }
func (r *Reading) PhotoRef() string       { return r.photoRef }
func (r *Reading) Origin() vo.Origin      { return r.origin }
func (r *Reading) Status() vo.Status      { return r.status }
func (r *Reading) CreatedAt() time.Time   { return r.createdAt }
func (r *Reading) UpdatedAt() time.Time   { return r.updatedAt }

// SetID assigns the store-generated identifier after insertion.
func (r *Reading) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reading ID already set")
	}
	if id == 0 {
		return fmt.Errorf("reading ID cannot be zero")
	}
	r.id = id
	return nil
}

// ApplyRecognizedValue settles the reading with a value confirmed by the
// recognition service.
func (r *Reading) ApplyRecognizedValue(value, previousValue, rate float64) error {
	if value <= 0 {
		return fmt.Errorf("recognized value must be positive")
	}
	if !r.status.CanTransitionTo(vo.StatusAIConfirmed) {
		return fmt.Errorf("cannot confirm reading in status %s", r.status)
	}
	r.settle(value, previousValue, rate)
	r.status = vo.StatusAIConfirmed
	return nil
}

// ApplyManualValue settles the reading with the value the field worker
// typed. The reading stays flagged for a human audit because recognition
// could not confirm it.
func (r *Reading) ApplyManualValue(value, previousValue, rate float64) error {
	if value <= 0 {
		return fmt.Errorf("manual value must be positive")
	}
	if !r.status.CanTransitionTo(vo.StatusManualReview) {
		return fmt.Errorf("cannot flag reading for review in status %s", r.status)
	}
	r.settle(value, previousValue, rate)
	r.status = vo.StatusManualReview
	return nil
}

// MarkFailed records that neither recognition nor the manual fallback
// produced a usable value. The reading is kept with a zero value as an
// audit trail and is expected to be corrected later.
func (r *Reading) MarkFailed(previousValue float64) error {
	if !r.status.CanTransitionTo(vo.StatusFailed) {
		return fmt.Errorf("cannot fail reading in status %s", r.status)
	}
	r.value = 0
	r.previousValue = previousValue
	r.consumption = 0
	r.total = 0
	r.status = vo.StatusFailed
	r.updatedAt = time.Now()
	return nil
}

// Correct overwrites the reading's value and optionally its photo through
// the web correction flow. The caller must re-apply the meter baseline.
func (r *Reading) Correct(value float64, photoRef string, previousValue, rate float64) error {
	if value <= 0 {
		return fmt.Errorf("corrected value must be positive")
	}
	if !r.status.CanTransitionTo(vo.StatusWebCorrected) {
		return fmt.Errorf("cannot correct reading in status %s", r.status)
	}
	r.settle(value, previousValue, rate)
	if photoRef != "" {
		r.photoRef = photoRef
	}
	r.origin = vo.OriginWebCorrection
	r.status = vo.StatusWebCorrected
	return nil
}

// settle stores the value with its baseline snapshot and derives the
// consumption and monetary total. A value below the baseline yields zero
// consumption rather than a negative bill.
func (r *Reading) settle(value, previousValue, rate float64) {
	r.value = value
	r.previousValue = previousValue
	consumption := value - previousValue
	if consumption < 0 {
		consumption = 0
	}
	r.consumption = consumption
	r.total = consumption * rate
	r.updatedAt = time.Now()
}
