package meter

import (
	"fmt"
	"time"

	vo "aquameter/internal/domain/meter/valueobjects"
)

// Meter is a utility-consumption measuring device assigned to one unit.
// Its previousReading field is the running baseline used to compute the
// next period's consumption; it advances every time a positive reading is
// accepted and must be updated in the same transaction as the reading
// insert.
type Meter struct {
	id                 uint
	unitID             uint
	utilityType        vo.UtilityType
	previousReading    float64
	averageConsumption float64
	createdAt          time.Time
	updatedAt          time.Time
}

func NewMeter(unitID uint, utilityType vo.UtilityType, initialReading, averageConsumption float64) (*Meter, error) {
	if unitID == 0 {
		return nil, fmt.Errorf("unit ID is required")
	}
	if !utilityType.IsValid() {
		return nil, fmt.Errorf("invalid utility type")
	}
	if initialReading < 0 {
		return nil, fmt.Errorf("initial reading cannot be negative")
	}
	if averageConsumption < 0 {
		return nil, fmt.Errorf("average consumption cannot be negative")
	}

	now := time.Now()
	return &Meter{
		unitID:             unitID,
		utilityType:        utilityType,
		previousReading:    initialReading,
		averageConsumption: averageConsumption,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructMeter(
	id, unitID uint,
	utilityType vo.UtilityType,
	previousReading, averageConsumption float64,
	createdAt, updatedAt time.Time,
) (*Meter, error) {
	if id == 0 {
		return nil, fmt.Errorf("meter ID cannot be zero")
	}
	if unitID == 0 {
		return nil, fmt.Errorf("unit ID is required")
	}
	if !utilityType.IsValid() {
		return nil, fmt.Errorf("invalid utility type")
	}

	return &Meter{
		id:                 id,
		unitID:             unitID,
		utilityType:        utilityType,
		previousReading:    previousReading,
		averageConsumption: averageConsumption,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (m *Meter) ID() uint                    { return m.id }
func (m *Meter) UnitID() uint                { return m.unitID }
func (m *Meter) UtilityType() vo.UtilityType { return m.utilityType }
func (m *Meter) PreviousReading() float64    { return m.previousReading }
func (m *Meter) AverageConsumption() float64 { return m.averageConsumption }
func (m *Meter) CreatedAt() time.Time        { return m.createdAt }
func (m *Meter) UpdatedAt() time.Time        { return m.updatedAt }

// SetID assigns the store-generated identifier after insertion.
func (m *Meter) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("meter ID already set")
	}
	if id == 0 {
		return fmt.Errorf("meter ID cannot be zero")
	}
	m.id = id
	return nil
}

// AdvanceBaseline moves the previous-reading baseline forward to value.
// Values that are zero or negative never advance the baseline.
func (m *Meter) AdvanceBaseline(value float64) error {
	if value <= 0 {
		return fmt.Errorf("baseline value must be positive")
	}
	m.previousReading = value
	m.updatedAt = time.Now()
	return nil
}

// UpdateAverageConsumption replaces the sanity-check average.
func (m *Meter) UpdateAverageConsumption(avg float64) error {
	if avg < 0 {
		return fmt.Errorf("average consumption cannot be negative")
	}
	m.averageConsumption = avg
	m.updatedAt = time.Now()
	return nil
}
