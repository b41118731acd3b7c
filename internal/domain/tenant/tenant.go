package tenant

import (
	"fmt"
	"time"
)

// Tenant is a managed condominium. It is the multi-tenancy boundary: every
// block, unit, meter and reading belongs transitively to exactly one tenant.
type Tenant struct {
	id               uint
	name             string
	coldWaterRate    float64
	hotWaterRate     float64
	gasRate          float64
	billingCutoffDay int
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewTenant(name string, coldWaterRate, hotWaterRate, gasRate float64, billingCutoffDay int) (*Tenant, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if coldWaterRate < 0 || hotWaterRate < 0 || gasRate < 0 {
		return nil, fmt.Errorf("rates cannot be negative")
	}
	if billingCutoffDay < 1 || billingCutoffDay > 28 {
		return nil, fmt.Errorf("billing cutoff day must be between 1 and 28")
	}

	now := time.Now()
	return &Tenant{
		name:             name,
		coldWaterRate:    coldWaterRate,
		hotWaterRate:     hotWaterRate,
		gasRate:          gasRate,
		billingCutoffDay: billingCutoffDay,
		active:           true,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructTenant(
	id uint,
	name string,
	coldWaterRate, hotWaterRate, gasRate float64,
	billingCutoffDay int,
	active bool,
	createdAt, updatedAt time.Time,
) (*Tenant, error) {
	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Tenant{
		id:               id,
		name:             name,
		coldWaterRate:    coldWaterRate,
		hotWaterRate:     hotWaterRate,
		gasRate:          gasRate,
		billingCutoffDay: billingCutoffDay,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (t *Tenant) ID() uint               { return t.id }
func (t *Tenant) Name() string           { return t.name }
func (t *Tenant) ColdWaterRate() float64 { return t.coldWaterRate }
func (t *Tenant) HotWaterRate() float64  { return t.hotWaterRate }
func (t *Tenant) GasRate() float64       { return t.gasRate }
func (t *Tenant) BillingCutoffDay() int  { return t.billingCutoffDay }
func (t *Tenant) IsActive() bool         { return t.active }
func (t *Tenant) CreatedAt() time.Time   { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time   { return t.updatedAt }

// SetID assigns the store-generated identifier after insertion.
func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID already set")
	}
	if id == 0 {
		return fmt.Errorf("tenant ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateName renames the tenant.
func (t *Tenant) UpdateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	t.name = name
	t.updatedAt = time.Now()
	return nil
}

// UpdateBilling replaces the billing parameters.
func (t *Tenant) UpdateBilling(coldWaterRate, hotWaterRate, gasRate float64, billingCutoffDay int) error {
	if coldWaterRate < 0 || hotWaterRate < 0 || gasRate < 0 {
		return fmt.Errorf("rates cannot be negative")
	}
	if billingCutoffDay < 1 || billingCutoffDay > 28 {
		return fmt.Errorf("billing cutoff day must be between 1 and 28")
	}
	t.coldWaterRate = coldWaterRate
	t.hotWaterRate = hotWaterRate
	t.gasRate = gasRate
	t.billingCutoffDay = billingCutoffDay
	t.updatedAt = time.Now()
	return nil
}

// Activate marks the tenant as active.
func (t *Tenant) Activate() {
	t.active = true
	t.updatedAt = time.Now()
}

// Deactivate marks the tenant as inactive without removing its data.
func (t *Tenant) Deactivate() {
	t.active = false
	t.updatedAt = time.Now()
}

// RateFor returns the billing rate per cubic meter for the given utility
// type string. Unknown types bill at zero.
func (t *Tenant) RateFor(utilityType string) float64 {
	switch utilityType {
	case "cold_water":
		return t.coldWaterRate
	case "hot_water":
		return t.hotWaterRate
	case "gas":
		return t.gasRate
	default:
		return 0
	}
}
