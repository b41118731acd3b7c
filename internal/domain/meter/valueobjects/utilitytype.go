// Package valueobjects provides value objects for the meter domain.
package valueobjects

// UtilityType represents the kind of utility a meter measures.
type UtilityType string

const (
	UtilityColdWater UtilityType = "cold_water"
	UtilityHotWater  UtilityType = "hot_water"
	UtilityGas       UtilityType = "gas"
)

// IsValid checks if the utility type is valid.
func (t UtilityType) IsValid() bool {
	switch t {
	case UtilityColdWater, UtilityHotWater, UtilityGas:
		return true
	default:
		return false
	}
}

// String returns the string representation of the utility type.
func (t UtilityType) String() string {
	return string(t)
}
