package unit

import (
	"fmt"
	"time"
)

// Unit is a dwelling inside a block, identified by a label that is unique
// within its block (an apartment number, a shop identifier).
type Unit struct {
	id         uint
	blockID    uint
	label      string
	floorLabel string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUnit(blockID uint, label, floorLabel string) (*Unit, error) {
	if blockID == 0 {
		return nil, fmt.Errorf("block ID is required")
	}
	if len(label) == 0 {
		return nil, fmt.Errorf("label is required")
	}
	if len(label) > 50 {
		return nil, fmt.Errorf("label exceeds maximum length of 50 characters")
	}
	if len(floorLabel) > 50 {
		return nil, fmt.Errorf("floor label exceeds maximum length of 50 characters")
	}

	now := time.Now()
	return &Unit{
		blockID:    blockID,
		label:      label,
		floorLabel: floorLabel,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructUnit(id, blockID uint, label, floorLabel string, createdAt, updatedAt time.Time) (*Unit, error) {
	if id == 0 {
		return nil, fmt.Errorf("unit ID cannot be zero")
	}
	if blockID == 0 {
		return nil, fmt.Errorf("block ID is required")
	}
	if len(label) == 0 {
		return nil, fmt.Errorf("label is required")
	}

	return &Unit{
		id:         id,
		blockID:    blockID,
		label:      label,
		floorLabel: floorLabel,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (u *Unit) ID() uint             { return u.id }
func (u *Unit) BlockID() uint        { return u.blockID }
func (u *Unit) Label() string        { return u.label }
func (u *Unit) FloorLabel() string   { return u.floorLabel }
func (u *Unit) CreatedAt() time.Time { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time { return u.updatedAt }

// SetID assigns the store-generated identifier after insertion.
func (u *Unit) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("unit ID already set")
	}
	if id == 0 {
		return fmt.Errorf("unit ID cannot be zero")
	}
	u.id = id
	return nil
}

// Relabel changes the unit's identifying label.
func (u *Unit) Relabel(label, floorLabel string) error {
	if len(label) == 0 {
		return fmt.Errorf("label is required")
	}
	if len(label) > 50 {
		return fmt.Errorf("label exceeds maximum length of 50 characters")
	}
	u.label = label
	u.floorLabel = floorLabel
	u.updatedAt = time.Now()
	return nil
}
