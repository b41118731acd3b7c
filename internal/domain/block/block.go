package block

import (
	"fmt"
	"time"
)

// Block is a building within a tenant's condominium. Blocks are created
// under a tenant and never reassigned.
type Block struct {
	id        uint
	tenantID  uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewBlock(tenantID uint, name string) (*Block, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Block{
		tenantID:  tenantID,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBlock(id, tenantID uint, name string, createdAt, updatedAt time.Time) (*Block, error) {
	if id == 0 {
		return nil, fmt.Errorf("block ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Block{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Block) ID() uint             { return b.id }
func (b *Block) TenantID() uint       { return b.tenantID }
func (b *Block) Name() string         { return b.name }
func (b *Block) CreatedAt() time.Time { return b.createdAt }
func (b *Block) UpdatedAt() time.Time { return b.updatedAt }

// SetID assigns the store-generated identifier after insertion.
func (b *Block) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("block ID already set")
	}
	if id == 0 {
		return fmt.Errorf("block ID cannot be zero")
	}
	b.id = id
	return nil
}

// Rename changes the block name.
func (b *Block) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	b.name = name
	b.updatedAt = time.Now()
	return nil
}
