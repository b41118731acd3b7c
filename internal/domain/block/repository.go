package block

import "context"

// Repository defines the persistence contract for blocks.
type Repository interface {
	Create(ctx context.Context, b *Block) error
	FindByID(ctx context.Context, id uint) (*Block, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]*Block, error)
	Update(ctx context.Context, b *Block) error
	Delete(ctx context.Context, id uint) error
}
