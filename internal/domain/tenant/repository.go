package tenant

import "context"

// Repository defines the persistence contract for tenants.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	FindByID(ctx context.Context, id uint) (*Tenant, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Tenant, error)
	List(ctx context.Context) ([]*Tenant, error)
	Update(ctx context.Context, t *Tenant) error
	Delete(ctx context.Context, id uint) error
	CountBlocks(ctx context.Context, id uint) (int64, error)
}
