package unit

import "context"

// Repository defines the persistence contract for units.
type Repository interface {
	Create(ctx context.Context, u *Unit) error
	FindByID(ctx context.Context, id uint) (*Unit, error)
	ListByBlock(ctx context.Context, blockID uint) ([]*Unit, error)
	ExistsInBlock(ctx context.Context, blockID uint, label string) (bool, error)
	Update(ctx context.Context, u *Unit) error
	Delete(ctx context.Context, id uint) error
}
