package user

import "context"

// Repository defines the persistence contract for users and their tenant
// links.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByNationalID(ctx context.Context, nationalID string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error

	LinkTenant(ctx context.Context, userID, tenantID uint) error
	UnlinkTenant(ctx context.Context, userID, tenantID uint) error
	ListLinkedTenantIDs(ctx context.Context, userID uint) ([]uint, error)
}
