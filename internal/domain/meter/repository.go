package meter

import "context"

// Repository defines the persistence contract for meters.
type Repository interface {
	Create(ctx context.Context, m *Meter) error
	FindByID(ctx context.Context, id uint) (*Meter, error)
	ListByUnit(ctx context.Context, unitID uint) ([]*Meter, error)
	// TenantIDOf resolves the owning tenant by walking meter -> unit -> block.
	TenantIDOf(ctx context.Context, meterID uint) (uint, error)
	Update(ctx context.Context, m *Meter) error
	Delete(ctx context.Context, id uint) error
}
