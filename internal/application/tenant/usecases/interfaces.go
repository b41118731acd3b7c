package usecases

import "context"

type CreateTenantExecutor interface {
	Execute(ctx context.Context, cmd CreateTenantCommand) (*TenantResult, error)
}

type UpdateTenantExecutor interface {
	Execute(ctx context.Context, cmd UpdateTenantCommand) (*TenantResult, error)
}

type DeleteTenantExecutor interface {
	Execute(ctx context.Context, cmd DeleteTenantCommand) error
}

type ListTenantsExecutor interface {
	Execute(ctx context.Context, query ListTenantsQuery) ([]TenantResult, error)
}
