package usecases

import "context"

// PasswordHasher abstracts the credential hashing backend.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*UserResult, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*UserResult, error)
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]UserResult, error)
}

type LinkTenantExecutor interface {
	Execute(ctx context.Context, cmd LinkTenantCommand) error
}

type UnlinkTenantExecutor interface {
	Execute(ctx context.Context, cmd UnlinkTenantCommand) error
}

type ListUserTenantsExecutor interface {
	Execute(ctx context.Context, query ListUserTenantsQuery) ([]LinkedTenantResult, error)
}
