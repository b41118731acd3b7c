package usecases

import (
	"context"
	"fmt"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/domain/user"
)

type mockUserRepository struct {
	CreateFunc              func(ctx context.Context, u *user.User) error
	FindByIDFunc            func(ctx context.Context, id uint) (*user.User, error)
	FindByNationalIDFunc    func(ctx context.Context, nationalID string) (*user.User, error)
	ListFunc                func(ctx context.Context) ([]*user.User, error)
	UpdateFunc              func(ctx context.Context, u *user.User) error
	DeleteFunc              func(ctx context.Context, id uint) error
	LinkTenantFunc          func(ctx context.Context, userID, tenantID uint) error
	UnlinkTenantFunc        func(ctx context.Context, userID, tenantID uint) error
	ListLinkedTenantIDsFunc func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByNationalID(ctx context.Context, nationalID string) (*user.User, error) {
	if m.FindByNationalIDFunc != nil {
		return m.FindByNationalIDFunc(ctx, nationalID)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) LinkTenant(ctx context.Context, userID, tenantID uint) error {
	if m.LinkTenantFunc != nil {
		return m.LinkTenantFunc(ctx, userID, tenantID)
	}
	return nil
}

func (m *mockUserRepository) UnlinkTenant(ctx context.Context, userID, tenantID uint) error {
	if m.UnlinkTenantFunc != nil {
		return m.UnlinkTenantFunc(ctx, userID, tenantID)
	}
	return nil
}

func (m *mockUserRepository) ListLinkedTenantIDs(ctx context.Context, userID uint) ([]uint, error) {
	if m.ListLinkedTenantIDsFunc != nil {
		return m.ListLinkedTenantIDsFunc(ctx, userID)
	}
	return nil, nil
}

type mockTenantRepository struct {
	CreateFunc      func(ctx context.Context, t *tenant.Tenant) error
	FindByIDFunc    func(ctx context.Context, id uint) (*tenant.Tenant, error)
	FindByIDsFunc   func(ctx context.Context, ids []uint) ([]*tenant.Tenant, error)
	ListFunc        func(ctx context.Context) ([]*tenant.Tenant, error)
	UpdateFunc      func(ctx context.Context, t *tenant.Tenant) error
	DeleteFunc      func(ctx context.Context, id uint) error
	CountBlocksFunc func(ctx context.Context, id uint) (int64, error)
}

func (m *mockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTenantRepository) FindByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantRepository) FindByIDs(ctx context.Context, ids []uint) ([]*tenant.Tenant, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return []*tenant.Tenant{}, nil
}

func (m *mockTenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTenantRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTenantRepository) CountBlocks(ctx context.Context, id uint) (int64, error) {
	if m.CountBlocksFunc != nil {
		return m.CountBlocksFunc(ctx, id)
	}
	return 0, nil
}

type mockPasswordHasher struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role, accessLevel string) (*TokenPair, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role, accessLevel string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role, accessLevel)
	}
	return &TokenPair{AccessToken: fmt.Sprintf("token-%d", userID), ExpiresIn: 900}, nil
}
