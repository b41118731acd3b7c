package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

func twoTenants(t *testing.T) []*tenant.Tenant {
	t.Helper()
	now := time.Now()

	first, err := tenant.ReconstructTenant(1, "Aurora", 8.5, 12, 4, 5, true, now, now)
	require.NoError(t, err)
	second, err := tenant.ReconstructTenant(2, "Bela Vista", 9, 13, 4.5, 10, true, now, now)
	require.NoError(t, err)

	return []*tenant.Tenant{first, second}
}

func TestListTenants_MasterSeesAllTenants(t *testing.T) {
	tenantRepo := &mockTenantRepository{
		ListFunc: func(ctx context.Context) ([]*tenant.Tenant, error) {
			return twoTenants(t), nil
		},
	}

	uc := NewListTenantsUseCase(tenantRepo, &mockUserRepository{}, logger.NewLogger())

	results, err := uc.Execute(context.Background(), ListTenantsQuery{UserID: 7, AccessLevel: "master"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Aurora", results[0].Name)
	assert.Equal(t, "Bela Vista", results[1].Name)
}

func TestListTenants_OperatorWithoutLinksSeesEmptyList(t *testing.T) {
	tenantRepo := &mockTenantRepository{
		ListFunc: func(ctx context.Context) ([]*tenant.Tenant, error) {
			t.Fatal("operator listing must not fetch all tenants")
			return nil, nil
		},
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*tenant.Tenant, error) {
			assert.Empty(t, ids)
			return []*tenant.Tenant{}, nil
		},
	}
	userRepo := &mockUserRepository{
		ListLinkedTenantIDsFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			assert.Equal(t, uint(7), userID)
			return nil, nil
		},
	}

	uc := NewListTenantsUseCase(tenantRepo, userRepo, logger.NewLogger())

	results, err := uc.Execute(context.Background(), ListTenantsQuery{UserID: 7, AccessLevel: "operator"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListTenants_OperatorSeesOnlyLinkedTenants(t *testing.T) {
	tenantRepo := &mockTenantRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*tenant.Tenant, error) {
			assert.Equal(t, []uint{2}, ids)
			return twoTenants(t)[1:], nil
		},
	}
	userRepo := &mockUserRepository{
		ListLinkedTenantIDsFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			return []uint{2}, nil
		},
	}

	uc := NewListTenantsUseCase(tenantRepo, userRepo, logger.NewLogger())

	results, err := uc.Execute(context.Background(), ListTenantsQuery{UserID: 7, AccessLevel: "operator"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint(2), results[0].TenantID)
	assert.Equal(t, "Bela Vista", results[0].Name)
}

func TestListTenants_RequiresIdentity(t *testing.T) {
	uc := NewListTenantsUseCase(&mockTenantRepository{}, &mockUserRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListTenantsQuery{})
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}
