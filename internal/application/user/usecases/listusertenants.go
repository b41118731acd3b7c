package usecases

import (
	"context"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/domain/user"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type ListUserTenantsQuery struct {
	UserID uint
}

type LinkedTenantResult struct {
	TenantID uint
	Name     string
}

// ListUserTenantsUseCase resolves the tenants a user may act on. Master
// users see every tenant; operators see only the explicitly linked ones,
// which may be none.
type ListUserTenantsUseCase struct {
	userRepo   user.Repository
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewListUserTenantsUseCase(userRepo user.Repository, tenantRepo tenant.Repository, logger logger.Interface) *ListUserTenantsUseCase {
	return &ListUserTenantsUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

func (uc *ListUserTenantsUseCase) Execute(ctx context.Context, query ListUserTenantsQuery) ([]LinkedTenantResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	var tenants []*tenant.Tenant
	if u.AccessLevel().IsMaster() {
		tenants, err = uc.tenantRepo.List(ctx)
	} else {
		var ids []uint
		ids, err = uc.userRepo.ListLinkedTenantIDs(ctx, query.UserID)
		if err == nil {
			tenants, err = uc.tenantRepo.FindByIDs(ctx, ids)
		}
	}
	if err != nil {
		return nil, err
	}

	results := make([]LinkedTenantResult, 0, len(tenants))
	for _, t := range tenants {
		results = append(results, LinkedTenantResult{
			TenantID: t.ID(),
			Name:     t.Name(),
		})
	}

	return results, nil
}
