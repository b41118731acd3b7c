package usecases

import (
	"context"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/domain/user"
	vo "aquameter/internal/domain/user/valueobjects"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type ListTenantsQuery struct {
	UserID      uint
	AccessLevel string
}

type ListTenantsUseCase struct {
	tenantRepo tenant.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTenantsUseCase(tenantRepo tenant.Repository, userRepo user.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute lists the tenants the caller may act on. Master users see every
// tenant; operators see only the tenants they are linked to, which may be
// an empty set.
func (uc *ListTenantsUseCase) Execute(ctx context.Context, query ListTenantsQuery) ([]TenantResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewUnauthorizedError("user identity is required")
	}

	var tenants []*tenant.Tenant
	var err error

	if vo.AccessLevel(query.AccessLevel).IsMaster() {
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

	results := make([]TenantResult, 0, len(tenants))
	for _, t := range tenants {
		results = append(results, *tenantToResult(t))
	}

	return results, nil
}
