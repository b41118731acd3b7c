package usecases

import (
	"context"

	"aquameter/internal/domain/tenant"
	"aquameter/internal/domain/user"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
	"aquameter/internal/shared/utils"
)

type LoginCommand struct {
	NationalID string
	Password   string
}

type AccessibleTenant struct {
	TenantID uint
	Name     string
}

type LoginResult struct {
	UserID      uint
	Name        string
	Role        string
	AccessLevel string
	Tokens      TokenPair
	// Tenants is the set the user may act on: every tenant for master
	// users, only the linked ones for operators. An operator with no
	// links gets an empty set, not an error.
	Tenants []AccessibleTenant
}

type LoginUseCase struct {
	userRepo   user.Repository
	tenantRepo tenant.Repository
	hasher     PasswordHasher
	tokens     TokenIssuer
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	tenantRepo tenant.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	nationalID := utils.DigitsOnly(cmd.NationalID)
	if nationalID == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("national ID and password are required")
	}

	u, err := uc.userRepo.FindByNationalID(ctx, nationalID)
	if err != nil {
		// A wrong national ID and a wrong password produce the same
		// answer so the endpoint cannot be used to enumerate accounts.
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "national_id", nationalID)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	tenants, err := uc.accessibleTenants(ctx, u)
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role().String(), u.AccessLevel().String())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue session tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "access_level", u.AccessLevel().String())

	return &LoginResult{
		UserID:      u.ID(),
		Name:        u.Name(),
		Role:        u.Role().String(),
		AccessLevel: u.AccessLevel().String(),
		Tokens:      *pair,
		Tenants:     tenants,
	}, nil
}

func (uc *LoginUseCase) accessibleTenants(ctx context.Context, u *user.User) ([]AccessibleTenant, error) {
	var tenants []*tenant.Tenant
	var err error

	if u.AccessLevel().IsMaster() {
		tenants, err = uc.tenantRepo.List(ctx)
	} else {
		var ids []uint
		ids, err = uc.userRepo.ListLinkedTenantIDs(ctx, u.ID())
		if err == nil {
			tenants, err = uc.tenantRepo.FindByIDs(ctx, ids)
		}
	}
	if err != nil {
		return nil, err
	}

	result := make([]AccessibleTenant, 0, len(tenants))
	for _, t := range tenants {
		result = append(result, AccessibleTenant{
			TenantID: t.ID(),
			Name:     t.Name(),
		})
	}
	return result, nil
}
