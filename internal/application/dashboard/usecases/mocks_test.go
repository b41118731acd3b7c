package usecases

import (
	"context"
	"time"

	"aquameter/internal/domain/reading"
	"aquameter/internal/domain/tenant"
)

type mockTenantRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*tenant.Tenant, error)
}

func (m *mockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error { return nil }

func (m *mockTenantRepository) FindByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	now := time.Now()
	return tenant.ReconstructTenant(id, "Aurora", 8.5, 12, 4, 5, true, now, now)
}

func (m *mockTenantRepository) FindByIDs(ctx context.Context, ids []uint) ([]*tenant.Tenant, error) {
	return nil, nil
}

func (m *mockTenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) { return nil, nil }

func (m *mockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error { return nil }

func (m *mockTenantRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockTenantRepository) CountBlocks(ctx context.Context, id uint) (int64, error) {
	return 0, nil
}

type mockReadingRepository struct {
	LatestPerMeterSinceFunc func(ctx context.Context, tenantID uint, since time.Time) ([]reading.MeterStatusRow, error)
}

func (m *mockReadingRepository) Create(ctx context.Context, r *reading.Reading) error { return nil }

func (m *mockReadingRepository) FindByID(ctx context.Context, id uint) (*reading.Reading, error) {
	return nil, nil
}

func (m *mockReadingRepository) List(ctx context.Context, filter reading.ListFilter) ([]reading.ListRow, error) {
	return nil, nil
}

func (m *mockReadingRepository) Update(ctx context.Context, r *reading.Reading) error { return nil }

func (m *mockReadingRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockReadingRepository) LatestPerMeterSince(ctx context.Context, tenantID uint, since time.Time) ([]reading.MeterStatusRow, error) {
	if m.LatestPerMeterSinceFunc != nil {
		return m.LatestPerMeterSinceFunc(ctx, tenantID, since)
	}
	return nil, nil
}
