package usecases

import (
	"context"
	"time"

	"aquameter/internal/domain/meter"
	"aquameter/internal/domain/reading"
	"aquameter/internal/domain/tenant"
)

type mockMeterRepository struct {
	CreateFunc     func(ctx context.Context, m *meter.Meter) error
	FindByIDFunc   func(ctx context.Context, id uint) (*meter.Meter, error)
	ListByUnitFunc func(ctx context.Context, unitID uint) ([]*meter.Meter, error)
	TenantIDOfFunc func(ctx context.Context, meterID uint) (uint, error)
	UpdateFunc     func(ctx context.Context, m *meter.Meter) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockMeterRepository) Create(ctx context.Context, mt *meter.Meter) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mt)
	}
	return nil
}

func (m *mockMeterRepository) FindByID(ctx context.Context, id uint) (*meter.Meter, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMeterRepository) ListByUnit(ctx context.Context, unitID uint) ([]*meter.Meter, error) {
	if m.ListByUnitFunc != nil {
		return m.ListByUnitFunc(ctx, unitID)
	}
	return nil, nil
}

func (m *mockMeterRepository) TenantIDOf(ctx context.Context, meterID uint) (uint, error) {
	if m.TenantIDOfFunc != nil {
		return m.TenantIDOfFunc(ctx, meterID)
	}
	return 0, nil
}

func (m *mockMeterRepository) Update(ctx context.Context, mt *meter.Meter) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mt)
	}
	return nil
}

func (m *mockMeterRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
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
	return nil, nil
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

type mockReadingRepository struct {
	CreateFunc              func(ctx context.Context, r *reading.Reading) error
	FindByIDFunc            func(ctx context.Context, id uint) (*reading.Reading, error)
	ListFunc                func(ctx context.Context, filter reading.ListFilter) ([]reading.ListRow, error)
	UpdateFunc              func(ctx context.Context, r *reading.Reading) error
	DeleteFunc              func(ctx context.Context, id uint) error
	LatestPerMeterSinceFunc func(ctx context.Context, tenantID uint, since time.Time) ([]reading.MeterStatusRow, error)
}

func (m *mockReadingRepository) Create(ctx context.Context, r *reading.Reading) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReadingRepository) FindByID(ctx context.Context, id uint) (*reading.Reading, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReadingRepository) List(ctx context.Context, filter reading.ListFilter) ([]reading.ListRow, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockReadingRepository) Update(ctx context.Context, r *reading.Reading) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReadingRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReadingRepository) LatestPerMeterSince(ctx context.Context, tenantID uint, since time.Time) ([]reading.MeterStatusRow, error) {
	if m.LatestPerMeterSinceFunc != nil {
		return m.LatestPerMeterSinceFunc(ctx, tenantID, since)
	}
	return nil, nil
}

type mockRecognitionService struct {
	RecognizeDigitsFunc func(ctx context.Context, photoBase64 string) (string, error)
}

func (m *mockRecognitionService) RecognizeDigits(ctx context.Context, photoBase64 string) (string, error) {
	if m.RecognizeDigitsFunc != nil {
		return m.RecognizeDigitsFunc(ctx, photoBase64)
	}
	return "", nil
}

// mockTxManager runs the callback directly; the transactional boundary is
// exercised by the repository integration tests.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}
