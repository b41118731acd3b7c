package usecases

import (
	"context"
	"time"

	"aquameter/internal/domain/block"
	"aquameter/internal/domain/meter"
	"aquameter/internal/domain/unit"
)

type mockUnitRepository struct {
	CreateFunc        func(ctx context.Context, u *unit.Unit) error
	FindByIDFunc      func(ctx context.Context, id uint) (*unit.Unit, error)
	ListByBlockFunc   func(ctx context.Context, blockID uint) ([]*unit.Unit, error)
	ExistsInBlockFunc func(ctx context.Context, blockID uint, label string) (bool, error)
	UpdateFunc        func(ctx context.Context, u *unit.Unit) error
	DeleteFunc        func(ctx context.Context, id uint) error
}

func (m *mockUnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUnitRepository) FindByID(ctx context.Context, id uint) (*unit.Unit, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUnitRepository) ListByBlock(ctx context.Context, blockID uint) ([]*unit.Unit, error) {
	if m.ListByBlockFunc != nil {
		return m.ListByBlockFunc(ctx, blockID)
	}
	return nil, nil
}

func (m *mockUnitRepository) ExistsInBlock(ctx context.Context, blockID uint, label string) (bool, error) {
	if m.ExistsInBlockFunc != nil {
		return m.ExistsInBlockFunc(ctx, blockID, label)
	}
	return false, nil
}

func (m *mockUnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUnitRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockBlockRepository struct {
	CreateFunc       func(ctx context.Context, b *block.Block) error
	FindByIDFunc     func(ctx context.Context, id uint) (*block.Block, error)
	ListByTenantFunc func(ctx context.Context, tenantID uint) ([]*block.Block, error)
	UpdateFunc       func(ctx context.Context, b *block.Block) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockBlockRepository) Create(ctx context.Context, b *block.Block) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBlockRepository) FindByID(ctx context.Context, id uint) (*block.Block, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	now := time.Now()
	return block.ReconstructBlock(id, 1, "Block A", now, now)
}

func (m *mockBlockRepository) ListByTenant(ctx context.Context, tenantID uint) ([]*block.Block, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockBlockRepository) Update(ctx context.Context, b *block.Block) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBlockRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

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

type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}
