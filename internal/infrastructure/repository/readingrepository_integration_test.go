package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"aquameter/internal/domain/block"
	"aquameter/internal/domain/meter"
	meterVO "aquameter/internal/domain/meter/valueobjects"
	"aquameter/internal/domain/reading"
	vo "aquameter/internal/domain/reading/valueobjects"
	"aquameter/internal/domain/tenant"
	"aquameter/internal/domain/unit"
	"aquameter/internal/infrastructure/persistence/models"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache memory database keeps all pooled connections on
	// the same data while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(
		&models.TenantModel{},
		&models.BlockModel{},
		&models.UnitModel{},
		&models.MeterModel{},
		&models.ReadingModel{},
		&models.UserModel{},
		&models.UserTenantLinkModel{},
	))

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gormDB
}

type fixture struct {
	db          *gorm.DB
	tenantID    uint
	meterID     uint
	meter       *meter.Meter
	readingRepo *ReadingRepository
	meterRepo   *MeterRepository
	txManager   *db.TransactionManager
}

// seedStructure creates one tenant with a block, a unit and a cold water
// meter starting at the given baseline.
func seedStructure(t *testing.T, gormDB *gorm.DB, baseline float64) *fixture {
	t.Helper()
	ctx := context.Background()

	tenantRepo := NewTenantRepository(gormDB)
	blockRepo := NewBlockRepository(gormDB)
	unitRepo := NewUnitRepository(gormDB)
	meterRepo := NewMeterRepository(gormDB)

	tn, err := tenant.NewTenant("Residencial Aurora", 8.5, 12, 4, 5)
	require.NoError(t, err)
	require.NoError(t, tenantRepo.Create(ctx, tn))

	bl, err := block.NewBlock(tn.ID(), "Bloco A")
	require.NoError(t, err)
	require.NoError(t, blockRepo.Create(ctx, bl))

	un, err := unit.NewUnit(bl.ID(), "101", "1")
	require.NoError(t, err)
	require.NoError(t, unitRepo.Create(ctx, un))

	m, err := meter.NewMeter(un.ID(), meterVO.UtilityColdWater, baseline, 30)
	require.NoError(t, err)
	require.NoError(t, meterRepo.Create(ctx, m))

	return &fixture{
		db:          gormDB,
		tenantID:    tn.ID(),
		meterID:     m.ID(),
		meter:       m,
		readingRepo: NewReadingRepository(gormDB),
		meterRepo:   meterRepo,
		txManager:   db.NewTransactionManager(gormDB),
	}
}

func (f *fixture) addReading(t *testing.T, value float64, capturedAt time.Time) *reading.Reading {
	t.Helper()
	ctx := context.Background()

	rd, err := reading.NewCapturedReading(f.tenantID, f.meterID, capturedAt, "photos/"+capturedAt.Format("20060102"))
	require.NoError(t, err)
	require.NoError(t, rd.ApplyRecognizedValue(value, f.meter.PreviousReading(), 8.5))

	err = f.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := f.readingRepo.Create(txCtx, rd); err != nil {
			return err
		}
		if err := f.meter.AdvanceBaseline(value); err != nil {
			return err
		}
		return f.meterRepo.Update(txCtx, f.meter)
	})
	require.NoError(t, err)

	return rd
}

func TestReadingRepository_RollbackLeavesNoTrace(t *testing.T) {
	gormDB := openTestDB(t)
	f := seedStructure(t, gormDB, 1200)
	ctx := context.Background()

	rd, err := reading.NewCapturedReading(f.tenantID, f.meterID, time.Now(), "photos/x")
	require.NoError(t, err)
	require.NoError(t, rd.ApplyRecognizedValue(1250, 1200, 8.5))

	boom := fmt.Errorf("meter update rejected")
	err = f.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := f.readingRepo.Create(txCtx, rd); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, gormDB.Model(&models.ReadingModel{}).Count(&count).Error)
	assert.Zero(t, count, "rolled back reading must not be visible")

	stored, err := f.meterRepo.FindByID(ctx, f.meterID)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, stored.PreviousReading())
}

func TestReadingRepository_CommitPersistsReadingAndBaseline(t *testing.T) {
	gormDB := openTestDB(t)
	f := seedStructure(t, gormDB, 1200)
	ctx := context.Background()

	rd := f.addReading(t, 1250, time.Now())
	require.NotZero(t, rd.ID())

	stored, err := f.readingRepo.FindByID(ctx, rd.ID())
	require.NoError(t, err)
	assert.Equal(t, 1250.0, stored.Value())
	assert.Equal(t, 50.0, stored.Consumption())
	assert.Equal(t, vo.StatusAIConfirmed, stored.Status())

	m, err := f.meterRepo.FindByID(ctx, f.meterID)
	require.NoError(t, err)
	assert.Equal(t, 1250.0, m.PreviousReading())
}

func TestReadingRepository_ListFiltersAndOrders(t *testing.T) {
	gormDB := openTestDB(t)
	f := seedStructure(t, gormDB, 1000)
	ctx := context.Background()

	march := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 12, 9, 0, 0, 0, time.UTC)
	aprilLater := time.Date(2026, time.April, 20, 9, 0, 0, 0, time.UTC)

	f.addReading(t, 1010, march)
	f.addReading(t, 1025, april)
	f.addReading(t, 1040, aprilLater)

	rows, err := f.readingRepo.List(ctx, reading.ListFilter{TenantID: f.tenantID, Month: 4, Year: 2026})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first, joined with the unit and block names.
	assert.Equal(t, 1040.0, rows[0].Value)
	assert.Equal(t, 1025.0, rows[1].Value)
	assert.Equal(t, "101", rows[0].UnitLabel)
	assert.Equal(t, "Bloco A", rows[0].BlockName)
	assert.Equal(t, meterVO.UtilityColdWater, rows[0].UtilityType)

	rows, err = f.readingRepo.List(ctx, reading.ListFilter{
		TenantID:  f.tenantID,
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1010.0, rows[0].Value)

	rows, err = f.readingRepo.List(ctx, reading.ListFilter{TenantID: f.tenantID + 99, Month: 4, Year: 2026})
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = f.readingRepo.List(ctx, reading.ListFilter{})
	assert.True(t, errors.IsValidationError(err))
}

func TestReadingRepository_LatestPerMeterSince(t *testing.T) {
	gormDB := openTestDB(t)
	f := seedStructure(t, gormDB, 1000)
	ctx := context.Background()

	// Second meter in the same unit with no readings at all.
	hot, err := meter.NewMeter(f.meter.UnitID(), meterVO.UtilityHotWater, 500, 10)
	require.NoError(t, err)
	require.NoError(t, f.meterRepo.Create(ctx, hot))

	lastMonth := time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	thisMonthLater := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	f.addReading(t, 1010, lastMonth)
	f.addReading(t, 1025, thisMonth)
	latest := f.addReading(t, 1040, thisMonthLater)

	since := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	rows, err := f.readingRepo.LatestPerMeterSince(ctx, f.tenantID, since)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byMeter := make(map[uint]reading.MeterStatusRow, len(rows))
	for _, row := range rows {
		byMeter[row.MeterID] = row
	}

	cold := byMeter[f.meterID]
	require.NotNil(t, cold.ReadingID)
	assert.Equal(t, latest.ID(), *cold.ReadingID)
	require.NotNil(t, cold.Value)
	assert.Equal(t, 1040.0, *cold.Value)
	require.NotNil(t, cold.Status)
	assert.Equal(t, vo.StatusAIConfirmed, *cold.Status)

	bare := byMeter[hot.ID()]
	assert.Nil(t, bare.ReadingID)
	assert.Nil(t, bare.Status)
	assert.Nil(t, bare.Value)
	assert.Equal(t, meterVO.UtilityHotWater, bare.UtilityType)
}

func TestMeterRepository_TenantIDOfBrokenChainIsNotFound(t *testing.T) {
	gormDB := openTestDB(t)
	f := seedStructure(t, gormDB, 1000)
	ctx := context.Background()

	tenantID, err := f.meterRepo.TenantIDOf(ctx, f.meterID)
	require.NoError(t, err)
	assert.Equal(t, f.tenantID, tenantID)

	_, err = f.meterRepo.TenantIDOf(ctx, f.meterID+500)
	assert.True(t, errors.IsNotFoundError(err))
}
