package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	meterVO "aquameter/internal/domain/meter/valueobjects"
	"aquameter/internal/domain/reading"
	vo "aquameter/internal/domain/reading/valueobjects"
	"aquameter/internal/infrastructure/persistence/mappers"
	"aquameter/internal/infrastructure/persistence/models"
	"aquameter/internal/shared/db"
	"aquameter/internal/shared/errors"
)

// listRowLimit caps history queries so that a wide date range cannot pull
// an unbounded result set into memory.
const listRowLimit = 300

type ReadingRepository struct {
	db     *gorm.DB
	mapper mappers.ReadingMapper
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{
		db:     db,
		mapper: mappers.NewReadingMapper(),
	}
}

func (r *ReadingRepository) Create(ctx context.Context, rd *reading.Reading) error {
	model := r.mapper.ToModel(rd)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reading: %w", err)
	}

	return rd.SetID(model.ID)
}

func (r *ReadingRepository) FindByID(ctx context.Context, id uint) (*reading.Reading, error) {
	var model models.ReadingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("reading not found")
		}
		return nil, fmt.Errorf("failed to find reading: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

type listRow struct {
	ID          uint
	Value       float64
	Consumption float64
	Total       float64
	CapturedAt  int64
	Status      string
	Origin      string
	PhotoRef    string
	MeterID     uint
	UtilityType string
	UnitLabel   string
	BlockName   string
}

func (r *ReadingRepository) List(ctx context.Context, filter reading.ListFilter) ([]reading.ListRow, error) {
	if filter.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ReadingModel{}).
		Select(`readings.id, readings.value, readings.consumption, readings.total,
			readings.captured_at, readings.status, readings.origin, readings.photo_ref,
			readings.meter_id, meters.utility_type, units.label AS unit_label, blocks.name AS block_name`).
		Joins("JOIN meters ON meters.id = readings.meter_id").
		Joins("JOIN units ON units.id = meters.unit_id").
		Joins("JOIN blocks ON blocks.id = units.block_id").
		Where("readings.tenant_id = ?", filter.TenantID)

	switch {
	case filter.Month != 0 && filter.Year != 0:
		query = query.Where("readings.period = ?", fmt.Sprintf("%04d-%02d", filter.Year, filter.Month))
	case !filter.StartDate.IsZero() && !filter.EndDate.IsZero():
		query = query.Where("readings.captured_at BETWEEN ? AND ?",
			filter.StartDate.UnixMilli(), filter.EndDate.UnixMilli())
	}

	var rows []listRow
	err := query.
		Order("readings.captured_at DESC").
		Limit(listRowLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}

	result := make([]reading.ListRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, reading.ListRow{
			ID:          row.ID,
			Value:       row.Value,
			Consumption: row.Consumption,
			Total:       row.Total,
			CapturedAt:  time.UnixMilli(row.CapturedAt),
			Status:      vo.Status(row.Status),
			Origin:      vo.Origin(row.Origin),
			PhotoRef:    row.PhotoRef,
			MeterID:     row.MeterID,
			UtilityType: meterVO.UtilityType(row.UtilityType),
			UnitLabel:   row.UnitLabel,
			BlockName:   row.BlockName,
		})
	}

	return result, nil
}

func (r *ReadingRepository) Update(ctx context.Context, rd *reading.Reading) error {
	model := r.mapper.ToModel(rd)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReadingModel{}).
		Where("id = ?", model.ID).
		Select("Value", "PreviousValue", "Consumption", "Total", "PhotoRef", "Origin", "Status", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update reading: %w", result.Error)
	}

	return nil
}

func (r *ReadingRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReadingModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reading: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("reading not found")
	}

	return nil
}

type meterStatusRow struct {
	MeterID     uint
	UnitLabel   string
	BlockName   string
	UtilityType string
	ReadingID   *uint
	Status      *string
	Value       *float64
	CapturedAt  *int64
}

// LatestPerMeterSince lists every meter under the tenant with its most
// recent reading captured at or after since. The correlated subquery keeps
// the statement portable across postgres and the sqlite driver used in
// tests.
func (r *ReadingRepository) LatestPerMeterSince(ctx context.Context, tenantID uint, since time.Time) ([]reading.MeterStatusRow, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []meterStatusRow
	err := tx.Raw(`
		SELECT meters.id AS meter_id,
			units.label AS unit_label,
			blocks.name AS block_name,
			meters.utility_type,
			latest.id AS reading_id,
			latest.status,
			latest.value,
			latest.captured_at
		FROM meters
		JOIN units ON units.id = meters.unit_id
		JOIN blocks ON blocks.id = units.block_id
		LEFT JOIN readings latest ON latest.id = (
			SELECT r2.id FROM readings r2
			WHERE r2.meter_id = meters.id AND r2.captured_at >= ?
			ORDER BY r2.captured_at DESC, r2.id DESC
			LIMIT 1
		)
		WHERE blocks.tenant_id = ?
		ORDER BY blocks.name, units.label, meters.utility_type`,
		since.UnixMilli(), tenantID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query meter statuses: %w", err)
	}

	result := make([]reading.MeterStatusRow, 0, len(rows))
	for _, row := range rows {
		out := reading.MeterStatusRow{
			MeterID:     row.MeterID,
			UnitLabel:   row.UnitLabel,
			BlockName:   row.BlockName,
			UtilityType: meterVO.UtilityType(row.UtilityType),
			ReadingID:   row.ReadingID,
			Value:       row.Value,
		}
		if row.Status != nil {
			s := vo.Status(*row.Status)
			out.Status = &s
		}
		if row.CapturedAt != nil {
			t := time.UnixMilli(*row.CapturedAt)
			out.CapturedAt = &t
		}
		result = append(result, out)
	}

	return result, nil
}
