package usecases

import (
	"context"
	"time"

	"aquameter/internal/domain/reading"
	"aquameter/internal/shared/errors"
	"aquameter/internal/shared/logger"
)

type ListReadingsQuery struct {
	TenantID  uint
	Month     int
	Year      int
	StartDate time.Time
	EndDate   time.Time
}

type ListReadingsUseCase struct {
	readingRepo reading.Repository
	logger      logger.Interface
}

func NewListReadingsUseCase(readingRepo reading.Repository, logger logger.Interface) *ListReadingsUseCase {
	return &ListReadingsUseCase{
		readingRepo: readingRepo,
		logger:      logger,
	}
}

func (uc *ListReadingsUseCase) Execute(ctx context.Context, query ListReadingsQuery) ([]reading.ListRow, error) {
	if query.TenantID == 0 {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	if (query.Month != 0) != (query.Year != 0) {
		return nil, errors.NewValidationError("month and year must be provided together")
	}
	if query.StartDate.IsZero() != query.EndDate.IsZero() {
		return nil, errors.NewValidationError("start and end dates must be provided together")
	}

	return uc.readingRepo.List(ctx, reading.ListFilter{
		TenantID:  query.TenantID,
		Month:     query.Month,
		Year:      query.Year,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
	})
}
