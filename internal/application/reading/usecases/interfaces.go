package usecases

import (
	"context"

	"aquameter/internal/domain/reading"
)

// TxManager runs a function inside a single store transaction. The reading
// insert and the meter baseline update must commit or roll back together.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CaptureReadingExecutor interface {
	Execute(ctx context.Context, cmd CaptureReadingCommand) (*CaptureReadingResult, error)
}

type CorrectReadingExecutor interface {
	Execute(ctx context.Context, cmd CorrectReadingCommand) (*CorrectReadingResult, error)
}

type ListReadingsExecutor interface {
	Execute(ctx context.Context, query ListReadingsQuery) ([]reading.ListRow, error)
}

type DeleteReadingExecutor interface {
	Execute(ctx context.Context, cmd DeleteReadingCommand) error
}
