package usecases

import "context"

type CreateBlockExecutor interface {
	Execute(ctx context.Context, cmd CreateBlockCommand) (*BlockResult, error)
}

type ListBlocksExecutor interface {
	Execute(ctx context.Context, query ListBlocksQuery) ([]BlockResult, error)
}

type UpdateBlockExecutor interface {
	Execute(ctx context.Context, cmd UpdateBlockCommand) (*BlockResult, error)
}

type DeleteBlockExecutor interface {
	Execute(ctx context.Context, cmd DeleteBlockCommand) error
}
