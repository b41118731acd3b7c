package usecases

import "context"

// TxManager runs a function inside a single store transaction. Unit
// creation writes the unit and its meters together.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateUnitExecutor interface {
	Execute(ctx context.Context, cmd CreateUnitCommand) (*CreateUnitResult, error)
}

type GenerateUnitsExecutor interface {
	Execute(ctx context.Context, cmd GenerateUnitsCommand) (*GenerateUnitsResult, error)
}

type ListUnitsExecutor interface {
	Execute(ctx context.Context, query ListUnitsQuery) ([]UnitResult, error)
}

type DeleteUnitExecutor interface {
	Execute(ctx context.Context, cmd DeleteUnitCommand) error
}

type UpdateMeterExecutor interface {
	Execute(ctx context.Context, cmd UpdateMeterCommand) (*UnitMeterResult, error)
}
