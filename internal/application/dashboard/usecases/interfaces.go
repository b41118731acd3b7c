package usecases

import "context"

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error)
}
