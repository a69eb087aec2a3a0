package out

import (
	"context"

	"fieldreport/internal/modules/goal/domain"
)

type GoalStore interface {
	// LoadTargets returns default targets when the user has none stored.
	LoadTargets(ctx context.Context, userID string) (domain.Targets, error)
	SaveTargets(ctx context.Context, targets domain.Targets) error
	LoadPeriod(ctx context.Context, userID string) (domain.Period, bool, error)
	// OpenPeriod stores targets and the period in one write and fails with
	// ErrGoalPeriodOpen when a period is already open.
	OpenPeriod(ctx context.Context, targets domain.Targets, period domain.Period) error
	ClosePeriod(ctx context.Context, userID string) (domain.Period, error)
}
