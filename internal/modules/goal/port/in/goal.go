package in

import (
	"context"

	"fieldreport/internal/modules/goal/dto"
)

type Usecase interface {
	SetTargets(ctx context.Context, input dto.SetTargetsInput) (dto.TargetsOutput, error)
	Configure(ctx context.Context, input dto.ConfigureInput) (dto.PeriodOutput, error)
	ClosePeriod(ctx context.Context) (dto.PeriodOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	GoalForPeriod(ctx context.Context, userID, yearMonth string) (dto.MonthlyGoalOutput, error)
}
