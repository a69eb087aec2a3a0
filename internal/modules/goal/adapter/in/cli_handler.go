package in

import (
	"context"

	goaldto "fieldreport/internal/modules/goal/dto"
	goalin "fieldreport/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SetTargets(ctx context.Context, mode string, value *float64) (goaldto.TargetsOutput, error) {
	return h.usecase.SetTargets(ctx, goaldto.SetTargetsInput{Mode: mode, Value: value})
}

func (h CLIHandler) Configure(ctx context.Context, role, mode string, value *float64) (goaldto.PeriodOutput, error) {
	return h.usecase.Configure(ctx, goaldto.ConfigureInput{Role: role, Mode: mode, Value: value})
}

func (h CLIHandler) ClosePeriod(ctx context.Context) (goaldto.PeriodOutput, error) {
	return h.usecase.ClosePeriod(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (goaldto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
