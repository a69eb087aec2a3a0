package usecase

import (
	"context"
	"fmt"

	account "fieldreport/internal/modules/account/domain"
	accountin "fieldreport/internal/modules/account/port/in"
	"fieldreport/internal/modules/goal/domain"
	goaldto "fieldreport/internal/modules/goal/dto"
	goalin "fieldreport/internal/modules/goal/port/in"
	"fieldreport/internal/modules/goal/service"
	apperrors "fieldreport/internal/platform/errors"
)

type Interactor struct {
	svc     *service.GoalService
	account accountin.Usecase
}

func NewInteractor(svc *service.GoalService, account accountin.Usecase) goalin.Usecase {
	return &Interactor{svc: svc, account: account}
}

func (i *Interactor) SetTargets(ctx context.Context, input goaldto.SetTargetsInput) (goaldto.TargetsOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return goaldto.TargetsOutput{}, err
	}
	role, err := parseRole(user.Role)
	if err != nil {
		return goaldto.TargetsOutput{}, err
	}
	mode, err := parseMode(input.Mode)
	if err != nil {
		return goaldto.TargetsOutput{}, err
	}
	targets, err := i.svc.SetTargets(ctx, user.ID, role, mode, input.Value)
	if err != nil {
		return goaldto.TargetsOutput{}, err
	}
	return toTargetsOutput(targets), nil
}

func (i *Interactor) Configure(ctx context.Context, input goaldto.ConfigureInput) (goaldto.PeriodOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return goaldto.PeriodOutput{}, err
	}
	role, err := parseRole(input.Role)
	if err != nil {
		return goaldto.PeriodOutput{}, err
	}
	mode, err := parseMode(input.Mode)
	if err != nil {
		return goaldto.PeriodOutput{}, err
	}
	if err := i.svc.EnsureNoOpenPeriod(ctx, user.ID); err != nil {
		return goaldto.PeriodOutput{}, err
	}
	period, err := i.svc.Open(ctx, user.ID, role, mode, input.Value)
	if err != nil {
		return goaldto.PeriodOutput{}, err
	}
	if err := i.account.SetRole(ctx, user.ID, string(role)); err != nil {
		return goaldto.PeriodOutput{}, fmt.Errorf("set role: %w", err)
	}
	return toPeriodOutput(period), nil
}

func (i *Interactor) ClosePeriod(ctx context.Context) (goaldto.PeriodOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return goaldto.PeriodOutput{}, err
	}
	period, err := i.svc.ClosePeriod(ctx, user.ID)
	if err != nil {
		return goaldto.PeriodOutput{}, err
	}
	return toPeriodOutput(period), nil
}

func (i *Interactor) Status(ctx context.Context) (goaldto.StatusOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return goaldto.StatusOutput{}, err
	}
	targets, err := i.svc.Targets(ctx, user.ID)
	if err != nil {
		return goaldto.StatusOutput{}, err
	}
	role := account.Role(user.Role)
	goal, ok := targets.MonthlyGoal(role)
	out := goaldto.StatusOutput{
		Role:        user.Role,
		RoleLabel:   role.Label(),
		Targets:     toTargetsOutput(targets),
		MonthlyGoal: goal,
		HasGoal:     ok,
	}
	period, open, err := i.svc.Period(ctx, user.ID)
	if err != nil {
		return goaldto.StatusOutput{}, err
	}
	if open {
		p := toPeriodOutput(period)
		out.Period = &p
	}
	return out, nil
}

// GoalForPeriod resolves the monthly goal of userID. Targets are not
// versioned, so every month resolves against the current configuration.
func (i *Interactor) GoalForPeriod(ctx context.Context, userID, _ string) (goaldto.MonthlyGoalOutput, error) {
	user, err := i.account.GetUser(ctx, userID)
	if err != nil {
		return goaldto.MonthlyGoalOutput{}, err
	}
	targets, err := i.svc.Targets(ctx, userID)
	if err != nil {
		return goaldto.MonthlyGoalOutput{}, err
	}
	goal, ok := targets.MonthlyGoal(account.Role(user.Role))
	return goaldto.MonthlyGoalOutput{Hours: goal, HasGoal: ok}, nil
}

func parseRole(raw string) (account.Role, error) {
	role, err := account.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return role, nil
}

func parseMode(raw string) (domain.RegularMode, error) {
	mode, err := domain.ParseRegularMode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return mode, nil
}

func toTargetsOutput(t domain.Targets) goaldto.TargetsOutput {
	return goaldto.TargetsOutput{
		UserID:           t.UserID,
		Role:             string(t.Role),
		PublisherMonthly: t.PublisherMonthly,
		AuxiliaryMonthly: t.AuxiliaryMonthly,
		RegularMode:      string(t.RegularMode),
		RegularMonthly:   t.RegularMonthly,
		RegularAnnual:    t.RegularAnnual,
	}
}

func toPeriodOutput(p domain.Period) goaldto.PeriodOutput {
	return goaldto.PeriodOutput{UserID: p.UserID, Label: p.Label, Start: p.Start, ExpectedHours: p.ExpectedHours}
}
