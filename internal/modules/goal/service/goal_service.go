package service

import (
	"context"
	"fmt"

	account "fieldreport/internal/modules/account/domain"
	"fieldreport/internal/modules/goal/domain"
	goalout "fieldreport/internal/modules/goal/port/out"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
)

type GoalService struct {
	clock clock.Clock
	store goalout.GoalStore
}

func NewGoalService(clock clock.Clock, store goalout.GoalStore) *GoalService {
	return &GoalService{clock: clock, store: store}
}

func (s *GoalService) Targets(ctx context.Context, userID string) (domain.Targets, error) {
	return s.store.LoadTargets(ctx, userID)
}

// SetTargets updates the target of role without touching any open period.
func (s *GoalService) SetTargets(ctx context.Context, userID string, role account.Role, mode domain.RegularMode, value *float64) (domain.Targets, error) {
	targets, err := s.store.LoadTargets(ctx, userID)
	if err != nil {
		return domain.Targets{}, err
	}
	if err := targets.Apply(role, mode, value); err != nil {
		return domain.Targets{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.SaveTargets(ctx, targets); err != nil {
		return domain.Targets{}, err
	}
	return targets, nil
}

// EnsureNoOpenPeriod fails with ErrGoalPeriodOpen while a period is open.
func (s *GoalService) EnsureNoOpenPeriod(ctx context.Context, userID string) error {
	_, open, err := s.store.LoadPeriod(ctx, userID)
	if err != nil {
		return err
	}
	if open {
		return apperrors.ErrGoalPeriodOpen
	}
	return nil
}

// Open applies the new targets and opens a period starting today.
func (s *GoalService) Open(ctx context.Context, userID string, role account.Role, mode domain.RegularMode, value *float64) (domain.Period, error) {
	targets, err := s.store.LoadTargets(ctx, userID)
	if err != nil {
		return domain.Period{}, err
	}
	if err := targets.Apply(role, mode, value); err != nil {
		return domain.Period{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	period := domain.Period{
		UserID:        userID,
		Label:         role.Label(),
		Start:         clock.Day(s.clock.Now()),
		ExpectedHours: targets.ExpectedHours(role),
	}
	if err := s.store.OpenPeriod(ctx, targets, period); err != nil {
		return domain.Period{}, err
	}
	return period, nil
}

func (s *GoalService) Period(ctx context.Context, userID string) (domain.Period, bool, error) {
	return s.store.LoadPeriod(ctx, userID)
}

func (s *GoalService) ClosePeriod(ctx context.Context, userID string) (domain.Period, error) {
	return s.store.ClosePeriod(ctx, userID)
}
