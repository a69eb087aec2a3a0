package out

import (
	"context"

	account "fieldreport/internal/modules/account/domain"
	"fieldreport/internal/modules/goal/domain"
	goalout "fieldreport/internal/modules/goal/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/state"
)

// StateGoalStore keeps targets in metas and open periods in metasAbertas.
type StateGoalStore struct {
	repo *state.Repository
}

func NewStateGoalStore(repo *state.Repository) goalout.GoalStore {
	return &StateGoalStore{repo: repo}
}

func (s *StateGoalStore) LoadTargets(ctx context.Context, userID string) (domain.Targets, error) {
	var targets domain.Targets
	err := s.repo.View(ctx, func(doc *state.Document) error {
		record, ok := doc.Metas[userID]
		if !ok {
			role := account.RolePublisher
			for _, u := range doc.Users {
				if u.ID == userID && u.Tipo != "" {
					role = account.Role(u.Tipo)
				}
			}
			targets = domain.DefaultTargets(userID, role)
			return nil
		}
		targets = fromRecord(userID, record)
		return nil
	})
	return targets, err
}

func (s *StateGoalStore) SaveTargets(ctx context.Context, targets domain.Targets) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		doc.Metas[targets.UserID] = toRecord(targets)
		return nil
	})
}

func (s *StateGoalStore) LoadPeriod(ctx context.Context, userID string) (domain.Period, bool, error) {
	var (
		period domain.Period
		open   bool
	)
	err := s.repo.View(ctx, func(doc *state.Document) error {
		record, ok := doc.MetasAbertas[userID]
		if ok {
			period = fromPeriodRecord(userID, record)
			open = true
		}
		return nil
	})
	return period, open, err
}

func (s *StateGoalStore) OpenPeriod(ctx context.Context, targets domain.Targets, period domain.Period) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		if _, ok := doc.MetasAbertas[period.UserID]; ok {
			return apperrors.ErrGoalPeriodOpen
		}
		doc.Metas[targets.UserID] = toRecord(targets)
		doc.MetasAbertas[period.UserID] = state.GoalPeriod{
			Tipo:           period.Label,
			Inicio:         period.Start,
			HorasEsperadas: period.ExpectedHours,
		}
		return nil
	})
}

func (s *StateGoalStore) ClosePeriod(ctx context.Context, userID string) (domain.Period, error) {
	var closed domain.Period
	err := s.repo.Update(ctx, func(doc *state.Document) error {
		record, ok := doc.MetasAbertas[userID]
		if !ok {
			return apperrors.ErrNoOpenGoal
		}
		closed = fromPeriodRecord(userID, record)
		delete(doc.MetasAbertas, userID)
		return nil
	})
	return closed, err
}

func fromRecord(userID string, r state.Goal) domain.Targets {
	mode := domain.RegularMode(r.RegTipo)
	if mode != domain.RegularAnnual {
		mode = domain.RegularMonthly
	}
	return domain.Targets{
		UserID:           userID,
		Role:             account.Role(r.Tipo),
		PublisherMonthly: r.PubMensal,
		AuxiliaryMonthly: r.AuxMensal,
		RegularMode:      mode,
		RegularMonthly:   r.RegMensal,
		RegularAnnual:    r.RegAnual,
	}
}

func toRecord(t domain.Targets) state.Goal {
	return state.Goal{
		Tipo:      string(t.Role),
		PubMensal: t.PublisherMonthly,
		AuxMensal: t.AuxiliaryMonthly,
		RegTipo:   string(t.RegularMode),
		RegMensal: t.RegularMonthly,
		RegAnual:  t.RegularAnnual,
	}
}

func fromPeriodRecord(userID string, r state.GoalPeriod) domain.Period {
	return domain.Period{UserID: userID, Label: r.Tipo, Start: r.Inicio, ExpectedHours: r.HorasEsperadas}
}
