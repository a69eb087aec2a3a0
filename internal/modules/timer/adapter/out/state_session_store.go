package out

import (
	"context"
	"time"

	"fieldreport/internal/modules/timer/domain"
	timerout "fieldreport/internal/modules/timer/port/out"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/state"
)

// StateSessionStore keeps the session in the timerState slot of the state
// document, so a session survives restarts.
type StateSessionStore struct {
	repo *state.Repository
}

func NewStateSessionStore(repo *state.Repository) timerout.SessionStore {
	return &StateSessionStore{repo: repo}
}

func (s *StateSessionStore) Load(ctx context.Context) (domain.Session, error) {
	var session domain.Session
	err := s.repo.View(ctx, func(doc *state.Document) error {
		if doc.TimerState == nil {
			return apperrors.ErrNoActiveTimer
		}
		session = fromRecord(*doc.TimerState)
		return nil
	})
	return session, err
}

func (s *StateSessionStore) Create(ctx context.Context, session domain.Session) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		if doc.TimerState != nil {
			if doc.TimerState.UserID == session.UserID {
				return apperrors.ErrActiveTimerExists
			}
			return apperrors.ErrTimerOwnedByOtherUser
		}
		record := toRecord(session)
		doc.TimerState = &record
		return nil
	})
}

func (s *StateSessionStore) Modify(ctx context.Context, fn func(*domain.Session) error) (domain.Session, error) {
	var updated domain.Session
	err := s.repo.Update(ctx, func(doc *state.Document) error {
		if doc.TimerState == nil {
			return apperrors.ErrNoActiveTimer
		}
		session := fromRecord(*doc.TimerState)
		if err := fn(&session); err != nil {
			return err
		}
		record := toRecord(session)
		doc.TimerState = &record
		updated = session
		return nil
	})
	return updated, err
}

func (s *StateSessionStore) Clear(ctx context.Context) error {
	return s.repo.Update(ctx, func(doc *state.Document) error {
		doc.TimerState = nil
		return nil
	})
}

func toRecord(session domain.Session) state.TimerState {
	record := state.TimerState{
		UserID:           session.UserID,
		Start:            session.Start,
		Pause:            session.Paused,
		PausedTime:       session.PausedTotal.Milliseconds(),
		Modalidades:      append([]string(nil), session.Categories...),
		Pessoas:          make([]state.TimerPerson, 0, len(session.People)),
		LastHourNotified: session.LastHourNotified,
	}
	if session.Paused {
		pauseStart := session.PauseStart
		record.PauseStart = &pauseStart
	}
	for _, p := range session.People {
		record.Pessoas = append(record.Pessoas, state.TimerPerson{Tipo: p.Kind, ID: p.ID, Nome: p.Name})
	}
	return record
}

func fromRecord(record state.TimerState) domain.Session {
	session := domain.Session{
		UserID:           record.UserID,
		Start:            record.Start,
		Paused:           record.Pause,
		PausedTotal:      time.Duration(record.PausedTime) * time.Millisecond,
		Categories:       append([]string(nil), record.Modalidades...),
		LastHourNotified: record.LastHourNotified,
	}
	if record.Pause && record.PauseStart != nil {
		session.PauseStart = *record.PauseStart
	}
	for _, p := range record.Pessoas {
		session.People = append(session.People, domain.Person{Kind: p.Tipo, ID: p.ID, Name: p.Nome})
	}
	return session
}
