package service

import (
	"context"
	"errors"
	"fmt"

	"fieldreport/internal/modules/timer/domain"
	timerout "fieldreport/internal/modules/timer/port/out"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
)

type TimerService struct {
	clock    clock.Clock
	store    timerout.SessionStore
	entries  timerout.EntryLogger
	notifier timerout.Notifier
}

func NewTimerService(clock clock.Clock, store timerout.SessionStore, entries timerout.EntryLogger, notifier timerout.Notifier) *TimerService {
	return &TimerService{clock: clock, store: store, entries: entries, notifier: notifier}
}

// Start opens a session for userID. Only one session may exist at a time.
func (s *TimerService) Start(ctx context.Context, userID string, categories []string, people []domain.Person) (domain.Session, error) {
	session, err := domain.NewSession(userID, s.clock.Now(), categories, people)
	if err != nil {
		return domain.Session{}, err
	}
	if err := s.store.Create(ctx, session); err != nil {
		return domain.Session{}, err
	}
	logging.FromContext(ctx).Info("timer started", "user_id", userID, "categories", session.Category())
	return session, nil
}

// Active loads the running session and checks it belongs to userID.
func (s *TimerService) Active(ctx context.Context, userID string) (domain.Session, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	if session.UserID != userID {
		return domain.Session{}, apperrors.ErrTimerOwnedByOtherUser
	}
	return session, nil
}

// Existing returns the running session whoever owns it.
func (s *TimerService) Existing(ctx context.Context) (domain.Session, bool, error) {
	session, err := s.store.Load(ctx)
	if errors.Is(err, apperrors.ErrNoActiveTimer) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	return session, true, nil
}

func (s *TimerService) Pause(ctx context.Context, userID string) (domain.Session, error) {
	return s.modifyOwned(ctx, userID, func(session *domain.Session) error {
		return session.Pause(s.clock.Now())
	})
}

func (s *TimerService) Resume(ctx context.Context, userID string) (domain.Session, error) {
	return s.modifyOwned(ctx, userID, func(session *domain.Session) error {
		return session.Resume(s.clock.Now())
	})
}

// Stop logs the session as an entry dated today and destroys it.
func (s *TimerService) Stop(ctx context.Context, userID string, counters domain.Counters) (timerout.LoggedEntry, string, error) {
	session, err := s.Active(ctx, userID)
	if err != nil {
		return timerout.LoggedEntry{}, "", err
	}
	now := s.clock.Now()
	total := session.LoggedMinutes(now)
	entry := timerout.LoggedEntry{
		UserID:         userID,
		Date:           clock.Day(now),
		Hours:          total / 60,
		Minutes:        total % 60,
		Category:       session.Category(),
		Observation:    session.Observation(now),
		Publications:   counters.Publications,
		ReopenedVisits: counters.ReopenedVisits,
		Letters:        counters.Letters,
	}
	entryID, err := s.entries.LogSession(ctx, entry)
	if err != nil {
		return timerout.LoggedEntry{}, "", fmt.Errorf("log timer entry: %w", err)
	}
	if err := s.store.Clear(ctx); err != nil {
		return timerout.LoggedEntry{}, "", err
	}
	logging.FromContext(ctx).Info("timer stopped", "user_id", userID, "minutes", total, "entry_id", entryID)
	return entry, entryID, nil
}

// Cancel discards the session without logging anything.
func (s *TimerService) Cancel(ctx context.Context, userID string) error {
	if _, err := s.Active(ctx, userID); err != nil {
		return err
	}
	return s.store.Clear(ctx)
}

// Tick refreshes the live view. The hour marker is only written when a new
// whole hour is reached.
func (s *TimerService) Tick(ctx context.Context, userID string) (domain.Session, int, error) {
	session, err := s.Active(ctx, userID)
	if err != nil {
		return domain.Session{}, 0, err
	}
	probe := session
	if _, ok := probe.HourNotice(s.clock.Now()); !ok {
		return session, 0, nil
	}
	var hours int
	updated, err := s.store.Modify(ctx, func(stored *domain.Session) error {
		h, ok := stored.HourNotice(s.clock.Now())
		if ok {
			hours = h
		}
		return nil
	})
	if err != nil {
		return domain.Session{}, 0, err
	}
	if hours > 0 {
		message := domain.HourNoticeText(hours)
		logging.FromContext(ctx).Info("timer hour reached", "user_id", userID, "hours", hours)
		if s.notifier != nil {
			s.notifier.Notify(ctx, message)
		}
	}
	return updated, hours, nil
}

func (s *TimerService) modifyOwned(ctx context.Context, userID string, fn func(*domain.Session) error) (domain.Session, error) {
	return s.store.Modify(ctx, func(session *domain.Session) error {
		if session.UserID != userID {
			return apperrors.ErrTimerOwnedByOtherUser
		}
		return fn(session)
	})
}
