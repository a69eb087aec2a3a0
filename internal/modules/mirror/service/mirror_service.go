package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/robfig/cron/v3"

	"fieldreport/internal/modules/mirror/domain"
	mirrorout "fieldreport/internal/modules/mirror/port/out"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
	"fieldreport/internal/platform/state"
)

type MirrorService struct {
	clock  clock.Clock
	local  mirrorout.LocalState
	remote mirrorout.Remote
	// pulling suppresses the auto-sync hook while a pull writes local state.
	pulling atomic.Bool
}

// NewMirrorService builds the mirror. A nil remote disables it.
func NewMirrorService(clock clock.Clock, local mirrorout.LocalState, remote mirrorout.Remote) *MirrorService {
	return &MirrorService{clock: clock, local: local, remote: remote}
}

func (s *MirrorService) Enabled() bool {
	return s.remote != nil
}

func (s *MirrorService) Push(ctx context.Context, userID string) (domain.Document, error) {
	if s.remote == nil {
		return domain.Document{}, apperrors.ErrMirrorDisabled
	}
	snapshot, err := s.local.Snapshot(ctx)
	if err != nil {
		return domain.Document{}, err
	}
	doc := domain.Extract(snapshot, userID, s.clock.Now())
	if err := s.remote.Push(ctx, userID, doc); err != nil {
		return domain.Document{}, fmt.Errorf("push mirror: %w", err)
	}
	logging.FromContext(ctx).Info("mirror pushed", "user_id", userID, "entries", len(doc.Entries))
	return doc, nil
}

func (s *MirrorService) Pull(ctx context.Context, userID string) (domain.Document, bool, error) {
	if s.remote == nil {
		return domain.Document{}, false, apperrors.ErrMirrorDisabled
	}
	doc, found, err := s.remote.Pull(ctx, userID)
	if err != nil {
		return domain.Document{}, false, fmt.Errorf("pull mirror: %w", err)
	}
	if !found {
		return domain.Document{}, false, nil
	}
	s.pulling.Store(true)
	defer s.pulling.Store(false)
	if err := s.local.Update(ctx, func(local *state.Document) error {
		doc.MergeInto(local, userID)
		return nil
	}); err != nil {
		return domain.Document{}, false, err
	}
	logging.FromContext(ctx).Info("mirror pulled", "user_id", userID, "entries", len(doc.Entries))
	return doc, true, nil
}

// AutoSyncHook pushes the logged-in user's records after every save. The
// repository logs a failed push; the save itself always stands.
func (s *MirrorService) AutoSyncHook() state.SaveHook {
	return func(ctx context.Context, saved state.Document) error {
		userID := saved.CurrentUser()
		if s.remote == nil || userID == "" || s.pulling.Load() {
			return nil
		}
		if err := s.remote.Push(ctx, userID, domain.Extract(saved, userID, s.clock.Now())); err != nil {
			return fmt.Errorf("push mirror: %w", err)
		}
		return nil
	}
}

// Watch runs push on schedule until ctx is done. Failed runs are logged and
// the schedule keeps going.
func (s *MirrorService) Watch(ctx context.Context, schedule string, push func(context.Context) error) error {
	if s.remote == nil {
		return apperrors.ErrMirrorDisabled
	}
	logger := logging.FromContext(ctx)
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := push(ctx); err != nil {
			logger.Warn("scheduled mirror push failed", "error", err)
			return
		}
		logger.Info("scheduled mirror push finished")
	}); err != nil {
		return fmt.Errorf("%w: schedule %q: %v", apperrors.ErrInvalidInput, schedule, err)
	}
	logger.Info("mirror watch started", "schedule", schedule)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
