package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fieldreport/internal/modules/timer/domain"
	apperrors "fieldreport/internal/platform/errors"
)

var start = time.Date(2026, 4, 11, 9, 0, 0, 0, time.UTC)

func TestNewSessionRequiresCategory(t *testing.T) {
	t.Parallel()
	_, err := domain.NewSession("u1", start, []string{" ", ""}, nil)
	require.ErrorIs(t, err, apperrors.ErrNoCategory)

	_, err = domain.NewSession("", start, []string{"Campo"}, nil)
	require.ErrorIs(t, err, apperrors.ErrNoCurrentUser)

	s, err := domain.NewSession("u1", start, []string{"Campo", " Cartas "}, nil)
	require.NoError(t, err)
	require.Equal(t, "Campo, Cartas", s.Category())
	require.False(t, s.Paused)
	require.Zero(t, s.PausedTotal)
}

func TestPauseResumeAccountingMatchesWallTimeMinusPauses(t *testing.T) {
	t.Parallel()
	cycles := []struct{ run, pause time.Duration }{
		{10 * time.Minute, 3 * time.Minute},
		{7 * time.Minute, 30 * time.Second},
		{45 * time.Second, 20 * time.Minute},
		{time.Hour, time.Second},
	}
	s, err := domain.NewSession("u1", start, []string{"Campo"}, nil)
	require.NoError(t, err)

	now := start
	var running time.Duration
	for _, c := range cycles {
		now = now.Add(c.run)
		running += c.run
		require.NoError(t, s.Pause(now))
		require.Equal(t, running, s.Elapsed(now))

		now = now.Add(c.pause)
		require.Equal(t, running, s.Elapsed(now), "elapsed must not grow while paused")
		require.NoError(t, s.Resume(now))
	}
	now = now.Add(5 * time.Minute)
	running += 5 * time.Minute
	require.Equal(t, running, s.Elapsed(now))
}

func TestPauseResumeStateErrors(t *testing.T) {
	t.Parallel()
	s, err := domain.NewSession("u1", start, []string{"Campo"}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, s.Resume(start), apperrors.ErrTimerNotPaused)
	require.NoError(t, s.Pause(start))
	require.ErrorIs(t, s.Pause(start), apperrors.ErrTimerNotRunning)
}

func TestLoggedMinutesFloorAndRounding(t *testing.T) {
	t.Parallel()
	s, err := domain.NewSession("u1", start, []string{"Campo"}, nil)
	require.NoError(t, err)

	require.Equal(t, 1, s.LoggedMinutes(start))
	require.Equal(t, 1, s.LoggedMinutes(start.Add(29*time.Second)))
	require.Equal(t, 2, s.LoggedMinutes(start.Add(90*time.Second)))
	require.Equal(t, 1, s.LoggedMinutes(start.Add(89*time.Second)))
	require.Equal(t, 95, s.LoggedMinutes(start.Add(95*time.Minute+10*time.Second)))
}

func TestLoggedMinutesExcludesOpenPause(t *testing.T) {
	t.Parallel()
	s, err := domain.NewSession("u1", start, []string{"Campo"}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Pause(start.Add(30*time.Minute)))
	require.Equal(t, 30, s.LoggedMinutes(start.Add(3*time.Hour)))
}

func TestHourNoticeFiresOncePerHour(t *testing.T) {
	t.Parallel()
	s, err := domain.NewSession("u1", start, []string{"Campo"}, nil)
	require.NoError(t, err)

	_, ok := s.HourNotice(start.Add(59 * time.Minute))
	require.False(t, ok)

	hours, ok := s.HourNotice(start.Add(time.Hour))
	require.True(t, ok)
	require.Equal(t, 1, hours)

	_, ok = s.HourNotice(start.Add(time.Hour + time.Second))
	require.False(t, ok)

	// Pausing across the boundary and resuming past it again stays quiet.
	require.NoError(t, s.Pause(start.Add(time.Hour+time.Minute)))
	_, ok = s.HourNotice(start.Add(2 * time.Hour))
	require.False(t, ok)
	require.NoError(t, s.Resume(start.Add(2*time.Hour)))
	_, ok = s.HourNotice(start.Add(2*time.Hour + 30*time.Minute))
	require.False(t, ok)

	hours, ok = s.HourNotice(start.Add(3*time.Hour + time.Minute))
	require.True(t, ok)
	require.Equal(t, 2, hours)
	require.Equal(t, 2, s.LastHourNotified)
}

func TestObservationListsPeople(t *testing.T) {
	t.Parallel()
	s, err := domain.NewSession("u1", start, []string{"Revisitas", "Estudo Bíblico"}, []domain.Person{
		{Kind: domain.PersonReturnVisit, ID: "r1", Name: "Maria"},
		{Kind: domain.PersonBibleStudy, ID: "e1", Name: "João"},
	})
	require.NoError(t, err)
	end := start.Add(90 * time.Minute)
	require.Equal(t, "Timer: 11/04/2026, 09:00 - 11/04/2026, 10:30 | Revisita: Maria, Estudo: João", s.Observation(end))

	plain, err := domain.NewSession("u1", start, []string{"Campo"}, nil)
	require.NoError(t, err)
	require.Equal(t, "Timer: 11/04/2026, 09:00 - 11/04/2026, 10:30", plain.Observation(end))
}

func TestFormatClockAndNoticeText(t *testing.T) {
	t.Parallel()
	require.Equal(t, "00:00:00", domain.FormatClock(-time.Second))
	require.Equal(t, "01:02:03", domain.FormatClock(time.Hour+2*time.Minute+3*time.Second+900*time.Millisecond))
	require.Equal(t, "⏰ 1 hora de serviço!", domain.HourNoticeText(1))
	require.Equal(t, "⏰ 3 horas de serviço!", domain.HourNoticeText(3))
}
