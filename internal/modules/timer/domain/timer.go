package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	apperrors "fieldreport/internal/platform/errors"
)

const (
	PersonReturnVisit = "revisita"
	PersonBibleStudy  = "estudo"

	// DateTimeLayout renders timestamps the way observations and the live
	// display show them.
	DateTimeLayout = "02/01/2006, 15:04"
)

// Person is a contact attached to a running session.
type Person struct {
	Kind string
	ID   string
	Name string
}

func (p Person) label() string {
	if p.Kind == PersonReturnVisit {
		return "Revisita: " + p.Name
	}
	return "Estudo: " + p.Name
}

// Counters are the optional tallies asked for when a session stops.
type Counters struct {
	Publications   int
	ReopenedVisits int
	Letters        int
}

// Session is the single live stopwatch. PauseStart is only meaningful while
// Paused is set.
type Session struct {
	UserID           string
	Start            time.Time
	Paused           bool
	PauseStart       time.Time
	PausedTotal      time.Duration
	Categories       []string
	People           []Person
	LastHourNotified int
}

func NewSession(userID string, now time.Time, categories []string, people []Person) (Session, error) {
	if userID == "" {
		return Session{}, apperrors.ErrNoCurrentUser
	}
	cleaned := make([]string, 0, len(categories))
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return Session{}, apperrors.ErrNoCategory
	}
	return Session{
		UserID:     userID,
		Start:      now,
		Categories: cleaned,
		People:     append([]Person(nil), people...),
	}, nil
}

func (s *Session) Pause(now time.Time) error {
	if s.Paused {
		return apperrors.ErrTimerNotRunning
	}
	s.Paused = true
	s.PauseStart = now
	return nil
}

func (s *Session) Resume(now time.Time) error {
	if !s.Paused {
		return apperrors.ErrTimerNotPaused
	}
	if d := now.Sub(s.PauseStart); d > 0 {
		s.PausedTotal += d
	}
	s.Paused = false
	s.PauseStart = time.Time{}
	return nil
}

// Elapsed is the active time up to now: wall time minus every pause,
// including the one in progress.
func (s Session) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(s.Start) - s.PausedTotal
	if s.Paused {
		elapsed -= now.Sub(s.PauseStart)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// LoggedMinutes rounds the elapsed time half-up to whole minutes. A session
// always logs at least one minute.
func (s Session) LoggedMinutes(now time.Time) int {
	minutes := int(math.Floor(s.Elapsed(now).Minutes() + 0.5))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// HourNotice reports the whole-hour mark reached since the last notice.
// Paused sessions never notify.
func (s *Session) HourNotice(now time.Time) (int, bool) {
	if s.Paused {
		return 0, false
	}
	hours := int(s.Elapsed(now) / time.Hour)
	if hours < 1 || hours <= s.LastHourNotified {
		return 0, false
	}
	s.LastHourNotified = hours
	return hours, true
}

// Category joins the selected categories into the entry category.
func (s Session) Category() string {
	return strings.Join(s.Categories, ", ")
}

// Observation describes the session on the logged entry.
func (s Session) Observation(end time.Time) string {
	start := s.Start.In(end.Location())
	obs := fmt.Sprintf("Timer: %s - %s", start.Format(DateTimeLayout), end.Format(DateTimeLayout))
	if len(s.People) > 0 {
		names := make([]string, 0, len(s.People))
		for _, p := range s.People {
			names = append(names, p.label())
		}
		obs += " | " + strings.Join(names, ", ")
	}
	return obs
}

// HasCategory reports whether name was selected.
func (s Session) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// FormatClock renders a duration as HH:MM:SS, truncating to the second.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// HourNoticeText is the message shown when a whole hour is reached.
func HourNoticeText(hours int) string {
	if hours > 1 {
		return fmt.Sprintf("⏰ %d horas de serviço!", hours)
	}
	return fmt.Sprintf("⏰ %d hora de serviço!", hours)
}
