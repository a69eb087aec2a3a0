package out

import (
	"context"

	"fieldreport/internal/modules/timer/domain"
)

type SessionStore interface {
	// Load returns ErrNoActiveTimer when no session exists.
	Load(ctx context.Context) (domain.Session, error)
	// Create stores session unless one already exists, in which case it
	// returns ErrActiveTimerExists or ErrTimerOwnedByOtherUser.
	Create(ctx context.Context, session domain.Session) error
	// Modify applies fn to the stored session and saves the result.
	Modify(ctx context.Context, fn func(*domain.Session) error) (domain.Session, error)
	Clear(ctx context.Context) error
}

// EntryLogger records the entry produced by a stopped session.
type EntryLogger interface {
	LogSession(ctx context.Context, entry LoggedEntry) (string, error)
}

type LoggedEntry struct {
	UserID         string
	Date           string
	Hours          int
	Minutes        int
	Category       string
	Observation    string
	Publications   int
	ReopenedVisits int
	Letters        int
}

// Candidate is a contact offered by a ContactSelector.
type Candidate struct {
	ID       string
	Name     string
	Subtitle string
}

// Selection is the answer of a ContactSelector: an existing contact, or a
// name to register on the spot.
type Selection struct {
	ContactID string
	NewName   string
}

// ContactSelector asks the user which contact a session is for. Returning
// ErrSelectionCancelled aborts the start.
type ContactSelector interface {
	SelectContact(ctx context.Context, kind string, candidates []Candidate) (Selection, error)
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}
