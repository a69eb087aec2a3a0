package dto

type Counters struct {
	Publications   int
	ReopenedVisits int
	Letters        int
}

type AddEntryInput struct {
	// UserID defaults to the logged-in user.
	UserID string
	// Date defaults to today (YYYY-MM-DD).
	Date        string
	Hours       int
	Minutes     int
	Category    string
	Observation string
	// PersonName, when set on a return-visit or bible-study entry, prefixes
	// the observation.
	PersonName string
	Counters   Counters
}

// EditEntryInput leaves nil fields untouched.
type EditEntryInput struct {
	ID          string
	Date        *string
	Hours       *int
	Minutes     *int
	Category    *string
	Observation *string
	Counters    *Counters
}

type EntryOutput struct {
	ID          string
	UserID      string
	Date        string
	Hours       int
	Minutes     int
	Category    string
	Observation string
	Counters    Counters
}
