package dto

import "time"

type PersonInput struct {
	// Kind is "revisita" or "estudo".
	Kind string
	ID   string
}

type StartInput struct {
	Categories []string
	People     []PersonInput
}

type PersonOutput struct {
	Kind string
	ID   string
	Name string
}

type SessionOutput struct {
	UserID     string
	Start      time.Time
	Paused     bool
	Categories []string
	People     []PersonOutput
	Elapsed    time.Duration
	// Display is the live HH:MM:SS clock.
	Display string
}

type Counters struct {
	Publications   int
	ReopenedVisits int
	Letters        int
}

type StopInput struct {
	Counters Counters
}

type StopOutput struct {
	EntryID       string
	Date          string
	Hours         int
	Minutes       int
	Category      string
	Observation   string
	CategoryCount int
}

type TickOutput struct {
	Session SessionOutput
	// Notice is set the first time a whole hour is reached.
	Notice      string
	NoticeHours int
}
