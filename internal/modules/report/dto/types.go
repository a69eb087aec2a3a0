package dto

import "time"

// MonthInput selects a user and month. UserID defaults to the logged-in
// user; Month is YYYY-MM and defaults to the current month.
type MonthInput struct {
	UserID string
	Month  string
}

type SummaryOutput struct {
	UserID         string
	Month          string
	MonthLabel     string
	Hours          int
	Minutes        int
	HoursLabel     string
	ReturnVisits   int
	BibleStudies   int
	Publications   int
	ReopenedVisits int
	Letters        int
	Entries        int
}

type ComparisonOutput struct {
	Month        string
	PriorMonth   string
	CurrentHours float64
	PriorHours   float64
	Delta        float64
	// Percent is nil when the prior month has no hours.
	Percent *float64
	Message string
}

type ReportOutput struct {
	UserID     string
	Month      string
	MonthLabel string
	Text       string
	Summary    SummaryOutput
}

type GoalPeriodOutput struct {
	Label         string
	Start         string
	ExpectedHours float64
}

type DashboardOutput struct {
	Summary     SummaryOutput
	GoalLabel   string
	GoalHours   float64
	HasGoal     bool
	Progress    float64
	Comparison  ComparisonOutput
	OpenGoal    *GoalPeriodOutput
	TimerActive bool
	TimerClock  string
}

type ShareInput struct {
	Text string
	// ElderID addresses the link to one of the user's elders.
	ElderID string
}

type ArchiveOutput struct {
	Path    string
	Summary SummaryOutput
}

type HistoryOutput struct {
	Month        string
	MonthLabel   string
	Hours        int
	Minutes      int
	HoursLabel   string
	ReturnVisits int
	BibleStudies int
	GoalHours    *float64
	ArchivePath  string
	UpdatedAt    time.Time
}
