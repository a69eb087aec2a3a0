package out

import (
	"context"
	"time"

	"fieldreport/internal/modules/report/domain"
)

// ArchivedReport is one month written to the reports directory.
type ArchivedReport struct {
	UserID    string
	Name      string
	Summary   domain.Summary
	GoalHours *float64
	Text      string
	CreatedAt time.Time
}

type ReportArchive interface {
	// Write stores report and returns its path. Notes written around the
	// generated block of an existing file are kept.
	Write(ctx context.Context, report ArchivedReport) (string, error)
	Read(ctx context.Context, path string) (string, error)
}

// MonthlyTotal is a projected row of the monthly totals index.
type MonthlyTotal struct {
	UserID      string
	Summary     domain.Summary
	GoalHours   *float64
	ArchivePath string
	UpdatedAt   time.Time
}

type TotalsProjector interface {
	// Upsert replaces the row of (user, month). An empty ArchivePath keeps
	// the stored one.
	Upsert(ctx context.Context, total MonthlyTotal) error
	History(ctx context.Context, userID string, limit int) ([]MonthlyTotal, error)
}

// Renderer turns markdown into terminal output.
type Renderer interface {
	Render(markdown string) (string, error)
}
