package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fieldreport/internal/modules/report/domain"
	reportout "fieldreport/internal/modules/report/port/out"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteTotalsProjector indexes monthly totals in the monthly_totals table.
// The schema is owned by platform/sqlitedb migrations.
type SQLiteTotalsProjector struct {
	db *sql.DB
}

func NewSQLiteTotalsProjector(db *sql.DB) reportout.TotalsProjector {
	return &SQLiteTotalsProjector{db: db}
}

func (p *SQLiteTotalsProjector) Upsert(ctx context.Context, total reportout.MonthlyTotal) error {
	const stmt = `
INSERT INTO monthly_totals (user_id, month, hours, minutes, return_visits, bible_studies, publications, reopened_visits, letters, goal_hours, archive_path, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, month) DO UPDATE SET
  hours=excluded.hours,
  minutes=excluded.minutes,
  return_visits=excluded.return_visits,
  bible_studies=excluded.bible_studies,
  publications=excluded.publications,
  reopened_visits=excluded.reopened_visits,
  letters=excluded.letters,
  goal_hours=excluded.goal_hours,
  archive_path=CASE WHEN excluded.archive_path = '' THEN monthly_totals.archive_path ELSE excluded.archive_path END,
  updated_at=excluded.updated_at;
`
	s := total.Summary
	var goal sql.NullFloat64
	if total.GoalHours != nil {
		goal = sql.NullFloat64{Float64: *total.GoalHours, Valid: true}
	}
	_, err := p.db.ExecContext(ctx, stmt,
		total.UserID,
		s.Month.Key(),
		s.Hours,
		s.Minutes,
		s.ReturnVisits,
		s.BibleStudies,
		s.Publications,
		s.ReopenedVisits,
		s.Letters,
		goal,
		total.ArchivePath,
		total.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert monthly total: %w", err)
	}
	return nil
}

func (p *SQLiteTotalsProjector) History(ctx context.Context, userID string, limit int) ([]reportout.MonthlyTotal, error) {
	const query = `
SELECT month, hours, minutes, return_visits, bible_studies, publications, reopened_visits, letters, goal_hours, archive_path, updated_at
FROM monthly_totals
WHERE user_id = ?
ORDER BY month DESC
LIMIT ?;
`
	rows, err := p.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query monthly totals: %w", err)
	}
	defer rows.Close()

	var out []reportout.MonthlyTotal
	for rows.Next() {
		var (
			monthKey  string
			s         domain.Summary
			goal      sql.NullFloat64
			path      string
			updatedAt string
		)
		if err := rows.Scan(&monthKey, &s.Hours, &s.Minutes, &s.ReturnVisits, &s.BibleStudies, &s.Publications, &s.ReopenedVisits, &s.Letters, &goal, &path, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		month, err := domain.ParseMonth(monthKey)
		if err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		s.Month = month
		total := reportout.MonthlyTotal{UserID: userID, Summary: s, ArchivePath: path}
		if goal.Valid {
			g := goal.Float64
			total.GoalHours = &g
		}
		if t, err := time.Parse(timeLayout, updatedAt); err == nil {
			total.UpdatedAt = t
		}
		out = append(out, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly totals: %w", err)
	}
	return out, nil
}
