package service

import (
	"context"
	"fmt"
	"sort"

	"fieldreport/internal/modules/report/domain"
	reportout "fieldreport/internal/modules/report/port/out"
	"fieldreport/internal/platform/clock"
	apperrors "fieldreport/internal/platform/errors"
	"fieldreport/internal/platform/logging"
)

const DefaultHistoryLimit = 12

type ReportService struct {
	clock     clock.Clock
	archive   reportout.ReportArchive
	projector reportout.TotalsProjector
	renderer  reportout.Renderer
}

func NewReportService(clock clock.Clock, archive reportout.ReportArchive, projector reportout.TotalsProjector, renderer reportout.Renderer) *ReportService {
	return &ReportService{clock: clock, archive: archive, projector: projector, renderer: renderer}
}

// CurrentMonth is the month of today in the configured location.
func (s *ReportService) CurrentMonth() domain.Month {
	return domain.MonthOf(s.clock.Now())
}

// ResolveMonth parses a YYYY-MM key, defaulting to the current month.
func (s *ReportService) ResolveMonth(key string) (domain.Month, error) {
	if key == "" {
		return s.CurrentMonth(), nil
	}
	month, err := domain.ParseMonth(key)
	if err != nil {
		return domain.Month{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return month, nil
}

func (s *ReportService) Archive(ctx context.Context, report reportout.ArchivedReport) (string, error) {
	report.CreatedAt = s.clock.Now()
	path, err := s.archive.Write(ctx, report)
	if err != nil {
		return "", err
	}
	if s.projector != nil {
		if err := s.projector.Upsert(ctx, reportout.MonthlyTotal{
			UserID:      report.UserID,
			Summary:     report.Summary,
			GoalHours:   report.GoalHours,
			ArchivePath: path,
			UpdatedAt:   report.CreatedAt,
		}); err != nil {
			return "", err
		}
	}
	logging.FromContext(ctx).Info("report archived", "user_id", report.UserID, "month", report.Summary.Month.Key(), "path", path)
	return path, nil
}

func (s *ReportService) History(ctx context.Context, userID string, limit int) ([]reportout.MonthlyTotal, error) {
	if s.projector == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.projector.History(ctx, userID, limit)
}

// Reindex projects every month that has at least one fact.
func (s *ReportService) Reindex(ctx context.Context, userID string, facts []domain.Fact, goal func(domain.Month) *float64) (int, error) {
	if s.projector == nil {
		return 0, nil
	}
	months := map[string]domain.Month{}
	for _, f := range facts {
		if len(f.Date) < 7 {
			continue
		}
		month, err := domain.ParseMonth(f.Date[:7])
		if err != nil {
			continue
		}
		months[month.Key()] = month
	}
	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	now := s.clock.Now()
	for _, key := range keys {
		month := months[key]
		if err := s.projector.Upsert(ctx, reportout.MonthlyTotal{
			UserID:    userID,
			Summary:   domain.Aggregate(month, facts),
			GoalHours: goal(month),
			UpdatedAt: now,
		}); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

func (s *ReportService) Show(ctx context.Context, path string, render bool) (string, error) {
	content, err := s.archive.Read(ctx, path)
	if err != nil {
		return "", err
	}
	if !render || s.renderer == nil {
		return content, nil
	}
	out, err := s.renderer.Render(content)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}
