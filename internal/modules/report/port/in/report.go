package in

import (
	"context"

	"fieldreport/internal/modules/report/dto"
)

type Usecase interface {
	MonthlyAggregate(ctx context.Context, input dto.MonthInput) (dto.SummaryOutput, error)
	PriorMonthComparison(ctx context.Context, input dto.MonthInput) (dto.ComparisonOutput, error)
	ReportText(ctx context.Context, input dto.MonthInput) (dto.ReportOutput, error)
	Dashboard(ctx context.Context) (dto.DashboardOutput, error)
	ShareLink(ctx context.Context, input dto.ShareInput) (string, error)
	Archive(ctx context.Context, input dto.MonthInput) (dto.ArchiveOutput, error)
	History(ctx context.Context, limit int) ([]dto.HistoryOutput, error)
	Reindex(ctx context.Context) (int, error)
	Show(ctx context.Context, path string, render bool) (string, error)
}
