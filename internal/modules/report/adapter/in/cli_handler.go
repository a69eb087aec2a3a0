package in

import (
	"context"

	reportdto "fieldreport/internal/modules/report/dto"
	reportin "fieldreport/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context, month string) (reportdto.SummaryOutput, error) {
	return h.usecase.MonthlyAggregate(ctx, reportdto.MonthInput{Month: month})
}

func (h CLIHandler) Compare(ctx context.Context, month string) (reportdto.ComparisonOutput, error) {
	return h.usecase.PriorMonthComparison(ctx, reportdto.MonthInput{Month: month})
}

func (h CLIHandler) Text(ctx context.Context, month string) (reportdto.ReportOutput, error) {
	return h.usecase.ReportText(ctx, reportdto.MonthInput{Month: month})
}

func (h CLIHandler) Dashboard(ctx context.Context) (reportdto.DashboardOutput, error) {
	return h.usecase.Dashboard(ctx)
}

// Share renders the report of month and returns its share link.
func (h CLIHandler) Share(ctx context.Context, month, elderID string) (string, error) {
	report, err := h.usecase.ReportText(ctx, reportdto.MonthInput{Month: month})
	if err != nil {
		return "", err
	}
	return h.usecase.ShareLink(ctx, reportdto.ShareInput{Text: report.Text, ElderID: elderID})
}

func (h CLIHandler) Archive(ctx context.Context, month string) (reportdto.ArchiveOutput, error) {
	return h.usecase.Archive(ctx, reportdto.MonthInput{Month: month})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]reportdto.HistoryOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) Show(ctx context.Context, path string, render bool) (string, error) {
	return h.usecase.Show(ctx, path, render)
}
