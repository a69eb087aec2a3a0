package usecase

import (
	"context"
	"errors"

	account "fieldreport/internal/modules/account/domain"
	accountin "fieldreport/internal/modules/account/port/in"
	entryin "fieldreport/internal/modules/entry/port/in"
	goalin "fieldreport/internal/modules/goal/port/in"
	"fieldreport/internal/modules/report/domain"
	reportdto "fieldreport/internal/modules/report/dto"
	reportin "fieldreport/internal/modules/report/port/in"
	reportout "fieldreport/internal/modules/report/port/out"
	"fieldreport/internal/modules/report/service"
	timerin "fieldreport/internal/modules/timer/port/in"
	apperrors "fieldreport/internal/platform/errors"
)

type Interactor struct {
	svc     *service.ReportService
	account accountin.Usecase
	entries entryin.Usecase
	goals   goalin.Usecase
	timer   timerin.Usecase
}

func NewInteractor(svc *service.ReportService, account accountin.Usecase, entries entryin.Usecase, goals goalin.Usecase, timer timerin.Usecase) reportin.Usecase {
	return &Interactor{svc: svc, account: account, entries: entries, goals: goals, timer: timer}
}

func (i *Interactor) MonthlyAggregate(ctx context.Context, input reportdto.MonthInput) (reportdto.SummaryOutput, error) {
	userID, month, err := i.resolve(ctx, input)
	if err != nil {
		return reportdto.SummaryOutput{}, err
	}
	facts, err := i.facts(ctx, userID)
	if err != nil {
		return reportdto.SummaryOutput{}, err
	}
	return toSummaryOutput(userID, domain.Aggregate(month, facts)), nil
}

func (i *Interactor) PriorMonthComparison(ctx context.Context, input reportdto.MonthInput) (reportdto.ComparisonOutput, error) {
	userID, month, err := i.resolve(ctx, input)
	if err != nil {
		return reportdto.ComparisonOutput{}, err
	}
	facts, err := i.facts(ctx, userID)
	if err != nil {
		return reportdto.ComparisonOutput{}, err
	}
	return compare(month, facts), nil
}

func (i *Interactor) ReportText(ctx context.Context, input reportdto.MonthInput) (reportdto.ReportOutput, error) {
	userID, month, err := i.resolve(ctx, input)
	if err != nil {
		return reportdto.ReportOutput{}, err
	}
	summary, header, err := i.monthReport(ctx, userID, month)
	if err != nil {
		return reportdto.ReportOutput{}, err
	}
	return reportdto.ReportOutput{
		UserID:     userID,
		Month:      month.Key(),
		MonthLabel: month.Label(),
		Text:       domain.Text(header, summary),
		Summary:    toSummaryOutput(userID, summary),
	}, nil
}

func (i *Interactor) Dashboard(ctx context.Context) (reportdto.DashboardOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return reportdto.DashboardOutput{}, err
	}
	month := i.svc.CurrentMonth()
	facts, err := i.facts(ctx, user.ID)
	if err != nil {
		return reportdto.DashboardOutput{}, err
	}
	summary := domain.Aggregate(month, facts)
	goal, err := i.goals.GoalForPeriod(ctx, user.ID, month.Key())
	if err != nil {
		return reportdto.DashboardOutput{}, err
	}
	out := reportdto.DashboardOutput{
		Summary:    toSummaryOutput(user.ID, summary),
		GoalLabel:  domain.GoalLabel(goal.Hours, goal.HasGoal),
		GoalHours:  goal.Hours,
		HasGoal:    goal.HasGoal,
		Progress:   domain.Progress(summary.TotalHours(), goal.Hours, goal.HasGoal),
		Comparison: compare(month, facts),
	}
	status, err := i.goals.Status(ctx)
	if err != nil {
		return reportdto.DashboardOutput{}, err
	}
	if status.Period != nil {
		out.OpenGoal = &reportdto.GoalPeriodOutput{
			Label:         status.Period.Label,
			Start:         status.Period.Start,
			ExpectedHours: status.Period.ExpectedHours,
		}
	}
	if i.timer != nil {
		session, err := i.timer.Status(ctx)
		switch {
		case err == nil:
			out.TimerActive = true
			out.TimerClock = session.Display
		case errors.Is(err, apperrors.ErrNoActiveTimer), errors.Is(err, apperrors.ErrTimerOwnedByOtherUser):
			// no session for this user
		default:
			return reportdto.DashboardOutput{}, err
		}
	}
	return out, nil
}

func (i *Interactor) ShareLink(ctx context.Context, input reportdto.ShareInput) (string, error) {
	if input.ElderID == "" {
		return domain.ShareLink(input.Text, ""), nil
	}
	elder, err := i.account.GetElder(ctx, input.ElderID)
	if err != nil {
		return "", err
	}
	return domain.ShareLink(input.Text, elder.PhoneDigits), nil
}

func (i *Interactor) Archive(ctx context.Context, input reportdto.MonthInput) (reportdto.ArchiveOutput, error) {
	userID, month, err := i.resolve(ctx, input)
	if err != nil {
		return reportdto.ArchiveOutput{}, err
	}
	summary, header, err := i.monthReport(ctx, userID, month)
	if err != nil {
		return reportdto.ArchiveOutput{}, err
	}
	goal, err := i.goalHours(ctx, userID, month)
	if err != nil {
		return reportdto.ArchiveOutput{}, err
	}
	path, err := i.svc.Archive(ctx, reportout.ArchivedReport{
		UserID:    userID,
		Name:      header.Name,
		Summary:   summary,
		GoalHours: goal,
		Text:      domain.Text(header, summary),
	})
	if err != nil {
		return reportdto.ArchiveOutput{}, err
	}
	return reportdto.ArchiveOutput{Path: path, Summary: toSummaryOutput(userID, summary)}, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]reportdto.HistoryOutput, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := i.svc.History(ctx, user.ID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]reportdto.HistoryOutput, 0, len(rows))
	for _, row := range rows {
		out = append(out, reportdto.HistoryOutput{
			Month:        row.Summary.Month.Key(),
			MonthLabel:   row.Summary.Month.Label(),
			Hours:        row.Summary.Hours,
			Minutes:      row.Summary.Minutes,
			HoursLabel:   row.Summary.HoursLabel(),
			ReturnVisits: row.Summary.ReturnVisits,
			BibleStudies: row.Summary.BibleStudies,
			GoalHours:    row.GoalHours,
			ArchivePath:  row.ArchivePath,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	user, err := i.account.Current(ctx)
	if err != nil {
		return 0, err
	}
	facts, err := i.facts(ctx, user.ID)
	if err != nil {
		return 0, err
	}
	var goalErr error
	count, err := i.svc.Reindex(ctx, user.ID, facts, func(month domain.Month) *float64 {
		goal, err := i.goalHours(ctx, user.ID, month)
		if err != nil && goalErr == nil {
			goalErr = err
		}
		return goal
	})
	if err != nil {
		return 0, err
	}
	if goalErr != nil {
		return 0, goalErr
	}
	return count, nil
}

func (i *Interactor) Show(ctx context.Context, path string, render bool) (string, error) {
	return i.svc.Show(ctx, path, render)
}

func (i *Interactor) resolve(ctx context.Context, input reportdto.MonthInput) (string, domain.Month, error) {
	userID := input.UserID
	if userID == "" {
		user, err := i.account.Current(ctx)
		if err != nil {
			return "", domain.Month{}, err
		}
		userID = user.ID
	}
	month, err := i.svc.ResolveMonth(input.Month)
	if err != nil {
		return "", domain.Month{}, err
	}
	return userID, month, nil
}

func (i *Interactor) facts(ctx context.Context, userID string) ([]domain.Fact, error) {
	entries, err := i.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	facts := make([]domain.Fact, 0, len(entries))
	for _, e := range entries {
		facts = append(facts, domain.Fact{
			Date:           e.Date,
			Hours:          e.Hours,
			Minutes:        e.Minutes,
			Category:       e.Category,
			Publications:   e.Counters.Publications,
			ReopenedVisits: e.Counters.ReopenedVisits,
			Letters:        e.Counters.Letters,
		})
	}
	return facts, nil
}

func (i *Interactor) monthReport(ctx context.Context, userID string, month domain.Month) (domain.Summary, domain.Header, error) {
	user, err := i.account.GetUser(ctx, userID)
	if err != nil {
		return domain.Summary{}, domain.Header{}, err
	}
	profile, err := i.account.GetProfile(ctx, userID)
	if err != nil {
		return domain.Summary{}, domain.Header{}, err
	}
	facts, err := i.facts(ctx, userID)
	if err != nil {
		return domain.Summary{}, domain.Header{}, err
	}
	header := domain.Header{
		Name:         profile.Name,
		Congregation: profile.Congregation,
		Pioneer:      account.Role(user.Role).IsPioneer(),
	}
	return domain.Aggregate(month, facts), header, nil
}

func (i *Interactor) goalHours(ctx context.Context, userID string, month domain.Month) (*float64, error) {
	goal, err := i.goals.GoalForPeriod(ctx, userID, month.Key())
	if err != nil {
		return nil, err
	}
	if !goal.HasGoal {
		return nil, nil
	}
	hours := goal.Hours
	return &hours, nil
}

func compare(month domain.Month, facts []domain.Fact) reportdto.ComparisonOutput {
	prior := month.Prev()
	c := domain.Compare(domain.Aggregate(month, facts), domain.Aggregate(prior, facts))
	out := reportdto.ComparisonOutput{
		Month:        month.Key(),
		PriorMonth:   prior.Key(),
		CurrentHours: c.Current,
		PriorHours:   c.Prior,
		Delta:        c.Delta,
		Message:      c.Message,
	}
	if c.HasPercent {
		percent := c.Percent
		out.Percent = &percent
	}
	return out
}

func toSummaryOutput(userID string, s domain.Summary) reportdto.SummaryOutput {
	return reportdto.SummaryOutput{
		UserID:         userID,
		Month:          s.Month.Key(),
		MonthLabel:     s.Month.Label(),
		Hours:          s.Hours,
		Minutes:        s.Minutes,
		HoursLabel:     s.HoursLabel(),
		ReturnVisits:   s.ReturnVisits,
		BibleStudies:   s.BibleStudies,
		Publications:   s.Publications,
		ReopenedVisits: s.ReopenedVisits,
		Letters:        s.Letters,
		Entries:        s.Entries,
	}
}
