package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
)

func newReportCmd(dataDir *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Monthly totals and the report message"}

	var month string
	monthFlag := func(c *cobra.Command) {
		c.Flags().StringVar(&month, "month", "", "month YYYY-MM (default current)")
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show the month's totals and the comparison with the previous month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.ReportCLI.Summary(ctx, month)
				if err != nil {
					return err
				}
				cmp, err := app.ReportCLI.Compare(ctx, month)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s\nhours: %s\nreturn visits: %d\nbible studies: %d\npublications: %d\nreopened: %d\nletters: %d\nentries: %d\n",
					s.MonthLabel, s.HoursLabel, s.ReturnVisits, s.BibleStudies, s.Publications, s.ReopenedVisits, s.Letters, s.Entries)
				_, _ = fmt.Fprintln(w, cmp.Message)
				return nil
			})
		},
	}
	monthFlag(summary)

	text := &cobra.Command{
		Use:   "text",
		Short: "Print the report message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ReportCLI.Text(ctx, month)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
				return nil
			})
		},
	}
	monthFlag(text)

	dashboard := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the current month against the goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				d, err := app.ReportCLI.Dashboard(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s: %s\n", d.Summary.MonthLabel, d.Summary.HoursLabel)
				if d.HasGoal {
					_, _ = fmt.Fprintf(w, "goal: %s (%.0f%%)\n", d.GoalLabel, d.Progress)
				}
				if d.OpenGoal != nil {
					_, _ = fmt.Fprintf(w, "open period: %s since %s\n", d.OpenGoal.Label, d.OpenGoal.Start)
				}
				_, _ = fmt.Fprintln(w, d.Comparison.Message)
				if d.TimerActive {
					_, _ = fmt.Fprintf(w, "timer: %s\n", d.TimerClock)
				}
				return nil
			})
		},
	}

	var elderID string
	share := &cobra.Command{
		Use:   "share",
		Short: "Print a WhatsApp link carrying the report message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				link, err := app.ReportCLI.Share(ctx, month, elderID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), link)
				return nil
			})
		},
	}
	monthFlag(share)
	share.Flags().StringVar(&elderID, "elder", "", "elder id to address the message to")

	archive := &cobra.Command{
		Use:   "archive",
		Short: "Write the month's report note and update the history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ReportCLI.Archive(ctx, month)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "archived %s: %s\n", out.Summary.MonthLabel, out.Path)
				return nil
			})
		},
	}
	monthFlag(archive)

	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List archived months",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.ReportCLI.History(ctx, limit)
				if err != nil {
					return err
				}
				if len(rows) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no archived reports")
					return nil
				}
				for _, r := range rows {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tRV %d\tEB %d\tgoal %s\t%s\n", r.Month, r.HoursLabel, r.ReturnVisits, r.BibleStudies, hoursOrDash(r.GoalHours), r.ArchivePath)
				}
				return nil
			})
		},
	}
	history.Flags().IntVar(&limit, "limit", 12, "maximum months")

	reindex := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the history table from the state file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				n, err := app.ReportCLI.Reindex(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindex completed: %d months\n", n)
				return nil
			})
		},
	}

	var render bool
	show := &cobra.Command{
		Use:   "show <path>",
		Short: "Print an archived report note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ReportCLI.Show(ctx, args[0], render)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	show.Flags().BoolVar(&render, "render", false, "render markdown for the terminal")

	report.AddCommand(summary, text, dashboard, share, archive, history, reindex, show)
	return report
}
