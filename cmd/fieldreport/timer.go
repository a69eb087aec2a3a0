package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
	timerdto "fieldreport/internal/modules/timer/dto"
	timerview "fieldreport/internal/ui/views/timer"
)

func newTimerCmd(dataDir *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Live service timer"}

	var categories []string
	var returnVisitID, studyID string
	var watch bool
	start := &cobra.Command{
		Use:   "start --category <modalidade>[,<modalidade>...]",
		Short: "Start the timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TimerCLI.Start(ctx, categories, returnVisitID, studyID)
				if err != nil {
					return err
				}
				printSession(cmd, "timer started", out)
				if watch {
					return runTimerView(app)
				}
				return nil
			})
		},
	}
	start.Flags().StringSliceVar(&categories, "category", nil, "categories (modalidades)")
	start.Flags().StringVar(&returnVisitID, "revisita", "", "return visit id (asked for when omitted)")
	start.Flags().StringVar(&studyID, "estudo", "", "bible study id (asked for when omitted)")
	start.Flags().BoolVar(&watch, "watch", false, "open the live timer after starting")

	sessionCmd := func(use, short, label string, fn func(context.Context, *bootstrap.App) (timerdto.SessionOutput, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
					out, err := fn(ctx, app)
					if err != nil {
						return err
					}
					printSession(cmd, label, out)
					return nil
				})
			},
		}
	}
	pause := sessionCmd("pause", "Pause the running timer", "timer paused", func(ctx context.Context, app *bootstrap.App) (timerdto.SessionOutput, error) {
		return app.TimerCLI.Pause(ctx)
	})
	resume := sessionCmd("resume", "Resume a paused timer", "timer resumed", func(ctx context.Context, app *bootstrap.App) (timerdto.SessionOutput, error) {
		return app.TimerCLI.Resume(ctx)
	})
	toggle := sessionCmd("toggle", "Pause or resume the timer", "timer", func(ctx context.Context, app *bootstrap.App) (timerdto.SessionOutput, error) {
		return app.TimerCLI.Toggle(ctx)
	})
	status := sessionCmd("status", "Show the running timer", "timer", func(ctx context.Context, app *bootstrap.App) (timerdto.SessionOutput, error) {
		return app.TimerCLI.Status(ctx)
	})

	var counters timerdto.Counters
	stop := &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and record the entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.TimerCLI.Stop(ctx, counters)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry recorded: %s %s %dh%02d %s\n", out.EntryID, out.Date, out.Hours, out.Minutes, out.Category)
				if out.Observation != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "obs: %s\n", out.Observation)
				}
				return nil
			})
		},
	}
	stop.Flags().IntVar(&counters.Publications, "publications", 0, "publications placed")
	stop.Flags().IntVar(&counters.ReopenedVisits, "reopened", 0, "return visits reopened")
	stop.Flags().IntVar(&counters.Letters, "letters", 0, "letters written")

	var yes bool
	cancel := &cobra.Command{
		Use:   "cancel --yes",
		Short: "Discard the running timer without recording",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireYes(yes, "cancel"); err != nil {
				return err
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.TimerCLI.Cancel(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "timer discarded")
				return nil
			})
		},
	}
	cancel.Flags().BoolVar(&yes, "yes", false, "confirm")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Show the live timer",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(_ context.Context, app *bootstrap.App) error {
				return runTimerView(app)
			})
		},
	}

	timer.AddCommand(start, pause, resume, toggle, stop, cancel, status, watchCmd)
	return timer
}

func runTimerView(app *bootstrap.App) error {
	_, err := tea.NewProgram(timerview.NewStandalone(app.TimerCLI)).Run()
	return err
}

func printSession(cmd *cobra.Command, label string, out timerdto.SessionOutput) {
	state := "running"
	if out.Paused {
		state = "paused"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s [%s]\n", label, out.Display, state, strings.Join(out.Categories, ", "))
	for _, p := range out.People {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", p.Kind, p.Name)
	}
}
