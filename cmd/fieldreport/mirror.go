package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
	mirrordto "fieldreport/internal/modules/mirror/dto"
)

func newMirrorCmd(dataDir *string) *cobra.Command {
	mirror := &cobra.Command{Use: "mirror", Short: "Remote copy of the current user's records"}

	push := &cobra.Command{
		Use:   "push",
		Short: "Send the current user's records to the mirror",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.MirrorCLI.Push(ctx)
				if err != nil {
					return err
				}
				printSync(cmd, "pushed", out)
				return nil
			})
		},
	}

	pull := &cobra.Command{
		Use:   "pull",
		Short: "Replace the current user's records with the mirror copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.MirrorCLI.Pull(ctx)
				if err != nil {
					return err
				}
				if !out.Found {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing on the mirror for this user")
					return nil
				}
				printSync(cmd, "pulled", out)
				return nil
			})
		},
	}

	var schedule string
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Push on a schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				spec := schedule
				if spec == "" {
					spec = app.Config.SyncSchedule
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pushing %s, ctrl+c to stop\n", spec)
				return app.MirrorCLI.Watch(ctx, spec)
			})
		},
	}
	watch.Flags().StringVar(&schedule, "schedule", "", "cron spec (default $FIELDREPORT_SYNC_SCHEDULE)")

	mirror.AddCommand(push, pull, watch)
	return mirror
}

func printSync(cmd *cobra.Command, verb string, out mirrordto.SyncOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: entries=%d revisitas=%d estudos=%d at %s\n", verb, out.UserID, out.Entries, out.ReturnVisits, out.BibleStudies, out.LastSync)
}
