package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
)

func newBackupCmd(dataDir *string) *cobra.Command {
	backup := &cobra.Command{Use: "backup", Short: "Export and import the whole state"}

	var dir string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write a dated backup file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				path, err := app.BackupCLI.Export(ctx, dir)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "backup written: %s\n", path)
				return nil
			})
		},
	}
	export.Flags().StringVar(&dir, "dir", ".", "output directory")

	var yes bool
	importCmd := &cobra.Command{
		Use:   "import <file> --yes",
		Short: "Replace all local data with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireYes(yes, "import"); err != nil {
				return err
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.BackupCLI.Import(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "backup imported: users=%d entries=%d revisitas=%d estudos=%d\n", out.Users, out.Entries, out.ReturnVisits, out.BibleStudies)
				return nil
			})
		},
	}
	importCmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing local data")

	backup.AddCommand(export, importCmd)
	return backup
}
