package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
	"fieldreport/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "fieldreport",
		Short:         "Field service time tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default $FIELDREPORT_DATA_DIR or ~/.fieldreport)")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newAccountCmd(&dataDir))
	root.AddCommand(newElderCmd(&dataDir))
	root.AddCommand(newEntryCmd(&dataDir))
	root.AddCommand(newContactCmd(&dataDir))
	root.AddCommand(newGoalCmd(&dataDir))
	root.AddCommand(newTimerCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	root.AddCommand(newBackupCmd(&dataDir))
	root.AddCommand(newMirrorCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil && strings.TrimSpace(dataDir) == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("resolve home dir: %w", homeErr)
		}
		cfg, err = config.Load(filepath.Join(home, ".fieldreport"))
	}
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, bootstrap.Options{})
}

// withApp builds the application for one command and releases it afterwards.
func withApp(dataDir string, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return fn(ctx, app)
}

// requireYes guards destructive commands.
func requireYes(yes bool, action string) error {
	if !yes {
		return fmt.Errorf("%s needs confirmation: pass --yes", action)
	}
	return nil
}

func required(flag, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("--%s is required", flag)
	}
	return nil
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(app)
			})
		},
	}
}
