package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
	goaldto "fieldreport/internal/modules/goal/dto"
)

func newGoalCmd(dataDir *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Hour goals and goal periods"}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show targets and the open goal period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.Status(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "role: %s\n", out.RoleLabel)
				if out.HasGoal {
					_, _ = fmt.Fprintf(w, "monthly goal: %.1fh\n", out.MonthlyGoal)
				} else {
					_, _ = fmt.Fprintln(w, "monthly goal: -")
				}
				printTargets(w, out.Targets)
				if out.Period != nil {
					_, _ = fmt.Fprintf(w, "open period: %s since %s (%.1fh)\n", out.Period.Label, out.Period.Start, out.Period.ExpectedHours)
				}
				return nil
			})
		},
	}

	var mode string
	var value float64
	set := &cobra.Command{
		Use:   "set --value <horas>",
		Short: "Set the target for the current role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := optionalFloat(cmd, "value", value)
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.SetTargets(ctx, mode, target)
				if err != nil {
					return err
				}
				printTargets(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	set.Flags().StringVar(&mode, "mode", "", "regular pioneers: mensal|anual")
	set.Flags().Float64Var(&value, "value", 0, "target hours (omit to clear)")

	var role, cfgMode string
	var cfgValue float64
	configure := &cobra.Command{
		Use:   "configure --role <papel>",
		Short: "Change role, set its target and open a goal period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := required("role", role); err != nil {
				return err
			}
			target := optionalFloat(cmd, "value", cfgValue)
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.Configure(ctx, role, cfgMode, target)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal period opened: %s since %s (%.1fh)\n", out.Label, out.Start, out.ExpectedHours)
				return nil
			})
		},
	}
	configure.Flags().StringVar(&role, "role", "", "publicador|auxiliar|regular")
	configure.Flags().StringVar(&cfgMode, "mode", "", "regular pioneers: mensal|anual")
	configure.Flags().Float64Var(&cfgValue, "value", 0, "target hours")

	closeCmd := &cobra.Command{
		Use:   "close",
		Short: "Close the open goal period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalCLI.ClosePeriod(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal period closed: %s since %s\n", out.Label, out.Start)
				return nil
			})
		},
	}

	goal.AddCommand(status, set, configure, closeCmd)
	return goal
}

func optionalFloat(cmd *cobra.Command, flag string, value float64) *float64 {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &value
}

func printTargets(w io.Writer, t goaldto.TargetsOutput) {
	_, _ = fmt.Fprintf(w, "publicador: %s\nauxiliar: %s\nregular (%s): mensal %s, anual %s\n",
		hoursOrDash(t.PublisherMonthly), hoursOrDash(t.AuxiliaryMonthly), t.RegularMode,
		hoursOrDash(t.RegularMonthly), hoursOrDash(t.RegularAnnual))
}

func hoursOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fh", *v)
}
