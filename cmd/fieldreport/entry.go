package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
	entrydto "fieldreport/internal/modules/entry/dto"
)

func newEntryCmd(dataDir *string) *cobra.Command {
	entry := &cobra.Command{Use: "entry", Short: "Service entries"}

	var input entrydto.AddEntryInput
	add := &cobra.Command{
		Use:   "add --category <modalidade> --hours <h> --minutes <m>",
		Short: "Record an entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.EntryCLI.Add(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry added: %s %s %dh%02d %s\n", out.ID, out.Date, out.Hours, out.Minutes, out.Category)
				return nil
			})
		},
	}
	add.Flags().StringVar(&input.Date, "date", "", "day YYYY-MM-DD (default today)")
	add.Flags().IntVar(&input.Hours, "hours", 0, "hours")
	add.Flags().IntVar(&input.Minutes, "minutes", 0, "minutes")
	add.Flags().StringVar(&input.Category, "category", "", "category (modalidade)")
	add.Flags().StringVar(&input.Observation, "obs", "", "observation")
	add.Flags().StringVar(&input.PersonName, "person", "", "person visited (revisita/estudo entries)")
	add.Flags().IntVar(&input.Counters.Publications, "publications", 0, "publications placed")
	add.Flags().IntVar(&input.Counters.ReopenedVisits, "reopened", 0, "return visits reopened")
	add.Flags().IntVar(&input.Counters.Letters, "letters", 0, "letters written")

	var (
		date, category, obs            string
		hours, minutes                 int
		publications, reopened, letter int
	)
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := entrydto.EditEntryInput{ID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("date") {
				in.Date = &date
			}
			if flags.Changed("hours") {
				in.Hours = &hours
			}
			if flags.Changed("minutes") {
				in.Minutes = &minutes
			}
			if flags.Changed("category") {
				in.Category = &category
			}
			if flags.Changed("obs") {
				in.Observation = &obs
			}
			if flags.Changed("publications") || flags.Changed("reopened") || flags.Changed("letters") {
				in.Counters = &entrydto.Counters{Publications: publications, ReopenedVisits: reopened, Letters: letter}
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if in.Counters != nil {
					current, err := app.EntryCLI.Get(ctx, in.ID)
					if err != nil {
						return err
					}
					if !flags.Changed("publications") {
						in.Counters.Publications = current.Counters.Publications
					}
					if !flags.Changed("reopened") {
						in.Counters.ReopenedVisits = current.Counters.ReopenedVisits
					}
					if !flags.Changed("letters") {
						in.Counters.Letters = current.Counters.Letters
					}
				}
				out, err := app.EntryCLI.Edit(ctx, in)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry saved: %s %s %dh%02d %s\n", out.ID, out.Date, out.Hours, out.Minutes, out.Category)
				return nil
			})
		},
	}
	edit.Flags().StringVar(&date, "date", "", "day YYYY-MM-DD")
	edit.Flags().IntVar(&hours, "hours", 0, "hours")
	edit.Flags().IntVar(&minutes, "minutes", 0, "minutes")
	edit.Flags().StringVar(&category, "category", "", "category")
	edit.Flags().StringVar(&obs, "obs", "", "observation")
	edit.Flags().IntVar(&publications, "publications", 0, "publications placed")
	edit.Flags().IntVar(&reopened, "reopened", 0, "return visits reopened")
	edit.Flags().IntVar(&letter, "letters", 0, "letters written")

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id> --yes",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireYes(yes, "delete"); err != nil {
				return err
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.EntryCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry deleted: %s\n", args[0])
				return nil
			})
		},
	}
	del.Flags().BoolVar(&yes, "yes", false, "confirm")

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				entries, err := app.EntryCLI.ListRecent(ctx, limit)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
					return nil
				}
				for _, e := range entries {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dh%02d\t%s\t%s\n", e.ID, e.Date, e.Hours, e.Minutes, e.Category, e.Observation)
				}
				return nil
			})
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "maximum entries")

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List the known categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				names, err := app.EntryCLI.Categories(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
				return nil
			})
		},
	}

	entry.AddCommand(add, edit, del, list, categories)
	return entry
}
