package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
	contactdto "fieldreport/internal/modules/contact/dto"
)

func newContactCmd(dataDir *string) *cobra.Command {
	contact := &cobra.Command{Use: "contact", Short: "Return visits and bible studies"}

	var input contactdto.AddContactInput
	add := &cobra.Command{
		Use:   "add <revisita|estudo> --name <nome>",
		Short: "Register a return visit or bible study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Kind = args[0]
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ContactCLI.Add(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s added: %s (%s)\n", out.Kind, out.Name, out.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&input.Name, "name", "", "name")
	add.Flags().StringVar(&input.Address, "address", "", "address")
	add.Flags().StringVar(&input.Phone, "phone", "", "phone")
	add.Flags().StringVar(&input.Publication, "publication", "", "publication left (revisita)")
	add.Flags().StringVar(&input.Subject, "subject", "", "subject discussed (revisita)")
	add.Flags().StringVar(&input.Schedule, "schedule", "", "day and time (estudo)")

	list := &cobra.Command{
		Use:   "list <revisita|estudo>",
		Short: "List contacts of one kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				contacts, err := app.ContactCLI.List(ctx, args[0])
				if err != nil {
					return err
				}
				if len(contacts) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no contacts")
					return nil
				}
				for _, c := range contacts {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d visits\n", c.ID, c.Name, c.Address, len(c.History))
				}
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <revisita|estudo> <id>",
		Short: "Show a contact and its visit history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				c, err := app.ContactCLI.Get(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "id: %s\nkind: %s\nname: %s\naddress: %s\nphone: %s\n", c.ID, c.Kind, c.Name, c.Address, c.Phone)
				if c.Publication != "" || c.Subject != "" {
					_, _ = fmt.Fprintf(w, "publication: %s\nsubject: %s\n", c.Publication, c.Subject)
				}
				if c.Schedule != "" {
					_, _ = fmt.Fprintf(w, "schedule: %s\n", c.Schedule)
				}
				for _, v := range c.History {
					_, _ = fmt.Fprintf(w, "  %s\t%s\n", v.Date, v.Note)
				}
				return nil
			})
		},
	}

	var date, note string
	visit := &cobra.Command{
		Use:   "visit <revisita|estudo> <id> --note <texto>",
		Short: "Record a visit and credit it as an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ContactCLI.RecordVisit(ctx, args[0], args[1], date, note)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "visit recorded: %s entry=%s minutes=%d\n", out.Contact.Name, out.EntryID, out.Minutes)
				return nil
			})
		},
	}
	visit.Flags().StringVar(&date, "date", "", "day YYYY-MM-DD (default today)")
	visit.Flags().StringVar(&note, "note", "", "what was discussed")

	var yes bool
	promote := &cobra.Command{
		Use:   "promote <id> --yes",
		Short: "Turn a return visit into a bible study",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireYes(yes, "promote"); err != nil {
				return err
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ContactCLI.Promote(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "promoted: %s is now study %s (%d visits kept)\n", out.Study.Name, out.Study.ID, len(out.Study.History))
				return nil
			})
		},
	}
	promote.Flags().BoolVar(&yes, "yes", false, "confirm")

	contact.AddCommand(add, list, show, visit, promote)
	return contact
}
