package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fieldreport/internal/bootstrap"
)

func newAccountCmd(dataDir *string) *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Users, login and profile"}

	var name, congregation, role, email, password string
	signup := &cobra.Command{
		Use:   "signup --name <nome> --email <email> --password <senha>",
		Short: "Create a user and log in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AccountCLI.SignUp(ctx, name, congregation, role, email, password)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user created: %s (%s) role=%s\n", out.Name, out.ID, out.RoleLabel)
				return nil
			})
		},
	}
	signup.Flags().StringVar(&name, "name", "", "full name")
	signup.Flags().StringVar(&congregation, "congregation", "", "congregation")
	signup.Flags().StringVar(&role, "role", "publicador", "publicador|auxiliar|regular")
	signup.Flags().StringVar(&email, "email", "", "email")
	signup.Flags().StringVar(&password, "password", "", "password")

	var loginEmail, loginPassword string
	login := &cobra.Command{
		Use:   "login --email <email> --password <senha>",
		Short: "Log in as an existing user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AccountCLI.Login(ctx, loginEmail, loginPassword)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in: %s (%s)\n", out.Name, out.ID)
				return nil
			})
		},
	}
	login.Flags().StringVar(&loginEmail, "email", "", "email")
	login.Flags().StringVar(&loginPassword, "password", "", "password")

	var yes bool
	logout := &cobra.Command{
		Use:   "logout --yes",
		Short: "Log out the current user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireYes(yes, "logout"); err != nil {
				return err
			}
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.AccountCLI.Logout(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
				return nil
			})
		},
	}
	logout.Flags().BoolVar(&yes, "yes", false, "confirm")

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AccountCLI.Current(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nname: %s\ncongregation: %s\nrole: %s\nemail: %s\n", out.ID, out.Name, out.Congregation, out.RoleLabel, out.Email)
				return nil
			})
		},
	}

	account.AddCommand(signup, login, logout, whoami, newProfileCmd(dataDir))
	return account
}

func newProfileCmd(dataDir *string) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show the current user's profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AccountCLI.Profile(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\ncongregation: %s\nrole: %s\nelder: %s\n", out.Name, out.Congregation, out.RoleLabel, out.ElderNote)
				return nil
			})
		},
	}

	var name, congregation, role, elderNote string
	set := &cobra.Command{
		Use:   "set",
		Short: "Update name, congregation, role or elder note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AccountCLI.UpdateProfile(ctx, name, congregation, role, elderNote)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile saved: %s role=%s\n", out.Name, out.RoleLabel)
				return nil
			})
		},
	}
	set.Flags().StringVar(&name, "name", "", "full name")
	set.Flags().StringVar(&congregation, "congregation", "", "congregation")
	set.Flags().StringVar(&role, "role", "", "publicador|auxiliar|regular")
	set.Flags().StringVar(&elderNote, "elder", "", "free-text elder note")

	profile.AddCommand(set)
	return profile
}

func newElderCmd(dataDir *string) *cobra.Command {
	elder := &cobra.Command{Use: "elder", Short: "Elders that receive the monthly report"}

	var name, phone string
	add := &cobra.Command{
		Use:   "add --name <nome> --phone <telefone>",
		Short: "Add an elder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.AccountCLI.AddElder(ctx, name, phone)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "elder added: %s (%s)\n", out.Name, out.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "name")
	add.Flags().StringVar(&phone, "phone", "", "phone")

	list := &cobra.Command{
		Use:   "list",
		Short: "List elders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				elders, err := app.AccountCLI.ListElders(ctx)
				if err != nil {
					return err
				}
				if len(elders) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no elders")
					return nil
				}
				for _, e := range elders {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", e.ID, e.Name, e.Phone)
				}
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an elder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.AccountCLI.RemoveElder(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "elder removed: %s\n", args[0])
				return nil
			})
		},
	}

	elder.AddCommand(add, list, remove)
	return elder
}
