package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/kerja-workspace/internal/app"
	"github.com/yukikurage/kerja-workspace/internal/services"
)

func newLoginCmd(r *runner) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in to the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(func(a *app.App) error {
				user, err := a.AuthService.Login(services.LoginInput{
					Username: args[0],
					Password: password,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Username)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(func(a *app.App) error {
				a.AuthService.Logout()
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
				return nil
			})
		},
	}
}

func newWhoamiCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withApp(func(a *app.App) error {
				actor := a.Workspace.CurrentActor()
				if actor == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) %s\n", actor.Name, actor.Username, actor.Role)
				return nil
			})
		},
	}
}
