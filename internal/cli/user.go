package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/kerja-workspace/internal/app"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/services"
)

func newUserCmd(r *runner) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage team members",
	}

	userCmd.AddCommand(newUserListCmd(r))
	userCmd.AddCommand(newUserAddCmd(r))
	userCmd.AddCommand(newUserRmCmd(r))
	return userCmd
}

func newUserListCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members; * marks you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, actor models.User) error {
				printUsers(cmd.OutOrStdout(), a.Workspace.Users(), actor.ID)
				return nil
			})
		},
	}
}

func newUserAddCmd(r *runner) *cobra.Command {
	var input services.CreateMemberInput
	var role string

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a team member (owners only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withOwner(func(a *app.App, _ models.User) error {
				input.Username = args[0]
				input.Role = models.UserRole(role)
				switch input.Role {
				case "", models.RoleOwner, models.RoleMember:
				default:
					return fmt.Errorf("role must be %s or %s", models.RoleOwner, models.RoleMember)
				}

				user, err := a.AuthService.CreateMember(input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s as %s (%s)\n", user.Username, user.Role, user.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input.Password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&input.Name, "name", "", "Display name (defaults to the username)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email")
	cmd.Flags().StringVar(&role, "role", string(models.RoleMember), "Owner or Member")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newUserRmCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a team member (owners only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withOwner(func(a *app.App, _ models.User) error {
				removed, err := a.Workspace.DeleteUser(args[0])
				if err != nil {
					return err
				}
				if removed == nil {
					return fmt.Errorf("user %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", removed.Username)
				return nil
			})
		},
	}
}
