package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/kerja-workspace/internal/app"
	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

func newActivityCmd(r *runner) *cobra.Command {
	var category string
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := models.ActivityCategory(category)
			switch c {
			case "", models.CategoryTask, models.CategoryEvent, models.CategoryTeam:
			default:
				return fmt.Errorf("category must be one of task, event, team")
			}

			return r.withActor(func(a *app.App, _ models.User) error {
				entries := a.Workspace.ActivitiesByCategory(c)
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}
				printActivities(cmd.OutOrStdout(), entries)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "task, event or team")
	cmd.Flags().IntVarP(&limit, "limit", "n", constants.DefaultPageSize, "Maximum entries to show")
	return cmd
}
