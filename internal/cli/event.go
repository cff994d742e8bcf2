package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/kerja-workspace/internal/app"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

func newEventCmd(r *runner) *cobra.Command {
	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	eventCmd.AddCommand(newEventListCmd(r))
	eventCmd.AddCommand(newEventAddCmd(r))
	eventCmd.AddCommand(newEventRmCmd(r))
	return eventCmd
}

func newEventListCmd(r *runner) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally within a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				printEvents(cmd.OutOrStdout(), a.Workspace.EventsBetween(from, to))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date (YYYY-MM-DD)")
	return cmd
}

func newEventAddCmd(r *runner) *cobra.Command {
	var event models.Event
	var location, client string
	var attendees []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Schedule an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				event.Title = args[0]
				if event.EndDate == "" {
					event.EndDate = event.Date
				}
				if location != "" {
					event.Location = &location
				}
				if client != "" {
					event.ClientName = &client
				}
				event.Attendees = append([]string{}, attendees...)

				created := a.Workspace.CreateEvent(event)
				fmt.Fprintf(cmd.OutOrStdout(), "Scheduled event %s\n", created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&event.Date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&event.EndDate, "end-date", "", "End date (defaults to --date)")
	cmd.Flags().StringVar(&event.Type, "type", "meeting", "Event type id")
	cmd.Flags().StringVar(&event.StartTime, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&event.EndTime, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringSliceVar(&attendees, "attendee", nil, "Attendee user id (repeatable)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newEventRmCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Cancel an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.withActor(func(a *app.App, _ models.User) error {
				if removed := a.Workspace.DeleteEvent(args[0]); removed == nil {
					return fmt.Errorf("event %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cancelled event %s\n", args[0])
				return nil
			})
		},
	}
}
