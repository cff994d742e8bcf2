package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yukikurage/kerja-workspace/internal/describe"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func printTasks(w io.Writer, columns []models.KanbanColumn, tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	tw := newTable(w, "ID", "STATUS", "PRIORITY", "DUE", "ASSIGNEE", "TITLE")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, describe.ColumnTitle(columns, string(t.Status)), t.Priority,
			dash(t.DueDate), dash(t.AssigneeID), t.Title)
	}
	_ = tw.Flush()
}

func printEvents(w io.Writer, events []models.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events.")
		return
	}
	tw := newTable(w, "ID", "DATE", "TIME", "TYPE", "TITLE")
	for _, e := range events {
		when := e.StartTime
		if e.EndTime != "" {
			when += "-" + e.EndTime
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, dash(when), dash(e.Type), e.Title)
	}
	_ = tw.Flush()
}

func printUsers(w io.Writer, users []models.User, actorID string) {
	tw := newTable(w, "", "ID", "USERNAME", "NAME", "ROLE", "EMAIL")
	for _, u := range users {
		marker := ""
		if u.ID == actorID {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", marker, u.ID, u.Username, u.Name, u.Role, dash(u.Email))
	}
	_ = tw.Flush()
}

func printActivities(w io.Writer, entries []models.ActivityEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No activity yet.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  [%s] %s %s %q\n", e.Timestamp, e.Category, e.UserName, e.Action, e.Target)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
