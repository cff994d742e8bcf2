// Package describe turns an entity's before and after state into the phrase
// recorded in the activity log.
package describe

import (
	"strings"

	"github.com/yukikurage/kerja-workspace/internal/models"
)

// Fixed phrases for mutations that are not diffed.
const (
	TaskCreated   = "created task"
	TaskDeleted   = "deleted task"
	EventCreated  = "scheduled event"
	EventDeleted  = "cancelled event"
	UserCreated   = "added new member"
	UserDeleted   = "removed user"
	UserUpdated   = "updated user profile"
	UserLoggedIn  = "logged in"
	TaskUpdated   = "updated details"
	EventUpdated  = "updated event details"
	phraseJoiner  = ", "
	movedPrefix   = "moved to "
	priorityLabel = "priority set to "
	rescheduled   = "rescheduled to "
)

var fallbackColumnTitles = map[string]string{
	string(models.TaskStatusTodo):       "To Do",
	string(models.TaskStatusInProgress): "In Progress",
	string(models.TaskStatusDone):       "Done",
}

// ColumnTitle returns the display title of a status. Unknown ids fall back to
// the built-in names of the default columns, then to the id itself.
func ColumnTitle(columns []models.KanbanColumn, id string) string {
	for _, c := range columns {
		if c.ID == id {
			return c.Title
		}
	}
	if title, ok := fallbackColumnTitles[id]; ok {
		return title
	}
	return id
}

// Task describes a task update. Status, priority and due date changes are
// reported in that order and joined into one phrase; a title or description
// edit alone yields TaskUpdated. An empty result means nothing worth logging.
func Task(columns []models.KanbanColumn, prev, next models.Task) string {
	var changes []string
	if prev.Status != next.Status {
		changes = append(changes, StatusChange(columns, next.Status))
	}
	if prev.Priority != next.Priority {
		changes = append(changes, priorityLabel+string(next.Priority))
	}
	if prev.DueDate != next.DueDate {
		changes = append(changes, rescheduled+next.DueDate)
	}
	if len(changes) > 0 {
		return strings.Join(changes, phraseJoiner)
	}
	if prev.Title != next.Title || prev.Description != next.Description {
		return TaskUpdated
	}
	return ""
}

// StatusChange is the phrase for moving a task into status.
func StatusChange(columns []models.KanbanColumn, status models.TaskStatus) string {
	return movedPrefix + ColumnTitle(columns, string(status))
}

// Event describes an event update. Every event save is logged, so the
// result is never empty.
func Event(prev, next models.Event) string {
	if prev.Date != next.Date || prev.StartTime != next.StartTime {
		return rescheduled + next.Date + " " + next.StartTime
	}
	return EventUpdated
}
