package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

func baseTask() models.Task {
	return models.Task{
		ID:          "t1",
		Title:       "Write report",
		Description: "Q1 numbers",
		Status:      models.TaskStatusTodo,
		Priority:    models.PriorityLow,
		DueDate:     "2024-01-01",
	}
}

func TestTask(t *testing.T) {
	columns := models.DefaultColumns()

	tests := []struct {
		name   string
		mutate func(*models.Task)
		want   string
	}{
		{
			name:   "status",
			mutate: func(t *models.Task) { t.Status = models.TaskStatusInProgress },
			want:   "moved to IN PROGRESS",
		},
		{
			name: "priority and due date keep fixed order",
			mutate: func(t *models.Task) {
				t.DueDate = "2024-02-01"
				t.Priority = models.PriorityHigh
			},
			want: "priority set to high, rescheduled to 2024-02-01",
		},
		{
			name: "all three",
			mutate: func(t *models.Task) {
				t.Status = models.TaskStatusDone
				t.Priority = models.PriorityMedium
				t.DueDate = "2024-03-15"
			},
			want: "moved to DONE, priority set to medium, rescheduled to 2024-03-15",
		},
		{
			name: "title edit is swallowed by a tracked change",
			mutate: func(t *models.Task) {
				t.Title = "Write final report"
				t.Priority = models.PriorityHigh
			},
			want: "priority set to high",
		},
		{
			name:   "title only",
			mutate: func(t *models.Task) { t.Title = "Write final report" },
			want:   TaskUpdated,
		},
		{
			name:   "description only",
			mutate: func(t *models.Task) { t.Description = "Q1 and Q2" },
			want:   TaskUpdated,
		},
		{
			name:   "untracked field",
			mutate: func(t *models.Task) { t.AssigneeID = "u-2" },
			want:   "",
		},
		{
			name:   "no change",
			mutate: func(t *models.Task) {},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := baseTask()
			next := baseTask()
			tt.mutate(&next)
			assert.Equal(t, tt.want, Task(columns, prev, next))
		})
	}
}

func TestColumnTitle(t *testing.T) {
	columns := []models.KanbanColumn{{ID: "review", Title: "REVIEW"}}

	assert.Equal(t, "REVIEW", ColumnTitle(columns, "review"))
	assert.Equal(t, "In Progress", ColumnTitle(columns, "in-progress"))
	assert.Equal(t, "To Do", ColumnTitle(nil, "todo"))
	assert.Equal(t, "blocked", ColumnTitle(columns, "blocked"))
}

func TestEvent(t *testing.T) {
	prev := models.Event{Title: "Standup", Date: "2024-05-01", StartTime: "09:00"}

	next := prev
	next.StartTime = "10:30"
	assert.Equal(t, "rescheduled to 2024-05-01 10:30", Event(prev, next))

	next = prev
	next.Date = "2024-05-02"
	assert.Equal(t, "rescheduled to 2024-05-02 09:00", Event(prev, next))

	next = prev
	next.Title = "Daily standup"
	assert.Equal(t, EventUpdated, Event(prev, next))

	assert.Equal(t, EventUpdated, Event(prev, prev))
}
