package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

func TestTaskService_ListTasksFilters(t *testing.T) {
	ws := newTestWorkspace(t)
	svc := NewTaskService(ws, NewAIService(""))

	ws.CreateTask(models.Task{Title: "Write brief", Status: models.TaskStatusTodo, AssigneeID: "u1"})
	ws.CreateTask(models.Task{Title: "Review brief", Status: models.TaskStatusDone, AssigneeID: "u2"})
	ws.CreateTask(models.Task{Title: "Deploy", Status: models.TaskStatusTodo, AssigneeID: "u2"})

	assert.Len(t, svc.ListTasks(ListTasksInput{}), 3)
	assert.Len(t, svc.ListTasks(ListTasksInput{Query: "brief"}), 2)
	assert.Len(t, svc.ListTasks(ListTasksInput{Status: models.TaskStatusTodo}), 2)

	got := svc.ListTasks(ListTasksInput{Query: "brief", AssigneeID: "u2"})
	require.Len(t, got, 1)
	assert.Equal(t, "Review brief", got[0].Title)
}

func TestTaskService_GenerateTasksNotConfigured(t *testing.T) {
	svc := NewTaskService(newTestWorkspace(t), NewAIService(""))

	_, err := svc.GenerateTasks(context.Background(), GenerateTasksInput{Text: "ship it"})

	assert.ErrorIs(t, err, ErrAIServiceNotConfigured)
}

func TestTaskService_GenerateTasksDrafts(t *testing.T) {
	ws := newTestWorkspace(t)
	reply := "```json\n" + `[
		{"title": "Book venue", "description": "for the offsite", "priority": "HIGH", "due_date": "2024-03-15"},
		{"title": "  ", "description": "blank title is dropped"},
		{"title": "Send recap", "priority": "urgent", "due_date": "2024-03-01T10:00:00Z"},
		{"title": "Order cake", "due_date": "2024-03-20T10:00:00Z"}
	]` + "\n```"
	svc := NewTaskService(ws, newFakeOpenAI(t, reply))
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC) }

	drafts, err := svc.GenerateTasks(context.Background(), GenerateTasksInput{Text: "offsite planning notes"})
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	assert.Equal(t, "Book venue", drafts[0].Title)
	assert.Equal(t, models.PriorityHigh, drafts[0].Priority)
	assert.Equal(t, "2024-03-15", drafts[0].DueDate)
	assert.Equal(t, models.TaskStatusTodo, drafts[0].Status)

	assert.Equal(t, models.PriorityMedium, drafts[1].Priority)
	assert.Equal(t, "", drafts[1].DueDate, "past due dates are dropped")
	assert.Equal(t, "2024-03-20", drafts[2].DueDate)

	assert.Empty(t, drafts[0].ID)
	assert.Empty(t, ws.Tasks(), "drafts are not stored unless requested")
}

func TestTaskService_GenerateTasksCreate(t *testing.T) {
	ws := newTestWorkspace(t)
	admin, _ := ws.User(constants.DefaultAdminID)
	ws.Login(admin)
	reply := `[{"title": "Book venue"}, {"title": "Send invites"}]`
	svc := NewTaskService(ws, newFakeOpenAI(t, reply))

	created, err := svc.GenerateTasks(context.Background(), GenerateTasksInput{Text: "notes", Create: true})
	require.NoError(t, err)
	require.Len(t, created, 2)

	for _, task := range created {
		assert.Regexp(t, `^t\d+$`, task.ID)
		assert.Equal(t, constants.GlobalTeamID, task.TeamID)
	}
	assert.Len(t, ws.Tasks(), 2)

	activities := ws.Activities()
	require.Len(t, activities, 3)
	assert.Equal(t, "created task", activities[0].Action)
	assert.Equal(t, "Send invites", activities[0].Target)
}

func TestTaskService_GenerateTasksCreateSameMillisecond(t *testing.T) {
	frozen := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	ws := newTestWorkspaceWithClock(t, func() time.Time { return frozen })
	admin, _ := ws.User(constants.DefaultAdminID)
	ws.Login(admin)
	reply := `[{"title": "Book venue"}, {"title": "Send invites"}, {"title": "Order catering"}, {"title": "Print badges"}]`
	svc := NewTaskService(ws, newFakeOpenAI(t, reply))

	created, err := svc.GenerateTasks(context.Background(), GenerateTasksInput{Text: "notes", Create: true})
	require.NoError(t, err)
	require.Len(t, created, 4)

	ids := map[string]bool{}
	for _, task := range created {
		ids[task.ID] = true
	}
	assert.Len(t, ids, 4, "every drafted task gets its own id")
	assert.Len(t, ws.Tasks(), 4)

	activityIDs := map[string]bool{}
	for _, entry := range ws.Activities() {
		if entry.Action == "created task" {
			activityIDs[entry.ID] = true
		}
	}
	assert.Len(t, activityIDs, 4)
}

func TestTaskService_GenerateTasksEmptyAndInvalid(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr error
	}{
		{"empty array", `[]`, ErrAINoTasksGenerated},
		{"only blank titles", `[{"title": ""}, {"title": "   "}]`, ErrAINoValidTasks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTaskService(newTestWorkspace(t), newFakeOpenAI(t, tt.reply))

			_, err := svc.GenerateTasks(context.Background(), GenerateTasksInput{Text: "notes"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskService_GenerateTasksUnparseable(t *testing.T) {
	svc := NewTaskService(newTestWorkspace(t), newFakeOpenAI(t, "I could not find any tasks."))

	_, err := svc.GenerateTasks(context.Background(), GenerateTasksInput{Text: "notes"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse AI response")
}

func TestTaskService_GenerateTasksRequiresText(t *testing.T) {
	svc := NewTaskService(newTestWorkspace(t), newFakeOpenAI(t, `[]`))

	_, err := svc.GenerateTasks(context.Background(), GenerateTasksInput{Text: "  "})

	assert.ErrorIs(t, err, ErrTextRequired)
}
