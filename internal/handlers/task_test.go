package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/dto"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	env     testEnv
	cookies []*http.Cookie
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.env = setupTestEnv(suite.T())
	suite.cookies = suite.env.login(suite.T(), "admin", "123")
}

func (suite *TaskHandlerTestSuite) createTask(body map[string]interface{}) models.Task {
	w := suite.env.do(suite.T(), http.MethodPost, "/api/tasks", body, suite.cookies)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var task models.Task
	decode(suite.T(), w, &task)
	return task
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	task := suite.createTask(map[string]interface{}{
		"title":    "Prepare deck",
		"priority": "high",
		"dueDate":  "2024-02-01",
	})

	suite.Regexp(`^t\d+$`, task.ID)
	suite.Equal(constants.GlobalTeamID, task.TeamID)
	suite.Equal(models.TaskStatusTodo, task.Status)
	suite.NotNil(task.Subtasks)
	suite.Equal("created task", suite.env.ws.Activities()[0].Action)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Validation() {
	w := suite.env.do(suite.T(), http.MethodPost, "/api/tasks", map[string]interface{}{"description": "no title"}, suite.cookies)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.env.do(suite.T(), http.MethodPost, "/api/tasks", map[string]interface{}{"title": "x", "priority": "urgent"}, suite.cookies)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetTask() {
	task := suite.createTask(map[string]interface{}{"title": "Lookup"})

	w := suite.env.do(suite.T(), http.MethodGet, "/api/tasks/"+task.ID, nil, suite.cookies)
	suite.Require().Equal(http.StatusOK, w.Code)
	var got models.Task
	decode(suite.T(), w, &got)
	suite.Equal(task, got)

	w = suite.env.do(suite.T(), http.MethodGet, "/api/tasks/t-missing", nil, suite.cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasks_Filters() {
	suite.createTask(map[string]interface{}{"title": "Write copy", "assigneeId": "u1"})
	suite.createTask(map[string]interface{}{"title": "Review copy", "status": "done"})
	suite.createTask(map[string]interface{}{"title": "Deploy"})

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?q=copy", 2},
		{"?status=done", 1},
		{"?assignee=u1", 1},
		{"?q=copy&status=todo", 1},
	}

	for _, tt := range tests {
		w := suite.env.do(suite.T(), http.MethodGet, "/api/tasks"+tt.query, nil, suite.cookies)
		suite.Require().Equal(http.StatusOK, w.Code)

		var resp dto.TaskListResponse
		decode(suite.T(), w, &resp)
		suite.Len(resp.Tasks, tt.want, tt.query)
		suite.Equal(tt.want, resp.Total)
	}
}

func (suite *TaskHandlerTestSuite) TestChangeStatus_LogsMove() {
	task := suite.createTask(map[string]interface{}{"title": "Ship"})

	w := suite.env.do(suite.T(), http.MethodPut, "/api/tasks/"+task.ID+"/status",
		map[string]string{"status": "in-progress"}, suite.cookies)

	suite.Require().Equal(http.StatusOK, w.Code)
	var moved models.Task
	decode(suite.T(), w, &moved)
	suite.Equal(models.TaskStatusInProgress, moved.Status)

	entry := suite.env.ws.Activities()[0]
	suite.Equal("moved to IN PROGRESS", entry.Action)
	suite.Equal("Ship", entry.Target)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_CombinedPhrase() {
	task := suite.createTask(map[string]interface{}{"title": "Budget", "priority": "low", "dueDate": "2024-01-01"})

	w := suite.env.do(suite.T(), http.MethodPatch, "/api/tasks/"+task.ID,
		map[string]string{"priority": "high", "dueDate": "2024-02-01"}, suite.cookies)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("priority set to high, rescheduled to 2024-02-01", suite.env.ws.Activities()[0].Action)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	w := suite.env.do(suite.T(), http.MethodPatch, "/api/tasks/t-missing", map[string]string{"title": "x"}, suite.cookies)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.do(suite.T(), http.MethodPut, "/api/tasks/t-missing/status", map[string]string{"status": "done"}, suite.cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	task := suite.createTask(map[string]interface{}{"title": "Gone"})

	w := suite.env.do(suite.T(), http.MethodDelete, "/api/tasks/"+task.ID, nil, suite.cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	decode(suite.T(), w, &response)
	suite.Equal("Task deleted successfully", response["message"])
	suite.Empty(suite.env.ws.Tasks())

	w = suite.env.do(suite.T(), http.MethodDelete, "/api/tasks/"+task.ID, nil, suite.cookies)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGenerateTasks_NotConfigured() {
	w := suite.env.do(suite.T(), http.MethodPost, "/api/tasks/generate", map[string]string{"text": "notes"}, suite.cookies)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *TaskHandlerTestSuite) TestActivityFeed() {
	for i := 0; i < 4; i++ {
		suite.createTask(map[string]interface{}{"title": fmt.Sprintf("task %d", i)})
	}

	w := suite.env.do(suite.T(), http.MethodGet, "/api/activities?category=task&page=2&limit=3", nil, suite.cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.ActivityListResponse
	decode(suite.T(), w, &resp)
	suite.Equal(4, resp.Total)
	suite.Equal(2, resp.Page)
	suite.Require().Len(resp.Activities, 1)
	suite.Equal("task 0", resp.Activities[0].Target)

	w = suite.env.do(suite.T(), http.MethodGet, "/api/activities?category=team", nil, suite.cookies)
	decode(suite.T(), w, &resp)
	suite.Require().Len(resp.Activities, 1)
	suite.Equal("logged in", resp.Activities[0].Action)

	w = suite.env.do(suite.T(), http.MethodGet, "/api/activities?category=billing", nil, suite.cookies)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestGetBoard() {
	w := suite.env.do(suite.T(), http.MethodGet, "/api/board", nil, suite.cookies)
	suite.Require().Equal(http.StatusOK, w.Code)

	var board models.Board
	decode(suite.T(), w, &board)
	suite.Equal(models.DefaultBoard(), board)
}
