package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kerja-workspace/internal/dto"
	apierrors "github.com/yukikurage/kerja-workspace/internal/errors"
	"github.com/yukikurage/kerja-workspace/internal/middleware"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/services"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
)

type TaskHandler struct {
	ws          *workspace.Workspace
	taskService *services.TaskService
}

func NewTaskHandler(ws *workspace.Workspace, taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		ws:          ws,
		taskService: taskService,
	}
}

// ListTasks returns the board's tasks, newest first.
// Can filter by q (title search), status and assignee.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks := h.taskService.ListTasks(services.ListTasksInput{
		Query:      c.Query("q"),
		Status:     models.TaskStatus(c.Query("status")),
		AssigneeID: c.Query("assignee"),
	})

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// GetTask returns a specific task by ID
// Task is already loaded by RequireTask middleware
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task := h.ws.CreateTask(req.ToTask())
	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to a task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, ok := h.ws.UpdateTask(c.Param("id"), req.ToPatch())
	if !ok {
		apierrors.NotFound(c, "Task not found")
		return
	}

	c.JSON(http.StatusOK, task)
}

// ChangeStatus moves a task to another column
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, ok := h.ws.ChangeTaskStatus(c.Param("id"), req.Status)
	if !ok {
		apierrors.NotFound(c, "Task not found")
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if removed := h.ws.DeleteTask(c.Param("id")); removed == nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// GenerateTasks drafts tasks from free text with the AI service and
// optionally stores them
func (h *TaskHandler) GenerateTasks(c *gin.Context) {
	var req dto.GenerateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tasks, err := h.taskService.GenerateTasks(c.Request.Context(), services.GenerateTasksInput{
		Text:       req.Text,
		AssigneeID: req.AssigneeID,
		Create:     req.Create,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIServiceNotConfigured):
			apierrors.ServiceUnavailable(c, "AI service is not configured. Set OPENAI_API_KEY to enable it.")
		case errors.Is(err, services.ErrTextRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrAINoTasksGenerated),
			errors.Is(err, services.ErrAINoValidTasks),
			errors.Is(err, services.ErrAITooManyTasks):
			apierrors.RespondWithError(c, http.StatusUnprocessableEntity,
				apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, err.Error()))
		default:
			_ = c.Error(err)
			apierrors.BadGateway(c, "Failed to generate tasks")
		}
		return
	}

	status := http.StatusOK
	if req.Create {
		status = http.StatusCreated
	}
	c.JSON(status, dto.GenerateTasksResponse{Tasks: tasks, Created: req.Create})
}
