package dto

import (
	"github.com/yukikurage/kerja-workspace/internal/models"
)

// CreateTaskRequest is the body of POST /api/tasks
type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     string              `json:"dueDate"`
	AssigneeID  string              `json:"assigneeId"`
	EventID     *string             `json:"eventId"`
	EventName   *string             `json:"eventName"`
	Subtasks    []models.Subtask    `json:"subtasks"`
}

// UpdateTaskRequest is the body of PATCH /api/tasks/:id. Omitted fields
// keep their value.
type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	Priority    *models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *string              `json:"dueDate"`
	AssigneeID  *string              `json:"assigneeId"`
	EventID     *string              `json:"eventId"`
	EventName   *string              `json:"eventName"`
	Subtasks    []models.Subtask     `json:"subtasks"`
	ClearEvent  bool                 `json:"clearEvent"`
}

// ChangeStatusRequest is the body of PUT /api/tasks/:id/status
type ChangeStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// GenerateTasksRequest is the body of POST /api/tasks/generate
type GenerateTasksRequest struct {
	Text       string `json:"text" binding:"required"`
	AssigneeID string `json:"assigneeId"`
	Create     bool   `json:"create"`
}

// TaskListResponse wraps a list of tasks
type TaskListResponse struct {
	Tasks []models.Task `json:"tasks"`
	Total int           `json:"total"`
}

// GenerateTasksResponse returns the drafted tasks and whether they were stored
type GenerateTasksResponse struct {
	Tasks   []models.Task `json:"tasks"`
	Created bool          `json:"created"`
}

// ToTask converts the request to a task ready for creation
func (r CreateTaskRequest) ToTask() models.Task {
	subtasks := r.Subtasks
	if subtasks == nil {
		subtasks = []models.Subtask{}
	}
	priority := r.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	return models.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
		EventID:     r.EventID,
		EventName:   r.EventName,
		Subtasks:    subtasks,
	}
}

// ToPatch converts the request to a partial task update
func (r UpdateTaskRequest) ToPatch() models.TaskPatch {
	return models.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		AssigneeID:  r.AssigneeID,
		EventID:     r.EventID,
		EventName:   r.EventName,
		Subtasks:    r.Subtasks,
		ClearEvent:  r.ClearEvent,
	}
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task) TaskListResponse {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return TaskListResponse{
		Tasks: tasks,
		Total: len(tasks),
	}
}
