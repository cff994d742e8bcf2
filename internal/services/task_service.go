package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/workspace"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoTasksGenerated     = errors.New("AI did not generate any tasks")
	ErrAINoValidTasks         = errors.New("no valid tasks could be created from AI output")
	ErrAITooManyTasks         = errors.New("AI generated too many tasks")
	ErrTextRequired           = errors.New("text is required")
)

const dateLayout = "2006-01-02"

// TaskService handles task queries and AI drafting on top of the workspace
type TaskService struct {
	ws        *workspace.Workspace
	aiService *AIService
	now       func() time.Time
}

// NewTaskService creates a new TaskService
func NewTaskService(ws *workspace.Workspace, aiService *AIService) *TaskService {
	return &TaskService{
		ws:        ws,
		aiService: aiService,
		now:       time.Now,
	}
}

// ListTasksInput represents filters for listing tasks. Empty fields do not
// filter.
type ListTasksInput struct {
	Query      string
	Status     models.TaskStatus
	AssigneeID string
}

// ListTasks returns the tasks matching every given filter, newest first
func (s *TaskService) ListTasks(input ListTasksInput) []models.Task {
	tasks := s.ws.SearchTasks(input.Query)

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if input.Status != "" && t.Status != input.Status {
			continue
		}
		if input.AssigneeID != "" && t.AssigneeID != input.AssigneeID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// GenerateTasksInput represents input for AI task generation
type GenerateTasksInput struct {
	Text       string
	AssigneeID string
	// Create stores each draft through the workspace so it is audited.
	Create bool
}

// GenerateTasks uses AI to draft tasks from text. Drafts land in the first
// board column; past due dates are dropped.
func (s *TaskService) GenerateTasks(ctx context.Context, input GenerateTasksInput) ([]models.Task, error) {
	if !s.aiService.Enabled() {
		return nil, ErrAIServiceNotConfigured
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTextRequired
	}

	aiTasks, err := s.aiService.GenerateTasksFromText(ctx, input.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tasks: %w", err)
	}

	if len(aiTasks) == 0 {
		return nil, ErrAINoTasksGenerated
	}
	if len(aiTasks) > constants.MaxAIGeneratedTasks {
		return nil, fmt.Errorf("%w (max %d)", ErrAITooManyTasks, constants.MaxAIGeneratedTasks)
	}

	today := s.now().Format(dateLayout)
	status := s.firstColumn()
	drafts := make([]models.Task, 0, len(aiTasks))
	for _, aiTask := range aiTasks {
		title := strings.TrimSpace(aiTask.Title)
		if title == "" {
			continue
		}
		drafts = append(drafts, models.Task{
			Title:       title,
			Description: strings.TrimSpace(aiTask.Description),
			Status:      status,
			Priority:    normalizePriority(aiTask.Priority),
			DueDate:     normalizeDueDate(aiTask.DueDate, today),
			AssigneeID:  input.AssigneeID,
			Subtasks:    []models.Subtask{},
		})
	}

	if len(drafts) == 0 {
		return nil, ErrAINoValidTasks
	}
	if !input.Create {
		return drafts, nil
	}

	return s.ws.CreateTasks(drafts), nil
}

func (s *TaskService) firstColumn() models.TaskStatus {
	return models.Board{Columns: s.ws.Columns()}.FirstColumn()
}

func normalizePriority(p string) models.TaskPriority {
	switch models.TaskPriority(strings.ToLower(strings.TrimSpace(p))) {
	case models.PriorityLow:
		return models.PriorityLow
	case models.PriorityHigh:
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}

// normalizeDueDate keeps YYYY-MM-DD dates (or the date part of an ISO 8601
// timestamp) that are not before today.
func normalizeDueDate(raw, today string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(dateLayout) {
		raw = raw[:len(dateLayout)]
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return ""
	}
	if raw < today {
		return ""
	}
	return raw
}
