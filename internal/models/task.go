package models

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Subtask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Task is a unit of work on the board. AssigneeID and EventID are weak
// references: nothing checks or repairs them when the target goes away.
type Task struct {
	ID          string       `json:"id"`
	TeamID      string       `json:"teamId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"dueDate"`
	AssigneeID  string       `json:"assigneeId"`
	EventID     *string      `json:"eventId,omitempty"`
	EventName   *string      `json:"eventName,omitempty"`
	Subtasks    []Subtask    `json:"subtasks"`
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	out := t
	out.EventID = cloneString(t.EventID)
	out.EventName = cloneString(t.EventName)
	if t.Subtasks != nil {
		out.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	return out
}

// TaskPatch carries the fields of a partial task update. Nil fields keep
// their previous value.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *string
	AssigneeID  *string
	EventID     *string
	EventName   *string
	Subtasks    []Subtask
	// ClearEvent drops the event association; it wins over EventID/EventName.
	ClearEvent bool
}

// Apply merges the patch onto t and returns the result.
func (p TaskPatch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.DueDate != nil {
		out.DueDate = *p.DueDate
	}
	if p.AssigneeID != nil {
		out.AssigneeID = *p.AssigneeID
	}
	if p.Subtasks != nil {
		out.Subtasks = append([]Subtask(nil), p.Subtasks...)
	}
	if p.ClearEvent {
		out.EventID = nil
		out.EventName = nil
		return out
	}
	if p.EventID != nil {
		out.EventID = cloneString(p.EventID)
	}
	if p.EventName != nil {
		out.EventName = cloneString(p.EventName)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
