package models

type KanbanColumn struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Theme string `json:"theme" yaml:"theme"`
}

type EventTypeConfig struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Theme string `json:"theme" yaml:"theme"`
}

// Board is the configured column set and event type list.
type Board struct {
	Columns    []KanbanColumn    `json:"columns" yaml:"columns"`
	EventTypes []EventTypeConfig `json:"eventTypes" yaml:"event_types"`
}

func DefaultColumns() []KanbanColumn {
	return []KanbanColumn{
		{ID: string(TaskStatusTodo), Title: "TODO", Theme: "slate"},
		{ID: string(TaskStatusInProgress), Title: "IN PROGRESS", Theme: "blue"},
		{ID: string(TaskStatusDone), Title: "DONE", Theme: "emerald"},
	}
}

func DefaultEventTypes() []EventTypeConfig {
	return []EventTypeConfig{
		{ID: "meeting", Label: "Meeting", Theme: "purple"},
		{ID: "workshop", Label: "Workshop", Theme: "amber"},
		{ID: "deadline", Label: "Deadline", Theme: "red"},
		{ID: "presentation", Label: "Presentation", Theme: "blue"},
	}
}

func DefaultBoard() Board {
	return Board{Columns: DefaultColumns(), EventTypes: DefaultEventTypes()}
}

// HasColumn reports whether id names a configured column. Status changes are
// never checked against it; collaborators may use it for display.
func (b Board) HasColumn(id string) bool {
	for _, c := range b.Columns {
		if c.ID == id {
			return true
		}
	}
	return false
}

// FirstColumn returns the id of the leftmost column, or todo when the board
// has none.
func (b Board) FirstColumn() TaskStatus {
	if len(b.Columns) == 0 {
		return TaskStatusTodo
	}
	return TaskStatus(b.Columns[0].ID)
}
