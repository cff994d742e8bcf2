package workspace

import (
	"strconv"
	"strings"
	"time"

	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/describe"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

// Tasks returns the task collection, newest first.
func (w *Workspace) Tasks() []models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneTasks(w.tasks)
}

func (w *Workspace) Task(id string) (models.Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.taskIndex(id); i >= 0 {
		return w.tasks[i].Clone(), true
	}
	return models.Task{}, false
}

// CreateTask stores a new task with a fresh id in the global team. An empty
// status places the task in the first configured column.
func (w *Workspace) CreateTask(data models.Task) models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()

	task := data.Clone()
	task.ID = w.newID(constants.TaskIDPrefix)
	task.TeamID = constants.GlobalTeamID
	if task.Status == "" {
		task.Status = w.board.FirstColumn()
	}

	w.tasks = append([]models.Task{task}, w.tasks...)
	logged := w.record(describe.TaskCreated, task.Title, models.CategoryTask)
	w.commitMutation(constants.StorageKeyTasks, logged)
	return task.Clone()
}

// CreateTasks stores several tasks in one step, as CreateTask would one at a
// time. Each task after the first is stamped at least one millisecond after
// the previous one so ids within the batch never collide. The result keeps
// the input order; the collection ends up with the last task first.
func (w *Workspace) CreateTasks(data []models.Task) []models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(data) == 0 {
		return []models.Task{}
	}

	created := make([]models.Task, 0, len(data))
	logged := false
	var stamp time.Time
	for i, d := range data {
		now := w.now()
		if i == 0 || now.UnixMilli() > stamp.UnixMilli() {
			stamp = now
		} else {
			stamp = stamp.Add(time.Millisecond)
		}

		task := d.Clone()
		task.ID = constants.TaskIDPrefix + strconv.FormatInt(stamp.UnixMilli(), 10)
		task.TeamID = constants.GlobalTeamID
		if task.Status == "" {
			task.Status = w.board.FirstColumn()
		}

		w.tasks = append([]models.Task{task}, w.tasks...)
		if w.recordAt(stamp, describe.TaskCreated, task.Title, models.CategoryTask) {
			logged = true
		}
		created = append(created, task.Clone())
	}

	w.commitMutation(constants.StorageKeyTasks, logged)
	return created
}

// UpdateTask merges patch onto the task with the given id and logs the
// described change. The id and team of a task never change. Unknown ids are
// a no-op.
func (w *Workspace) UpdateTask(id string, patch models.TaskPatch) (models.Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.taskIndex(id)
	if i < 0 {
		return models.Task{}, false
	}

	prev := w.tasks[i]
	next := patch.Apply(prev)
	next.ID = prev.ID
	next.TeamID = prev.TeamID
	w.tasks[i] = next

	logged := false
	if phrase := describe.Task(w.board.Columns, prev, next); phrase != "" {
		logged = w.record(phrase, next.Title, models.CategoryTask)
	}
	w.commitMutation(constants.StorageKeyTasks, logged)
	return next.Clone(), true
}

// ChangeTaskStatus moves a task to status. Any column may follow any other
// and the status is not checked against the board. Moving a task to the
// status it already has changes nothing.
func (w *Workspace) ChangeTaskStatus(id string, status models.TaskStatus) (models.Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.taskIndex(id)
	if i < 0 {
		return models.Task{}, false
	}
	if w.tasks[i].Status == status {
		return w.tasks[i].Clone(), true
	}

	w.tasks[i].Status = status
	logged := w.record(describe.StatusChange(w.board.Columns, status), w.tasks[i].Title, models.CategoryTask)
	w.commitMutation(constants.StorageKeyTasks, logged)
	return w.tasks[i].Clone(), true
}

// DeleteTask removes a task and returns it, or nil when the id is unknown.
func (w *Workspace) DeleteTask(id string) *models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.taskIndex(id)
	if i < 0 {
		return nil
	}

	removed := w.tasks[i]
	w.tasks = append(w.tasks[:i:i], w.tasks[i+1:]...)
	logged := w.record(describe.TaskDeleted, removed.Title, models.CategoryTask)
	w.commitMutation(constants.StorageKeyTasks, logged)
	return &removed
}

// SearchTasks returns the tasks whose title contains query, ignoring case.
func (w *Workspace) SearchTasks(query string) []models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Task, 0, len(w.tasks))
	for _, t := range w.tasks {
		if q == "" || strings.Contains(strings.ToLower(t.Title), q) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// TasksByStatus groups tasks by status. Every configured column has an
// entry; tasks whose status matches no column keep their own key.
func (w *Workspace) TasksByStatus() map[models.TaskStatus][]models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[models.TaskStatus][]models.Task, len(w.board.Columns))
	for _, c := range w.board.Columns {
		out[models.TaskStatus(c.ID)] = []models.Task{}
	}
	for _, t := range w.tasks {
		out[t.Status] = append(out[t.Status], t.Clone())
	}
	return out
}

// TasksForUser returns the tasks assigned to userID.
func (w *Workspace) TasksForUser(userID string) []models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := []models.Task{}
	for _, t := range w.tasks {
		if t.AssigneeID == userID {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (w *Workspace) taskIndex(id string) int {
	for i, t := range w.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
