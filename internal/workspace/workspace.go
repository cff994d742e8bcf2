// Package workspace owns the application state: the task, event and user
// collections, the activity log and the current session. Every mutation runs
// to completion under one lock and ends by committing the snapshots it
// touched.
package workspace

import (
	"strconv"
	"sync"
	"time"

	"github.com/yukikurage/kerja-workspace/internal/activity"
	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/describe"
	"github.com/yukikurage/kerja-workspace/internal/models"
	"github.com/yukikurage/kerja-workspace/internal/persistence"
	"github.com/yukikurage/kerja-workspace/internal/session"
	"go.uber.org/zap"
)

type Workspace struct {
	mu sync.Mutex

	gw    *persistence.Gateway
	board models.Board
	log   *zap.SugaredLogger
	now   func() time.Time

	tasks    []models.Task
	events   []models.Event
	users    []models.User
	activity *activity.Log
	session  *session.Manager
}

type Option func(*Workspace)

// WithClock replaces time.Now for id and timestamp generation.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) {
		w.now = now
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(w *Workspace) {
		w.log = log
	}
}

func WithBoard(board models.Board) Option {
	return func(w *Workspace) {
		w.board = board
	}
}

// Open loads every snapshot through the gateway and restores the session
// pointer. Missing or unreadable snapshots start empty; an empty user list is
// reseeded with the default administrator.
func Open(gw *persistence.Gateway, opts ...Option) *Workspace {
	w := &Workspace{
		gw:      gw,
		board:   models.DefaultBoard(),
		log:     zap.NewNop().Sugar(),
		now:     time.Now,
		session: session.NewManager(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.tasks = persistence.Load(gw, constants.StorageKeyTasks, []models.Task{})
	w.events = persistence.Load(gw, constants.StorageKeyEvents, []models.Event{})
	w.users = persistence.Load(gw, constants.StorageKeyUsers, []models.User{models.DefaultAdmin()})
	w.activity = activity.NewLog(
		persistence.Load(gw, constants.StorageKeyActivities, []models.ActivityEntry{}),
		w.now,
	)

	if w.ensureUsers() {
		w.commit(constants.StorageKeyUsers)
	}

	if pointer := gw.LoadSession(); pointer != "" {
		if !w.session.Restore(pointer, w.users) {
			w.log.Infow("session pointer no longer resolves, staying logged out", "user_id", pointer)
			gw.ClearSession()
		}
	}

	w.log.Debugw("workspace loaded",
		"tasks", len(w.tasks),
		"events", len(w.events),
		"users", len(w.users),
		"activities", w.activity.Len(),
	)
	return w
}

// Board returns the configured columns and event types.
func (w *Workspace) Board() models.Board {
	return models.Board{
		Columns:    append([]models.KanbanColumn{}, w.board.Columns...),
		EventTypes: append([]models.EventTypeConfig{}, w.board.EventTypes...),
	}
}

func (w *Workspace) Columns() []models.KanbanColumn {
	return append([]models.KanbanColumn{}, w.board.Columns...)
}

func (w *Workspace) EventTypes() []models.EventTypeConfig {
	return append([]models.EventTypeConfig{}, w.board.EventTypes...)
}

// CurrentActor returns the logged in user, or nil.
func (w *Workspace) CurrentActor() *models.User {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.session.Actor()
}

func (w *Workspace) Activities() []models.ActivityEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activity.Entries()
}

// ActivitiesByCategory returns the log filtered to one category.
func (w *Workspace) ActivitiesByCategory(category models.ActivityCategory) []models.ActivityEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activity.Filter(category)
}

// Login makes user the current actor, persists the session pointer and
// records the login. The caller is responsible for checking credentials.
func (w *Workspace) Login(user models.User) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.session.Login(user)
	w.gw.SaveSession(user.ID)
	w.record(describe.UserLoggedIn, user.Name, models.CategoryTeam)
	w.commit(constants.StorageKeyActivities)
	w.log.Infow("user logged in", "user_id", user.ID)
}

// Logout clears the current actor and removes the persisted pointer.
func (w *Workspace) Logout() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if actor := w.session.Actor(); actor != nil {
		w.log.Infow("user logged out", "user_id", actor.ID)
	}
	w.session.Logout()
	w.gw.ClearSession()
}

// record appends to the activity log when an actor is present and reports
// whether an entry was written.
func (w *Workspace) record(action, target string, category models.ActivityCategory) bool {
	_, ok := w.activity.Append(w.session.Actor(), action, target, category)
	return ok
}

// recordAt is record with the entry stamped at ts.
func (w *Workspace) recordAt(ts time.Time, action, target string, category models.ActivityCategory) bool {
	_, ok := w.activity.AppendAt(ts, w.session.Actor(), action, target, category)
	return ok
}

// commit writes the full snapshot of each named collection.
func (w *Workspace) commit(keys ...string) {
	for _, key := range keys {
		switch key {
		case constants.StorageKeyTasks:
			w.gw.Save(key, w.tasks)
		case constants.StorageKeyEvents:
			w.gw.Save(key, w.events)
		case constants.StorageKeyUsers:
			w.gw.Save(key, w.users)
		case constants.StorageKeyActivities:
			w.gw.Save(key, w.activity.Entries())
		default:
			w.log.Warnw("commit of unknown snapshot key ignored", "key", key)
		}
	}
}

// commitMutation commits key, plus the activity log when the mutation
// was recorded.
func (w *Workspace) commitMutation(key string, logged bool) {
	if logged {
		w.commit(key, constants.StorageKeyActivities)
		return
	}
	w.commit(key)
}

// newID builds prefix + unix milliseconds. Two ids minted in the same
// millisecond collide.
func (w *Workspace) newID(prefix string) string {
	return prefix + strconv.FormatInt(w.now().UnixMilli(), 10)
}

// ensureUsers reseeds the default administrator into an empty user list.
func (w *Workspace) ensureUsers() bool {
	if len(w.users) > 0 {
		return false
	}
	w.users = []models.User{models.DefaultAdmin()}
	w.log.Infow("user list empty, default administrator reseeded", "user_id", constants.DefaultAdminID)
	return true
}
