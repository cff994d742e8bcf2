package workspace

import (
	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/describe"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

// Events returns the event collection, newest first.
func (w *Workspace) Events() []models.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneEvents(w.events)
}

func (w *Workspace) Event(id string) (models.Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.eventIndex(id); i >= 0 {
		return w.events[i].Clone(), true
	}
	return models.Event{}, false
}

// CreateEvent stores a new event with a fresh id in the global team.
func (w *Workspace) CreateEvent(data models.Event) models.Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	event := data.Clone()
	event.ID = w.newID(constants.EventIDPrefix)
	event.TeamID = constants.GlobalTeamID

	w.events = append([]models.Event{event}, w.events...)
	logged := w.record(describe.EventCreated, event.Title, models.CategoryEvent)
	w.commitMutation(constants.StorageKeyEvents, logged)
	return event.Clone()
}

// UpdateEvent merges patch onto the event with the given id. Every update of
// an existing event is logged, even when no field changed.
func (w *Workspace) UpdateEvent(id string, patch models.EventPatch) (models.Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.eventIndex(id)
	if i < 0 {
		return models.Event{}, false
	}

	prev := w.events[i]
	next := patch.Apply(prev)
	next.ID = prev.ID
	next.TeamID = prev.TeamID
	w.events[i] = next

	logged := w.record(describe.Event(prev, next), next.Title, models.CategoryEvent)
	w.commitMutation(constants.StorageKeyEvents, logged)
	return next.Clone(), true
}

// DeleteEvent removes an event and returns it, or nil when the id is unknown.
// Tasks linked to the event keep their eventId.
func (w *Workspace) DeleteEvent(id string) *models.Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.eventIndex(id)
	if i < 0 {
		return nil
	}

	removed := w.events[i]
	w.events = append(w.events[:i:i], w.events[i+1:]...)
	logged := w.record(describe.EventDeleted, removed.Title, models.CategoryEvent)
	w.commitMutation(constants.StorageKeyEvents, logged)
	return &removed
}

// EventsBetween returns events whose date falls within [from, to]. Dates are
// compared as YYYY-MM-DD strings; an empty bound is open.
func (w *Workspace) EventsBetween(from, to string) []models.Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := []models.Event{}
	for _, e := range w.events {
		if from != "" && e.Date < from {
			continue
		}
		if to != "" && e.Date > to {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

func (w *Workspace) eventIndex(id string) int {
	for i, e := range w.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func cloneEvents(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}
