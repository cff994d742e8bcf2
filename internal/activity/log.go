// Package activity keeps the bounded audit trail of workspace mutations.
package activity

import (
	"strconv"
	"time"

	"github.com/yukikurage/kerja-workspace/internal/constants"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

// TimestampLayout is ISO 8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Log is a newest-first sequence of at most Capacity entries. It is not safe
// for concurrent use; the workspace serializes access.
type Log struct {
	entries  []models.ActivityEntry
	capacity int
	now      func() time.Time
}

// NewLog wraps previously stored entries. Entries beyond the capacity are
// dropped from the old end.
func NewLog(entries []models.ActivityEntry, now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	l := &Log{capacity: constants.MaxActivityEntries, now: now}
	l.entries = truncate(append([]models.ActivityEntry(nil), entries...), l.capacity)
	return l
}

// Append records action on target by actor. It does nothing and returns
// false when there is no actor.
func (l *Log) Append(actor *models.User, action, target string, category models.ActivityCategory) (models.ActivityEntry, bool) {
	return l.AppendAt(l.now(), actor, action, target, category)
}

// AppendAt is Append with an explicit timestamp, which also fixes the entry id.
func (l *Log) AppendAt(at time.Time, actor *models.User, action, target string, category models.ActivityCategory) (models.ActivityEntry, bool) {
	if actor == nil {
		return models.ActivityEntry{}, false
	}
	ts := at.UTC()
	entry := models.ActivityEntry{
		ID:         constants.ActivityIDPrefix + strconv.FormatInt(ts.UnixMilli(), 10),
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserAvatar: actor.Avatar,
		Action:     action,
		Target:     target,
		Category:   category,
		Timestamp:  ts.Format(TimestampLayout),
	}

	next := make([]models.ActivityEntry, 0, len(l.entries)+1)
	next = append(next, entry)
	next = append(next, l.entries...)
	l.entries = truncate(next, l.capacity)
	return entry, true
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []models.ActivityEntry {
	return append([]models.ActivityEntry{}, l.entries...)
}

// Filter returns the entries of one category, newest first. An empty
// category returns everything.
func (l *Log) Filter(category models.ActivityCategory) []models.ActivityEntry {
	if category == "" {
		return l.Entries()
	}
	out := make([]models.ActivityEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

func truncate(entries []models.ActivityEntry, capacity int) []models.ActivityEntry {
	if len(entries) > capacity {
		return entries[:capacity]
	}
	return entries
}
