package models

type ActivityCategory string

const (
	CategoryTask  ActivityCategory = "task"
	CategoryEvent ActivityCategory = "event"
	CategoryTeam  ActivityCategory = "team"
)

// ActivityEntry is one audit record. The user fields are copied from the
// actor when the entry is written.
type ActivityEntry struct {
	ID         string           `json:"id"`
	UserID     string           `json:"userId"`
	UserName   string           `json:"userName"`
	UserAvatar string           `json:"userAvatar"`
	Action     string           `json:"action"`
	Target     string           `json:"target"`
	Category   ActivityCategory `json:"type"`
	Timestamp  string           `json:"timestamp"`
}
