package models

import "time"

// Snapshot is one durable key/value row. Value holds the full JSON document
// for the key and is replaced on every write.
type Snapshot struct {
	Key       string    `gorm:"column:snapshot_key;primarykey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
