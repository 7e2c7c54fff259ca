package models

import "time"

// KVEntry is the row layout used by the SQL-backed key/value stores.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Payload   []byte    `gorm:"not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
