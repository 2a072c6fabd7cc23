package entities

import "time"

// KVEntry is a durable key-value slot. The dashboard only ever writes the
// authentication flag here.
type KVEntry struct {
	Key       string `gorm:"column:slot_key;primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return "kv_entries" }
