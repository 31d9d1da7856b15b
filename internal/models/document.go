package models

import "time"

// Document is one row of the key-value documents table backing the storage
// layer. Each logical dataset (agenda items, categories, relationships,
// security settings) lives under a fixed key as a JSON blob, mirroring the
// on-device storage layout the persisted schema comes from.
type Document struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
