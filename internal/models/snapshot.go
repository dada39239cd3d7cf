package models

import "time"

// Snapshot is a saved hours/minutes/seconds triple under a caller key.
type Snapshot struct {
	Key     string    `json:"key"`
	Hours   int       `json:"hours"`
	Minutes int       `json:"minutes"`
	Seconds int       `json:"seconds"`
	SavedAt time.Time `json:"saved_at"`
}
