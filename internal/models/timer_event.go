package models

import "time"

// Event types written to the timer log.
const (
	EventLoad    = "LOAD"
	EventStart   = "START"
	EventPause   = "PAUSE"
	EventExpired = "EXPIRED"
	EventSave    = "SAVE"
	EventRestore = "RESTORE"
)

// EventTypes lists every type the log accepts, in lifecycle order.
var EventTypes = []string{EventLoad, EventStart, EventPause, EventExpired, EventSave, EventRestore}

// IsEventType reports whether typ is one of EventTypes. It is case-sensitive.
func IsEventType(typ string) bool {
	for _, t := range EventTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// TimerEvent is a single log entry.
type TimerEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // LOAD | START | PAUSE | EXPIRED | SAVE | RESTORE
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
