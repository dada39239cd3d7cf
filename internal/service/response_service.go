package service

import (
	"errors"
	"time"

	"timeboard/internal/models"
)

// Domain errors surfaced to handlers.
var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrUnknownInput     = errors.New("unknown input event")
	ErrUnknownField     = errors.New("unknown panel field")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownEventType = errors.New("unknown event type")
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidLimit     = errors.New("limit must not be negative")

	errNoConfig = errors.New("service: config is required")
)

// LogFilter selects timer history.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "LOAD", "START", "PAUSE", "EXPIRED", "SAVE", "RESTORE"
	Key   string    // snapshot key; only SAVE and RESTORE events carry one
	Limit int       // most recent N; zero means all
}

// SaveResult reports a snapshot save. Persisted is false when storage
// failed; the panel value and board state are still returned.
type SaveResult struct {
	Snapshot     models.Snapshot `json:"snapshot"`
	Persisted    bool            `json:"persisted"`
	BoardVisible bool            `json:"board_visible"`
}
