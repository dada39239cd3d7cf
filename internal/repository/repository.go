package repository

import (
	"context"
	"database/sql"
	"time"

	"timeboard/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// SnapshotRepo is durable key-value storage for panel snapshots.
type SnapshotRepo interface {
	Save(ctx context.Context, s models.Snapshot) error
	// Load reports found=false with a nil error when key has no snapshot.
	Load(ctx context.Context, key string) (s models.Snapshot, found bool, err error)
}

// EventQuery selects timer events. Zero values leave a field unfiltered.
type EventQuery struct {
	From time.Time // inclusive
	To   time.Time // inclusive
	Type string    // one of models.EventTypes
	Key  string    // snapshot key recorded by SAVE and RESTORE
	// Limit keeps only the most recent Limit matches.
	Limit int
}

type EventRepo interface {
	Append(ctx context.Context, e models.TimerEvent) error
	// List returns matches oldest first.
	List(ctx context.Context, q EventQuery) ([]models.TimerEvent, error)
}

type Repository struct {
	SnapshotRepo SnapshotRepo
	EventRepo    EventRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SnapshotRepo: NewSnapshotSQLite(db),
		EventRepo:    NewEventSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
