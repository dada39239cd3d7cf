package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"timeboard/internal/models"
)

var errEmptyKey = errors.New("snapshot key is empty")

type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

const (
	upsertSnapshotSQL = `
		INSERT INTO timer_snapshots (key, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload=excluded.payload,
			saved_at=excluded.saved_at
	`

	selectSnapshotSQL = `
		SELECT key, payload, saved_at
		FROM timer_snapshots WHERE key=?
	`
)

// snapshotPayload is the stored value: {"hours":h,"minutes":m,"seconds":s}.
type snapshotPayload struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func marshalPayload(s models.Snapshot) (string, error) {
	b, err := json.Marshal(snapshotPayload{Hours: s.Hours, Minutes: s.Minutes, Seconds: s.Seconds})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalPayload(raw string, s *models.Snapshot) error {
	var p snapshotPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return err
	}
	s.Hours, s.Minutes, s.Seconds = p.Hours, p.Minutes, p.Seconds
	return nil
}

// Save upserts the snapshot under its key. SavedAt is stored in UTC and set
// to now when zero.
func (r *SnapshotSQLite) Save(ctx context.Context, s models.Snapshot) error {
	key := strings.TrimSpace(s.Key)
	if key == "" {
		return errEmptyKey
	}
	payload, err := marshalPayload(s)
	if err != nil {
		return err
	}

	ts := s.SavedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	if _, err := r.db.ExecContext(ctx, upsertSnapshotSQL, key, payload, ts); err != nil {
		return fmt.Errorf("save snapshot %q: %w", key, err)
	}
	return nil
}

// Load fetches the snapshot stored under key.
func (r *SnapshotSQLite) Load(ctx context.Context, key string) (models.Snapshot, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.Snapshot{}, false, errEmptyKey
	}

	var (
		s       models.Snapshot
		payload string
	)
	err := r.db.QueryRowContext(ctx, selectSnapshotSQL, key).Scan(&s.Key, &payload, &s.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, false, nil
		}
		return models.Snapshot{}, false, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	if err := unmarshalPayload(payload, &s); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("decode snapshot %q: %w", key, err)
	}
	s.SavedAt = s.SavedAt.UTC()
	return s, true, nil
}
