package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"timeboard/internal/models"

	"github.com/google/uuid"
)

// sqliteTimestamp is the layout SQLite compares lexically in occurred_at.
const sqliteTimestamp = "2006-01-02 15:04:05"

const insertEventSQL = `
		INSERT INTO timer_events (id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

// Append inserts a new event, filling EventID and OccurredAt when empty.
func (r *EventSQLite) Append(ctx context.Context, e models.TimerEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var meta *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			meta = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.OccurredAt.Format(sqliteTimestamp),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		meta,
	)
	return err
}

const selectEventsSQL = `SELECT id, occurred_at, type, message, meta FROM timer_events`

// eventWhere builds the WHERE clause for q. Key matches the "key" member
// of the JSON metadata written by snapshot events.
func eventWhere(q EventQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !q.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, q.From.UTC().Format(sqliteTimestamp))
	}
	if !q.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, q.To.UTC().Format(sqliteTimestamp))
	}
	if typ := strings.ToUpper(strings.TrimSpace(q.Type)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}
	if key := strings.TrimSpace(q.Key); key != "" {
		conds = append(conds, "json_extract(meta, '$.key') = ?")
		args = append(args, key)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns the events matching q, oldest first. With a Limit the newest
// matches are selected and then put back in chronological order.
func (r *EventSQLite) List(ctx context.Context, q EventQuery) ([]models.TimerEvent, error) {
	where, args := eventWhere(q)
	query := selectEventsSQL + where
	if q.Limit > 0 {
		query += " ORDER BY occurred_at DESC LIMIT ?"
		args = append(args, q.Limit)
	} else {
		query += " ORDER BY occurred_at ASC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.TimerEvent, 0, 64)
	for rows.Next() {
		var ev models.TimerEvent
		var meta sql.NullString
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &ev.Description, &meta); err != nil {
			return nil, err
		}
		ev.OccurredAt = ev.OccurredAt.UTC()

		if meta.Valid && meta.String != "" {
			var v any
			if err := json.Unmarshal([]byte(meta.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = meta.String
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if q.Limit > 0 {
		slices.Reverse(out)
	}
	return out, nil
}
