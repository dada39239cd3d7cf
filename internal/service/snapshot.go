package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timeboard/internal/board"
	"timeboard/internal/logger"
	"timeboard/internal/models"
	"timeboard/internal/repository"

	"github.com/google/uuid"
)

const defaultSnapshotKey = "timerSaved"

type SnapshotService struct {
	session    *Session
	repo       repository.SnapshotRepo
	eventRepo  repository.EventRepo
	log        *logger.Logger
	defaultKey string
}

func NewSnapshotService(session *Session, repo repository.SnapshotRepo, eventRepo repository.EventRepo, log *logger.Logger, defaultKey string) *SnapshotService {
	if log == nil {
		log = logger.Nop()
	}
	if strings.TrimSpace(defaultKey) == "" {
		defaultKey = defaultSnapshotKey
	}
	return &SnapshotService{
		session:    session,
		repo:       repo,
		eventRepo:  eventRepo,
		log:        log,
		defaultKey: defaultKey,
	}
}

func (s *SnapshotService) key(k string) string {
	if k = strings.TrimSpace(k); k != "" {
		return k
	}
	return s.defaultKey
}

// SaveSnapshot stores the panel triple under key and hides the board. A
// storage failure is logged and reported through Persisted; the board is
// hidden either way.
func (s *SnapshotService) SaveSnapshot(ctx context.Context, key string) (SaveResult, error) {
	key = s.key(key)

	sess := s.session
	sess.mu.Lock()
	h, m, sec := sess.panel.Parts()
	board.SetActiveRecursive(sess.board, false)
	sess.touchLocked()
	snap := models.Snapshot{Key: key, Hours: h, Minutes: m, Seconds: sec, SavedAt: sess.now().UTC()}
	sess.mu.Unlock()

	res := SaveResult{Snapshot: snap}
	if s.repo == nil {
		return res, nil
	}
	if err := s.repo.Save(ctx, snap); err != nil {
		s.log.Warnw("snapshot_save_failed", "key", key, "err", err)
		return res, nil
	}
	res.Persisted = true
	s.appendEvent(ctx, models.EventSave, fmt.Sprintf("Panel saved as %q", key), snap)
	return res, nil
}

// RestoreSnapshot copies a stored snapshot into the panel. Stored fields are
// folded through the current config, so a snapshot taken under a larger
// MaxHours still yields a valid panel.
func (s *SnapshotService) RestoreSnapshot(ctx context.Context, key string) (models.PanelValue, error) {
	snap, err := s.GetSnapshot(ctx, key)
	if err != nil {
		return models.PanelValue{}, err
	}

	sess := s.session
	sess.mu.Lock()
	sess.setPanelLocked(sess.cfg.Normalize(snap.Hours, snap.Minutes, snap.Seconds))
	pv := panelValue(sess.panel)
	sess.mu.Unlock()

	s.appendEvent(ctx, models.EventRestore, fmt.Sprintf("Panel restored from %q", snap.Key), snap)
	return pv, nil
}

// GetSnapshot returns the stored snapshot or ErrSnapshotNotFound.
func (s *SnapshotService) GetSnapshot(ctx context.Context, key string) (models.Snapshot, error) {
	key = s.key(key)
	if s.repo == nil {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	snap, found, err := s.repo.Load(ctx, key)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("load snapshot %q: %w", key, err)
	}
	if !found {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	return snap, nil
}

func (s *SnapshotService) appendEvent(ctx context.Context, typ, desc string, snap models.Snapshot) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.Append(ctx, models.TimerEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata: map[string]any{
			"key":     snap.Key,
			"hours":   snap.Hours,
			"minutes": snap.Minutes,
			"seconds": snap.Seconds,
		},
	})
	if err != nil {
		s.log.Warnw("timer_event_append_failed", "type", typ, "err", err)
	}
}
