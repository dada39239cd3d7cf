package service

import (
	"context"
	"time"

	"timeboard/internal/logger"
	"timeboard/internal/models"
	"timeboard/internal/repository"
	"timeboard/internal/timer"

	"github.com/google/uuid"
)

type CountdownService struct {
	session   *Session
	eventRepo repository.EventRepo
	log       *logger.Logger

	// autoload makes Toggle on an Idle countdown load the panel first.
	autoload bool
}

func NewCountdownService(session *Session, eventRepo repository.EventRepo, log *logger.Logger, autoload bool) *CountdownService {
	if log == nil {
		log = logger.Nop()
	}
	return &CountdownService{session: session, eventRepo: eventRepo, log: log, autoload: autoload}
}

// Load arms the countdown with ms, or leaves it Idle for ms <= 0.
func (c *CountdownService) Load(ctx context.Context, ms int64) models.TimerState {
	s := c.session
	s.mu.Lock()
	s.engine.Load(ms)
	s.touchLocked()
	st := s.stateLocked()
	s.mu.Unlock()

	c.appendEvent(ctx, models.EventLoad, "Countdown loaded "+st.Display, st)
	return st
}

// LoadFromPanel copies the panel value into the countdown.
func (c *CountdownService) LoadFromPanel(ctx context.Context) models.TimerState {
	s := c.session
	s.mu.Lock()
	s.engine.LoadFromTimeValue(s.panel)
	s.touchLocked()
	st := s.stateLocked()
	s.mu.Unlock()

	c.appendEvent(ctx, models.EventLoad, "Countdown loaded from panel "+st.Display, st)
	return st
}

// Toggle starts an Armed countdown or pauses a Running one. An Idle
// countdown stays Idle unless autoload is on, in which case the panel is
// loaded and started in one step.
func (c *CountdownService) Toggle(ctx context.Context) models.TimerState {
	s := c.session
	s.mu.Lock()
	before := s.engine.State()
	loaded := false
	if before == timer.Idle && c.autoload {
		s.engine.LoadFromTimeValue(s.panel)
		loaded = true
	}
	after := s.engine.ToggleRunning(s.now())
	if loaded || after != before {
		s.touchLocked()
	}
	st := s.stateLocked()
	s.mu.Unlock()

	if loaded {
		c.appendEvent(ctx, models.EventLoad, "Countdown loaded from panel "+st.Display, st)
	}
	switch {
	case after == timer.Running && before != timer.Running:
		c.appendEvent(ctx, models.EventStart, "Countdown started at "+st.Display, st)
	case before == timer.Running && after == timer.Armed:
		c.appendEvent(ctx, models.EventPause, "Countdown paused at "+st.Display, st)
	}
	return st
}

// Advance is called once per frame.
func (c *CountdownService) Advance(ctx context.Context, now time.Time) bool {
	s := c.session
	s.mu.Lock()
	expired := s.engine.Advance(now)
	var st models.TimerState
	if expired {
		s.touchLocked()
		st = s.stateLocked()
	}
	s.mu.Unlock()

	if expired {
		c.log.Infow("countdown_expired")
		c.appendEvent(ctx, models.EventExpired, "Countdown reached zero", st)
	}
	return expired
}

// appendEvent records a lifecycle event. The log is best-effort: a failed
// write never fails the operation that caused it.
func (c *CountdownService) appendEvent(ctx context.Context, typ, desc string, st models.TimerState) {
	if c.eventRepo == nil {
		return
	}
	err := c.eventRepo.Append(ctx, models.TimerEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata: map[string]any{
			"state":        st.State,
			"remaining_ms": st.RemainingMs,
		},
	})
	if err != nil {
		c.log.Warnw("timer_event_append_failed", "type", typ, "err", err)
	}
}
