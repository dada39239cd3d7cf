package service

import (
	"fmt"
	"sync"
	"time"

	"timeboard/internal/board"
	"timeboard/internal/config"
	"timeboard/internal/models"
	"timeboard/internal/timer"
)

// SessionOptions are the sinks and start-up flags of a Session.
type SessionOptions struct {
	PanelDisplay     timer.DisplaySink
	CountdownDisplay timer.DisplaySink
	Alarm            timer.AlarmSink
	StartHidden      bool
}

// Session owns the panel value, the countdown engine and the board. The
// timer core is not safe for concurrent use, so every access goes through
// mu: HTTP handlers, the frame loop and terminal input all serialise here.
type Session struct {
	mu sync.Mutex

	cfg    timer.Config
	panel  timer.TimeValue
	engine *timer.Engine
	board  *board.Element

	panelSink  timer.DisplaySink
	painted    [3]int
	hasPainted bool
	updatedAt  time.Time

	now func() time.Time
}

// NewSession builds a session with the panel at the configured initial
// value and the countdown Idle.
func NewSession(cfg config.TimerConfig, opts SessionOptions) (*Session, error) {
	panel, err := timer.New(cfg.InitialHours, cfg.InitialMinutes, cfg.InitialSeconds, cfg.Config)
	if err != nil {
		return nil, fmt.Errorf("initial panel value: %w", err)
	}

	s := &Session{
		cfg:   cfg.Config,
		panel: panel,
		engine: timer.NewEngine(
			timer.WithConfig(cfg.Config),
			timer.WithMaxElapsed(cfg.MaxElapsed),
			timer.WithDisplay(opts.CountdownDisplay),
			timer.WithAlarm(opts.Alarm),
		),
		board:     board.NewTimerBoard(),
		panelSink: opts.PanelDisplay,
		now:       time.Now,
	}
	if opts.StartHidden {
		board.SetActiveRecursive(s.board, false)
	}

	s.updatedAt = s.now().UTC()
	s.paintPanelLocked()
	s.engine.Load(0)
	return s, nil
}

// Config returns the panel arithmetic settings.
func (s *Session) Config() timer.Config { return s.cfg }

// SetClock replaces the clock used for toggles and timestamps.
func (s *Session) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.now = now
	}
}

// State returns a consistent snapshot of the whole session.
func (s *Session) State() models.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) touchLocked() {
	s.updatedAt = s.now().UTC()
}

// paintPanelLocked pushes the panel triple when it differs from the last
// one painted. The first call always paints.
func (s *Session) paintPanelLocked() {
	h, m, sec := s.panel.Parts()
	cur := [3]int{h, m, sec}
	if s.hasPainted && cur == s.painted {
		return
	}
	s.painted, s.hasPainted = cur, true
	if s.panelSink != nil {
		s.panelSink.Display(h, m, sec)
	}
}

func (s *Session) setPanelLocked(tv timer.TimeValue) {
	s.panel = tv
	s.touchLocked()
	s.paintPanelLocked()
}

func (s *Session) stateLocked() models.TimerState {
	tv := s.engine.RemainingAsTimeValue()
	h, m, sec := tv.Parts()
	return models.TimerState{
		State:        s.engine.State().String(),
		RemainingMs:  s.engine.RemainingMillis(),
		Hours:        h,
		Minutes:      m,
		Seconds:      sec,
		Display:      tv.String(),
		IsRunning:    s.engine.Running(),
		Panel:        panelValue(s.panel),
		BoardVisible: s.board.Active(),
		UpdatedAt:    s.updatedAt,
	}
}

func panelValue(tv timer.TimeValue) models.PanelValue {
	h, m, s := tv.Parts()
	return models.PanelValue{Hours: h, Minutes: m, Seconds: s, Display: tv.String()}
}
