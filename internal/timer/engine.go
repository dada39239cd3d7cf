package timer

import (
	"math"
	"time"
)

// MaxLoadMillis is the longest duration Load accepts; larger values are
// clamped so remaining never overflows.
const MaxLoadMillis = math.MaxInt64 / int64(time.Millisecond)

// State of the countdown engine.
type State int

const (
	Idle    State = iota // remaining == 0, not running
	Armed                // remaining > 0, not running
	Running              // remaining > 0, running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Armed:
		return "ARMED"
	case Running:
		return "RUNNING"
	default:
		return "UNKNOWN"
	}
}

// DisplaySink receives the displayed triple whenever it changes.
type DisplaySink interface {
	Display(hours, minutes, seconds int)
}

// AlarmSink receives one notification per expiration.
type AlarmSink interface {
	Expired()
}

// DisplayFunc adapts a function to DisplaySink.
type DisplayFunc func(hours, minutes, seconds int)

func (f DisplayFunc) Display(hours, minutes, seconds int) { f(hours, minutes, seconds) }

// AlarmFunc adapts a function to AlarmSink.
type AlarmFunc func()

func (f AlarmFunc) Expired() { f() }

// Engine is the countdown state machine. It never schedules its own timer:
// the host polls Advance with the current time. Not safe for concurrent use.
type Engine struct {
	cfg        Config
	remaining  time.Duration
	running    bool
	lastSample time.Time

	// maxElapsed bounds a single Advance step; zero disables the bound.
	maxElapsed time.Duration

	display DisplaySink
	alarm   AlarmSink

	shown    [3]int
	hasShown bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDisplay sets the display sink.
func WithDisplay(s DisplaySink) EngineOption {
	return func(e *Engine) { e.display = s }
}

// WithAlarm sets the alarm sink.
func WithAlarm(s AlarmSink) EngineOption {
	return func(e *Engine) { e.alarm = s }
}

// WithMaxElapsed caps the time credited by one Advance call, so a host that
// stalls (device sleep, debugger) does not jump straight to zero.
func WithMaxElapsed(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.maxElapsed = d
		}
	}
}

// WithConfig sets the config attached to TimeValues the engine produces.
func WithConfig(cfg Config) EngineOption {
	return func(e *Engine) { e.cfg = cfg }
}

// NewEngine returns an Idle engine with zero remaining.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State derives the lifecycle state from remaining and running.
func (e *Engine) State() State {
	switch {
	case e.remaining <= 0:
		return Idle
	case e.running:
		return Running
	default:
		return Armed
	}
}

// Running reports whether the countdown is active.
func (e *Engine) Running() bool { return e.running }

// Remaining returns the remaining duration.
func (e *Engine) Remaining() time.Duration { return e.remaining }

// RemainingMillis returns the remaining duration floored to milliseconds.
func (e *Engine) RemainingMillis() int64 { return e.remaining.Milliseconds() }

// LastSample returns the last sampling time; zero unless running.
func (e *Engine) LastSample() time.Time { return e.lastSample }

// Load resets remaining to ms and stops counting. ms <= 0 leaves the engine
// Idle; ms above MaxLoadMillis is clamped.
func (e *Engine) Load(ms int64) {
	switch {
	case ms < 0:
		ms = 0
	case ms > MaxLoadMillis:
		ms = MaxLoadMillis
	}
	e.remaining = time.Duration(ms) * time.Millisecond
	e.stop()
	e.notifyDisplay()
}

// LoadFromTimeValue loads a copy of tv's duration.
func (e *Engine) LoadFromTimeValue(tv TimeValue) {
	e.Load(tv.ToDurationMillis())
}

// RemainingAsTimeValue converts the remaining duration to h/m/s.
func (e *Engine) RemainingAsTimeValue() TimeValue {
	return FromDurationMillis(e.RemainingMillis(), e.cfg)
}

// ToggleRunning starts an Armed engine or pauses a Running one. Idle is a
// no-op. It returns the resulting state.
func (e *Engine) ToggleRunning(now time.Time) State {
	switch e.State() {
	case Armed:
		e.running = true
		e.lastSample = now
	case Running:
		e.stop()
	}
	return e.State()
}

// Advance credits the time elapsed since the last sample. It returns true
// on the call that drives remaining to zero; that call is also the only one
// that notifies the alarm sink.
func (e *Engine) Advance(now time.Time) bool {
	if !e.running {
		return false
	}

	elapsed := now.Sub(e.lastSample)
	if elapsed < 0 {
		elapsed = 0
	}
	if e.maxElapsed > 0 && elapsed > e.maxElapsed {
		elapsed = e.maxElapsed
	}

	e.remaining -= elapsed
	if e.remaining < 0 {
		e.remaining = 0
	}
	e.lastSample = now

	expired := e.remaining == 0
	if expired {
		e.stop()
	}
	e.notifyDisplay()

	if expired && e.alarm != nil {
		e.alarm.Expired()
	}
	return expired
}

func (e *Engine) stop() {
	e.running = false
	e.lastSample = time.Time{}
}

// notifyDisplay pushes the triple to the sink if it differs from the last
// one pushed. The first call always paints.
func (e *Engine) notifyDisplay() {
	h, m, s := e.RemainingAsTimeValue().Parts()
	next := [3]int{h, m, s}
	if e.hasShown && next == e.shown {
		return
	}
	e.shown = next
	e.hasShown = true
	if e.display != nil {
		e.display.Display(h, m, s)
	}
}
