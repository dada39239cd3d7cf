package timer

import (
	"math"
	"testing"
	"time"
)

// recordingSink captures display and alarm notifications.
type recordingSink struct {
	frames [][3]int
	alarms int
}

func (r *recordingSink) Display(h, m, s int) { r.frames = append(r.frames, [3]int{h, m, s}) }
func (r *recordingSink) Expired()            { r.alarms++ }

func newRecordedEngine(opts ...EngineOption) (*Engine, *recordingSink) {
	rec := &recordingSink{}
	opts = append([]EngineOption{WithDisplay(rec), WithAlarm(rec)}, opts...)
	return NewEngine(opts...), rec
}

var t0 = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func TestEngine_StartsIdle(t *testing.T) {
	e := NewEngine()
	if e.State() != Idle || e.Running() || e.Remaining() != 0 {
		t.Fatalf("unexpected initial engine: state=%s remaining=%v", e.State(), e.Remaining())
	}
}

func TestEngine_LoadZeroThenToggleIsNoop(t *testing.T) {
	e, _ := newRecordedEngine()
	e.Load(0)
	if e.State() != Idle {
		t.Fatalf("expected IDLE, got %s", e.State())
	}
	if got := e.ToggleRunning(t0); got != Idle {
		t.Fatalf("toggle from IDLE returned %s", got)
	}
	if e.Running() || !e.LastSample().IsZero() {
		t.Fatalf("toggle from IDLE must not start or set a sample time")
	}
}

func TestEngine_LoadNegativeIsIdle(t *testing.T) {
	e := NewEngine()
	e.Load(-500)
	if e.State() != Idle || e.Remaining() != 0 {
		t.Fatalf("expected IDLE with zero remaining, got %s %v", e.State(), e.Remaining())
	}
}

func TestEngine_LoadHugeDurationIsClamped(t *testing.T) {
	for _, ms := range []int64{MaxLoadMillis, MaxLoadMillis + 1, math.MaxInt64 / 1000, math.MaxInt64} {
		e := NewEngine()
		e.Load(ms)
		if e.Remaining() <= 0 || e.State() != Armed {
			t.Fatalf("Load(%d): remaining=%v state=%s", ms, e.Remaining(), e.State())
		}
		if e.RemainingMillis() > MaxLoadMillis {
			t.Fatalf("Load(%d): remaining %dms above cap", ms, e.RemainingMillis())
		}
		if tv := e.RemainingAsTimeValue(); tv.Hours() <= 0 {
			t.Fatalf("Load(%d): display hours=%d", ms, tv.Hours())
		}

		e.ToggleRunning(t0)
		e.Advance(t0.Add(time.Second))
		if e.Remaining() <= 0 || e.State() != Running {
			t.Fatalf("Load(%d) then advance: remaining=%v state=%s", ms, e.Remaining(), e.State())
		}
	}
}

func TestEngine_LoadToggleAdvanceScenario(t *testing.T) {
	e, rec := newRecordedEngine()

	e.Load(185000)
	if e.State() != Armed {
		t.Fatalf("expected ARMED, got %s", e.State())
	}
	assertParts(t, e.RemainingAsTimeValue(), 0, 3, 5)

	if got := e.ToggleRunning(t0); got != Running {
		t.Fatalf("expected RUNNING, got %s", got)
	}
	if !e.LastSample().Equal(t0) {
		t.Fatalf("sample time not recorded")
	}

	if expired := e.Advance(t0.Add(5 * time.Second)); expired {
		t.Fatalf("unexpected expiration")
	}
	if e.RemainingMillis() != 180000 {
		t.Fatalf("remaining=%d, want 180000", e.RemainingMillis())
	}
	assertParts(t, e.RemainingAsTimeValue(), 0, 3, 0)
	if rec.alarms != 0 {
		t.Fatalf("alarm fired early")
	}
	last := rec.frames[len(rec.frames)-1]
	if last != [3]int{0, 3, 0} {
		t.Fatalf("last display frame %v", last)
	}
}

func TestEngine_PauseDiscardsSampleAndFreezesRemaining(t *testing.T) {
	e := NewEngine()
	e.Load(10000)
	e.ToggleRunning(t0)
	e.Advance(t0.Add(2 * time.Second))

	if got := e.ToggleRunning(t0.Add(3 * time.Second)); got != Armed {
		t.Fatalf("expected ARMED after pause, got %s", got)
	}
	if !e.LastSample().IsZero() {
		t.Fatalf("pause must discard the sample time")
	}

	for i := 0; i < 10; i++ {
		e.Advance(t0.Add(time.Duration(10+i) * time.Second))
	}
	if e.RemainingMillis() != 8000 {
		t.Fatalf("remaining changed while paused: %d", e.RemainingMillis())
	}

	// Resume: elapsed counts from the resume time, not the pause time.
	resume := t0.Add(time.Minute)
	e.ToggleRunning(resume)
	e.Advance(resume.Add(time.Second))
	if e.RemainingMillis() != 7000 {
		t.Fatalf("remaining=%d, want 7000", e.RemainingMillis())
	}
}

func TestEngine_AdvanceWhileNotRunningNeverChangesRemaining(t *testing.T) {
	e := NewEngine()
	e.Load(4200)
	for i := 0; i < 100; i++ {
		if e.Advance(t0.Add(time.Duration(i) * time.Hour)) {
			t.Fatalf("expired while not running")
		}
	}
	if e.RemainingMillis() != 4200 {
		t.Fatalf("remaining=%d", e.RemainingMillis())
	}
}

func TestEngine_ExpirationFiresExactlyOnce(t *testing.T) {
	e, rec := newRecordedEngine()
	e.Load(1500)
	e.ToggleRunning(t0)

	if expired := e.Advance(t0.Add(1000 * time.Millisecond)); expired {
		t.Fatalf("expired too early")
	}
	if expired := e.Advance(t0.Add(2000 * time.Millisecond)); !expired {
		t.Fatalf("expected expiration")
	}
	if e.State() != Idle || e.Running() || e.Remaining() != 0 {
		t.Fatalf("expiration must stop the engine: state=%s", e.State())
	}
	if expired := e.Advance(t0.Add(2000 * time.Millisecond)); expired {
		t.Fatalf("expiration re-raised")
	}
	e.Advance(t0.Add(9 * time.Second))
	if rec.alarms != 1 {
		t.Fatalf("alarms=%d, want 1", rec.alarms)
	}
}

func TestEngine_ExpiresOnOvershoot(t *testing.T) {
	e, rec := newRecordedEngine()
	e.Load(1500)
	e.ToggleRunning(t0)
	if !e.Advance(t0.Add(time.Hour)) {
		t.Fatalf("expected expiration")
	}
	if e.Remaining() != 0 || rec.alarms != 1 {
		t.Fatalf("remaining=%v alarms=%d", e.Remaining(), rec.alarms)
	}

	// Reload and expire again: a new crossing raises a new alarm.
	e.Load(1000)
	e.ToggleRunning(t0)
	e.Advance(t0.Add(time.Second))
	if rec.alarms != 2 {
		t.Fatalf("alarms=%d, want 2", rec.alarms)
	}
}

func TestEngine_NonMonotonicClockClampsElapsed(t *testing.T) {
	e := NewEngine()
	e.Load(5000)
	e.ToggleRunning(t0)
	e.Advance(t0.Add(-3 * time.Second))
	if e.RemainingMillis() != 5000 {
		t.Fatalf("backwards clock changed remaining: %d", e.RemainingMillis())
	}
	e.Advance(t0.Add(-2 * time.Second))
	if e.RemainingMillis() != 4000 {
		t.Fatalf("remaining=%d, want 4000", e.RemainingMillis())
	}
}

func TestEngine_MaxElapsedBoundsStall(t *testing.T) {
	e, rec := newRecordedEngine(WithMaxElapsed(2 * time.Second))
	e.Load(60000)
	e.ToggleRunning(t0)
	e.Advance(t0.Add(10 * time.Minute))
	if e.RemainingMillis() != 58000 {
		t.Fatalf("remaining=%d, want 58000", e.RemainingMillis())
	}
	if rec.alarms != 0 {
		t.Fatalf("stall must not expire the countdown")
	}
}

func TestEngine_DisplayOnlyOnChange(t *testing.T) {
	e, rec := newRecordedEngine()
	e.Load(3000)
	if len(rec.frames) != 1 || rec.frames[0] != [3]int{0, 0, 3} {
		t.Fatalf("load frames: %v", rec.frames)
	}

	e.ToggleRunning(t0)
	for ms := 100; ms < 1000; ms += 100 {
		e.Advance(t0.Add(time.Duration(ms) * time.Millisecond))
	}
	// 2.1s remaining still shows 00:00:02 after the first sub-second step.
	if len(rec.frames) != 2 || rec.frames[1] != [3]int{0, 0, 2} {
		t.Fatalf("frames after sub-second steps: %v", rec.frames)
	}

	e.Load(3000)
	if len(rec.frames) != 3 {
		t.Fatalf("reload to a new value should repaint: %v", rec.frames)
	}
	e.Load(3000)
	if len(rec.frames) != 3 {
		t.Fatalf("reload to the same value must not repaint: %v", rec.frames)
	}
}

func TestEngine_FirstLoadAlwaysPaints(t *testing.T) {
	e, rec := newRecordedEngine()
	e.Load(0)
	if len(rec.frames) != 1 || rec.frames[0] != [3]int{0, 0, 0} {
		t.Fatalf("frames=%v", rec.frames)
	}
}

func TestEngine_MissingSinksAreSkipped(t *testing.T) {
	e := NewEngine()
	e.Load(1000)
	e.ToggleRunning(t0)
	if !e.Advance(t0.Add(time.Second)) {
		t.Fatalf("expected expiration without sinks")
	}
}

func TestEngine_LoadFromTimeValueCopies(t *testing.T) {
	cfg := DefaultConfig()
	panel := mustNew(t, 0, 1, 0, cfg)

	e := NewEngine(WithConfig(cfg))
	e.LoadFromTimeValue(panel)
	e.ToggleRunning(t0)
	e.Advance(t0.Add(30 * time.Second))

	assertParts(t, panel, 0, 1, 0)
	assertParts(t, e.RemainingAsTimeValue(), 0, 0, 30)
}

func TestEngine_LoadStopsRunning(t *testing.T) {
	e := NewEngine()
	e.Load(5000)
	e.ToggleRunning(t0)
	e.Load(7000)
	if e.Running() || e.State() != Armed {
		t.Fatalf("load must stop counting: state=%s", e.State())
	}
}

func TestState_String(t *testing.T) {
	cases := map[State]string{Idle: "IDLE", Armed: "ARMED", Running: "RUNNING", State(9): "UNKNOWN"}
	for s, want := range cases {
		if s.String() != want {
			t.Fatalf("%d.String()=%q", s, s.String())
		}
	}
}

func TestFuncAdapters(t *testing.T) {
	var got [3]int
	var fired bool
	e := NewEngine(
		WithDisplay(DisplayFunc(func(h, m, s int) { got = [3]int{h, m, s} })),
		WithAlarm(AlarmFunc(func() { fired = true })),
	)
	e.Load(61000)
	if got != [3]int{0, 1, 1} {
		t.Fatalf("display adapter got %v", got)
	}
	e.ToggleRunning(t0)
	e.Advance(t0.Add(2 * time.Minute))
	if !fired {
		t.Fatalf("alarm adapter not called")
	}
}
