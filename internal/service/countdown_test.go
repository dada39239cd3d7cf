package service

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"timeboard/internal/models"
	"timeboard/internal/timer"
)

func newCountdown(t *testing.T, autoload bool) (*fixture, *CountdownService, *PanelService) {
	t.Helper()
	f := newFixture(t, testTimerConfig(), false)
	return f, NewCountdownService(f.session, f.events, nil, autoload), NewPanelService(f.session)
}

func TestCountdown_LoadArmsAndLogs(t *testing.T) {
	f, c, _ := newCountdown(t, false)

	st := c.Load(context.Background(), 90_500)
	if st.State != "ARMED" || st.RemainingMs != 90_500 || st.Display != "00:01:30" {
		t.Fatalf("unexpected state: %+v", st)
	}
	if f.countOut.last() != (triple{0, 1, 30}) {
		t.Fatalf("countdown sink: %v", f.countOut.last())
	}
	if got := f.events.types(); !reflect.DeepEqual(got, []string{models.EventLoad}) {
		t.Fatalf("events=%v", got)
	}

	if st := c.Load(context.Background(), -5); st.State != "IDLE" || st.RemainingMs != 0 {
		t.Fatalf("non-positive load should be idle: %+v", st)
	}
}

func TestCountdown_LoadOversizedDurationStaysArmed(t *testing.T) {
	_, c, _ := newCountdown(t, false)

	st := c.Load(context.Background(), math.MaxInt64)
	if st.State != "ARMED" || st.RemainingMs != timer.MaxLoadMillis || st.Hours <= 0 {
		t.Fatalf("oversized load: %+v", st)
	}
}

func TestCountdown_LoadFromPanelCopiesValue(t *testing.T) {
	f, c, p := newCountdown(t, false)
	p.SetPanel(1, 2, 3)

	st := c.LoadFromPanel(context.Background())
	if st.RemainingMs != (3600+120+3)*1000 || st.Display != "01:02:03" {
		t.Fatalf("unexpected state: %+v", st)
	}

	// Later panel edits do not leak into the loaded countdown.
	p.SetPanel(5, 0, 0)
	if got := f.session.State(); got.Display != "01:02:03" {
		t.Fatalf("countdown changed with panel: %s", got.Display)
	}
}

func TestCountdown_ToggleStartPauseResume(t *testing.T) {
	f, c, _ := newCountdown(t, false)
	ctx := context.Background()

	c.Load(ctx, 10_000)
	if st := c.Toggle(ctx); st.State != "RUNNING" || !st.IsRunning {
		t.Fatalf("expected running, got %+v", st)
	}

	c.Advance(ctx, t0.Add(3*time.Second))
	if st := c.Toggle(ctx); st.State != "ARMED" || st.RemainingMs != 7_000 {
		t.Fatalf("expected paused at 7s, got %+v", st)
	}

	// Time passing while paused is not credited.
	f.clock.Set(t0.Add(time.Minute))
	c.Advance(ctx, t0.Add(2*time.Minute))
	st := c.Toggle(ctx)
	if st.RemainingMs != 7_000 || st.State != "RUNNING" {
		t.Fatalf("resume: %+v", st)
	}

	want := []string{models.EventLoad, models.EventStart, models.EventPause, models.EventStart}
	if got := f.events.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%v want %v", got, want)
	}
}

func TestCountdown_ToggleIdleIsNoop(t *testing.T) {
	f, c, p := newCountdown(t, false)
	p.SetPanel(0, 1, 0)

	if st := c.Toggle(context.Background()); st.State != "IDLE" || st.RemainingMs != 0 {
		t.Fatalf("idle toggle changed state: %+v", st)
	}
	if len(f.events.types()) != 0 {
		t.Fatalf("idle toggle logged events: %v", f.events.types())
	}
}

func TestCountdown_ToggleIdleAutoloadsPanel(t *testing.T) {
	f, c, p := newCountdown(t, true)
	p.SetPanel(0, 1, 0)

	st := c.Toggle(context.Background())
	if st.State != "RUNNING" || st.RemainingMs != 60_000 {
		t.Fatalf("autoload start: %+v", st)
	}
	want := []string{models.EventLoad, models.EventStart}
	if got := f.events.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("events=%v want %v", got, want)
	}
}

func TestCountdown_AutoloadOfZeroPanelStaysIdle(t *testing.T) {
	_, c, _ := newCountdown(t, true)
	if st := c.Toggle(context.Background()); st.State != "IDLE" {
		t.Fatalf("expected idle, got %+v", st)
	}
}

func TestCountdown_ExpiresOnceAndLogs(t *testing.T) {
	f, c, _ := newCountdown(t, false)
	ctx := context.Background()

	c.Load(ctx, 1_500)
	c.Toggle(ctx)

	if c.Advance(ctx, t0.Add(time.Second)) {
		t.Fatalf("expired too early")
	}
	if !c.Advance(ctx, t0.Add(2*time.Second)) {
		t.Fatalf("expected expiry")
	}
	if c.Advance(ctx, t0.Add(3*time.Second)) {
		t.Fatalf("expired twice")
	}
	if f.countOut.expirations() != 1 {
		t.Fatalf("alarm fired %d times", f.countOut.expirations())
	}
	if f.countOut.last() != (triple{0, 0, 0}) {
		t.Fatalf("display not at zero: %v", f.countOut.last())
	}

	types := f.events.types()
	if types[len(types)-1] != models.EventExpired {
		t.Fatalf("last event=%v", types)
	}
	if st := f.session.State(); st.State != "IDLE" || st.IsRunning {
		t.Fatalf("expected idle after expiry: %+v", st)
	}
}

func TestCountdown_EventRepoFailureIsNotFatal(t *testing.T) {
	f, c, _ := newCountdown(t, false)
	f.events.appendErr = errors.New("db down")

	if st := c.Load(context.Background(), 5_000); st.State != "ARMED" {
		t.Fatalf("load failed with event repo down: %+v", st)
	}
}

func TestCountdown_MaxElapsedBoundsStall(t *testing.T) {
	cfg := testTimerConfig()
	cfg.MaxElapsed = 2 * time.Second
	f := newFixture(t, cfg, false)
	c := NewCountdownService(f.session, f.events, nil, false)
	ctx := context.Background()

	c.Load(ctx, 60_000)
	c.Toggle(ctx)
	c.Advance(ctx, t0.Add(time.Hour))

	if st := f.session.State(); st.RemainingMs != 58_000 {
		t.Fatalf("stall not bounded: %+v", st)
	}
}
