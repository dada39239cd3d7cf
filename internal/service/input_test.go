package service

import (
	"context"
	"errors"
	"testing"
)

func newInput(t *testing.T) (*fixture, *InputService) {
	t.Helper()
	f := newFixture(t, testTimerConfig(), false)
	panel := NewPanelService(f.session)
	countdown := NewCountdownService(f.session, f.events, nil, false)
	snapshots := NewSnapshotService(f.session, f.snapshots, f.events, nil, "")
	return f, NewInputService(panel, countdown, snapshots, NewBoardService(f.session), NewMonitoringService(f.session), defaultSnapshotKey)
}

func TestParseInputEvent(t *testing.T) {
	cases := map[string]InputEvent{
		"hour+":       InputHourUp,
		"HOUR-":       InputHourDown,
		"minute_up":   InputMinuteUp,
		"second-down": InputSecondDown,
		" toggle ":    InputToggle,
		"load":        InputLoad,
		"save":        InputSave,
		"restore":     InputRestore,
		"board":       InputBoard,
	}
	for in, want := range cases {
		got, err := ParseInputEvent(in)
		if err != nil || got != want {
			t.Fatalf("ParseInputEvent(%q)=%q,%v want %q", in, got, err, want)
		}
	}
	for _, bad := range []string{"", "hour", "day+", "explode"} {
		if _, err := ParseInputEvent(bad); !errors.Is(err, ErrUnknownInput) {
			t.Fatalf("ParseInputEvent(%q): expected ErrUnknownInput, got %v", bad, err)
		}
	}
}

func TestInput_DispatchScenario(t *testing.T) {
	f, in := newInput(t)
	ctx := context.Background()

	for _, ev := range []InputEvent{InputMinuteUp, InputMinuteUp, InputSecondUp, InputSecondDown, InputHourUp, InputHourDown} {
		if _, err := in.Dispatch(ctx, ev); err != nil {
			t.Fatalf("Dispatch(%s): %v", ev, err)
		}
	}
	st, err := in.Dispatch(ctx, InputLoad)
	if err != nil {
		t.Fatalf("Dispatch(load): %v", err)
	}
	if st.Panel.Display != "00:02:00" || st.State != "ARMED" || st.RemainingMs != 120_000 {
		t.Fatalf("after load: %+v", st)
	}

	st, err = in.Dispatch(ctx, InputToggle)
	if err != nil || st.State != "RUNNING" {
		t.Fatalf("toggle: %+v %v", st, err)
	}

	st, err = in.Dispatch(ctx, InputSave)
	if err != nil || st.BoardVisible {
		t.Fatalf("save should hide board: %+v %v", st, err)
	}
	if _, ok := f.snapshots.data[defaultSnapshotKey]; !ok {
		t.Fatalf("save did not persist")
	}

	st, err = in.Dispatch(ctx, InputBoard)
	if err != nil || !st.BoardVisible {
		t.Fatalf("board toggle: %+v %v", st, err)
	}

	in.Dispatch(ctx, InputSecondUp)
	st, err = in.Dispatch(ctx, InputRestore)
	if err != nil || st.Panel.Display != "00:02:00" {
		t.Fatalf("restore: %+v %v", st, err)
	}
}

func TestInput_RestoreWithoutSnapshot(t *testing.T) {
	_, in := newInput(t)
	if _, err := in.Dispatch(context.Background(), InputRestore); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestInput_UnknownEvent(t *testing.T) {
	_, in := newInput(t)
	if _, err := in.Dispatch(context.Background(), InputEvent("warp")); !errors.Is(err, ErrUnknownInput) {
		t.Fatalf("expected ErrUnknownInput, got %v", err)
	}
}
