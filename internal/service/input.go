package service

import (
	"context"
	"strings"

	"timeboard/internal/models"
	"timeboard/internal/timer"
)

// InputEvent is a discrete control event from any front end.
type InputEvent string

const (
	InputHourUp     InputEvent = "hour+"
	InputHourDown   InputEvent = "hour-"
	InputMinuteUp   InputEvent = "minute+"
	InputMinuteDown InputEvent = "minute-"
	InputSecondUp   InputEvent = "second+"
	InputSecondDown InputEvent = "second-"
	InputToggle     InputEvent = "toggle"
	InputLoad       InputEvent = "load"
	InputSave       InputEvent = "save"
	InputRestore    InputEvent = "restore"
	InputBoard      InputEvent = "board"
)

var inputEvents = map[InputEvent]struct{}{
	InputHourUp: {}, InputHourDown: {},
	InputMinuteUp: {}, InputMinuteDown: {},
	InputSecondUp: {}, InputSecondDown: {},
	InputToggle: {}, InputLoad: {},
	InputSave: {}, InputRestore: {}, InputBoard: {},
}

// ParseInputEvent accepts the canonical names case-insensitively; "up" and
// "down" suffixes are read as + and -.
func ParseInputEvent(name string) (InputEvent, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.HasSuffix(n, "_up"), strings.HasSuffix(n, "-up"):
		n = n[:len(n)-3] + "+"
	case strings.HasSuffix(n, "_down"), strings.HasSuffix(n, "-down"):
		n = n[:len(n)-5] + "-"
	}
	ev := InputEvent(n)
	if _, ok := inputEvents[ev]; !ok {
		return "", ErrUnknownInput
	}
	return ev, nil
}

type InputService struct {
	panel      Panel
	countdown  Countdown
	snapshots  Snapshots
	board      Board
	monitoring Monitoring
	defaultKey string
}

func NewInputService(panel Panel, countdown Countdown, snapshots Snapshots, board Board, monitoring Monitoring, defaultKey string) *InputService {
	return &InputService{
		panel:      panel,
		countdown:  countdown,
		snapshots:  snapshots,
		board:      board,
		monitoring: monitoring,
		defaultKey: defaultKey,
	}
}

// Dispatch applies ev and returns the resulting state. Save and restore use
// the default snapshot key; a missing snapshot on restore is reported.
func (in *InputService) Dispatch(ctx context.Context, ev InputEvent) (models.TimerState, error) {
	switch ev {
	case InputHourUp:
		in.panel.Adjust(FieldHour, timer.Increment)
	case InputHourDown:
		in.panel.Adjust(FieldHour, timer.Decrement)
	case InputMinuteUp:
		in.panel.Adjust(FieldMinute, timer.Increment)
	case InputMinuteDown:
		in.panel.Adjust(FieldMinute, timer.Decrement)
	case InputSecondUp:
		in.panel.Adjust(FieldSecond, timer.Increment)
	case InputSecondDown:
		in.panel.Adjust(FieldSecond, timer.Decrement)
	case InputToggle:
		return in.countdown.Toggle(ctx), nil
	case InputLoad:
		return in.countdown.LoadFromPanel(ctx), nil
	case InputSave:
		if _, err := in.snapshots.SaveSnapshot(ctx, in.defaultKey); err != nil {
			return models.TimerState{}, err
		}
	case InputRestore:
		if _, err := in.snapshots.RestoreSnapshot(ctx, in.defaultKey); err != nil {
			return models.TimerState{}, err
		}
	case InputBoard:
		in.board.ToggleBoard()
	default:
		return models.TimerState{}, ErrUnknownInput
	}
	return in.monitoring.GetState(ctx)
}
