// Package tui is the terminal front end: keys become input events, hub
// frames trigger redraws.
package tui

import (
	"context"
	"errors"
	"time"

	"timeboard/internal/display"
	"timeboard/internal/logger"
	"timeboard/internal/models"
	"timeboard/internal/service"

	"github.com/gdamore/tcell/v2"
)

const (
	frameBuffer   = 64
	eventBuffer   = 16
	refreshPeriod = 250 * time.Millisecond

	helpLine = "h/H hour  m/M min  s/S sec  enter load  space start/pause  w save  r restore  v board  q quit"
)

var (
	styleBase    = tcell.StyleDefault
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleRunning = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleStopped = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleAlarm   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// UI draws the board on a tcell screen.
type UI struct {
	screen   tcell.Screen
	services *service.Service
	hub      *display.Hub
	log      *logger.Logger

	alarmFor   time.Duration
	alarmUntil time.Time
	status     string
	now        func() time.Time
}

// New builds a UI. hub may be nil; the screen is then refreshed on a timer
// only. alarmFor is how long the countdown flashes after expiring.
func New(screen tcell.Screen, services *service.Service, hub *display.Hub, log *logger.Logger, alarmFor time.Duration) *UI {
	if log == nil {
		log = logger.Nop()
	}
	return &UI{
		screen:   screen,
		services: services,
		hub:      hub,
		log:      log,
		alarmFor: alarmFor,
		now:      time.Now,
	}
}

// Run processes keys and frames until ctx ends or the user quits. The
// caller owns screen Init and Fini.
func (u *UI) Run(ctx context.Context) error {
	var frames <-chan models.DisplayFrame
	if u.hub != nil {
		ch, cancel := u.hub.Subscribe(frameBuffer)
		defer cancel()
		frames = ch
	}

	events := make(chan tcell.Event, eventBuffer)
	quit := make(chan struct{})
	defer close(quit)
	go u.pollEvents(events, quit)

	refresh := time.NewTicker(refreshPeriod)
	defer refresh.Stop()

	u.Render(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				u.HandleKey(ctx, ev)
			case *tcell.EventResize:
				u.screen.Sync()
			}
		case f, ok := <-frames:
			if !ok {
				return nil
			}
			u.HandleFrame(f)
		case <-refresh.C:
		}
		u.Render(ctx)
	}
}

// HandleKey dispatches the event bound to ev and records the outcome in the
// status line.
func (u *UI) HandleKey(ctx context.Context, ev *tcell.EventKey) {
	in, ok := eventForKey(ev)
	if !ok {
		return
	}
	_, err := u.services.Dispatch(ctx, in)
	switch {
	case errors.Is(err, service.ErrSnapshotNotFound):
		u.status = "no saved time"
	case err != nil:
		u.log.Warnw("tui_input_failed", "event", in, "err", err)
		u.status = "error: " + err.Error()
	case in == service.InputSave:
		u.status = "saved"
	case in == service.InputRestore:
		u.status = "restored"
	default:
		u.status = ""
	}
}

// HandleFrame starts the alarm flash on an alarm frame.
func (u *UI) HandleFrame(f models.DisplayFrame) {
	if f.Type == models.FrameAlarm {
		u.alarmUntil = u.now().Add(u.alarmFor)
	}
}

// Render redraws the whole screen from the current state.
func (u *UI) Render(ctx context.Context) {
	s := u.screen
	s.Clear()

	st, err := u.services.GetState(ctx)
	if err != nil {
		u.drawText(0, 0, styleError, "state unavailable: "+err.Error())
		s.Show()
		return
	}

	u.drawText(1, 0, styleLabel, "TIMEBOARD")
	if !st.BoardVisible {
		u.drawText(1, 2, styleLabel, "board hidden (v to show)")
		u.drawText(1, 4, styleLabel, helpLine)
		s.Show()
		return
	}

	u.drawText(1, 2, styleLabel, "panel")
	u.drawText(12, 2, stylePanel, st.Panel.Display)

	countdownStyle := styleStopped
	switch {
	case u.now().Before(u.alarmUntil):
		countdownStyle = styleAlarm
	case st.IsRunning:
		countdownStyle = styleRunning
	}
	u.drawText(1, 3, styleLabel, "countdown")
	u.drawText(12, 3, countdownStyle, st.Display)
	u.drawText(22, 3, styleLabel, st.State)

	u.drawText(1, 5, styleLabel, helpLine)
	if u.status != "" {
		u.drawText(1, 6, styleBase, u.status)
	}
	s.Show()
}

func (u *UI) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

// pollEvents forwards screen events until the screen is finalized or quit
// closes.
func (u *UI) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}
