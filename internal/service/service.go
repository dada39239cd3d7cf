package service

import (
	"context"
	"time"

	"timeboard/internal/config"
	"timeboard/internal/logger"
	"timeboard/internal/models"
	"timeboard/internal/repository"
	"timeboard/internal/timer"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Panel edits the set-time panel.
type Panel interface {
	Adjust(field Field, dir timer.Direction) models.PanelValue
	SetPanel(hours, minutes, seconds int) models.PanelValue
	SetPanelText(hours, minutes, seconds string) models.PanelValue
	PanelValue() models.PanelValue
}

// Countdown drives the engine lifecycle.
type Countdown interface {
	Load(ctx context.Context, ms int64) models.TimerState
	LoadFromPanel(ctx context.Context) models.TimerState
	Toggle(ctx context.Context) models.TimerState
	// Advance reports whether this call expired the countdown.
	Advance(ctx context.Context, now time.Time) bool
}

// Monitoring exposes read-only state (panel, countdown, board).
type Monitoring interface {
	GetState(ctx context.Context) (models.TimerState, error)
}

// Snapshots saves and restores the panel under a key.
type Snapshots interface {
	SaveSnapshot(ctx context.Context, key string) (SaveResult, error)
	RestoreSnapshot(ctx context.Context, key string) (models.PanelValue, error)
	GetSnapshot(ctx context.Context, key string) (models.Snapshot, error)
}

// Board shows and hides the timer UI.
type Board interface {
	ToggleBoard() bool
	BoardVisible() bool
}

// Input maps discrete input events to operations.
type Input interface {
	Dispatch(ctx context.Context, ev InputEvent) (models.TimerState, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.TimerEvent, error)
}

// Ticker is the frame loop that polls the countdown. Stop via context
// cancellation.
type Ticker interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Panel
	Countdown
	Monitoring
	Snapshots
	Board
	Input
	EventLog
	Ticker
	Authorization

	Session *Session
}

// Deps are the collaborators NewService does not build itself.
type Deps struct {
	Config *config.Config
	Log    *logger.Logger

	// PanelDisplay and CountdownDisplay receive triples on change.
	PanelDisplay     timer.DisplaySink
	CountdownDisplay timer.DisplaySink
	Alarm            timer.AlarmSink
}

// NewService wires the repository layer and the shared session into concrete
// services.
func NewService(repos *repository.Repository, deps Deps) (*Service, error) {
	cfg := deps.Config
	if cfg == nil {
		return nil, errNoConfig
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	session, err := NewSession(cfg.Timer, SessionOptions{
		PanelDisplay:     deps.PanelDisplay,
		CountdownDisplay: deps.CountdownDisplay,
		Alarm:            deps.Alarm,
		StartHidden:      cfg.Board.StartHidden,
	})
	if err != nil {
		return nil, err
	}

	panel := NewPanelService(session)
	countdown := NewCountdownService(session, repos.EventRepo, log, cfg.Timer.AutoloadOnStart)
	snapshots := NewSnapshotService(session, repos.SnapshotRepo, repos.EventRepo, log, cfg.Storage.DefaultKey)
	boardSvc := NewBoardService(session)
	monitoring := NewMonitoringService(session)

	return &Service{
		Panel:         panel,
		Countdown:     countdown,
		Monitoring:    monitoring,
		Snapshots:     snapshots,
		Board:         boardSvc,
		Input:         NewInputService(panel, countdown, snapshots, boardSvc, monitoring, cfg.Storage.DefaultKey),
		EventLog:      NewEventLogService(repos.EventRepo),
		Ticker:        NewTickerService(countdown, log),
		Authorization: NewAuthService(repos.Auth, cfg.Auth),
		Session:       session,
	}, nil
}
