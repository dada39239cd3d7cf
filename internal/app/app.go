// Package app builds the object graph shared by the HTTP and terminal front ends.
package app

import (
	"database/sql"
	"fmt"
	"sync"

	"timeboard/internal/alarm"
	"timeboard/internal/config"
	"timeboard/internal/display"
	"timeboard/internal/logger"
	"timeboard/internal/models"
	"timeboard/internal/repository"
	"timeboard/internal/repository/db"
	"timeboard/internal/service"
)

// App owns the database handle and everything wired on top of it.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	DB       *sql.DB
	Hub      *display.Hub
	Alarm    *alarm.Alarm // nil when alarm.enabled is false
	Services *service.Service
}

// New opens the database and wires repositories, display hub, alarm and
// services. audioLock guards the alarm mixer against the audio goroutine;
// nil is fine when nothing plays the mixer.
func New(cfg *config.Config, log *logger.Logger, audioLock sync.Locker) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	conn, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("init sqlite: %w", err)
	}

	a := &App{Config: cfg, Log: log, DB: conn, Hub: display.NewHub()}

	alarms := display.Alarms{a.Hub.AlarmSink()}
	if cfg.Alarm.Enabled {
		a.Alarm, err = alarm.New(alarm.Options{
			SampleRate:  alarm.DefaultSampleRate,
			MaxDuration: cfg.Alarm.MaxDuration,
			FrequencyHz: cfg.Alarm.FrequencyHz,
			Volume:      cfg.Alarm.Volume,
			SoundFile:   cfg.Alarm.SoundFile,
			Locker:      audioLock,
		})
		if err != nil {
			_ = conn.Close()
			return nil, err
		}
		alarms = append(alarms, a.Alarm)
	}

	a.Services, err = service.NewService(repository.NewRepository(conn), service.Deps{
		Config:           cfg,
		Log:              log,
		PanelDisplay:     a.Hub.Sink(models.SourcePanel),
		CountdownDisplay: a.Hub.Sink(models.SourceCountdown),
		Alarm:            alarms,
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Infow("app_ready",
		"db", cfg.DB.Path,
		"max_hours", cfg.Timer.MaxHours,
		"wrap", cfg.Timer.Wrap,
		"alarm", cfg.Alarm.Enabled,
	)
	return a, nil
}

// Close silences the alarm and closes the database.
func (a *App) Close() error {
	if a.Alarm != nil {
		a.Alarm.Stop()
	}
	return a.DB.Close()
}
