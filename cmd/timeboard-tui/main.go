package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timeboard/internal/app"
	"timeboard/internal/audio"
	"timeboard/internal/config"
	"timeboard/internal/logger"
	"timeboard/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	logPath := flag.String("log", "timeboard-tui.log", "log file; the terminal is taken by the board")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	log := logger.NewWithWriter(cfg.Log.Level, logFile)
	defer func() { _ = log.Sync() }()

	a, err := app.New(cfg, log, audio.Lock{})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	if a.Alarm != nil {
		closeSpeaker, err := audio.Start(a.Alarm)
		if err != nil {
			log.Warnw("speaker unavailable", "err", err)
		}
		defer closeSpeaker()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go a.Services.Ticker.Run(ctx, cfg.Timer.FrameInterval)

	ui := tui.New(screen, a.Services, a.Hub, log, cfg.Alarm.MaxDuration)
	return ui.Run(ctx)
}
