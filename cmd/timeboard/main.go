package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"timeboard/internal/app"
	"timeboard/internal/audio"
	"timeboard/internal/config"
	"timeboard/internal/handlers"
	"timeboard/internal/logger"
	"timeboard/internal/server"
)

// @title        Timeboard API
// @version      1.0
// @description  Countdown board: set-time panel, countdown engine, snapshots and display stream.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	// load config.yml
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)

	// wire dependencies
	a, err := app.New(cfg, log, audio.Lock{})
	if err != nil {
		log.Fatalw("failed to init app", "err", err)
	}
	defer func() {
		if cerr := a.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	if a.Alarm != nil {
		closeSpeaker, err := audio.Start(a.Alarm)
		if err != nil {
			// alarm frames still reach display clients
			log.Warnw("speaker unavailable", "err", err)
		}
		defer closeSpeaker()
	}

	apiHandler := handlers.NewHandler(a.Services, a.Hub, log)
	apiHandler.AllowOrigins(cfg.Server.AllowedOrigins...)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// start frame loop (via composed service)
	go a.Services.Ticker.Run(ctx, cfg.Timer.FrameInterval)

	// start HTTP server
	srv := server.New(cfg.Server)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, cfg.Server, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("http_listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, cfg config.ServerConfig, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
