package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"nutritrack/config"
	"nutritrack/routes"
	"nutritrack/utils"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	if err := config.InitDB(cfg); err != nil {
		slog.Error("database init failed", "err", err)
		os.Exit(1)
	}

	if err := utils.InitMailer(context.Background()); err != nil {
		// Reset emails degrade to log lines; everything else still works.
		slog.Warn("mailer init failed, password reset emails disabled", "err", err)
	}

	r := routes.SetupRouter(cfg)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	slog.Info("starting server", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
