// Command server runs the SNP analysis HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/snpify/snpify-server/internal/analysis"
	"github.com/snpify/snpify-server/internal/api"
	"github.com/snpify/snpify-server/internal/classify"
	"github.com/snpify/snpify-server/internal/config"
	"github.com/snpify/snpify-server/internal/reference"
	"github.com/snpify/snpify-server/internal/repository"
)

func main() {
	manager, err := config.NewManager()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := manager.Validate(); err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	cfg := manager.GetConfig()

	logger := newLogger(cfg.Logging)
	logger.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"port":        cfg.Server.Port,
	}).Info("Starting SNP analysis server")

	store, err := analysis.NewStore(cfg.Analysis.ResultCacheSize)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create result store")
	}

	registry := reference.NewRegistry()
	classifier := classify.New(registry, logger)

	var history analysis.History
	var browser api.HistoryBrowser
	if cfg.History.Enabled {
		historyStore, err := repository.NewHistoryStore(cfg.History.Path, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to open history store")
		}
		defer historyStore.Close()
		history = historyStore
		browser = historyStore
		logger.WithField("path", cfg.History.Path).Info("Analysis history enabled")
	}

	svc := analysis.NewService(store, registry, classifier, history, cfg.Analysis.Workers, logger)
	server := api.NewServer(cfg, svc, browser, logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.WithField("signal", sig.String()).Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
	logger.Info("Server stopped")
}

func newLogger(cfg config.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Output == "stderr" {
		logger.SetOutput(os.Stderr)
	}
	return logger
}
