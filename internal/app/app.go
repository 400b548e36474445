package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/urlmap/internal/config"
	"github.com/specialistvlad/urlmap/internal/ctxlog"
	"github.com/specialistvlad/urlmap/internal/registry"
)

// Streams are the process streams used by an App. Logs go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App owns the loaded registry and runs one command against it.
type App struct {
	streams  Streams
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
}

// NewApp loads every configured path and builds the registry. Configuration
// problems (unreadable files, duplicate or malformed namespaces) are returned
// here, before any command runs.
func NewApp(streams Streams, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, streams.Err)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "definitions", len(model.Namespaces))

	reg, err := registry.FromModel(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("invalid namespace table: %w", err)
	}
	if reg.Len() == 0 {
		logger.Warn("No namespaces were loaded.", "paths", appConfig.ConfigPaths)
	}
	logger.Info("Registry loaded.", "namespaces", reg.Len())

	return &App{
		streams:  streams,
		logger:   logger,
		config:   appConfig,
		registry: reg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
