package wire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mithrel/gemchat/internal/answer"
	"github.com/mithrel/gemchat/internal/config"
	"github.com/mithrel/gemchat/internal/genai"
	"github.com/mithrel/gemchat/internal/session"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg       config.Config
	Log       *slog.Logger
	Client    *genai.Client
	Responder *session.Responder
	Renderer  answer.Renderer

	logFile io.Closer
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, cfg config.Config) (*App, error) {
	logger, logFile, err := NewLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	render, ok := answer.ParseRenderer(cfg.Renderer)
	if !ok {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
	client := genai.NewClient(cfg.Endpoint)
	resp := session.NewResponder(session.New(), client, logger)
	logger.DebugContext(ctx, "app ready", "renderer", cfg.Renderer, "output", cfg.Output)
	return &App{
		Cfg:       cfg,
		Log:       logger,
		Client:    client,
		Responder: resp,
		Renderer:  render,
		logFile:   logFile,
	}, nil
}

// Close releases the HTTP client and the log file.
func (a *App) Close() error {
	var errs []error
	if a.Client != nil {
		errs = append(errs, a.Client.Close())
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}

// NewLogger returns a text logger writing to path at level. A path of "-"
// logs to stderr and returns a nil closer.
func NewLogger(path, level string) (*slog.Logger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if path == "-" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil, nil
	}
	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}
