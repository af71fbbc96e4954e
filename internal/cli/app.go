// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-msg-board/internal/app"
	"github.com/MKhiriev/go-msg-board/internal/config"
	"github.com/MKhiriev/go-msg-board/internal/crypto"
	"github.com/MKhiriev/go-msg-board/internal/handler"
	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/internal/service"
	"github.com/MKhiriev/go-msg-board/internal/store"
	"github.com/MKhiriev/go-msg-board/internal/validators"
)

// App is one invocation of a tool: its configuration, its logger and the
// writer that receives outcome lines.
type App struct {
	Config *config.StructuredConfig
	logger *logger.Logger
	out    io.Writer
}

// NewApp loads the configuration (JSON file at configPath when non-empty)
// and builds an invocation-scoped logger tagged with role.
func NewApp(role, configPath string, out io.Writer) (*App, error) {
	log := logger.NewLogger(role).WithInvocationID(newInvocationID())

	cfg, err := config.GetStructuredConfig(configPath)
	if err != nil {
		log.Error().Err(err).Msg("error loading config")
		fmt.Fprintln(out, app.MsgConfigError)
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		fmt.Fprintln(out, app.MsgConfigError)
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return &App{Config: cfg, logger: log, out: out}, nil
}

// Logger returns the invocation logger.
func (a *App) Logger() *logger.Logger {
	return a.logger
}

// Out returns the writer outcome lines go to.
func (a *App) Out() io.Writer {
	return a.out
}

// Context derives the invocation context from parent. It carries the logger,
// is cancelled on SIGINT, SIGTERM or SIGQUIT and, when a query timeout is
// configured, expires after it.
func (a *App) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(
		a.logger.WithContext(parent),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)

	if a.Config.Storage.DB.QueryTimeout <= 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, a.Config.Storage.DB.QueryTimeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// Connect opens the configured database. A failure is reported to the user
// and returned wrapped in [ErrConnection].
func (a *App) Connect(ctx context.Context) (*store.DB, error) {
	db, err := store.NewDB(ctx, a.Config.Storage.DB, a.logger)
	if err != nil {
		a.logger.Error().Err(err).Str("driver", a.Config.Storage.DB.Driver).Msg("error connecting to database")
		fmt.Fprintln(a.out, app.MsgConnectionFailed)
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return db, nil
}

// Handlers wires repositories, services and command handlers on top of db.
func (a *App) Handlers(db *store.DB) *handler.Handlers {
	argon := a.Config.App.Argon
	hasher := crypto.NewPasswordHasher(crypto.Params{
		Time:    argon.Time,
		Memory:  argon.Memory,
		Threads: argon.Threads,
	})

	storages := store.NewStorages(db, a.logger)
	services := service.NewServices(storages, hasher, validators.NewValidator(), a.logger)

	return handler.NewHandlers(services, a.out, a.logger)
}

// Run connects, runs fn against freshly built handlers and closes the
// connection on every path. Errors other than [handler.ErrNoCommand] are
// reported as database errors.
func (a *App) Run(ctx context.Context, fn func(ctx context.Context, h *handler.Handlers) error) error {
	ctx, cancel := a.Context(ctx)
	defer cancel()

	db, err := a.Connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = fn(ctx, a.Handlers(db)); err != nil {
		return a.fail(err)
	}

	return nil
}

// fail reports err unless it only asks for usage help.
func (a *App) fail(err error) error {
	if errors.Is(err, handler.ErrNoCommand) {
		return err
	}

	a.logger.Error().Err(err).Msg("command failed")
	fmt.Fprintln(a.out, app.MsgDatabaseError)
	return fmt.Errorf("%w: %w", ErrDatabase, err)
}

// newInvocationID returns a time-ordered id so log entries of consecutive
// invocations sort together.
func newInvocationID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
