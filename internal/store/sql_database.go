// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-msg-board/internal/config"
	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/migrations"
)

const defaultConnectBackoff = 200 * time.Millisecond

// DB wraps a database/sql handle together with the driver specific pieces
// the repositories need: a query builder using the right placeholder format
// and a classifier for driver errors.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	builder            sq.StatementBuilderType
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.Driver and checks that it is
// reachable. Transient connection failures are retried with exponential
// backoff as configured in cfg.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return db
}

// Migrate creates or upgrades the schema. It reports whether anything was
// applied.
func (db *DB) Migrate(ctx context.Context) (bool, error) {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// open opens a connection pool and pings it until it answers, the retry
// budget is spent or the classifier says the failure is permanent.
func open(ctx context.Context, driver, dsn string, cfg config.DB, classifier ErrorClassificator, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "open").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	// statements of one invocation run strictly one after another
	conn.SetMaxOpenConns(1)

	backoffBase := cfg.ConnectBackoff
	if backoffBase <= 0 {
		backoffBase = defaultConnectBackoff
	}
	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(backoffBase))

	attempt := 0
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		pingErr := conn.PingContext(ctx)
		if pingErr == nil {
			return nil
		}

		if classifier.Classify(pingErr) == Retryable {
			log.Warn().Err(pingErr).Str("func", "open").Int("attempt", attempt).Msg("database is not reachable, retrying")
			return retry.RetryableError(pingErr)
		}

		return pingErr
	})
	if err != nil {
		log.Err(err).Str("func", "open").Int("attempts", attempt).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return conn, nil
}
