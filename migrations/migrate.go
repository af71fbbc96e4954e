// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the database schema of the message board and
// applies it with goose. Every supported dialect has its own directory of
// SQL migrations named after the database/sql driver.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when Migrate is called without a database.
var ErrNilDB = errors.New("db is nil")

var dialectDirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// Migrate brings the schema of db up to date for the given dialect ("pgx" or
// "sqlite3"). It reports whether any migration was applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) (bool, error) {
	if db == nil {
		return false, fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return false, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return false, fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	before, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return false, fmt.Errorf("migration error reading schema version: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return false, fmt.Errorf("migration error: %w", err)
	}

	after, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return false, fmt.Errorf("migration error reading schema version: %w", err)
	}

	return after > before, nil
}
