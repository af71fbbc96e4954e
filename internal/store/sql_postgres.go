// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-msg-board/internal/config"
	"github.com/MKhiriev/go-msg-board/internal/logger"
)

// NewConnectPostgres connects to the PostgreSQL database at cfg.DSN.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := open(ctx, config.DriverPostgres, cfg.DSN, cfg, NewPostgresErrorClassifier(), log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, config.DriverPostgres, log), nil
}

// CreatePostgresDatabase creates database cfg.Name through the maintenance
// connection cfg.AdminDSN. It returns false without an error when the
// database already exists.
func CreatePostgresDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (bool, error) {
	conn, err := open(ctx, config.DriverPostgres, cfg.AdminDSN, cfg, NewPostgresErrorClassifier(), log)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	// CREATE DATABASE takes no bind parameters
	query := "CREATE DATABASE " + pgx.Identifier{cfg.Name}.Sanitize()
	if _, err = conn.ExecContext(ctx, query); err != nil {
		if postgresError(err) == pgerrcode.DuplicateDatabase {
			log.Info().Str("func", "CreatePostgresDatabase").Str("database", cfg.Name).Msg("database already exists")
			return false, nil
		}

		log.Err(err).Str("func", "CreatePostgresDatabase").Str("database", cfg.Name).Msg("error creating database")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}
	log.Info().Str("func", "CreatePostgresDatabase").Str("database", cfg.Name).Msg("database created")

	return true, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
