// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-msg-board/internal/app"
	"github.com/MKhiriev/go-msg-board/internal/config"
	"github.com/MKhiriev/go-msg-board/internal/store"
)

// CreateDatabase prepares the configured database for the other tools.
//
// When a database name is configured for PostgreSQL it is created first
// through the admin connection. The schema is then created or upgraded.
// Each step prints one outcome line.
func (a *App) CreateDatabase(ctx context.Context) error {
	ctx, cancel := a.Context(ctx)
	defer cancel()

	cfg := a.Config.Storage.DB
	if cfg.Name != "" && cfg.Driver == config.DriverPostgres {
		created, err := store.CreatePostgresDatabase(ctx, cfg, a.logger)
		if err != nil {
			if errors.Is(err, store.ErrDatabaseUnavailable) {
				fmt.Fprintln(a.out, app.MsgConnectionFailed)
				return fmt.Errorf("%w: %w", ErrConnection, err)
			}
			return a.fail(err)
		}

		if created {
			fmt.Fprintln(a.out, app.MsgDatabaseCreated)
		} else {
			fmt.Fprintln(a.out, app.MsgDatabaseAlreadyExists)
		}
	}

	db, err := a.Connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := db.Migrate(ctx)
	if err != nil {
		return a.fail(err)
	}

	if applied {
		fmt.Fprintln(a.out, app.MsgTablesCreated)
	} else {
		fmt.Fprintln(a.out, app.MsgTablesUpToDate)
	}

	return nil
}
