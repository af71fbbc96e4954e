// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-msg-board/internal/config"
	"github.com/MKhiriev/go-msg-board/internal/logger"
)

// NewConnectSQLite opens the SQLite database at cfg.DSN. The file is created
// by the driver when missing. Foreign keys are always switched on, whatever
// the DSN says, so deleting a user cascades to its messages.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := open(ctx, config.DriverSQLite, withForeignKeys(cfg.DSN), cfg, NewSQLiteErrorClassifier(), log)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, log), nil
}

// withForeignKeys replaces any foreign key parameter of a go-sqlite3 DSN
// (_foreign_keys or its alias _fk) with _foreign_keys=on. Other parameters
// are kept verbatim and in order.
func withForeignKeys(dsn string) string {
	path, query, _ := strings.Cut(dsn, "?")

	params := make([]string, 0, strings.Count(query, "&")+2)
	for _, param := range strings.Split(query, "&") {
		key, _, _ := strings.Cut(param, "=")
		if param == "" || key == "_foreign_keys" || key == "_fk" {
			continue
		}
		params = append(params, param)
	}
	params = append(params, "_foreign_keys=on")

	return path + "?" + strings.Join(params, "&")
}
