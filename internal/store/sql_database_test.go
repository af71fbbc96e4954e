// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-msg-board/internal/config"
	"github.com/MKhiriev/go-msg-board/internal/logger"
)

func newPingMock(t *testing.T) (string, sqlmock.Sqlmock) {
	t.Helper()

	dsn := "ping_" + t.Name()
	db, mock, err := sqlmock.NewWithDSN(dsn, sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return dsn, mock
}

func refused() error {
	return &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
}

func TestOpen_RetriesTransientFailure(t *testing.T) {
	dsn, mock := newPingMock(t)

	mock.ExpectPing().WillReturnError(refused())
	mock.ExpectPing()

	cfg := config.DB{ConnectRetries: 2, ConnectBackoff: time.Millisecond}
	conn, err := open(context.Background(), "sqlmock", dsn, cfg, NewPostgresErrorClassifier(), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, conn)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_GivesUpAfterRetries(t *testing.T) {
	dsn, mock := newPingMock(t)

	mock.ExpectPing().WillReturnError(refused())
	mock.ExpectPing().WillReturnError(refused())

	cfg := config.DB{ConnectRetries: 1, ConnectBackoff: time.Millisecond}
	conn, err := open(context.Background(), "sqlmock", dsn, cfg, NewPostgresErrorClassifier(), logger.Nop())
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

func TestOpen_PermanentFailureIsNotRetried(t *testing.T) {
	dsn, mock := newPingMock(t)

	mock.ExpectPing().WillReturnError(pgError(pgerrcode.InvalidPassword))

	cfg := config.DB{ConnectRetries: 5, ConnectBackoff: time.Millisecond}
	_, err := open(context.Background(), "sqlmock", dsn, cfg, NewPostgresErrorClassifier(), logger.Nop())
	require.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.Equal(t, pgerrcode.InvalidPassword, postgresError(err))
}

func TestOpen_ZeroBackoffFallsBackToDefault(t *testing.T) {
	dsn, mock := newPingMock(t)

	mock.ExpectPing()

	conn, err := open(context.Background(), "sqlmock", dsn, config.DB{}, NewPostgresErrorClassifier(), logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, conn)
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, config.ErrUnsupportedDriver)
}

func TestNewDB_PlaceholderFormatPerDriver(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	pg := newDB(conn, config.DriverPostgres, logger.Nop())
	query, _, err := buildDeleteUserQuery(pg.builder, 1)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE id = $1", query)
	assert.IsType(t, &PostgresErrorClassifier{}, pg.errorClassificator)
	assert.Equal(t, config.DriverPostgres, pg.driver)

	lite := newDB(conn, config.DriverSQLite, logger.Nop())
	query, _, err = buildDeleteUserQuery(lite.builder, 1)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE id = ?", query)
	assert.IsType(t, &SQLiteErrorClassifier{}, lite.errorClassificator)
	assert.Equal(t, config.DriverSQLite, lite.driver)
}
