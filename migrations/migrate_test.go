// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // no expectations: every goose query fails

	applied, err := Migrate(context.Background(), db, "pgx")
	require.Error(t, err)
	assert.False(t, applied)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	applied, err := Migrate(context.Background(), nil, "pgx")
	assert.False(t, applied)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = Migrate(context.Background(), db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

// TestEmbeddedMigrations_SameVersions verifies that every dialect ships the
// same migration files.
func TestEmbeddedMigrations_SameVersions(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, pg[i][len("postgres/"):], lite[i][len("sqlite/"):])
	}
}

// TestEmbeddedMigrations_PostgresSchema checks the exact column definitions
// shared with databases created by earlier tooling.
func TestEmbeddedMigrations_PostgresSchema(t *testing.T) {
	users, err := fs.ReadFile(embedMigrations, "postgres/00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "username VARCHAR(255) NOT NULL UNIQUE")
	assert.Contains(t, string(users), "hashed_password VARCHAR(80) NOT NULL")

	messages, err := fs.ReadFile(embedMigrations, "postgres/00002_create_messages.sql")
	require.NoError(t, err)
	assert.Contains(t, string(messages), "from_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE")
	assert.Contains(t, string(messages), "to_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE")
	assert.Contains(t, string(messages), "creation_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP")
}
