// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func TestUserRepository_Save_InsertAssignsID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.RestoreUser(0, "john", "digest")
	user.ResetID()

	mock.ExpectQuery(`INSERT INTO users \(username,hashed_password\) VALUES \(\$1,\$2\) RETURNING id`).
		WithArgs("john", "digest").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err := repo.Save(context.Background(), &user)
	require.NoError(t, err)

	id, ok := user.ID().Value()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "john"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Save(context.Background(), &user)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.False(t, user.ID().IsAssigned(), "failed insert must not assign an id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "john"}
	dbErr := errors.New("connection reset")

	mock.ExpectQuery("INSERT INTO users").WillReturnError(dbErr)

	err := repo.Save(context.Background(), &user)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestUserRepository_Save_UpdateByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.RestoreUser(3, "john", "new-digest")

	mock.ExpectExec(`UPDATE users SET username = \$1, hashed_password = \$2 WHERE id = \$3`).
		WithArgs("john", "new-digest", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &user)
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID().Int64())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_UpdateMissingRow(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.RestoreUser(3, "john", "digest")

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &user)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestUserRepository_Save_UpdateToTakenUsername(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.RestoreUser(3, "jane", "digest")

	mock.ExpectExec("UPDATE users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Save(context.Background(), &user)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	tests := []struct {
		name      string
		rows      *sqlmock.Rows
		err       error
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "found",
			rows:      sqlmock.NewRows([]string{"id", "username", "hashed_password"}).AddRow(1, "john", "digest"),
			wantFound: true,
		},
		{
			name: "absent",
			rows: sqlmock.NewRows([]string{"id", "username", "hashed_password"}),
		},
		{
			name:    "driver error",
			err:     errors.New("boom"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectQuery(`SELECT id, username, hashed_password FROM users WHERE username = \$1 ORDER BY id`).
				WithArgs("john")
			if tt.err != nil {
				exp.WillReturnError(tt.err)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			user, found, err := repo.FindByUsername(context.Background(), "john")
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, found)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, "john", user.Username)
				assert.Equal(t, "digest", user.HashedPassword())
				assert.Equal(t, int64(1), user.ID().Int64())
			} else {
				assert.False(t, user.ID().IsAssigned())
			}
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, username, hashed_password FROM users WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password"}).AddRow(5, "jane", "digest"))

	user, found, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "jane", user.Username)
}

func TestUserRepository_FindAll(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT id, username, hashed_password FROM users ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password"}).
			AddRow(1, "john", "d1").
			AddRow(2, "jane", "d2"))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "john", users[0].Username)
	assert.Equal(t, "jane", users[1].Username)
}

func TestUserRepository_FindAll_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password"}))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_FindAll_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "hashed_password"}).AddRow("not-a-number", "john", "d"))

	_, err := repo.FindAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.RestoreUser(4, "john", "digest")

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), &user)
	require.NoError(t, err)
	assert.False(t, user.ID().IsAssigned())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_Unsaved(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "john"}

	err := repo.Delete(context.Background(), &user)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "unsaved user must not reach the database")
}

func TestUserRepository_Delete_AlreadyGone(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.RestoreUser(4, "john", "digest")

	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), &user)
	assert.ErrorIs(t, err, ErrUnknownUser)
	assert.False(t, user.ID().IsAssigned())
}
