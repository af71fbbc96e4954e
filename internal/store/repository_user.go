// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/models"
)

// userRepository is the database/sql implementation of [UserRepository].
// It works with both supported drivers; the differences are hidden in the
// query builder and the error classifier of [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts or updates user depending on whether it already has an id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - update that matched no row → [ErrUnknownUser].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	if user.ID().IsAssigned() {
		return r.update(ctx, user)
	}

	return r.insert(ctx, user)
}

func (r *userRepository) insert(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, *user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.insert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*userRepository.insert").Msg("error inserting user")
		return r.translate(err)
	}

	user.AssignID(id)
	log.Debug().Str("func", "*userRepository.insert").Int64("user_id", id).Msg("user inserted")

	return nil
}

func (r *userRepository) update(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, *user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.update").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.update").Msg("error updating user")
		return r.translate(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", "*userRepository.update").Stringer("user_id", user.ID()).Msg("no user row was updated")
		return ErrUnknownUser
	}

	return nil
}

// FindByUsername looks a user up by its unique username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, bool, error) {
	return r.findOne(ctx, "*userRepository.FindByUsername", sq.Eq{"username": username})
}

// FindByID looks a user up by its id.
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, bool, error) {
	return r.findOne(ctx, "*userRepository.FindByID", sq.Eq{"id": id})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		id                       int64
		username, hashedPassword string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id, &username, &hashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return models.RestoreUser(id, username, hashedPassword), true, nil
}

// FindAll returns every user ordered by id, or an empty slice.
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error selecting users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var (
			id                       int64
			username, hashedPassword string
		)
		if err = rows.Scan(&id, &username, &hashedPassword); err != nil {
			log.Err(err).Str("func", "*userRepository.FindAll").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, models.RestoreUser(id, username, hashedPassword))
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindAll").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// Delete removes the row of user and resets its id. A user without an id is
// left untouched. When the row was already gone the id is reset as well and
// [ErrUnknownUser] is returned.
func (r *userRepository) Delete(ctx context.Context, user *models.User) error {
	id, ok := user.ID().Value()
	if !ok {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.ResetID()
	if affected == 0 {
		return ErrUnknownUser
	}
	log.Debug().Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("user deleted")

	return nil
}

func (r *userRepository) translate(err error) error {
	switch r.db.errorClassificator.Kind(err) {
	case KindUniqueViolation:
		return ErrUsernameAlreadyExists
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
