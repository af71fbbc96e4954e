// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/models"
)

// messageRepository is the database/sql implementation of
// [MessageRepository].
type messageRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Save inserts a new message or updates a persisted one.
//
// On insert the creation date is stamped right before the statement runs,
// truncated to the microsecond precision of a PostgreSQL TIMESTAMP. Updates
// write the fields as they are.
//
// Error handling:
//   - foreign key violation (sender or recipient gone) → [ErrUnknownUser].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *messageRepository) Save(ctx context.Context, message *models.Message) error {
	if message.ID().IsAssigned() {
		return r.update(ctx, message)
	}

	return r.insert(ctx, message)
}

func (r *messageRepository) insert(ctx context.Context, message *models.Message) error {
	log := logger.FromContext(ctx)

	creationDate := r.now().Truncate(time.Microsecond)

	query, args, err := buildInsertMessageQuery(r.db.builder, *message, creationDate)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.insert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*messageRepository.insert").Msg("error inserting message")
		return r.translate(err)
	}

	message.AssignID(id)
	message.CreationDate = creationDate
	log.Debug().Str("func", "*messageRepository.insert").Int64("message_id", id).Msg("message inserted")

	return nil
}

func (r *messageRepository) update(ctx context.Context, message *models.Message) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMessageQuery(r.db.builder, *message)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.update").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*messageRepository.update").Msg("error updating message")
		return r.translate(err)
	}

	return nil
}

// FindAllForRecipient returns the messages addressed to userID ordered by
// creation date, or an empty slice.
func (r *messageRepository) FindAllForRecipient(ctx context.Context, userID int64) ([]models.Message, error) {
	return r.find(ctx, "*messageRepository.FindAllForRecipient", sq.Eq{"to_id": userID})
}

// FindAll returns every stored message ordered by creation date.
func (r *messageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	return r.find(ctx, "*messageRepository.FindAll", nil)
}

func (r *messageRepository) find(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMessagesQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var (
			id, fromID, toID int64
			text             string
			creationDate     time.Time
		)
		if err = rows.Scan(&id, &fromID, &toID, &text, &creationDate); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, models.RestoreMessage(id, fromID, toID, text, creationDate))
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating message rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func (r *messageRepository) translate(err error) error {
	switch r.db.errorClassificator.Kind(err) {
	case KindForeignKeyViolation:
		return ErrUnknownUser
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
