// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-msg-board/models"
)

var (
	userColumns    = []string{"id", "username", "hashed_password"}
	messageColumns = []string{"id", "from_id", "to_id", "text", "creation_date"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "hashed_password").
		Values(user.Username, user.HashedPassword()).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(user.TableName()).
		Set("username", user.Username).
		Set("hashed_password", user.HashedPassword()).
		Where(sq.Eq{"id": user.ID().Int64()}).
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(userColumns...).From(models.User{}.TableName())
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("id").ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertMessageQuery(b sq.StatementBuilderType, message models.Message, creationDate time.Time) (string, []any, error) {
	return b.Insert(message.TableName()).
		Columns("from_id", "to_id", "text", "creation_date").
		Values(message.FromID, message.ToID, message.Text, creationDate).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateMessageQuery(b sq.StatementBuilderType, message models.Message) (string, []any, error) {
	return b.Update(message.TableName()).
		Set("from_id", message.FromID).
		Set("to_id", message.ToID).
		Set("text", message.Text).
		Set("creation_date", message.CreationDate).
		Where(sq.Eq{"id": message.ID().Int64()}).
		ToSql()
}

// buildSelectMessagesQuery orders by creation date. The id breaks ties so
// messages stamped within the same microsecond keep their insertion order.
func buildSelectMessagesQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(messageColumns...).From(models.Message{}.TableName())
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("creation_date", "id").ToSql()
}
