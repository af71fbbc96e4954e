// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-msg-board/models"
)

// UserRepository persists [models.User] values in the "users" table.
//
// Lookups report a missing row through the boolean result, never through an
// error.
type UserRepository interface {
	// Save inserts a user that has no identity yet and assigns the generated
	// id, or updates every column of an already persisted user.
	Save(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (models.User, bool, error)
	FindByID(ctx context.Context, id int64) (models.User, bool, error)
	// FindAll returns every user ordered by id.
	FindAll(ctx context.Context) ([]models.User, error)
	// Delete removes the row of a persisted user and resets its identity.
	// It does nothing for a user that was never saved. Messages of the user
	// are removed by the database through ON DELETE CASCADE.
	Delete(ctx context.Context, user *models.User) error
}

// MessageRepository persists [models.Message] values in the "messages" table.
type MessageRepository interface {
	// Save inserts a new message stamped with the current time, or updates
	// every column of an already persisted one without touching its stamp.
	Save(ctx context.Context, message *models.Message) error
	// FindAllForRecipient returns the messages addressed to userID, oldest
	// first.
	FindAllForRecipient(ctx context.Context, userID int64) ([]models.Message, error)
	FindAll(ctx context.Context) ([]models.Message, error)
}
