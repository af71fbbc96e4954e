// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-msg-board/models"
)

// AuthService checks user credentials.
type AuthService interface {
	// Authenticate returns the stored user when password matches.
	// An absent user costs as much as a wrong password.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

// UserService implements the user management commands.
type UserService interface {
	CreateUser(ctx context.Context, username, password string) (models.User, error)
	EditUser(ctx context.Context, username, oldPassword, newPassword string) error
	DeleteUser(ctx context.Context, username, password string) error
	ListUsers(ctx context.Context) ([]string, error)
}

// MessageService implements the message commands.
type MessageService interface {
	// ListMessages returns the messages received by the authenticated user,
	// oldest first, with senders resolved to usernames.
	ListMessages(ctx context.Context, username, password string) ([]models.ReceivedMessage, error)
	SendMessage(ctx context.Context, fromUsername, password, toUsername, text string) error
}
