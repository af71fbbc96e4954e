// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-msg-board/internal/crypto"
	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/internal/store"
	"github.com/MKhiriev/go-msg-board/internal/validators"
)

// Services bundles the services of one tool invocation.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	MessageService MessageService
}

// NewServices wires every service to the given repositories.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserRepository, hasher, logger)

	return &Services{
		AuthService:    authService,
		UserService:    NewUserService(storages.UserRepository, authService, hasher, validator, logger),
		MessageService: NewMessageService(storages.UserRepository, storages.MessageRepository, authService, validator, logger),
	}
}
