// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-msg-board/internal/crypto"
	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/internal/store"
	"github.com/MKhiriev/go-msg-board/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is used to look the user up by username.
	userRepository store.UserRepository

	// hasher verifies the supplied password against the stored digest.
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Authenticate looks the user up and verifies the password.
//
// Returns the stored user or:
//   - ErrUserNotFound if no user has this username. The password is still
//     verified against [crypto.DummyDigest] so this path takes as long as a
//     real verification.
//   - ErrWrongPassword if the password does not match.
//   - A wrapped storage error if the lookup fails.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, found, err := a.userRepository.FindByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !found {
		a.hasher.Verify(password, crypto.DummyDigest)
		log.Info().Str("username", username).Msg("user does not exist")
		return models.User{}, ErrUserNotFound
	}

	if !user.CheckPassword(a.hasher, password) {
		log.Info().Stringer("user_id", user.ID()).Str("username", username).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}
