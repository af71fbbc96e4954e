// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-msg-board/internal/crypto"
	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/internal/store"
	"github.com/MKhiriev/go-msg-board/internal/validators"
	"github.com/MKhiriev/go-msg-board/models"
)

// userService is the concrete implementation of UserService. Every method
// checks its preconditions in order and stops at the first failure, before
// anything is written.
type userService struct {
	userRepository store.UserRepository
	authService    AuthService
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a new UserService.
func NewUserService(userRepository store.UserRepository, authService AuthService, hasher crypto.PasswordHasher,
	validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		authService:    authService,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser registers a new user.
//
// Returns the persisted user or:
//   - validators.ErrPasswordTooShort, checked first, then
//     validators.ErrInvalidUsername.
//   - ErrUserAlreadyExists if the username is taken.
func (s *userService) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.ValidatePassword(password); err != nil {
		return models.User{}, err
	}
	if err := s.validator.ValidateUsername(username); err != nil {
		return models.User{}, err
	}

	user, err := models.NewUser(s.hasher, username, password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("error building user")
		return models.User{}, err
	}

	if err = s.userRepository.Save(ctx, &user); err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Info().Str("username", username).Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	log.Info().Stringer("user_id", user.ID()).Str("username", username).Msg("user created")

	return user, nil
}

// EditUser replaces the password of an authenticated user.
//
// The new password is checked only after authentication succeeded, so a
// caller with wrong credentials learns nothing about it.
func (s *userService) EditUser(ctx context.Context, username, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	user, err := s.authService.Authenticate(ctx, username, oldPassword)
	if err != nil {
		return err
	}

	if err = s.validator.ValidatePassword(newPassword); err != nil {
		if errors.Is(err, validators.ErrPasswordTooShort) {
			return ErrNewPasswordTooShort
		}
		return err
	}

	if err = user.SetPassword(s.hasher, newPassword, ""); err != nil {
		log.Err(err).Stringer("user_id", user.ID()).Msg("error hashing new password")
		return err
	}

	if err = s.userRepository.Save(ctx, &user); err != nil {
		if errors.Is(err, store.ErrUnknownUser) {
			return ErrUserNotFound
		}

		log.Err(err).Stringer("user_id", user.ID()).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}
	log.Info().Stringer("user_id", user.ID()).Msg("password updated")

	return nil
}

// DeleteUser removes an authenticated user. Messages sent or received by the
// user are removed by the database.
func (s *userService) DeleteUser(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	user, err := s.authService.Authenticate(ctx, username, password)
	if err != nil {
		return err
	}

	userID := user.ID()
	if err = s.userRepository.Delete(ctx, &user); err != nil {
		if errors.Is(err, store.ErrUnknownUser) {
			return ErrUserNotFound
		}

		log.Err(err).Stringer("user_id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}
	log.Info().Stringer("user_id", userID).Msg("user deleted")

	return nil
}

// ListUsers returns the usernames of all users ordered by id.
func (s *userService) ListUsers(ctx context.Context) ([]string, error) {
	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return lo.Map(users, func(user models.User, _ int) string {
		return user.Username
	}), nil
}
