// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Outcomes of the user and message commands. Validation failures are
// reported with the sentinel errors of package validators.
var (
	ErrUserNotFound        = errors.New("user does not exist")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrNewPasswordTooShort = errors.New("new password is too short")
	ErrRecipientNotFound   = errors.New("recipient does not exist")
)
