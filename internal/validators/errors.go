// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrInvalidUsername   = errors.New("username must be between 1 and 255 characters")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrEmptyMessageText  = errors.New("message text is empty")
	ErrMessageTooLong    = errors.New("message text is too long")
	ErrUnexpectedFailure = errors.New("unexpected validation failure")
)
