// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the input rules of the message board commands:
// username, password and message text lengths.
//
// Lengths are counted in characters (Unicode code points), which is how the
// VARCHAR columns of the schema count them too.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator checks user input before it reaches the storage layer.
type Validator interface {
	// ValidateUsername rejects empty usernames and usernames longer than the
	// users.username column.
	ValidateUsername(username string) error

	// ValidatePassword rejects passwords shorter than [MinPasswordLength].
	ValidatePassword(password string) error

	// ValidateMessageText rejects empty texts and texts longer than the
	// messages.text column.
	ValidateMessageText(text string) error
}
