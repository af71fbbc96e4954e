// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	// MinPasswordLength is the minimal number of characters of a password.
	MinPasswordLength = 8

	// MaxUsernameLength mirrors the VARCHAR(255) users.username column.
	MaxUsernameLength = 255

	// MaxMessageTextLength mirrors the VARCHAR(255) messages.text column.
	MaxMessageTextLength = 255
)

var (
	usernameRule    = fmt.Sprintf("required,max=%d", MaxUsernameLength)
	passwordRule    = fmt.Sprintf("min=%d", MinPasswordLength)
	messageTextRule = fmt.Sprintf("required,max=%d", MaxMessageTextLength)
)

type inputValidator struct {
	validate *validator.Validate
}

// NewValidator constructs the default [Validator].
func NewValidator() Validator {
	return &inputValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *inputValidator) ValidateUsername(username string) error {
	return v.check(username, usernameRule, map[string]error{
		"required": ErrInvalidUsername,
		"max":      ErrInvalidUsername,
	})
}

func (v *inputValidator) ValidatePassword(password string) error {
	return v.check(password, passwordRule, map[string]error{
		"min": ErrPasswordTooShort,
	})
}

func (v *inputValidator) ValidateMessageText(text string) error {
	return v.check(text, messageTextRule, map[string]error{
		"required": ErrEmptyMessageText,
		"max":      ErrMessageTooLong,
	})
}

// check runs rule against value and translates the failed tag into one of
// the package sentinel errors.
func (v *inputValidator) check(value, rule string, tagErrors map[string]error) error {
	err := v.validate.Var(value, rule)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		if target, ok := tagErrors[validationErrors[0].Tag()]; ok {
			return target
		}
	}

	return fmt.Errorf("%w: %w", ErrUnexpectedFailure, err)
}
