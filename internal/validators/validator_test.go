// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "regular", username: "alice"},
		{name: "single character", username: "a"},
		{name: "max length", username: strings.Repeat("a", 255)},
		{name: "max length multibyte", username: strings.Repeat("ж", 255)},
		{name: "empty", username: "", wantErr: ErrInvalidUsername},
		{name: "too long", username: strings.Repeat("a", 256), wantErr: ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.ValidateUsername(tt.username), tt.wantErr)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "exactly eight", password: "12345678"},
		{name: "long", password: "correct horse battery staple"},
		{name: "eight multibyte characters", password: "пароль12"},
		{name: "seven", password: "1234567", wantErr: ErrPasswordTooShort},
		{name: "empty", password: "", wantErr: ErrPasswordTooShort},
		{name: "four multibyte characters", password: "ключ", wantErr: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.ValidatePassword(tt.password), tt.wantErr)
		})
	}
}

func TestValidateMessageText(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "short", text: "hi"},
		{name: "exactly 255", text: strings.Repeat("x", 255)},
		{name: "255 multibyte", text: strings.Repeat("é", 255)},
		{name: "256", text: strings.Repeat("x", 256), wantErr: ErrMessageTooLong},
		{name: "empty", text: "", wantErr: ErrEmptyMessageText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.ValidateMessageText(tt.text), tt.wantErr)
		})
	}
}
