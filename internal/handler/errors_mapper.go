// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/samber/lo"

	"github.com/MKhiriev/go-msg-board/internal/app"
	"github.com/MKhiriev/go-msg-board/internal/service"
	"github.com/MKhiriev/go-msg-board/internal/validators"
)

// userErrorMessages holds the outcome line of every expected failure of the
// users tool.
var userErrorMessages = map[error]string{
	validators.ErrInvalidUsername:  app.MsgInvalidUsername,
	validators.ErrPasswordTooShort: app.MsgPasswordTooShort,

	service.ErrUserAlreadyExists:   app.MsgUserAlreadyExists,
	service.ErrUserNotFound:        app.MsgUserDoesNotExist,
	service.ErrWrongPassword:       app.MsgWrongPassword,
	service.ErrNewPasswordTooShort: app.MsgNewPasswordTooShort,
}

// listMessagesErrorMessages holds the outcome lines of the list command of
// the messages tool.
var listMessagesErrorMessages = map[error]string{
	service.ErrUserNotFound:  app.MsgUserDoesNotExist,
	service.ErrWrongPassword: app.MsgPasswordIncorrect,
}

// sendMessageErrorMessages holds the outcome lines of the send command of
// the messages tool. The sender is named explicitly there.
var sendMessageErrorMessages = lo.Assign(listMessagesErrorMessages, map[error]string{
	service.ErrUserNotFound:      app.MsgSenderDoesNotExist,
	service.ErrRecipientNotFound: app.MsgRecipientDoesNotExist,

	validators.ErrMessageTooLong:   app.MsgMessageTooLong,
	validators.ErrEmptyMessageText: app.MsgMessageEmpty,
})

// messageFromError returns the outcome line for err, or false when err is
// not an expected outcome.
func messageFromError(messages map[error]string, err error) (string, bool) {
	for target, message := range messages {
		if errors.Is(err, target) {
			return message, true
		}
	}
	return "", false
}
