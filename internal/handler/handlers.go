// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"io"

	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/internal/service"
)

// Handlers bundles the command handlers of the tools.
type Handlers struct {
	Users    *UserCommands
	Messages *MessageCommands
}

// NewHandlers builds the handlers on top of services. Outcome lines go to out.
func NewHandlers(services *service.Services, out io.Writer, logger *logger.Logger) *Handlers {
	logger.Debug().Msg("creating new handlers...")

	return &Handlers{
		Users:    NewUserCommands(services.UserService, out, logger),
		Messages: NewMessageCommands(services.MessageService, out, logger),
	}
}
