// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-msg-board/internal/app"
	"github.com/MKhiriev/go-msg-board/internal/logger"
	"github.com/MKhiriev/go-msg-board/internal/service"
)

// MessageRequest holds the flags of the messages tool.
type MessageRequest struct {
	Username string
	Password string
	List     bool
	To       string
	Text     string
	// Send is set when the text flag was given, even with an empty value.
	Send bool
}

// MessageCommands prints the outcome of the message commands. Like
// [UserCommands] it returns only unexpected errors.
type MessageCommands struct {
	messageService service.MessageService
	out            io.Writer
	logger         *logger.Logger
}

// NewMessageCommands constructs MessageCommands writing outcome lines to out.
func NewMessageCommands(messageService service.MessageService, out io.Writer, logger *logger.Logger) *MessageCommands {
	return &MessageCommands{
		messageService: messageService,
		out:            out,
		logger:         logger,
	}
}

// Run lists messages when asked to, otherwise sends one. It returns
// [ErrNoCommand] when credentials or send arguments are missing.
func (c *MessageCommands) Run(ctx context.Context, req MessageRequest) error {
	hasCredentials := req.Username != "" && req.Password != ""

	switch {
	case hasCredentials && req.List:
		return c.ListMessages(ctx, req.Username, req.Password)
	case hasCredentials && req.To != "" && req.Send:
		return c.SendMessage(ctx, req.Username, req.Password, req.To, req.Text)
	default:
		return ErrNoCommand
	}
}

// ListMessages prints the received messages, oldest first.
func (c *MessageCommands) ListMessages(ctx context.Context, username, password string) error {
	messages, err := c.messageService.ListMessages(ctx, username, password)
	if err != nil {
		return c.report(listMessagesErrorMessages, err)
	}

	if len(messages) == 0 {
		fmt.Fprintln(c.out, app.MsgNoMessagesFound)
		return nil
	}

	for _, message := range messages {
		fmt.Fprintf(c.out, app.MsgReceivedMessageFormat+"\n",
			message.Sender, message.CreationDate.Format(app.DateLayout), message.Text)
	}
	return nil
}

func (c *MessageCommands) SendMessage(ctx context.Context, fromUsername, password, toUsername, text string) error {
	if err := c.messageService.SendMessage(ctx, fromUsername, password, toUsername, text); err != nil {
		return c.report(sendMessageErrorMessages, err)
	}

	fmt.Fprintln(c.out, app.MsgMessageSent)
	return nil
}

func (c *MessageCommands) report(messages map[error]string, err error) error {
	if message, ok := messageFromError(messages, err); ok {
		fmt.Fprintln(c.out, message)
		return nil
	}

	c.logger.Err(err).Msg("message command failed")
	return err
}
