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

// UserRequest holds the flags of the users tool.
type UserRequest struct {
	Username    string
	Password    string
	NewPassword string
	List        bool
	Delete      bool
	Edit        bool
}

// UserCommands prints the outcome of the user management commands.
//
// Expected failures (validation, unknown user, wrong password, duplicate
// username) are printed like any other outcome and reported as success.
// Only unexpected errors are returned.
type UserCommands struct {
	userService service.UserService
	out         io.Writer
	logger      *logger.Logger
}

// NewUserCommands constructs UserCommands writing outcome lines to out.
func NewUserCommands(userService service.UserService, out io.Writer, logger *logger.Logger) *UserCommands {
	return &UserCommands{
		userService: userService,
		out:         out,
		logger:      logger,
	}
}

// Run dispatches req to one command. Priority: edit, delete, create, list.
// It returns [ErrNoCommand] when the flags select none of them.
func (c *UserCommands) Run(ctx context.Context, req UserRequest) error {
	hasCredentials := req.Username != "" && req.Password != ""

	switch {
	case hasCredentials && req.Edit && req.NewPassword != "":
		return c.EditUser(ctx, req.Username, req.Password, req.NewPassword)
	case hasCredentials && req.Delete:
		return c.DeleteUser(ctx, req.Username, req.Password)
	case hasCredentials:
		return c.CreateUser(ctx, req.Username, req.Password)
	case req.List:
		return c.ListUsers(ctx)
	default:
		return ErrNoCommand
	}
}

func (c *UserCommands) CreateUser(ctx context.Context, username, password string) error {
	if _, err := c.userService.CreateUser(ctx, username, password); err != nil {
		return c.report(err)
	}

	fmt.Fprintln(c.out, app.MsgUserCreated)
	return nil
}

func (c *UserCommands) EditUser(ctx context.Context, username, oldPassword, newPassword string) error {
	if err := c.userService.EditUser(ctx, username, oldPassword, newPassword); err != nil {
		return c.report(err)
	}

	fmt.Fprintln(c.out, app.MsgPasswordUpdated)
	return nil
}

func (c *UserCommands) DeleteUser(ctx context.Context, username, password string) error {
	if err := c.userService.DeleteUser(ctx, username, password); err != nil {
		return c.report(err)
	}

	fmt.Fprintln(c.out, app.MsgUserDeleted)
	return nil
}

// ListUsers prints one username per line.
func (c *UserCommands) ListUsers(ctx context.Context) error {
	usernames, err := c.userService.ListUsers(ctx)
	if err != nil {
		return c.report(err)
	}

	if len(usernames) == 0 {
		fmt.Fprintln(c.out, app.MsgNoUsersFound)
		return nil
	}

	for _, username := range usernames {
		fmt.Fprintln(c.out, username)
	}
	return nil
}

func (c *UserCommands) report(err error) error {
	if message, ok := messageFromError(userErrorMessages, err); ok {
		fmt.Fprintln(c.out, message)
		return nil
	}

	c.logger.Err(err).Msg("user command failed")
	return err
}
