// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-msg-board/internal/app"
	"github.com/MKhiriev/go-msg-board/internal/cli"
	"github.com/MKhiriev/go-msg-board/internal/handler"
)

// seed creates the tables and the users alice and bob.
func seed(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	a, err := cli.NewApp("createdb", "", &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, a.CreateDatabase(ctx))

	require.NoError(t, a.Run(ctx, func(ctx context.Context, h *handler.Handlers) error {
		if err := h.Users.Run(ctx, handler.UserRequest{Username: "alice", Password: "password1"}); err != nil {
			return err
		}
		return h.Users.Run(ctx, handler.UserRequest{Username: "bob", Password: "password2"})
	}))
}

func TestRootCommand_SendEmptyText(t *testing.T) {
	setEnv(t)
	seed(t)

	out, err := execute(t, "-u", "alice", "-p", "password1", "-t", "bob", "-s", "")
	require.NoError(t, err)
	assert.Equal(t, app.MsgMessageEmpty+"\n", out)

	out, err = execute(t, "-u", "bob", "-p", "password2", "-l")
	require.NoError(t, err)
	assert.Equal(t, app.MsgNoMessagesFound+"\n", out)
}

func TestRootCommand_SendAndList(t *testing.T) {
	setEnv(t)
	seed(t)

	out, err := execute(t, "--username", "alice", "--password", "password1", "--to", "bob", "--send", "hi bob")
	require.NoError(t, err)
	assert.Equal(t, app.MsgMessageSent+"\n", out)

	// list wins over send
	out, err = execute(t, "-u", "bob", "-p", "password2", "-l", "-t", "alice", "-s", "ignored")
	require.NoError(t, err)
	assert.Regexp(t, `^From: alice Date: \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} Message: hi bob\n$`, out)

	out, err = execute(t, "-u", "alice", "-p", "password1", "-l")
	require.NoError(t, err)
	assert.Equal(t, app.MsgNoMessagesFound+"\n", out)
}

func TestRootCommand_SendWithoutTextPrintsHelp(t *testing.T) {
	setEnv(t)
	seed(t)

	out, err := execute(t, "-u", "alice", "-p", "password1", "-t", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")

	out, err = execute(t, "-u", "bob", "-p", "password2", "-l")
	require.NoError(t, err)
	assert.Equal(t, app.MsgNoMessagesFound+"\n", out)
}
