// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-msg-board/internal/app"
	"github.com/MKhiriev/go-msg-board/internal/config"
)

// setEnv points the configuration at a SQLite file in a temporary directory.
func setEnv(t *testing.T) {
	t.Helper()

	t.Setenv("STORAGE_DB_DRIVER", config.DriverSQLite)
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:"+filepath.Join(t.TempDir(), "board.db"))
	t.Setenv("STORAGE_DB_NAME", "")
	t.Setenv("STORAGE_DB_CONNECT_BACKOFF", "1ms")
	t.Setenv("STORAGE_DB_QUERY_TIMEOUT", "")
	t.Setenv("APP_ARGON_MEMORY", "64")
	t.Setenv("APP_ARGON_THREADS", "1")
	t.Setenv("APP_LOG_LEVEL", "")
	t.Setenv("CONFIG", "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	root := newRootCommand()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_NoFlagsPrintsHelpWithoutConfig(t *testing.T) {
	setEnv(t)
	t.Setenv("STORAGE_DB_DRIVER", "mysql")

	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "--username")
	assert.NotContains(t, out, app.MsgConfigError)
}

func TestRootCommand_ConfigError(t *testing.T) {
	setEnv(t)
	t.Setenv("STORAGE_DB_DRIVER", "mysql")

	out, err := execute(t, "-l")
	require.Error(t, err)
	assert.Equal(t, app.MsgConfigError+"\n", out)
}

func TestRootCommand_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "N/A (built N/A, commit N/A)")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	setEnv(t)

	_, err := execute(t, "-l", "extra")
	assert.Error(t, err)
}
