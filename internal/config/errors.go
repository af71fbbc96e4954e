// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnsupportedDriver indicates a database driver other than pgx or
	// sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, impossible Argon2id parameters).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
