// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

// Failures that end a tool with a non-zero exit status. Each one has
// already been reported to the user when it is returned.
var (
	ErrConfig     = errors.New("configuration error")
	ErrConnection = errors.New("database connection failed")
	ErrDatabase   = errors.New("database error")
)
