// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// ErrNoCommand is returned by Run when the given flags select no command.
// The caller is expected to print usage help.
var ErrNoCommand = errors.New("no command selected")
