// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "fmt"

// Version formats build metadata injected with -ldflags for the --version
// flag. Missing values are shown as N/A.
func Version(version, date, commit string) string {
	if version == "" {
		version = "N/A"
	}

	if date == "" {
		date = "N/A"
	}

	if commit == "" {
		commit = "N/A"
	}

	return fmt.Sprintf("%s (built %s, commit %s)", version, date, commit)
}
