// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// There are no built-in credentials: a DSN must always come from one of the
// sources.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database URI is not set", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.Name != "" && cfg.Storage.DB.AdminDSN == "" {
		return fmt.Errorf("%w: database name requires an admin URI", ErrInvalidStorageConfigs)
	}

	if cfg.App.Argon.Memory < 8*uint32(cfg.App.Argon.Threads) {
		return fmt.Errorf("%w: argon memory must be at least 8 KiB per thread", ErrInvalidAppConfigs)
	}

	return nil
}
