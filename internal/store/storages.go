// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-msg-board/internal/logger"

// Storages bundles the repositories built on one database connection.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		MessageRepository: NewMessageRepository(db, log),
	}
}
