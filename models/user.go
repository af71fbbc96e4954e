// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/MKhiriev/go-msg-board/internal/crypto"
)

// User represents a row of the "users" table.
//
// The password is never kept in plaintext: constructors and [User.SetPassword]
// hash it right away through a [crypto.PasswordHasher], and the resulting
// digest is exposed read-only via [User.HashedPassword].
type User struct {
	id ID

	// Username is the unique login of the user. Uniqueness is enforced by the
	// storage layer, not by this type.
	Username string

	hashedPassword string
}

// NewUser builds a not yet persisted user from plaintext credentials.
// The password is hashed with a freshly generated salt.
func NewUser(hasher crypto.PasswordHasher, username, password string) (User, error) {
	user := User{Username: username}
	if err := user.SetPassword(hasher, password, ""); err != nil {
		return User{}, err
	}

	return user, nil
}

// RestoreUser rebuilds a user from a stored row. The digest is taken as is
// and never re-hashed.
func RestoreUser(id int64, username, hashedPassword string) User {
	return User{
		id:             NewID(id),
		Username:       username,
		hashedPassword: hashedPassword,
	}
}

// ID returns the storage identity of the user.
func (u User) ID() ID {
	return u.id
}

// HashedPassword returns the stored password digest.
func (u User) HashedPassword() string {
	return u.hashedPassword
}

// SetPassword re-hashes the password and replaces the digest in memory.
// An empty salt makes the hasher generate one. The change is not persisted
// until the user is saved.
func (u *User) SetPassword(hasher crypto.PasswordHasher, password, salt string) error {
	digest, err := hasher.Hash(password, salt)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	u.hashedPassword = digest
	return nil
}

// CheckPassword reports whether password matches the stored digest.
func (u User) CheckPassword(hasher crypto.PasswordHasher, password string) bool {
	return hasher.Verify(password, u.hashedPassword)
}

// AssignID records the key generated by the database on insert.
func (u *User) AssignID(id int64) {
	u.id = NewID(id)
}

// ResetID marks the user as not persisted, e.g. after its row was deleted.
func (u *User) ResetID() {
	u.id = Unassigned
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
