// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// ID is the storage identity of an entity.
//
// The zero value is [Unassigned]: the entity has never been written to the
// database. Once a row is inserted the repository assigns the generated key
// and every later save becomes an update keyed on it.
type ID struct {
	value    int64
	assigned bool
}

// Unassigned is the identity of an entity that has not been persisted yet.
var Unassigned = ID{}

// NewID returns an assigned identity holding the given storage key.
func NewID(value int64) ID {
	return ID{value: value, assigned: true}
}

// Value returns the storage key and whether the identity is assigned.
func (id ID) Value() (int64, bool) {
	return id.value, id.assigned
}

// IsAssigned reports whether the entity has been persisted.
func (id ID) IsAssigned() bool {
	return id.assigned
}

// Int64 returns the storage key. It returns 0 for an unassigned identity, so
// callers that need to tell the two apart must use [ID.Value].
func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	if !id.assigned {
		return "unassigned"
	}
	return strconv.FormatInt(id.value, 10)
}
