// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package store

import (
	"errors"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	foreignKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	assert.Equal(t, KindUniqueViolation, c.Kind(unique))
	assert.Equal(t, KindForeignKeyViolation, c.Kind(foreignKey))
	assert.Equal(t, KindUnknown, c.Kind(busy))
	assert.Equal(t, KindUnknown, c.Kind(errors.New("boom")))

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}
