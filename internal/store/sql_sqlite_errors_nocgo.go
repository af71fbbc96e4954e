// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !cgo

package store

// SQLiteErrorClassifier is a stub: without cgo the sqlite3 driver cannot
// open a database, so there is nothing to classify.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(error) ErrorClassification {
	return NonRetryable
}

// Kind implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Kind(error) ErrorKind {
	return KindUnknown
}
