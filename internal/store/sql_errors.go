// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, authentication failures and syntax errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. the server is still starting or the file is locked).
	Retryable
)

// ErrorKind tells which integrity rule a failed statement broke.
type ErrorKind int

const (
	// KindUnknown covers every error the repositories do not translate.
	KindUnknown ErrorKind = iota

	// KindUniqueViolation is a duplicate value in a UNIQUE or PRIMARY KEY
	// column.
	KindUniqueViolation

	// KindForeignKeyViolation is a reference to a row that does not exist.
	KindForeignKeyViolation
)

// ErrorClassificator interprets driver specific errors.
type ErrorClassificator interface {
	// Classify tells whether the failed operation is worth retrying.
	Classify(err error) ErrorClassification
	// Kind tells which integrity constraint, if any, the error reports.
	Kind(err error) ErrorKind
}
