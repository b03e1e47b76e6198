// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dav-sync/internal/logger"
	"github.com/MKhiriev/go-dav-sync/migrations"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the operation failed because the connection
	// or the database was temporarily unusable.
	Retryable

	// PermissionDenied indicates that the database refused the operation
	// for lack of privileges.
	PermissionDenied
)

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a database handle together with the driver-specific pieces the
// store needs: the error classifier, the goose dialect and a statement
// builder using the driver's placeholder format.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	dialect            string
	builder            sq.StatementBuilderType
	logger             *logger.Logger
}

func newDB(conn *sql.DB, classificator ErrorClassificator, dialect string, placeholder sq.PlaceholderFormat, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: classificator,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) classify(err error) ErrorClassification {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return Retryable
	}
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// wrapError attaches [ErrPermissionDenied] or [ErrConnectionLost] to driver
// errors that the classifier recognises. Other errors are returned as is.
func (db *DB) wrapError(err error) error {
	if err == nil {
		return nil
	}
	switch db.classify(err) {
	case PermissionDenied:
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case Retryable:
		return fmt.Errorf("%w: %w", ErrConnectionLost, err)
	}
	return err
}
