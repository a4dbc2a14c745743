package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/lunch/pkg/domain"
)

// tsLayout is fixed width, so lexical order of stored timestamps matches time order
const tsLayout = "2006-01-02T15:04:05.000000000Z"

var errCritical = errors.New("critical error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is makes repeater treat any criticalError as a termination error
func (e *criticalError) Is(target error) bool {
	return target == errCritical //nolint:errorlint // marker comparison
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueError checks if an error is a primary key or unique constraint violation
func isUniqueError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed")
}

// retryWrite runs fn with backoff while it fails on SQLite locks.
// Business errors from fn (duplicate name, invalid input) are returned as is,
// everything else is reported as domain.ErrStorageWrite.
func retryWrite(ctx context.Context, op string, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err := retrier.Do(ctx, func() error {
		err := fn()
		if err == nil || isLockError(err) {
			return err // nil or retry
		}
		return &criticalError{err: err}
	}, errCritical)
	if err == nil {
		return nil
	}

	var ce *criticalError
	if errors.As(err, &ce) {
		err = ce.err
	}
	if errors.Is(err, domain.ErrDuplicateName) || errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageWrite, err)
}

// inTransaction executes a function within a database transaction
func inTransaction(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %w (rollback also failed: %s)", err, rbErr.Error())
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func formatTS(t time.Time) string {
	return t.UTC().Format(tsLayout)
}

func parseTS(s string) (time.Time, error) {
	return time.Parse(tsLayout, s)
}
