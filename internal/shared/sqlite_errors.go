// Package shared provides common utilities used across the codebase.
//
//nolint:revive // "shared" is an intentional package name for cross-cutting helpers.
package shared

import (
	"context"
	"strings"
	"time"
)

// IsSQLiteConflictError reports whether the error is a SQLITE_BUSY or
// "database is locked" error. Both are concurrency errors that warrant a
// retry.
func IsSQLiteConflictError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

// RetryOnConflict runs fn, retrying with exponential backoff while it keeps
// failing with a SQLite concurrency error. Non-conflict errors and context
// cancellation return immediately.
func RetryOnConflict(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !IsSQLiteConflictError(err) {
			return err
		}
		if i < attempts-1 {
			select {
			case <-time.After(baseDelay * time.Duration(1<<i)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return err
}
