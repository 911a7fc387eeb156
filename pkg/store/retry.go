// retry.go shields SQLite writes from transient contention errors.
//
// With multiple capture processes sharing a vault database, WAL-mode
// SQLite can surface SQLITE_BUSY or SQLITE_LOCKED even with the
// busy_timeout pragma set. These resolve on their own; the write is
// retried with exponential backoff and jitter. This sits below the
// store API — a note creation that fails for any other reason is never
// retried.
package store

import (
	"math/rand"
	"strings"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
	retryMaxDelay  = 500 * time.Millisecond
)

// isTransient reports whether err is a contention error worth retrying.
// modernc.org/sqlite embeds the SQLite error name and code in the
// message, so detection is textual.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, pattern := range []string{
		"SQLITE_BUSY",
		"SQLITE_LOCKED",
		"database is locked",
		"database table is locked",
		"(5)", // SQLITE_BUSY code
		"(6)", // SQLITE_LOCKED code
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// retryOnContention runs fn, retrying transient errors with backoff.
// Non-transient errors return immediately.
func retryOnContention(fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= retryAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil || !isTransient(lastErr) {
			return lastErr
		}
		if attempt < retryAttempts {
			time.Sleep(backoffDelay(attempt))
		}
	}
	return lastErr
}

// backoffDelay is baseDelay * 2^attempt, capped, plus jitter in
// [0, baseDelay).
func backoffDelay(attempt int) time.Duration {
	delay := retryBaseDelay << uint(attempt)
	if delay > retryMaxDelay {
		delay = retryMaxDelay
	}
	return delay + time.Duration(rand.Int63n(int64(retryBaseDelay)))
}
