package storage

import (
	"context"
	"net"
	"strings"
)

// ObjectStore is the durable key-value blob sink a run writes its
// artifacts to. Keys are POSIX-path-like; the run's timestamp prefix makes
// every key write-once, so no overwrite semantics are relied upon.
type ObjectStore interface {
	Name() string
	Put(ctx context.Context, key string, data []byte) error
	Close() error
}

// isTransient mirrors the provider-side classification for upload errors;
// retrying stays inside the store implementations.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if netErr, ok := err.(net.Error); ok {
		return netErr.Timeout()
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"timeout",
		"connection reset",
		"connection refused",
		"slow down",
		"service unavailable",
		"internal server error",
		"bad gateway",
	} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}
