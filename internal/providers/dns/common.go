package dns

import (
	"net"
	"strings"
)

// IsRetryableDNSError classifies transient provider failures. Retrying
// happens here at the client layer only; the orchestration above records a
// zone as failed on the first error it sees.
func IsRetryableDNSError(err error) bool {
	if err == nil {
		return false
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if IsRetryableDNSError(e) {
				return true
			}
		}
	}

	if netErr, ok := err.(net.Error); ok {
		return netErr.Timeout()
	}

	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"timeout",
		"connection reset",
		"connection refused",
		"temporary failure",
		"rate limit",
		"too many requests",
		"throttling",
		"service unavailable",
		"internal server error",
		"bad gateway",
		"gateway timeout",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// fullRecordName joins a provider's bare sub-domain label with its zone
// name. "@" and "" denote the apex.
func fullRecordName(label, domain string) string {
	if label == "@" || label == "" {
		return domain
	}
	return label + "." + domain
}
