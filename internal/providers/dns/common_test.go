package dns

import (
	"errors"
	"fmt"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o deadline reached" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsRetryableDNSError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "net timeout", err: timeoutErr{}, want: true},
		{name: "throttling", err: errors.New("Throttling: rate exceeded"), want: true},
		{name: "too many requests", err: errors.New("HTTP 429 Too Many Requests"), want: true},
		{name: "service unavailable", err: errors.New("503 Service Unavailable"), want: true},
		{name: "access denied", err: errors.New("AccessDenied: not authorized"), want: false},
		{name: "zone not found", err: fmt.Errorf("lookup: %w", ErrZoneNotFound), want: false},
		{name: "joined with transient", err: errors.Join(errors.New("wrapper"), errors.New("connection reset by peer")), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryableDNSError(tt.err); got != tt.want {
				t.Errorf("IsRetryableDNSError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFullRecordName(t *testing.T) {
	tests := []struct {
		label  string
		domain string
		want   string
	}{
		{"www", "example.com", "www.example.com"},
		{"@", "example.com", "example.com"},
		{"", "example.com", "example.com"},
		{"a.b", "example.com", "a.b.example.com"},
	}

	for _, tt := range tests {
		if got := fullRecordName(tt.label, tt.domain); got != tt.want {
			t.Errorf("fullRecordName(%q, %q) = %q, want %q", tt.label, tt.domain, got, tt.want)
		}
	}
}
