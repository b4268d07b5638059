package entity

import (
	"errors"
	"testing"
)

func TestNormalizeFQDN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com."},
		{"example.com.", "example.com."},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeFQDN(tt.in); got != tt.want {
			t.Errorf("NormalizeFQDN(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunReport(t *testing.T) {
	report := RunReport{
		StartedAt: "2024-01-01T00:00:00Z",
		Succeeded: []string{"Z1", "Z2"},
		Failed: []ZoneFailure{
			{ZoneID: "Z3", ZoneName: "broken.example.", Err: errors.New("boom")},
		},
	}

	if got := report.TotalZones(); got != 3 {
		t.Errorf("TotalZones() = %d, want 3", got)
	}
	if !report.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if got := report.FailedZoneIDs(); len(got) != 1 || got[0] != "Z3" {
		t.Errorf("FailedZoneIDs() = %v", got)
	}

	empty := RunReport{}
	if empty.HasFailures() {
		t.Error("empty report reports failures")
	}
}

func TestRecordSetIsAlias(t *testing.T) {
	standard := RecordSet{Name: "a.example.", Type: "A", Values: []string{"192.0.2.1"}}
	if standard.IsAlias() {
		t.Error("standard record set reported as alias")
	}

	alias := RecordSet{
		Name:  "example.com.",
		Type:  "A",
		Alias: &AliasTarget{HostedZoneID: "Z2", DNSName: "target.example."},
	}
	if !alias.IsAlias() {
		t.Error("alias record set not reported as alias")
	}
}
