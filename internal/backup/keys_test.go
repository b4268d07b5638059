package backup

import (
	"testing"

	"github.com/lite-lake/zonevault/internal/domain/entity"
)

func TestBareZoneID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"/hostedzone/Z123", "Z123"},
		{"Z123", "Z123"},
		{"example.com", "example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := BareZoneID(tt.id); got != tt.want {
			t.Errorf("BareZoneID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestArtifactKeys(t *testing.T) {
	zone := entity.HostedZone{ID: "/hostedzone/Z123", Name: "example.com."}
	runTS := "2024-01-01T00:00:00Z"

	prefix := ZonePrefix(runTS, zone)
	if want := "2024-01-01T00:00:00Z/example.com_Z123/"; prefix != want {
		t.Fatalf("ZonePrefix() = %q, want %q", prefix, want)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"csv", RecordsCSVKey(prefix, zone), "2024-01-01T00:00:00Z/example.com_Z123/example.com.csv"},
		{"json", RecordsJSONKey(prefix, zone), "2024-01-01T00:00:00Z/example.com_Z123/example.com.json"},
		{"zone info", ZoneInfoKey(prefix, zone), "2024-01-01T00:00:00Z/example.com_Z123/zone_info_example.com.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("key = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestZonePrefix_BareID(t *testing.T) {
	zone := entity.HostedZone{ID: "example.org", Name: "example.org."}
	got := ZonePrefix("2024-06-01T12:00:00Z", zone)
	if want := "2024-06-01T12:00:00Z/example.org_example.org/"; got != want {
		t.Errorf("ZonePrefix() = %q, want %q", got, want)
	}
}
