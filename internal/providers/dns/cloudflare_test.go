package dns

import (
	"testing"

	cfdns "github.com/cloudflare/cloudflare-go/v2/dns"
)

func TestFromCloudflareRecord(t *testing.T) {
	record := cfdns.Record{
		Name:    "www.example.com",
		Type:    "A",
		TTL:     300,
		Content: "192.0.2.1",
	}

	set := fromCloudflareRecord(record)

	if set.Name != "www.example.com." {
		t.Errorf("Name = %s, want trailing-dot form", set.Name)
	}
	if set.Type != "A" {
		t.Errorf("Type = %s", set.Type)
	}
	if set.TTL == nil || *set.TTL != 300 {
		t.Errorf("TTL = %v, want 300", set.TTL)
	}
	if len(set.Values) != 1 || set.Values[0] != "192.0.2.1" {
		t.Errorf("Values = %v", set.Values)
	}
}

func TestFromCloudflareRecord_NonStringContent(t *testing.T) {
	record := cfdns.Record{
		Name: "data.example.com",
		Type: "TXT",
		TTL:  1,
	}

	set := fromCloudflareRecord(record)
	if len(set.Values) != 1 || set.Values[0] != "" {
		t.Errorf("Values = %v, want single empty value for absent content", set.Values)
	}
}
