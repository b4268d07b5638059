package entity

import "strings"

// HostedZone is a read-only snapshot of one provider zone, fetched once per
// run. ID is the provider-assigned identifier as returned by the provider
// (Route53 keeps its "/hostedzone/" path prefix here; it is stripped only
// when storage keys are built). Name is trailing-dot normalized.
type HostedZone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Comment     string `json:"comment,omitempty"`
	Private     bool   `json:"private,omitempty"`
	RecordCount int64  `json:"record_count,omitempty"`
}

// NormalizeFQDN appends the trailing dot providers like Cloudflare omit.
func NormalizeFQDN(name string) string {
	if name == "" || strings.HasSuffix(name, ".") {
		return name
	}
	return name + "."
}
