package backup

import (
	"strings"

	"github.com/lite-lake/zonevault/internal/domain/entity"
)

// Storage key layout, per run timestamp T and zone:
//
//	T/<zone-name-without-trailing-dot>_<bare-zone-id>/<zone-name>csv
//	T/<zone-name-without-trailing-dot>_<bare-zone-id>/<zone-name>json
//	T/<zone-name-without-trailing-dot>_<bare-zone-id>/zone_info_<zone-name>json
//
// The object-name segment keeps the zone's trailing dot and appends the
// extension without a separator, so zone "example.com." yields
// "example.com.csv". Existing backups use this convention; do not change
// it without migrating them.

// BareZoneID strips a provider's path-style prefix (Route53 returns ids
// like "/hostedzone/Z123") down to the bare identifier.
func BareZoneID(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// ZonePrefix is the run- and zone-scoped key prefix every artifact of the
// zone lives under, trailing slash included.
func ZonePrefix(runTS string, zone entity.HostedZone) string {
	folder := strings.TrimSuffix(zone.Name, ".") + "_" + BareZoneID(zone.ID)
	return runTS + "/" + folder + "/"
}

func RecordsCSVKey(prefix string, zone entity.HostedZone) string {
	return prefix + zone.Name + "csv"
}

func RecordsJSONKey(prefix string, zone entity.HostedZone) string {
	return prefix + zone.Name + "json"
}

func ZoneInfoKey(prefix string, zone entity.HostedZone) string {
	return prefix + "zone_info_" + zone.Name + "json"
}
