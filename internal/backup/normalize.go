package backup

import (
	"fmt"
	"strconv"

	"github.com/lite-lake/zonevault/internal/domain/entity"
)

// Normalize flattens one provider record set into the tabular form. An
// alias record set becomes a single synthetic value
// "ALIAS:<target_zone_id>:<target_dns_name>" with no TTL (the provider
// manages it); a standard record set keeps its values in order, all
// sharing the set's TTL. Absent optional attributes stay empty.
func Normalize(zoneID string, rs entity.RecordSet) entity.ResourceRecord {
	record := entity.ResourceRecord{
		ZoneID:   zoneID,
		Name:     rs.Name,
		Type:     rs.Type,
		Region:   rs.Region,
		SetID:    rs.SetIdentifier,
		Failover: rs.Failover,
	}
	if rs.Weight != nil {
		record.Weight = strconv.FormatInt(*rs.Weight, 10)
	}

	if rs.IsAlias() {
		record.Values = []string{
			fmt.Sprintf("ALIAS:%s:%s", rs.Alias.HostedZoneID, rs.Alias.DNSName),
		}
		record.EvaluateHealth = strconv.FormatBool(rs.Alias.EvaluateTargetHealth)
		return record
	}

	if rs.TTL != nil {
		record.TTL = strconv.FormatInt(*rs.TTL, 10)
	}
	record.Values = append(record.Values, rs.Values...)
	return record
}

// NormalizeAll preserves enumeration order; no reordering, no
// deduplication.
func NormalizeAll(zoneID string, sets []entity.RecordSet) []entity.ResourceRecord {
	records := make([]entity.ResourceRecord, 0, len(sets))
	for _, rs := range sets {
		records = append(records, Normalize(zoneID, rs))
	}
	return records
}
