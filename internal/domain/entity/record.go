package entity

// AliasTarget points a record at another provider resource instead of a
// literal value. The provider manages the effective TTL.
type AliasTarget struct {
	HostedZoneID         string `json:"hosted_zone_id"`
	DNSName              string `json:"dns_name"`
	EvaluateTargetHealth bool   `json:"evaluate_target_health"`
}

// RoutingPolicy holds the optional record-set level routing attributes.
// Absent attributes stay nil/empty; they are never inferred.
type RoutingPolicy struct {
	Region        string `json:"region,omitempty"`
	Weight        *int64 `json:"weight,omitempty"`
	SetIdentifier string `json:"set_identifier,omitempty"`
	Failover      string `json:"failover,omitempty"`
	HealthCheckID string `json:"health_check_id,omitempty"`
}

// RecordSet is one record set exactly as the provider returned it. Values
// and Alias are mutually exclusive: standard records carry one or more
// values sharing a TTL, alias records carry only the alias target.
type RecordSet struct {
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	TTL    *int64       `json:"ttl,omitempty"`
	Values []string     `json:"values,omitempty"`
	Alias  *AliasTarget `json:"alias_target,omitempty"`
	RoutingPolicy
}

// IsAlias reports whether the record set carries an alias target.
func (rs *RecordSet) IsAlias() bool {
	return rs.Alias != nil
}

// ResourceRecord is the flat, normalized form fed to the tabular serializer.
// Optional attributes are empty strings when the provider did not supply
// them. An alias record set normalizes to a single synthetic value of the
// form "ALIAS:<target_zone_id>:<target_dns_name>".
type ResourceRecord struct {
	ZoneID         string
	Name           string
	Type           string
	Values         []string
	TTL            string
	Region         string
	Weight         string
	SetID          string
	Failover       string
	EvaluateHealth string
}
