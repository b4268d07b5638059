package dns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/lite-lake/zonevault/internal/domain/entity"
	"github.com/lite-lake/zonevault/internal/domain/retry"
)

const (
	route53ZonePageSize   = 100
	route53RecordPageSize = 300
)

// Route53Provider lists hosted zones ordered by name via
// ListHostedZonesByName, whose continuation marker is the (next DNS name,
// next hosted zone id) pair, and record sets via ListResourceRecordSets,
// whose marker is the (next record name, next record type) pair.
type Route53Provider struct {
	client *route53.Client
}

func NewRoute53Provider(ctx context.Context, region string) (*Route53Provider, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Route53Provider{client: route53.NewFromConfig(cfg)}, nil
}

func (p *Route53Provider) Name() string {
	return "route53"
}

func (p *Route53Provider) ListZones(ctx context.Context, cursor *ZoneCursor) (*ZonePage, error) {
	in := &route53.ListHostedZonesByNameInput{
		MaxItems: aws.Int32(route53ZonePageSize),
	}
	if cursor != nil {
		in.DNSName = aws.String(cursor.NextName)
		in.HostedZoneId = aws.String(cursor.NextID)
	}

	out, err := retry.DoWithResult(ctx, func() (*route53.ListHostedZonesByNameOutput, error) {
		return p.client.ListHostedZonesByName(ctx, in)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list hosted zones: %w", err)
	}

	page := &ZonePage{
		Zones: make([]entity.HostedZone, 0, len(out.HostedZones)),
		More:  out.IsTruncated,
		Next: ZoneCursor{
			NextName: aws.ToString(out.NextDNSName),
			NextID:   aws.ToString(out.NextHostedZoneId),
		},
	}
	for _, z := range out.HostedZones {
		zone := entity.HostedZone{
			ID:          aws.ToString(z.Id),
			Name:        entity.NormalizeFQDN(aws.ToString(z.Name)),
			RecordCount: aws.ToInt64(z.ResourceRecordSetCount),
		}
		if z.Config != nil {
			zone.Comment = aws.ToString(z.Config.Comment)
			zone.Private = z.Config.PrivateZone
		}
		page.Zones = append(page.Zones, zone)
	}
	return page, nil
}

func (p *Route53Provider) ListRecords(ctx context.Context, zoneID string, cursor *RecordCursor) (*RecordPage, error) {
	in := route53RecordsInput(zoneID, cursor)

	out, err := retry.DoWithResult(ctx, func() (*route53.ListResourceRecordSetsOutput, error) {
		return p.client.ListResourceRecordSets(ctx, in)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list record sets: %w", err)
	}

	page := &RecordPage{
		Records: make([]entity.RecordSet, 0, len(out.ResourceRecordSets)),
		More:    out.IsTruncated,
		Next: RecordCursor{
			NextName: aws.ToString(out.NextRecordName),
			NextType: string(out.NextRecordType),
			NextID:   aws.ToString(out.NextRecordIdentifier),
		},
	}
	for _, rs := range out.ResourceRecordSets {
		page.Records = append(page.Records, fromRoute53RecordSet(rs))
	}
	return page, nil
}

func (p *Route53Provider) GetZoneInfo(ctx context.Context, zoneID string) (json.RawMessage, error) {
	out, err := retry.DoWithResult(ctx, func() (*route53.GetHostedZoneOutput, error) {
		return p.client.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: aws.String(zoneID)})
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("get hosted zone: %w", err)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal hosted zone info: %w", err)
	}
	return data, nil
}

// route53RecordsInput resumes from all three continuation markers; the
// identifier keeps routing-policy sets that share a name and type from
// being re-listed or skipped across a page boundary.
func route53RecordsInput(zoneID string, cursor *RecordCursor) *route53.ListResourceRecordSetsInput {
	in := &route53.ListResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		MaxItems:     aws.Int32(route53RecordPageSize),
	}
	if cursor != nil {
		in.StartRecordName = aws.String(cursor.NextName)
		in.StartRecordType = r53types.RRType(cursor.NextType)
		if cursor.NextID != "" {
			in.StartRecordIdentifier = aws.String(cursor.NextID)
		}
	}
	return in
}

func fromRoute53RecordSet(rs r53types.ResourceRecordSet) entity.RecordSet {
	set := entity.RecordSet{
		Name: entity.NormalizeFQDN(aws.ToString(rs.Name)),
		Type: string(rs.Type),
		TTL:  rs.TTL,
		RoutingPolicy: entity.RoutingPolicy{
			Region:        string(rs.Region),
			Weight:        rs.Weight,
			SetIdentifier: aws.ToString(rs.SetIdentifier),
			Failover:      string(rs.Failover),
			HealthCheckID: aws.ToString(rs.HealthCheckId),
		},
	}
	if rs.AliasTarget != nil {
		set.Alias = &entity.AliasTarget{
			HostedZoneID:         aws.ToString(rs.AliasTarget.HostedZoneId),
			DNSName:              aws.ToString(rs.AliasTarget.DNSName),
			EvaluateTargetHealth: rs.AliasTarget.EvaluateTargetHealth,
		}
		return set
	}
	for _, rr := range rs.ResourceRecords {
		set.Values = append(set.Values, aws.ToString(rr.Value))
	}
	return set
}
