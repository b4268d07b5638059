package dns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v2"
	cfdns "github.com/cloudflare/cloudflare-go/v2/dns"
	"github.com/cloudflare/cloudflare-go/v2/option"
	"github.com/cloudflare/cloudflare-go/v2/zones"

	"github.com/lite-lake/zonevault/internal/domain/entity"
	"github.com/lite-lake/zonevault/internal/domain/retry"
)

const cloudflarePageSize = 50

// CloudflareProvider paginates by page number: the cursor carries the next
// page, and a short page means the listing is exhausted. Cloudflare has no
// alias-variant records, so every record set is standard single-value.
type CloudflareProvider struct {
	client *cloudflare.Client
}

func NewCloudflareProvider(apiToken string) *CloudflareProvider {
	client := cloudflare.NewClient(
		option.WithAPIToken(apiToken),
	)
	return &CloudflareProvider{client: client}
}

func (p *CloudflareProvider) Name() string {
	return "cloudflare"
}

func (p *CloudflareProvider) ListZones(ctx context.Context, cursor *ZoneCursor) (*ZonePage, error) {
	pageNum := int64(1)
	if cursor != nil {
		pageNum = cursor.Page
	}

	resp, err := retry.DoWithResult(ctx, func() (*pageOf[zones.Zone], error) {
		r, err := p.client.Zones.List(ctx, zones.ZoneListParams{
			Page:    cloudflare.F(float64(pageNum)),
			PerPage: cloudflare.F(float64(cloudflarePageSize)),
		})
		if err != nil {
			return nil, err
		}
		return &pageOf[zones.Zone]{Result: r.Result}, nil
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	page := &ZonePage{
		Zones: make([]entity.HostedZone, 0, len(resp.Result)),
		More:  len(resp.Result) == cloudflarePageSize,
		Next:  ZoneCursor{Page: pageNum + 1},
	}
	for _, z := range resp.Result {
		page.Zones = append(page.Zones, entity.HostedZone{
			ID:   z.ID,
			Name: entity.NormalizeFQDN(z.Name),
		})
	}
	return page, nil
}

func (p *CloudflareProvider) ListRecords(ctx context.Context, zoneID string, cursor *RecordCursor) (*RecordPage, error) {
	pageNum := int64(1)
	if cursor != nil {
		pageNum = cursor.Page
	}

	resp, err := retry.DoWithResult(ctx, func() (*pageOf[cfdns.Record], error) {
		r, err := p.client.DNS.Records.List(ctx, cfdns.RecordListParams{
			ZoneID:  cloudflare.F(zoneID),
			Page:    cloudflare.F(float64(pageNum)),
			PerPage: cloudflare.F(float64(cloudflarePageSize)),
		})
		if err != nil {
			return nil, err
		}
		return &pageOf[cfdns.Record]{Result: r.Result}, nil
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	page := &RecordPage{
		Records: make([]entity.RecordSet, 0, len(resp.Result)),
		More:    len(resp.Result) == cloudflarePageSize,
		Next:    RecordCursor{Page: pageNum + 1},
	}
	for _, record := range resp.Result {
		page.Records = append(page.Records, fromCloudflareRecord(record))
	}
	return page, nil
}

func fromCloudflareRecord(record cfdns.Record) entity.RecordSet {
	content := ""
	if str, ok := record.Content.(string); ok {
		content = str
	}
	ttl := int64(record.TTL)
	return entity.RecordSet{
		Name:   entity.NormalizeFQDN(record.Name),
		Type:   string(record.Type),
		TTL:    &ttl,
		Values: []string{content},
	}
}

func (p *CloudflareProvider) GetZoneInfo(ctx context.Context, zoneID string) (json.RawMessage, error) {
	zone, err := retry.DoWithResult(ctx, func() (*zones.Zone, error) {
		return p.client.Zones.Get(ctx, zones.ZoneGetParams{
			ZoneID: cloudflare.F(zoneID),
		})
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}
	if zone == nil {
		return nil, ErrZoneNotFound
	}
	return json.RawMessage(zone.JSON.RawJSON()), nil
}

// pageOf keeps retry.DoWithResult's type parameter concrete across the two
// cloudflare listing shapes.
type pageOf[T any] struct {
	Result []T
}
