package dns

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	dnspod "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/dnspod/v20210323"

	"github.com/lite-lake/zonevault/internal/domain/entity"
	"github.com/lite-lake/zonevault/internal/domain/retry"
)

const tencentPageSize = 100

// TencentProvider paginates with Offset/Limit; the cursor's Page counts
// full pages already consumed. DNSPod addresses zones by domain name, so
// the bare domain name doubles as the zone ID.
type TencentProvider struct {
	client *dnspod.Client
}

func NewTencentProvider(secretID, secretKey string) (*TencentProvider, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "dnspod.tencentcloudapi.com"
	client, err := dnspod.NewClient(credential, "", cpf)
	if err != nil {
		return nil, fmt.Errorf("create tencent dns client: %w", err)
	}
	return &TencentProvider{client: client}, nil
}

func (p *TencentProvider) Name() string {
	return "tencent"
}

func (p *TencentProvider) ListZones(ctx context.Context, cursor *ZoneCursor) (*ZonePage, error) {
	pageNum := int64(0)
	if cursor != nil {
		pageNum = cursor.Page
	}

	req := dnspod.NewDescribeDomainListRequest()
	req.Offset = common.Int64Ptr(pageNum * tencentPageSize)
	req.Limit = common.Int64Ptr(tencentPageSize)

	resp, err := retry.DoWithResult(ctx, func() (*dnspod.DescribeDomainListResponse, error) {
		return p.client.DescribeDomainList(req)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	if resp.Response == nil {
		return nil, ErrInvalidResponse
	}

	page := &ZonePage{
		Zones: make([]entity.HostedZone, 0, len(resp.Response.DomainList)),
		More:  len(resp.Response.DomainList) == tencentPageSize,
		Next:  ZoneCursor{Page: pageNum + 1},
	}
	for _, d := range resp.Response.DomainList {
		if d == nil || d.Name == nil {
			continue
		}
		zone := entity.HostedZone{
			ID:   *d.Name,
			Name: entity.NormalizeFQDN(*d.Name),
		}
		if d.RecordCount != nil {
			zone.RecordCount = int64(*d.RecordCount)
		}
		page.Zones = append(page.Zones, zone)
	}
	return page, nil
}

func (p *TencentProvider) ListRecords(ctx context.Context, zoneID string, cursor *RecordCursor) (*RecordPage, error) {
	pageNum := int64(0)
	if cursor != nil {
		pageNum = cursor.Page
	}
	domain := strings.TrimSuffix(zoneID, ".")

	req := dnspod.NewDescribeRecordListRequest()
	req.Domain = common.StringPtr(domain)
	req.Offset = common.Uint64Ptr(uint64(pageNum) * tencentPageSize)
	req.Limit = common.Uint64Ptr(tencentPageSize)

	resp, err := retry.DoWithResult(ctx, func() (*dnspod.DescribeRecordListResponse, error) {
		return p.client.DescribeRecordList(req)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if resp.Response == nil {
		return nil, ErrInvalidResponse
	}

	page := &RecordPage{
		Records: make([]entity.RecordSet, 0, len(resp.Response.RecordList)),
		More:    len(resp.Response.RecordList) == tencentPageSize,
		Next:    RecordCursor{Page: pageNum + 1},
	}
	for _, r := range resp.Response.RecordList {
		if r == nil {
			continue
		}
		page.Records = append(page.Records, fromTencentRecord(r, domain))
	}
	return page, nil
}

func fromTencentRecord(r *dnspod.RecordListItem, domain string) entity.RecordSet {
	label := ""
	if r.Name != nil {
		label = *r.Name
	}
	set := entity.RecordSet{
		Name: entity.NormalizeFQDN(fullRecordName(label, domain)),
	}
	if r.Type != nil {
		set.Type = *r.Type
	}
	if r.TTL != nil {
		ttl := int64(*r.TTL)
		set.TTL = &ttl
	}
	value := ""
	if r.Value != nil {
		value = *r.Value
	}
	set.Values = []string{value}
	if r.Weight != nil {
		weight := int64(*r.Weight)
		set.Weight = &weight
	}
	return set
}

func (p *TencentProvider) GetZoneInfo(ctx context.Context, zoneID string) (json.RawMessage, error) {
	req := dnspod.NewDescribeDomainRequest()
	req.Domain = common.StringPtr(strings.TrimSuffix(zoneID, "."))

	resp, err := retry.DoWithResult(ctx, func() (*dnspod.DescribeDomainResponse, error) {
		return p.client.DescribeDomain(req)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("get domain info: %w", err)
	}
	if resp.Response == nil || resp.Response.DomainInfo == nil {
		return nil, ErrInvalidResponse
	}

	data, err := json.Marshal(resp.Response.DomainInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal domain info: %w", err)
	}
	return data, nil
}
