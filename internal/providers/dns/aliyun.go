package dns

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	alidns "github.com/alibabacloud-go/alidns-20150109/v4/client"
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	"github.com/alibabacloud-go/tea/tea"

	"github.com/lite-lake/zonevault/internal/domain/entity"
	"github.com/lite-lake/zonevault/internal/domain/retry"
)

const aliyunPageSize = 100

// AliyunProvider paginates with PageNumber/TotalCount. Alidns addresses
// zones by domain name, so the bare domain name doubles as the zone ID.
type AliyunProvider struct {
	client *alidns.Client
}

func NewAliyunProvider(accessKeyID, accessKeySecret string) (*AliyunProvider, error) {
	config := &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}
	config.Endpoint = tea.String("dns.aliyuncs.com")
	client, err := alidns.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("create aliyun dns client: %w", err)
	}
	return &AliyunProvider{client: client}, nil
}

func (p *AliyunProvider) Name() string {
	return "aliyun"
}

func (p *AliyunProvider) ListZones(ctx context.Context, cursor *ZoneCursor) (*ZonePage, error) {
	pageNum := int64(1)
	if cursor != nil {
		pageNum = cursor.Page
	}

	req := &alidns.DescribeDomainsRequest{
		PageNumber: tea.Int64(pageNum),
		PageSize:   tea.Int64(aliyunPageSize),
	}
	resp, err := retry.DoWithResult(ctx, func() (*alidns.DescribeDomainsResponse, error) {
		return p.client.DescribeDomains(req)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	if resp.Body == nil || resp.Body.Domains == nil {
		return nil, ErrInvalidResponse
	}

	total := tea.Int64Value(resp.Body.TotalCount)
	page := &ZonePage{
		Zones: make([]entity.HostedZone, 0, len(resp.Body.Domains.Domain)),
		More:  pageNum*aliyunPageSize < total,
		Next:  ZoneCursor{Page: pageNum + 1},
	}
	for _, d := range resp.Body.Domains.Domain {
		name := tea.StringValue(d.DomainName)
		page.Zones = append(page.Zones, entity.HostedZone{
			ID:          name,
			Name:        entity.NormalizeFQDN(name),
			RecordCount: tea.Int64Value(d.RecordCount),
		})
	}
	return page, nil
}

func (p *AliyunProvider) ListRecords(ctx context.Context, zoneID string, cursor *RecordCursor) (*RecordPage, error) {
	pageNum := int64(1)
	if cursor != nil {
		pageNum = cursor.Page
	}
	domain := strings.TrimSuffix(zoneID, ".")

	req := &alidns.DescribeDomainRecordsRequest{
		DomainName: tea.String(domain),
		PageNumber: tea.Int64(pageNum),
		PageSize:   tea.Int64(aliyunPageSize),
	}
	resp, err := retry.DoWithResult(ctx, func() (*alidns.DescribeDomainRecordsResponse, error) {
		return p.client.DescribeDomainRecords(req)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if resp.Body == nil || resp.Body.DomainRecords == nil {
		return nil, ErrInvalidResponse
	}

	total := tea.Int64Value(resp.Body.TotalCount)
	page := &RecordPage{
		Records: make([]entity.RecordSet, 0, len(resp.Body.DomainRecords.Record)),
		More:    pageNum*aliyunPageSize < total,
		Next:    RecordCursor{Page: pageNum + 1},
	}
	for _, r := range resp.Body.DomainRecords.Record {
		ttl := tea.Int64Value(r.TTL)
		page.Records = append(page.Records, entity.RecordSet{
			Name:   entity.NormalizeFQDN(fullRecordName(tea.StringValue(r.RR), domain)),
			Type:   tea.StringValue(r.Type),
			TTL:    &ttl,
			Values: []string{tea.StringValue(r.Value)},
		})
	}
	return page, nil
}

func (p *AliyunProvider) GetZoneInfo(ctx context.Context, zoneID string) (json.RawMessage, error) {
	req := &alidns.DescribeDomainInfoRequest{
		DomainName: tea.String(strings.TrimSuffix(zoneID, ".")),
	}
	resp, err := retry.DoWithResult(ctx, func() (*alidns.DescribeDomainInfoResponse, error) {
		return p.client.DescribeDomainInfo(req)
	}, retry.WithIsRetryable(IsRetryableDNSError))
	if err != nil {
		return nil, fmt.Errorf("get domain info: %w", err)
	}
	if resp.Body == nil {
		return nil, ErrInvalidResponse
	}

	data, err := json.Marshal(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("marshal domain info: %w", err)
	}
	return data, nil
}
