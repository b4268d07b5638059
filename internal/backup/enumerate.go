package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/lite-lake/zonevault/internal/domain"
	"github.com/lite-lake/zonevault/internal/domain/entity"
	"github.com/lite-lake/zonevault/internal/providers/dns"
)

// EnumerateZones drains the provider's zone listing page by page and
// returns the concatenation in the order received. Any page error aborts
// the enumeration: a partial zone list would silently skip later zones.
func EnumerateZones(ctx context.Context, provider dns.Provider, callTimeout time.Duration) ([]entity.HostedZone, error) {
	var (
		zones  []entity.HostedZone
		cursor *dns.ZoneCursor
	)
	for {
		page, err := listZonesPage(ctx, provider, cursor, callTimeout)
		if err != nil {
			return nil, fmt.Errorf("%w: list zones: %v", domain.ErrEnumeration, err)
		}
		zones = append(zones, page.Zones...)
		if !page.More {
			return zones, nil
		}
		if cursor != nil && page.Next == *cursor {
			return nil, fmt.Errorf("%w: zone pagination stalled at cursor %+v", domain.ErrEnumeration, page.Next)
		}
		next := page.Next
		cursor = &next
	}
}

// EnumerateRecords drains one zone's record listing, same discipline as
// EnumerateZones but scoped to the zone.
func EnumerateRecords(ctx context.Context, provider dns.Provider, zoneID string, callTimeout time.Duration) ([]entity.RecordSet, error) {
	var (
		records []entity.RecordSet
		cursor  *dns.RecordCursor
	)
	for {
		page, err := listRecordsPage(ctx, provider, zoneID, cursor, callTimeout)
		if err != nil {
			return nil, fmt.Errorf("%w: list records: %v", domain.ErrEnumeration, err)
		}
		records = append(records, page.Records...)
		if !page.More {
			return records, nil
		}
		if cursor != nil && page.Next == *cursor {
			return nil, fmt.Errorf("%w: record pagination stalled at cursor %+v", domain.ErrEnumeration, page.Next)
		}
		next := page.Next
		cursor = &next
	}
}

func listZonesPage(ctx context.Context, provider dns.Provider, cursor *dns.ZoneCursor, callTimeout time.Duration) (*dns.ZonePage, error) {
	cctx, cancel := callContext(ctx, callTimeout)
	defer cancel()
	return provider.ListZones(cctx, cursor)
}

func listRecordsPage(ctx context.Context, provider dns.Provider, zoneID string, cursor *dns.RecordCursor, callTimeout time.Duration) (*dns.RecordPage, error) {
	cctx, cancel := callContext(ctx, callTimeout)
	defer cancel()
	return provider.ListRecords(cctx, zoneID, cursor)
}

func callContext(ctx context.Context, callTimeout time.Duration) (context.Context, context.CancelFunc) {
	if callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, callTimeout)
}
