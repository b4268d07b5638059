package dns

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lite-lake/zonevault/internal/domain/entity"
)

var (
	ErrZoneNotFound    = errors.New("zone not found")
	ErrInvalidResponse = errors.New("invalid response from provider")
)

// ZoneCursor is the opaque position of a zone listing. Name/ID carry the
// (next DNS name, next zone id) pair of marker-based providers; Page carries
// the next page number of page-based ones. Adapters read only the fields
// they set.
type ZoneCursor struct {
	NextName string
	NextID   string
	Page     int64
}

// RecordCursor is the opaque position of a record listing within one zone.
// NextID disambiguates routing-policy sets that share a name and type
// across a page boundary.
type RecordCursor struct {
	NextName string
	NextType string
	NextID   string
	Page     int64
}

// ZonePage is one provider response. When More is true, Next is the cursor
// for the following call.
type ZonePage struct {
	Zones []entity.HostedZone
	More  bool
	Next  ZoneCursor
}

type RecordPage struct {
	Records []entity.RecordSet
	More    bool
	Next    RecordCursor
}

// Provider is the paginated query capability of a DNS-hosting provider.
// All methods are read-only; a nil cursor starts a fresh enumeration.
// GetZoneInfo returns the provider's zone document as-is so the metadata
// artifact preserves it verbatim.
type Provider interface {
	Name() string
	ListZones(ctx context.Context, cursor *ZoneCursor) (*ZonePage, error)
	ListRecords(ctx context.Context, zoneID string, cursor *RecordCursor) (*RecordPage, error)
	GetZoneInfo(ctx context.Context, zoneID string) (json.RawMessage, error)
}
