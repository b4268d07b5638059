package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lite-lake/zonevault/internal/domain"
	"github.com/lite-lake/zonevault/internal/domain/entity"
	"github.com/lite-lake/zonevault/internal/infrastructure/logger"
	"github.com/lite-lake/zonevault/internal/providers/dns"
	"github.com/lite-lake/zonevault/internal/storage"
)

// Orchestrator drives one full backup run: enumerate zones, then per zone
// enumerate records, fetch metadata, serialize, and upload under the run's
// key namespace. Zones are processed sequentially in enumeration order;
// one zone's failure never aborts the rest.
type Orchestrator struct {
	provider    dns.Provider
	store       storage.ObjectStore
	callTimeout time.Duration
	now         func() time.Time
}

type Option func(*Orchestrator)

func WithCallTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.callTimeout = d
	}
}

// WithClock overrides the run-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

func NewOrchestrator(provider dns.Provider, store storage.ObjectStore, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		provider:    provider,
		store:       store,
		callTimeout: 30 * time.Second,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run performs a full backup of every zone visible to the provider. The
// returned error is non-nil only for run-fatal conditions (zone discovery
// failed); per-zone failures land in the report instead.
func (o *Orchestrator) Run(ctx context.Context) (*entity.RunReport, error) {
	runTS := o.now().UTC().Format(time.RFC3339)
	log := logger.FromContext(ctx).With("run", runTS, "provider", o.provider.Name())
	ctx = logger.ContextWithLogger(ctx, log)

	zones, err := EnumerateZones(ctx, o.provider, o.callTimeout)
	if err != nil {
		return nil, fmt.Errorf("enumerating zones: %w", errors.Join(domain.ErrFatalRun, err))
	}
	log.Info("zone discovery complete", "zones", len(zones))

	report := &entity.RunReport{StartedAt: runTS}
	for _, zone := range zones {
		if ctx.Err() != nil {
			// Run deadline hit: report the rest as failed rather
			// than hang on further provider calls.
			report.Failed = append(report.Failed, entity.ZoneFailure{
				ZoneID:   zone.ID,
				ZoneName: zone.Name,
				Err:      domain.WrapZone(zone.ID, ctx.Err()),
			})
			continue
		}

		zctx := logger.WithZone(ctx, zone.ID, zone.Name)
		err := logger.TimedOperation(zctx, "backup_zone", func() error {
			return o.backupZone(zctx, runTS, zone)
		})
		if err != nil {
			report.Failed = append(report.Failed, entity.ZoneFailure{
				ZoneID:   zone.ID,
				ZoneName: zone.Name,
				Err:      domain.WrapZone(zone.ID, err),
			})
			continue
		}
		report.Succeeded = append(report.Succeeded, zone.ID)
	}

	log.Info("run complete",
		"zones", report.TotalZones(),
		"succeeded", len(report.Succeeded),
		"failed", len(report.Failed))
	return report, nil
}

func (o *Orchestrator) backupZone(ctx context.Context, runTS string, zone entity.HostedZone) error {
	sets, err := EnumerateRecords(ctx, o.provider, zone.ID, o.callTimeout)
	if err != nil {
		return err
	}

	info, err := o.getZoneInfo(ctx, zone.ID)
	if err != nil {
		return fmt.Errorf("%w: get zone info: %v", domain.ErrEnumeration, err)
	}

	records := NormalizeAll(zone.ID, sets)

	csvData, err := RecordsCSV(records)
	if err != nil {
		return err
	}
	jsonData, err := RecordsJSON(sets)
	if err != nil {
		return err
	}
	infoData, err := ZoneInfoJSON(info)
	if err != nil {
		return err
	}

	prefix := ZonePrefix(runTS, zone)
	artifacts := []struct {
		key  string
		data []byte
	}{
		{RecordsCSVKey(prefix, zone), csvData},
		{RecordsJSONKey(prefix, zone), jsonData},
		{ZoneInfoKey(prefix, zone), infoData},
	}
	for _, a := range artifacts {
		if err := o.put(ctx, a.key, a.data); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrStorage, err)
		}
	}

	logger.FromContext(ctx).Info("zone backed up",
		"records", len(sets),
		"prefix", prefix)
	return nil
}

func (o *Orchestrator) getZoneInfo(ctx context.Context, zoneID string) ([]byte, error) {
	cctx, cancel := callContext(ctx, o.callTimeout)
	defer cancel()
	return o.provider.GetZoneInfo(cctx, zoneID)
}

func (o *Orchestrator) put(ctx context.Context, key string, data []byte) error {
	cctx, cancel := callContext(ctx, o.callTimeout)
	defer cancel()
	return o.store.Put(cctx, key, data)
}
