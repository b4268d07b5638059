package backup

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/lite-lake/zonevault/internal/domain"
	"github.com/lite-lake/zonevault/internal/domain/entity"
)

var csvHeader = []string{
	"NAME", "TYPE", "VALUE", "TTL", "REGION", "WEIGHT", "SETID", "FAILOVER", "EVALUATE_HEALTH",
}

// RecordsCSV renders normalized records as one row per (record, value)
// pair: a 3-value record yields 3 rows sharing every column but VALUE.
func RecordsCSV(records []entity.ResourceRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: write csv header: %v", domain.ErrSerialization, err)
	}
	for _, record := range records {
		for _, value := range record.Values {
			row := []string{
				record.Name,
				record.Type,
				value,
				record.TTL,
				record.Region,
				record.Weight,
				record.SetID,
				record.Failover,
				record.EvaluateHealth,
			}
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("%w: write csv row for %s: %v", domain.ErrSerialization, record.Name, err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: flush csv: %v", domain.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// RecordsJSON renders the raw record sets, one entry per set regardless of
// value count, array order preserved.
func RecordsJSON(sets []entity.RecordSet) ([]byte, error) {
	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: marshal records: %v", domain.ErrSerialization, err)
	}
	return data, nil
}

// ZoneInfoJSON pretty-prints the provider's zone document without touching
// its field set.
func ZoneInfoJSON(info json.RawMessage) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, info, "", "  "); err != nil {
		return nil, fmt.Errorf("%w: indent zone info: %v", domain.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}
