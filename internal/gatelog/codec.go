package gatelog

import (
	"encoding/json"
	"fmt"

	"github.com/procuredash/backend-go/internal/domain"
)

// snapshot is the on-disk shape of the gate log. Timestamps serialize as
// RFC 3339 with nanosecond precision, so entry and exit times survive a
// round trip exactly.
type snapshot struct {
	Vehicles  []domain.VehicleEntry  `json:"vehicles"`
	Materials []domain.MaterialEntry `json:"materials"`
	Visitors  []domain.VisitorEntry  `json:"visitors"`
}

// encodeSnapshot serializes the gate log for storage.
func encodeSnapshot(s snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode gate log: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses stored gate log data. Malformed input is an error,
// never silently coerced into zero values.
func decodeSnapshot(data []byte) (snapshot, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return snapshot{}, fmt.Errorf("decode gate log: %w", err)
	}

	for _, v := range s.Vehicles {
		if v.ID == "" || v.EntryTime.IsZero() {
			return snapshot{}, fmt.Errorf("decode gate log: vehicle entry missing id or entry time")
		}
	}
	for _, m := range s.Materials {
		if m.ID == "" || m.EntryTime.IsZero() {
			return snapshot{}, fmt.Errorf("decode gate log: material entry missing id or entry time")
		}
	}
	for _, v := range s.Visitors {
		if v.ID == "" || v.CheckInTime.IsZero() {
			return snapshot{}, fmt.Errorf("decode gate log: visitor entry missing id or check-in time")
		}
	}

	return s, nil
}
