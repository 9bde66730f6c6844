// Package gatelog persists gate-entry records (vehicles, materials,
// visitors) to a local JSON file. The store is single-writer: every
// mutation rewrites the file synchronously under a lock.
package gatelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/procuredash/backend-go/internal/domain"
)

// Store is a file-backed gate log.
type Store struct {
	path string

	mu   sync.Mutex
	data snapshot
}

// NewStore loads the gate log at path, creating an empty log when the file
// does not exist yet. Malformed stored data is an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read gate log %s: %w", path, err)
	}

	s.data, err = decodeSnapshot(raw)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) flush() error {
	data, err := encodeSnapshot(s.data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create gate log directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write gate log %s: %w", s.path, err)
	}
	return nil
}

// nextID produces the next sequential id for a prefix, e.g. "VEH-0007".
func nextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		var n int
		if _, err := fmt.Sscanf(strings.TrimPrefix(id, prefix+"-"), "%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, max+1)
}

// AddVehicle records a vehicle entering the gate at the given time and
// returns the stored record with its generated id.
func (s *Store) AddVehicle(entry domain.VehicleEntry, at time.Time) (domain.VehicleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.data.Vehicles))
	for _, v := range s.data.Vehicles {
		ids = append(ids, v.ID)
	}
	entry.ID = nextID("VEH", ids)
	entry.Status = domain.GateIn
	entry.EntryTime = at
	entry.ExitTime = nil

	s.data.Vehicles = append(s.data.Vehicles, entry)
	if err := s.flush(); err != nil {
		return domain.VehicleEntry{}, err
	}
	return entry, nil
}

// CheckOutVehicle marks a vehicle as departed at the given time.
func (s *Store) CheckOutVehicle(id string, at time.Time) (domain.VehicleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Vehicles {
		if s.data.Vehicles[i].ID != id {
			continue
		}
		if s.data.Vehicles[i].Status == domain.GateOut {
			return domain.VehicleEntry{}, fmt.Errorf("vehicle %s already checked out", id)
		}
		s.data.Vehicles[i].Status = domain.GateOut
		exit := at
		s.data.Vehicles[i].ExitTime = &exit
		if err := s.flush(); err != nil {
			return domain.VehicleEntry{}, err
		}
		return s.data.Vehicles[i], nil
	}
	return domain.VehicleEntry{}, fmt.Errorf("vehicle entry %s not found", id)
}

// Vehicles returns all vehicle entries, newest first.
func (s *Store) Vehicles() []domain.VehicleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.VehicleEntry, len(s.data.Vehicles))
	copy(out, s.data.Vehicles)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// AddMaterial records a material movement through the gate.
func (s *Store) AddMaterial(entry domain.MaterialEntry, at time.Time) (domain.MaterialEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.data.Materials))
	for _, m := range s.data.Materials {
		ids = append(ids, m.ID)
	}
	entry.ID = nextID("MAT", ids)
	entry.Status = domain.GateIn
	entry.EntryTime = at
	entry.ExitTime = nil

	s.data.Materials = append(s.data.Materials, entry)
	if err := s.flush(); err != nil {
		return domain.MaterialEntry{}, err
	}
	return entry, nil
}

// CheckOutMaterial marks a material entry as having left the gate.
func (s *Store) CheckOutMaterial(id string, at time.Time) (domain.MaterialEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Materials {
		if s.data.Materials[i].ID != id {
			continue
		}
		if s.data.Materials[i].Status == domain.GateOut {
			return domain.MaterialEntry{}, fmt.Errorf("material entry %s already checked out", id)
		}
		s.data.Materials[i].Status = domain.GateOut
		exit := at
		s.data.Materials[i].ExitTime = &exit
		if err := s.flush(); err != nil {
			return domain.MaterialEntry{}, err
		}
		return s.data.Materials[i], nil
	}
	return domain.MaterialEntry{}, fmt.Errorf("material entry %s not found", id)
}

// Materials returns all material entries, newest first.
func (s *Store) Materials() []domain.MaterialEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.MaterialEntry, len(s.data.Materials))
	copy(out, s.data.Materials)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// AddVisitor records a visitor check-in.
func (s *Store) AddVisitor(entry domain.VisitorEntry, at time.Time) (domain.VisitorEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.data.Visitors))
	for _, v := range s.data.Visitors {
		ids = append(ids, v.ID)
	}
	entry.ID = nextID("VIS", ids)
	entry.CheckedOut = false
	entry.CheckInTime = at
	entry.CheckOutTime = nil

	s.data.Visitors = append(s.data.Visitors, entry)
	if err := s.flush(); err != nil {
		return domain.VisitorEntry{}, err
	}
	return entry, nil
}

// CheckOutVisitor marks a visitor as checked out at the given time.
func (s *Store) CheckOutVisitor(id string, at time.Time) (domain.VisitorEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Visitors {
		if s.data.Visitors[i].ID != id {
			continue
		}
		if s.data.Visitors[i].CheckedOut {
			return domain.VisitorEntry{}, fmt.Errorf("visitor %s already checked out", id)
		}
		s.data.Visitors[i].CheckedOut = true
		out := at
		s.data.Visitors[i].CheckOutTime = &out
		if err := s.flush(); err != nil {
			return domain.VisitorEntry{}, err
		}
		return s.data.Visitors[i], nil
	}
	return domain.VisitorEntry{}, fmt.Errorf("visitor entry %s not found", id)
}

// Visitors returns all visitor entries, newest first.
func (s *Store) Visitors() []domain.VisitorEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.VisitorEntry, len(s.data.Visitors))
	copy(out, s.data.Visitors)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
