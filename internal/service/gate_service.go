package service

import (
	"time"

	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/gatelog"
)

// GateService records gate entries for vehicles, materials and visitors.
// Timestamps are stamped here so the store stays deterministic in tests.
type GateService struct {
	store *gatelog.Store
	now   func() time.Time
}

func NewGateService(store *gatelog.Store) *GateService {
	return &GateService{store: store, now: time.Now}
}

func (s *GateService) RegisterVehicle(entry domain.VehicleEntry) (domain.VehicleEntry, error) {
	return s.store.AddVehicle(entry, s.now())
}

func (s *GateService) CheckOutVehicle(id string) (domain.VehicleEntry, error) {
	return s.store.CheckOutVehicle(id, s.now())
}

func (s *GateService) Vehicles() []domain.VehicleEntry {
	return s.store.Vehicles()
}

func (s *GateService) RegisterMaterial(entry domain.MaterialEntry) (domain.MaterialEntry, error) {
	return s.store.AddMaterial(entry, s.now())
}

func (s *GateService) CheckOutMaterial(id string) (domain.MaterialEntry, error) {
	return s.store.CheckOutMaterial(id, s.now())
}

func (s *GateService) Materials() []domain.MaterialEntry {
	return s.store.Materials()
}

func (s *GateService) RegisterVisitor(entry domain.VisitorEntry) (domain.VisitorEntry, error) {
	return s.store.AddVisitor(entry, s.now())
}

func (s *GateService) CheckOutVisitor(id string) (domain.VisitorEntry, error) {
	return s.store.CheckOutVisitor(id, s.now())
}

func (s *GateService) Visitors() []domain.VisitorEntry {
	return s.store.Visitors()
}
