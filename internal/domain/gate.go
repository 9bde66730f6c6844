package domain

import "time"

// GateStatus marks whether a gate-entry record is still on premises.
type GateStatus string

const (
	GateIn  GateStatus = "in"
	GateOut GateStatus = "out"
)

// VehicleEntry is a gate log record for a vehicle entering the facility.
type VehicleEntry struct {
	ID            string     `json:"id"`
	VehicleNumber string     `json:"vehicle_number"`
	DriverName    string     `json:"driver_name"`
	DriverPhone   string     `json:"driver_phone"`
	Purpose       string     `json:"purpose"`
	Status        GateStatus `json:"status"`
	EntryTime     time.Time  `json:"entry_time"`
	ExitTime      *time.Time `json:"exit_time,omitempty"`
}

// MaterialEntry is a gate log record for inward/outward material movement.
type MaterialEntry struct {
	ID          string     `json:"id"`
	GRNNumber   string     `json:"grn_number"`
	PONumber    string     `json:"po_number"`
	VendorName  string     `json:"vendor_name"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity"`
	Unit        string     `json:"unit"`
	Direction   string     `json:"direction"`
	Status      GateStatus `json:"status"`
	EntryTime   time.Time  `json:"entry_time"`
	ExitTime    *time.Time `json:"exit_time,omitempty"`
}

// VisitorEntry is a gate log record for a visitor check-in.
type VisitorEntry struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Company      string     `json:"company"`
	Phone        string     `json:"phone"`
	HostName     string     `json:"host_name"`
	Purpose      string     `json:"purpose"`
	BadgeNumber  string     `json:"badge_number"`
	CheckedOut   bool       `json:"checked_out"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}
