package domain

import "strings"

var urgencyRank = map[string]int{
	"critical": 0,
	"high":     1,
	"medium":   2,
	"low":      3,
}

// UrgencyRank returns a sortable rank for an urgency label (critical first).
// Unknown labels sort last.
func UrgencyRank(urgency string) int {
	if r, ok := urgencyRank[strings.ToLower(urgency)]; ok {
		return r
	}
	return len(urgencyRank)
}

var vendorStatusLabels = map[VendorStatus]string{
	VendorPending:           "Pending",
	VendorDocumentsPending:  "Documents Pending",
	VendorDocumentsApproved: "Documents Approved",
	VendorPendingApproval:   "Pending Approval",
	VendorApproved:          "Approved",
	VendorActive:            "Active",
	VendorRejected:          "Rejected",
	VendorInactive:          "Inactive",
	VendorBlocked:           "Blocked",
}

// VendorStatusLabel returns a human-readable label for a vendor status.
func VendorStatusLabel(status VendorStatus) string {
	if label, ok := vendorStatusLabels[status]; ok {
		return label
	}
	return "Unknown"
}

var vendorStatusCodes = map[string]VendorStatus{
	"pending":            VendorPending,
	"documents_pending":  VendorDocumentsPending,
	"documents_approved": VendorDocumentsApproved,
	"pending_approval":   VendorPendingApproval,
	"approved":           VendorApproved,
	"active":             VendorActive,
	"rejected":           VendorRejected,
	"inactive":           VendorInactive,
	"blocked":            VendorBlocked,
}

// ParseVendorStatus returns the status for a given label (case-insensitive).
func ParseVendorStatus(label string) (VendorStatus, bool) {
	status, ok := vendorStatusCodes[strings.ToLower(strings.TrimSpace(label))]
	return status, ok
}

var shipmentStatusLabels = map[ShipmentStatus]string{
	ShipmentPending:        "Pending",
	ShipmentPickedUp:       "Picked Up",
	ShipmentInTransit:      "In Transit",
	ShipmentOutForDelivery: "Out for Delivery",
	ShipmentDelivered:      "Delivered",
}

// ShipmentStatusLabel returns a human-readable label for a shipment status.
func ShipmentStatusLabel(status ShipmentStatus) string {
	if label, ok := shipmentStatusLabels[status]; ok {
		return label
	}
	return "Unknown"
}
