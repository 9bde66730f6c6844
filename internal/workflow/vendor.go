// Package workflow implements the vendor approval state machine and the
// document review sub-machine. Transitions are validated here; persistence
// and history logging belong to the service layer.
package workflow

import (
	"fmt"
	"strings"

	"github.com/procuredash/backend-go/internal/domain"
)

// Workflow actions on a vendor record.
const (
	ActionSubmitDocuments   = "submit_documents"
	ActionCompleteDocReview = "complete_document_review"
	ActionRequestApproval   = "request_approval"
	ActionApprove           = "approve"
	ActionActivate          = "activate"
	ActionReject            = "reject"
	ActionDeactivate        = "deactivate"
	ActionBlock             = "block"
)

// ReasonDocumentsNotApproved is surfaced when the approval guard fails.
const ReasonDocumentsNotApproved = "All documents must be approved first."

// transitions maps each action to its required source state and target.
// Reject is handled separately because it is valid from several states.
var transitions = map[string]struct {
	from domain.VendorStatus
	to   domain.VendorStatus
}{
	ActionSubmitDocuments:   {domain.VendorPending, domain.VendorDocumentsPending},
	ActionCompleteDocReview: {domain.VendorDocumentsPending, domain.VendorDocumentsApproved},
	ActionRequestApproval:   {domain.VendorDocumentsApproved, domain.VendorPendingApproval},
	ActionApprove:           {domain.VendorPendingApproval, domain.VendorApproved},
	ActionActivate:          {domain.VendorApproved, domain.VendorActive},
	ActionDeactivate:        {domain.VendorActive, domain.VendorInactive},
	ActionBlock:             {domain.VendorActive, domain.VendorBlocked},
}

// preActiveStates are the states from which reject is reachable.
var preActiveStates = map[domain.VendorStatus]bool{
	domain.VendorPending:           true,
	domain.VendorDocumentsPending:  true,
	domain.VendorDocumentsApproved: true,
	domain.VendorPendingApproval:   true,
	domain.VendorApproved:          true,
}

// docGuardActions require every vendor document to be approved.
var docGuardActions = map[string]bool{
	ActionCompleteDocReview: true,
	ActionApprove:           true,
}

func allDocumentsApproved(docs domain.DocumentSummary) bool {
	return docs.Total > 0 && docs.Approved == docs.Total
}

// Transition validates an action against the current vendor status and the
// document approval summary, returning the resulting status.
// Reject requires a non-empty reason.
func Transition(status domain.VendorStatus, action string, reason string, docs domain.DocumentSummary) (domain.VendorStatus, error) {
	if action == ActionReject {
		if !preActiveStates[status] {
			return "", fmt.Errorf("cannot reject a vendor in status %q", status)
		}
		if strings.TrimSpace(reason) == "" {
			return "", fmt.Errorf("rejection requires a reason")
		}
		return domain.VendorRejected, nil
	}

	t, ok := transitions[action]
	if !ok {
		return "", fmt.Errorf("unknown workflow action %q", action)
	}
	if status != t.from {
		return "", fmt.Errorf("action %q not available from status %q", action, status)
	}
	if docGuardActions[action] && !allDocumentsApproved(docs) {
		return "", fmt.Errorf("%s", ReasonDocumentsNotApproved)
	}

	return t.to, nil
}

// AllowedActions reports every workflow action with its availability from the
// given status. Guarded actions that are reachable but blocked come back
// disabled with the reason callers should surface, rather than being omitted.
func AllowedActions(status domain.VendorStatus, docs domain.DocumentSummary) []domain.WorkflowAction {
	var actions []domain.WorkflowAction

	for _, action := range []string{
		ActionSubmitDocuments,
		ActionCompleteDocReview,
		ActionRequestApproval,
		ActionApprove,
		ActionActivate,
		ActionDeactivate,
		ActionBlock,
	} {
		t := transitions[action]
		if status != t.from {
			continue
		}
		wa := domain.WorkflowAction{Action: action}
		if docGuardActions[action] && !allDocumentsApproved(docs) {
			wa.Disabled = true
			wa.Reason = ReasonDocumentsNotApproved
		}
		actions = append(actions, wa)
	}

	if preActiveStates[status] {
		actions = append(actions, domain.WorkflowAction{Action: ActionReject})
	}

	return actions
}
