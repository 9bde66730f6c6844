package workflow

import (
	"testing"

	"github.com/procuredash/backend-go/internal/domain"
)

func allApproved(n int) domain.DocumentSummary {
	return domain.DocumentSummary{Total: n, Approved: n}
}

func TestTransition_HappyPath(t *testing.T) {
	docs := allApproved(3)

	steps := []struct {
		action string
		from   domain.VendorStatus
		want   domain.VendorStatus
	}{
		{ActionSubmitDocuments, domain.VendorPending, domain.VendorDocumentsPending},
		{ActionCompleteDocReview, domain.VendorDocumentsPending, domain.VendorDocumentsApproved},
		{ActionRequestApproval, domain.VendorDocumentsApproved, domain.VendorPendingApproval},
		{ActionApprove, domain.VendorPendingApproval, domain.VendorApproved},
		{ActionActivate, domain.VendorApproved, domain.VendorActive},
	}

	for _, step := range steps {
		got, err := Transition(step.from, step.action, "", docs)
		if err != nil {
			t.Fatalf("%s from %s failed: %v", step.action, step.from, err)
		}
		if got != step.want {
			t.Errorf("%s from %s = %s, want %s", step.action, step.from, got, step.want)
		}
	}
}

func TestTransition_ApproveGuardedByDocuments(t *testing.T) {
	tests := []struct {
		name    string
		docs    domain.DocumentSummary
		wantErr bool
	}{
		{"no documents", domain.DocumentSummary{}, true},
		{"one pending", domain.DocumentSummary{Total: 3, Approved: 2, Pending: 1}, true},
		{"one rejected", domain.DocumentSummary{Total: 3, Approved: 2, Rejected: 1}, true},
		{"all approved", domain.DocumentSummary{Total: 3, Approved: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transition(domain.VendorPendingApproval, ActionApprove, "", tt.docs)
			if tt.wantErr && err == nil {
				t.Error("expected approve to be rejected")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("approve failed: %v", err)
			}
			if tt.wantErr && err != nil && err.Error() != ReasonDocumentsNotApproved {
				t.Errorf("guard reason = %q, want %q", err.Error(), ReasonDocumentsNotApproved)
			}
		})
	}
}

func TestTransition_ActivateOnlyFromApproved(t *testing.T) {
	for _, status := range []domain.VendorStatus{
		domain.VendorPending,
		domain.VendorPendingApproval,
		domain.VendorActive,
		domain.VendorRejected,
	} {
		if _, err := Transition(status, ActionActivate, "", allApproved(1)); err == nil {
			t.Errorf("activate allowed from %s", status)
		}
	}
}

func TestTransition_Reject(t *testing.T) {
	for _, status := range []domain.VendorStatus{
		domain.VendorPending,
		domain.VendorDocumentsPending,
		domain.VendorDocumentsApproved,
		domain.VendorPendingApproval,
		domain.VendorApproved,
	} {
		got, err := Transition(status, ActionReject, "incomplete compliance records", domain.DocumentSummary{})
		if err != nil {
			t.Errorf("reject from %s failed: %v", status, err)
		}
		if got != domain.VendorRejected {
			t.Errorf("reject from %s = %s, want rejected", status, got)
		}
	}

	// Reason is mandatory.
	if _, err := Transition(domain.VendorPending, ActionReject, "  ", domain.DocumentSummary{}); err == nil {
		t.Error("reject without a reason was allowed")
	}

	// Active vendors are deactivated or blocked, never rejected.
	if _, err := Transition(domain.VendorActive, ActionReject, "reason", domain.DocumentSummary{}); err == nil {
		t.Error("reject allowed from active")
	}
}

func TestTransition_ActiveSideStates(t *testing.T) {
	if got, err := Transition(domain.VendorActive, ActionDeactivate, "", domain.DocumentSummary{}); err != nil || got != domain.VendorInactive {
		t.Errorf("deactivate = %s, %v; want inactive", got, err)
	}
	if got, err := Transition(domain.VendorActive, ActionBlock, "", domain.DocumentSummary{}); err != nil || got != domain.VendorBlocked {
		t.Errorf("block = %s, %v; want blocked", got, err)
	}
}

func TestAllowedActions_ApproveDisabledReason(t *testing.T) {
	actions := AllowedActions(domain.VendorPendingApproval, domain.DocumentSummary{Total: 4, Approved: 3, Pending: 1})

	var approve *domain.WorkflowAction
	for i := range actions {
		if actions[i].Action == ActionApprove {
			approve = &actions[i]
		}
	}
	if approve == nil {
		t.Fatal("approve not listed from pending_approval")
	}
	if !approve.Disabled {
		t.Error("approve enabled with unapproved documents")
	}
	if approve.Reason != ReasonDocumentsNotApproved {
		t.Errorf("reason = %q, want %q", approve.Reason, ReasonDocumentsNotApproved)
	}
}

func TestAllowedActions_ApproveEnabledWhenAllDocsApproved(t *testing.T) {
	actions := AllowedActions(domain.VendorPendingApproval, allApproved(4))

	for _, a := range actions {
		if a.Action == ActionApprove && a.Disabled {
			t.Errorf("approve disabled with all documents approved: %s", a.Reason)
		}
	}
}

func TestAllowedActions_RejectListedPreActiveOnly(t *testing.T) {
	hasReject := func(actions []domain.WorkflowAction) bool {
		for _, a := range actions {
			if a.Action == ActionReject {
				return true
			}
		}
		return false
	}

	if !hasReject(AllowedActions(domain.VendorPending, domain.DocumentSummary{})) {
		t.Error("reject missing from pending")
	}
	if hasReject(AllowedActions(domain.VendorActive, domain.DocumentSummary{})) {
		t.Error("reject listed from active")
	}
	if hasReject(AllowedActions(domain.VendorRejected, domain.DocumentSummary{})) {
		t.Error("reject listed from rejected")
	}
}

func TestReviewDocument(t *testing.T) {
	if got, err := ReviewDocument(domain.DocumentPending, DecisionApprove, ""); err != nil || got != domain.DocumentApproved {
		t.Errorf("approve review = %s, %v", got, err)
	}
	if got, err := ReviewDocument(domain.DocumentPending, DecisionReject, "expired certificate scan"); err != nil || got != domain.DocumentRejected {
		t.Errorf("reject review = %s, %v", got, err)
	}
	if _, err := ReviewDocument(domain.DocumentPending, DecisionReject, ""); err == nil {
		t.Error("rejection without a reason was allowed")
	}
	if _, err := ReviewDocument(domain.DocumentApproved, DecisionApprove, ""); err == nil {
		t.Error("approved document re-reviewed")
	}
	if _, err := ReviewDocument(domain.DocumentExpired, DecisionApprove, ""); err == nil {
		t.Error("expired document reviewed")
	}
}
