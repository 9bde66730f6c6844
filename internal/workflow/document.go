package workflow

import (
	"fmt"
	"strings"

	"github.com/procuredash/backend-go/internal/domain"
)

// Document review decisions.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// ReviewDocument applies a reviewer decision to a document. Only pending
// documents can be reviewed; approved and rejected are terminal, and expired
// is set externally, never through review.
func ReviewDocument(status domain.DocumentStatus, decision string, reason string) (domain.DocumentStatus, error) {
	if status != domain.DocumentPending {
		return "", fmt.Errorf("document in status %q cannot be reviewed", status)
	}

	switch decision {
	case DecisionApprove:
		return domain.DocumentApproved, nil
	case DecisionReject:
		if strings.TrimSpace(reason) == "" {
			return "", fmt.Errorf("document rejection requires a reason")
		}
		return domain.DocumentRejected, nil
	default:
		return "", fmt.Errorf("unknown review decision %q", decision)
	}
}
