package claim

import (
	"context"
	"strings"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/audit"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// EscalateClaim puts a claim on hold for supervisor attention. The claim
// keeps its place in the workflow and resumes from there.
func (s *Service) EscalateClaim(ctx context.Context, input EscalateInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(input.Reason)
	return s.apply(ctx, step{
		claimID:      input.ClaimID,
		role:         input.Role,
		action:       domain.ActionEscalate,
		actor:        input.Actor,
		to:           domain.ClaimStatusEscalated,
		notes:        reason,
		auditAction:  audit.ActionClaimEscalated,
		auditDetails: "Escalated: " + reason,
	})
}
