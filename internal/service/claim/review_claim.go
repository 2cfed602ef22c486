package claim

import (
	"context"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// ReviewClaim records an analyst's decision: accept, move into initial
// review, forward for approval or flag as fraud.
func (s *Service) ReviewClaim(ctx context.Context, input ReviewClaimInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.apply(ctx, step{
		claimID: input.ClaimID,
		role:    input.Role,
		action:  domain.ActionReview,
		actor:   input.Actor,
		to:      input.Decision,
		notes:   input.Notes,
	})
}
