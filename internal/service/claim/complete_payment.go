package claim

import (
	"context"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// CompletePayment records that finance has paid out a claim.
func (s *Service) CompletePayment(ctx context.Context, input CompletePaymentInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.apply(ctx, step{
		claimID: input.ClaimID,
		role:    input.Role,
		action:  domain.ActionProcessPayment,
		actor:   input.Actor,
		to:      domain.ClaimStatusPaymentProcessed,
		notes:   input.Notes,
	})
}
