package claim

import (
	"context"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// ApproveOrReject settles a claim pending approval. Approval moves it to
// Ready, rejection ends it.
func (s *Service) ApproveOrReject(ctx context.Context, input ApproveInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	to := domain.ClaimStatusRejected
	if input.Approved {
		to = domain.ClaimStatusReady
	}

	return s.apply(ctx, step{
		claimID: input.ClaimID,
		role:    input.Role,
		action:  domain.ActionApproveReject,
		actor:   input.Actor,
		to:      to,
		notes:   input.Notes,
	})
}
