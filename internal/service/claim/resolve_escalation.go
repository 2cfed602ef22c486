package claim

import (
	"context"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// ResolveEscalation settles an escalated claim. Approval returns it to the
// stage it was held in, and a claim held for approval moves on to Ready.
// Rejection ends it.
func (s *Service) ResolveEscalation(ctx context.Context, input ApproveInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.apply(ctx, step{
		claimID: input.ClaimID,
		role:    input.Role,
		action:  domain.ActionResolveEscalation,
		actor:   input.Actor,
		to:      domain.ClaimStatusRejected,
		resume:  input.Approved,
		notes:   input.Notes,
	})
}
