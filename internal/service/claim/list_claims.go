package claim

import (
	"context"
	"fmt"
	"slices"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// queues lists the statuses each role works on. Intake sees everything.
var queues = map[domain.Role][]domain.ClaimStatus{
	domain.RoleAnalyst:  {domain.ClaimStatusCreated, domain.ClaimStatusAccepted, domain.ClaimStatusIroning, domain.ClaimStatusFraud},
	domain.RoleApprover: {domain.ClaimStatusPendingApproval},
	domain.RoleFinance:  {domain.ClaimStatusReady, domain.ClaimStatusProcessingPayment, domain.ClaimStatusPaymentProcessed},
}

// InQueue reports whether c belongs to the work queue of role.
func InQueue(role domain.Role, c *domain.Claim) bool {
	statuses, ok := queues[role]
	if !ok {
		return role == domain.RoleIntake
	}
	return slices.Contains(statuses, c.Status)
}

// ListClaims returns the claims matching f in creation order.
func (s *Service) ListClaims(ctx context.Context, f ListFilter) ([]*domain.Claim, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.claims.List(ctx, func(c *domain.Claim) bool {
		if f.Status != "" && c.Status != f.Status {
			return false
		}
		if f.Queue != "" && !InQueue(f.Queue, c) {
			return false
		}
		return f.Match == nil || f.Match(c)
	})
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	return claims, nil
}
