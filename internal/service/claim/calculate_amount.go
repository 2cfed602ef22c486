package claim

import (
	"context"
	"fmt"
	"strings"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/audit"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// CalculateAmount sets the final payable amount of an approved claim and
// sends it to payment processing.
func (s *Service) CalculateAmount(ctx context.Context, input CalculateAmountInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	final := input.FinalAmount
	return s.apply(ctx, step{
		claimID: input.ClaimID,
		role:    input.Role,
		action:  domain.ActionCalculateAmount,
		actor:   input.Actor,
		to:      domain.ClaimStatusProcessingPayment,
		notes:   input.Notes,
		before: func(c *domain.Claim) {
			c.FinalAmount = &final
		},
		auditAction:  audit.ActionAmountCalculated,
		auditDetails: fmt.Sprintf("Final amount set to %s. %s", final.StringFixed(2), strings.TrimSpace(input.Notes)),
	})
}
