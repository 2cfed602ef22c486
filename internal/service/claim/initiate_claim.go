package claim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/audit"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// InitiateClaim opens a new claim in status Created. The customer is
// recorded as the actor of the first stage and the first audit entry.
func (s *Service) InitiateClaim(ctx context.Context, role domain.Role, input InitiateClaimInput) (*domain.Claim, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.gate.Authorize(role, domain.ActionInitiate, nil) {
		return nil, fmt.Errorf("role %s may not initiate claims: %w", role, domain.ErrForbidden)
	}

	customer := strings.TrimSpace(input.Customer)
	files := make([]domain.Attachment, 0, len(input.Files))
	for _, f := range input.Files {
		files = append(files, domain.Attachment{
			Name: strings.TrimSpace(f.Name),
			URL:  strings.TrimSpace(f.URL),
			Type: strings.TrimSpace(f.Type),
		})
	}

	c := &domain.Claim{
		Status:          domain.ClaimStatusCreated,
		Customer:        customer,
		Vehicle:         strings.TrimSpace(input.Vehicle),
		Issue:           strings.TrimSpace(input.Issue),
		Description:     strings.TrimSpace(input.Description),
		Amount:          input.Amount,
		Files:           files,
		WorkflowHistory: s.engine.Seed(customer),
	}
	c = s.trail.Append(c, customer, audit.ActionClaimCreated, "Initial claim submitted by "+customer)

	created, err := s.claims.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create claim: %w", err)
	}

	s.log.InfoContext(ctx, "claim created",
		slog.String("claim_id", created.ID),
		slog.String("role", role.String()),
		slog.String("amount", created.Amount.StringFixed(2)),
	)

	return created, nil
}
