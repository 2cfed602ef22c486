package claim

import (
	"context"
	"strings"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// GetClaim returns a claim by id.
func (s *Service) GetClaim(ctx context.Context, id string) (*domain.Claim, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("claim_id", "required")
	}
	return s.claims.GetByID(ctx, id)
}
