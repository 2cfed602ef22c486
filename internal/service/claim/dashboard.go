package claim

import (
	"context"
	"fmt"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// GetDashboardMetrics computes the primary KPIs of role over the whole
// claim population at the current time.
func (s *Service) GetDashboardMetrics(ctx context.Context, role domain.Role) (domain.Metrics, error) {
	claims, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	return s.metrics.ComputeMetrics(role, claims, s.now()), nil
}

// GetWorkload computes the secondary work-queue cards of role.
func (s *Service) GetWorkload(ctx context.Context, role domain.Role) (domain.Metrics, error) {
	claims, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	return s.metrics.ComputeWorkload(role, claims, s.now()), nil
}

// Activity feed sizes.
const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)

// GetRecentActivity returns the newest audit entries of the claims in the
// work queue of role. Intake sees every claim. A zero limit means
// DefaultActivityLimit.
func (s *Service) GetRecentActivity(ctx context.Context, role domain.Role, limit int) ([]domain.Activity, error) {
	if limit < 0 || limit > MaxActivityLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", MaxActivityLimit))
	}
	if limit == 0 {
		limit = DefaultActivityLimit
	}

	claims, err := s.snapshot(ctx, role)
	if err != nil {
		return nil, err
	}
	queued := claims[:0]
	for _, c := range claims {
		if InQueue(role, c) {
			queued = append(queued, c)
		}
	}
	return s.metrics.RecentActivity(queued, limit), nil
}

func (s *Service) snapshot(ctx context.Context, role domain.Role) ([]*domain.Claim, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "unknown role")
	}
	claims, err := s.claims.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	return claims, nil
}
