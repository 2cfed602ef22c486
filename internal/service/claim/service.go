package claim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/audit"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type claimRepo interface {
	Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error)
	GetByID(ctx context.Context, id string) (*domain.Claim, error)
	List(ctx context.Context, pred func(*domain.Claim) bool) ([]*domain.Claim, error)
	Update(ctx context.Context, id string, fn func(*domain.Claim) (*domain.Claim, error)) (*domain.Claim, error)
}

type accessGate interface {
	Authorize(role domain.Role, action domain.ActionKind, c *domain.Claim) bool
	Permitted(role domain.Role, c *domain.Claim) []domain.ActionKind
}

type workflowEngine interface {
	Seed(actor string) []domain.WorkflowEvent
	Transition(c *domain.Claim, requested domain.ClaimStatus, actor, notes string) (*domain.Claim, error)
	Resume(c *domain.Claim, actor, notes string) (*domain.Claim, error)
}

type auditTrail interface {
	Append(c *domain.Claim, actor, action, details string) *domain.Claim
}

type metricsAggregator interface {
	ComputeMetrics(role domain.Role, claims []*domain.Claim, now time.Time) domain.Metrics
	ComputeWorkload(role domain.Role, claims []*domain.Claim, now time.Time) domain.Metrics
	RecentActivity(claims []*domain.Claim, limit int) []domain.Activity
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the entry point of the claim lifecycle. Every mutation runs as
// one authorize, transition, audit, store unit inside the repository's
// atomic update.
type Service struct {
	claims  claimRepo
	gate    accessGate
	engine  workflowEngine
	trail   auditTrail
	metrics metricsAggregator
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new claim service. A nil clock means time.Now.
func NewService(
	log *slog.Logger,
	claims claimRepo,
	gate accessGate,
	engine workflowEngine,
	trail auditTrail,
	metrics metricsAggregator,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		claims:  claims,
		gate:    gate,
		engine:  engine,
		trail:   trail,
		metrics: metrics,
		now:     now,
		log:     log.With("service", "claim"),
	}
}

// step describes one gated status change.
type step struct {
	claimID string
	role    domain.Role
	action  domain.ActionKind
	actor   string
	to      domain.ClaimStatus
	// resume puts an escalated claim back in its held stage instead of
	// moving it to a fixed status.
	resume bool
	notes  string
	// before runs on the authorized claim ahead of the transition.
	before func(c *domain.Claim)
	// auditAction overrides the default "Status change to" label.
	auditAction  string
	auditDetails string
}

// apply runs a step atomically against the stored claim. Nothing is written
// unless authorization, transition and audit all succeed.
func (s *Service) apply(ctx context.Context, st step) (*domain.Claim, error) {
	actor := actorName(st.actor, st.role)

	updated, err := s.claims.Update(ctx, st.claimID, func(c *domain.Claim) (*domain.Claim, error) {
		if !s.gate.Authorize(st.role, st.action, c) {
			return nil, forbidden(st.role, st.action, c)
		}
		if st.before != nil {
			st.before(c)
		}

		var next *domain.Claim
		var err error
		if st.resume {
			next, err = s.engine.Resume(c, actor, st.notes)
		} else {
			next, err = s.engine.Transition(c, st.to, actor, st.notes)
		}
		if err != nil {
			return nil, err
		}

		action, details := st.auditAction, st.auditDetails
		if action == "" {
			action = audit.StatusChange(next.Status)
			details = audit.StatusChangeDetails(next.Status, st.notes)
		}
		return s.trail.Append(next, actor, action, details), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s claim %s: %w", st.action, st.claimID, err)
	}

	s.log.InfoContext(ctx, "claim status changed",
		slog.String("claim_id", updated.ID),
		slog.String("role", st.role.String()),
		slog.String("action", st.action.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

func forbidden(role domain.Role, action domain.ActionKind, c *domain.Claim) error {
	return fmt.Errorf("role %s may not %s in status %s: %w", role, action, c.Status, domain.ErrForbidden)
}

// actorName falls back to the role when the caller gave no display name.
func actorName(actor string, role domain.Role) string {
	if actor != "" {
		return actor
	}
	return role.Label()
}
