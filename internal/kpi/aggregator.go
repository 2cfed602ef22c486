// Package kpi derives role-scoped dashboard metrics from a claim population.
// Everything here is a pure function of the claims and the reference time.
package kpi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// Windows holds the time spans the metrics are measured over.
type Windows struct {
	// Requests is the trailing window of claimRequests.
	Requests time.Duration
	// FollowUp is the age past which an untouched claim needs follow-up.
	FollowUp time.Duration
	// RecentPayments is the trailing window of recentPayments.
	RecentPayments time.Duration
}

// DefaultWindows returns 30 days, 3 days and 7 days.
func DefaultWindows() Windows {
	return Windows{
		Requests:       30 * 24 * time.Hour,
		FollowUp:       3 * 24 * time.Hour,
		RecentPayments: 7 * 24 * time.Hour,
	}
}

var roleMetrics = map[domain.Role][]domain.MetricName{
	domain.RoleIntake:   {domain.MetricClaimRequests, domain.MetricClaimClosures},
	domain.RoleAnalyst:  {domain.MetricInProgressClaims, domain.MetricFraudClaims},
	domain.RoleApprover: {domain.MetricInProgressClaims, domain.MetricOpenClaims, domain.MetricClosedClaims},
	domain.RoleFinance:  {domain.MetricClaimAmountByMonth},
}

var roleWorkload = map[domain.Role][]domain.MetricName{
	domain.RoleIntake:   {domain.MetricCreatedToday, domain.MetricNeedsFollowUp},
	domain.RoleAnalyst:  {domain.MetricPendingReview, domain.MetricSLABreaches},
	domain.RoleApprover: {domain.MetricAwaitingApproval, domain.MetricReadyForPayment},
	domain.RoleFinance:  {domain.MetricReadyForPayment, domain.MetricRecentPayments, domain.MetricOutstandingAmount},
}

// MetricsFor lists the primary metrics shown to role.
func MetricsFor(role domain.Role) []domain.MetricName {
	return append([]domain.MetricName(nil), roleMetrics[role]...)
}

// Aggregator computes metrics with a fixed set of windows.
type Aggregator struct {
	w Windows
}

// NewAggregator creates an aggregator. Zero windows fall back to the defaults.
func NewAggregator(w Windows) *Aggregator {
	def := DefaultWindows()
	if w.Requests <= 0 {
		w.Requests = def.Requests
	}
	if w.FollowUp <= 0 {
		w.FollowUp = def.FollowUp
	}
	if w.RecentPayments <= 0 {
		w.RecentPayments = def.RecentPayments
	}
	return &Aggregator{w: w}
}

// ComputeMetrics returns the primary KPIs of role. Unknown roles get an
// empty map.
func ComputeMetrics(role domain.Role, claims []*domain.Claim, now time.Time) domain.Metrics {
	return NewAggregator(DefaultWindows()).ComputeMetrics(role, claims, now)
}

// ComputeMetrics returns the primary KPIs of role.
func (a *Aggregator) ComputeMetrics(role domain.Role, claims []*domain.Claim, now time.Time) domain.Metrics {
	return a.compute(roleMetrics[role], claims, now)
}

// ComputeWorkload returns the secondary work-queue cards of role.
func (a *Aggregator) ComputeWorkload(role domain.Role, claims []*domain.Claim, now time.Time) domain.Metrics {
	return a.compute(roleWorkload[role], claims, now)
}

func (a *Aggregator) compute(names []domain.MetricName, claims []*domain.Claim, now time.Time) domain.Metrics {
	out := make(domain.Metrics, len(names))
	for _, name := range names {
		out[name] = a.metric(name, claims, now)
	}
	return out
}

func (a *Aggregator) metric(name domain.MetricName, claims []*domain.Claim, now time.Time) domain.MetricValue {
	switch name {
	case domain.MetricClaimRequests:
		from := now.Add(-a.w.Requests)
		return count(claims, func(c *domain.Claim) bool {
			return !c.CreatedAt.Before(from) && !c.CreatedAt.After(now)
		})
	case domain.MetricClaimClosures, domain.MetricClosedClaims:
		return count(claims, func(c *domain.Claim) bool { return c.Status.IsClosed() })
	case domain.MetricInProgressClaims:
		return count(claims, func(c *domain.Claim) bool { return c.Status.IsInProgress() })
	case domain.MetricFraudClaims:
		return count(claims, hasStatus(domain.ClaimStatusFraud))
	case domain.MetricOpenClaims:
		return count(claims, func(c *domain.Claim) bool { return c.Status.IsOpen() })
	case domain.MetricClaimAmountByMonth:
		return sum(claims, func(c *domain.Claim) bool { return sameMonth(c.CreatedAt, now) })

	case domain.MetricCreatedToday:
		return count(claims, func(c *domain.Claim) bool { return sameDay(c.CreatedAt, now) })
	case domain.MetricNeedsFollowUp:
		cutoff := now.Add(-a.w.FollowUp)
		return count(claims, func(c *domain.Claim) bool {
			return awaitingReview(c) && c.CreatedAt.Before(cutoff)
		})
	case domain.MetricPendingReview:
		return count(claims, awaitingReview)
	case domain.MetricSLABreaches:
		return count(claims, (*domain.Claim).HasSLABreach)
	case domain.MetricAwaitingApproval:
		return count(claims, hasStatus(domain.ClaimStatusPendingApproval))
	case domain.MetricReadyForPayment:
		return count(claims, hasStatus(domain.ClaimStatusReady))
	case domain.MetricRecentPayments:
		from := now.Add(-a.w.RecentPayments)
		return count(claims, func(c *domain.Claim) bool {
			return c.Status == domain.ClaimStatusPaymentProcessed && c.UpdatedAt.After(from)
		})
	case domain.MetricOutstandingAmount:
		return sum(claims, hasStatus(domain.ClaimStatusReady, domain.ClaimStatusProcessingPayment))
	}
	return domain.CountMetric(0)
}

func count(claims []*domain.Claim, pred func(*domain.Claim) bool) domain.MetricValue {
	n := 0
	for _, c := range claims {
		if pred(c) {
			n++
		}
	}
	return domain.CountMetric(n)
}

func sum(claims []*domain.Claim, pred func(*domain.Claim) bool) domain.MetricValue {
	total := decimal.Zero
	for _, c := range claims {
		if pred(c) {
			total = total.Add(c.EffectiveAmount())
		}
	}
	return domain.CurrencyMetric(total)
}

func hasStatus(statuses ...domain.ClaimStatus) func(*domain.Claim) bool {
	return func(c *domain.Claim) bool {
		for _, s := range statuses {
			if c.Status == s {
				return true
			}
		}
		return false
	}
}

func awaitingReview(c *domain.Claim) bool {
	return c.Status == domain.ClaimStatusCreated || c.Status == domain.ClaimStatusAccepted
}

func sameMonth(t, now time.Time) bool {
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}

func sameDay(t, now time.Time) bool {
	t = t.In(now.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
