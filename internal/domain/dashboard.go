package domain

import "github.com/shopspring/decimal"

// MetricName identifies a dashboard KPI.
type MetricName string

const (
	MetricClaimRequests      MetricName = "claimRequests"
	MetricClaimClosures      MetricName = "claimClosures"
	MetricClosedClaims       MetricName = "closedClaims"
	MetricInProgressClaims   MetricName = "inProgressClaims"
	MetricFraudClaims        MetricName = "fraudClaims"
	MetricOpenClaims         MetricName = "openClaims"
	MetricClaimAmountByMonth MetricName = "claimAmountByMonth"

	// Secondary workload cards.
	MetricCreatedToday      MetricName = "createdToday"
	MetricNeedsFollowUp     MetricName = "needsFollowUp"
	MetricPendingReview     MetricName = "pendingReview"
	MetricSLABreaches       MetricName = "slaBreaches"
	MetricAwaitingApproval  MetricName = "awaitingApproval"
	MetricReadyForPayment   MetricName = "readyForPayment"
	MetricRecentPayments    MetricName = "recentPayments"
	MetricOutstandingAmount MetricName = "outstandingAmount"
)

func (m MetricName) String() string { return string(m) }

// MetricKind tells whether a metric is a count or a money amount.
type MetricKind string

const (
	MetricKindCount    MetricKind = "count"
	MetricKindCurrency MetricKind = "currency"
)

// MetricValue is a single computed KPI.
type MetricValue struct {
	Kind   MetricKind
	Count  int
	Amount decimal.Decimal
}

// CountMetric builds a count-valued metric.
func CountMetric(n int) MetricValue {
	return MetricValue{Kind: MetricKindCount, Count: n}
}

// CurrencyMetric builds a money-valued metric.
func CurrencyMetric(d decimal.Decimal) MetricValue {
	return MetricValue{Kind: MetricKindCurrency, Amount: d}
}

// Metrics maps metric names to values.
type Metrics map[MetricName]MetricValue

// Activity is one audit entry surfaced on a dashboard feed, tagged with the
// claim it belongs to.
type Activity struct {
	ClaimID  string
	Customer string
	// Status is the claim's status when the feed was built.
	Status ClaimStatus
	Entry  AuditEntry
}
