package kpi

import (
	"cmp"
	"slices"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// RecentActivity flattens the audit logs of claims into a feed, newest first,
// and keeps at most limit entries. Entries with the same timestamp are
// ordered by claim id and then audit id, both descending. A limit of zero or
// less returns the whole feed.
func (a *Aggregator) RecentActivity(claims []*domain.Claim, limit int) []domain.Activity {
	var feed []domain.Activity
	for _, c := range claims {
		for _, e := range c.AuditLog {
			feed = append(feed, domain.Activity{
				ClaimID:  c.ID,
				Customer: c.Customer,
				Status:   c.Status,
				Entry:    e,
			})
		}
	}

	slices.SortFunc(feed, func(x, y domain.Activity) int {
		if c := y.Entry.Timestamp.Compare(x.Entry.Timestamp); c != 0 {
			return c
		}
		if c := cmp.Compare(y.ClaimID, x.ClaimID); c != 0 {
			return c
		}
		return cmp.Compare(y.Entry.ID, x.Entry.ID)
	})

	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}
