package kpi

import (
	"testing"
	"time"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

func withLog(id string, status domain.ClaimStatus, stamps ...time.Time) *domain.Claim {
	c := &domain.Claim{ID: id, Customer: "cust-" + id, Status: status}
	for i, ts := range stamps {
		c.AuditLog = append(c.AuditLog, domain.AuditEntry{ID: i + 1, Timestamp: ts, Action: "a"})
	}
	return c
}

func TestRecentActivity_NewestFirst(t *testing.T) {
	t.Parallel()

	claims := []*domain.Claim{
		withLog("CLAIM-1001", domain.ClaimStatusAccepted, now.Add(-3*time.Hour), now.Add(-time.Hour)),
		withLog("CLAIM-1002", domain.ClaimStatusCreated, now.Add(-2*time.Hour)),
		withLog("CLAIM-1003", domain.ClaimStatusCreated, now.Add(-time.Hour)),
	}

	got := NewAggregator(DefaultWindows()).RecentActivity(claims, 0)

	want := []struct {
		claim string
		entry int
	}{
		{"CLAIM-1003", 1},
		{"CLAIM-1001", 2},
		{"CLAIM-1002", 1},
		{"CLAIM-1001", 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].ClaimID != w.claim || got[i].Entry.ID != w.entry {
			t.Errorf("feed[%d] = %s#%d, want %s#%d", i, got[i].ClaimID, got[i].Entry.ID, w.claim, w.entry)
		}
	}
	if got[0].Customer != "cust-CLAIM-1003" || got[0].Status != domain.ClaimStatusCreated {
		t.Errorf("feed[0] claim fields = %+v", got[0])
	}
}

func TestRecentActivity_Limit(t *testing.T) {
	t.Parallel()

	claims := []*domain.Claim{
		withLog("CLAIM-1001", domain.ClaimStatusAccepted, now.Add(-3*time.Hour), now.Add(-2*time.Hour), now.Add(-time.Hour)),
	}
	a := NewAggregator(DefaultWindows())

	tests := []struct {
		limit int
		want  int
	}{
		{0, 3},
		{-1, 3},
		{2, 2},
		{10, 3},
	}
	for _, tt := range tests {
		if got := a.RecentActivity(claims, tt.limit); len(got) != tt.want {
			t.Errorf("limit %d: got %d entries, want %d", tt.limit, len(got), tt.want)
		}
	}

	if got := a.RecentActivity(nil, 5); len(got) != 0 {
		t.Errorf("empty population: got %d entries", len(got))
	}
}
