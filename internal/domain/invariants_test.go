package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// historyAt builds a history whose active stage is k in the given state.
func historyAt(k int, active StageState) []WorkflowEvent {
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	actor := "tester"
	out := make([]WorkflowEvent, 0, MilestoneCount())
	for i, m := range Milestones() {
		ev := WorkflowEvent{Stage: m.Name, State: StageStatePending}
		switch {
		case i < k:
			ev.State = StageStateCompleted
			ev.Date, ev.Actor = &now, &actor
		case i == k:
			ev.State = active
			ev.Date, ev.Actor = &now, &actor
		}
		out = append(out, ev)
	}
	return out
}

func validClaim(status ClaimStatus, k int, active StageState) *Claim {
	return &Claim{
		ID:              "CLAIM-1001",
		Status:          status,
		Amount:          decimal.RequireFromString("100"),
		WorkflowHistory: historyAt(k, active),
		AuditLog:        []AuditEntry{{ID: 1}, {ID: 2}},
	}
}

func TestCheckInvariants_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    *Claim
	}{
		{"created", validClaim(ClaimStatusCreated, 0, StageStateInProgress)},
		{"pending approval", validClaim(ClaimStatusPendingApproval, 3, StageStateInProgress)},
		{"customer picked", validClaim(ClaimStatusCustomerPicked, 7, StageStateInProgress)},
		{"rejected at approval", validClaim(ClaimStatusRejected, 3, StageStateRejected)},
		{"fraud at intake", validClaim(ClaimStatusFraud, 0, StageStateRejected)},
		{"escalated in review", validClaim(ClaimStatusEscalated, 2, StageStateInProgress)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := CheckInvariants(tt.c); err != nil {
				t.Fatalf("unexpected violation: %v", err)
			}
		})
	}
}

func TestCheckInvariants_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Claim)
		want   string
	}{
		{"unknown status", func(c *Claim) { c.Status = "Lost" }, "outside enumeration"},
		{"zero amount", func(c *Claim) { c.Amount = decimal.Zero }, "amount"},
		{"negative final amount", func(c *Claim) { fa := decimal.NewFromInt(-1); c.FinalAmount = &fa }, "final amount"},
		{"short history", func(c *Claim) { c.WorkflowHistory = c.WorkflowHistory[:3] }, "entries"},
		{"reordered history", func(c *Claim) {
			c.WorkflowHistory[0], c.WorkflowHistory[1] = c.WorkflowHistory[1], c.WorkflowHistory[0]
		}, "want"},
		{"prefix not completed", func(c *Claim) { c.WorkflowHistory[1].State = StageStatePending }, "want completed"},
		{"rejected without rejection status", func(c *Claim) { c.WorkflowHistory[3].State = StageStateRejected }, "want in-progress"},
		{"pending with actor", func(c *Claim) { a := "x"; c.WorkflowHistory[5].Actor = &a }, "carries date or actor"},
		{"empty audit", func(c *Claim) { c.AuditLog = nil }, "audit log is empty"},
		{"audit gap", func(c *Claim) { c.AuditLog[1].ID = 3 }, "want 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := validClaim(ClaimStatusPendingApproval, 3, StageStateInProgress)
			tt.mutate(c)
			err := CheckInvariants(c)
			if err == nil {
				t.Fatal("expected violation, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
