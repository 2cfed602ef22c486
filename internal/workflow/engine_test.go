package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
	return NewEngine(DefaultSLAPolicy(), clk.Now), clk
}

func newClaim(e *Engine) *domain.Claim {
	return &domain.Claim{
		ID:              "CLAIM-1001",
		Status:          domain.ClaimStatusCreated,
		Customer:        "Alice",
		Amount:          decimal.NewFromInt(1200),
		WorkflowHistory: e.Seed("Alice"),
		AuditLog:        []domain.AuditEntry{{ID: 1, Action: "Claim created"}},
	}
}

func mustTransition(t *testing.T, e *Engine, c *domain.Claim, to domain.ClaimStatus, actor string) *domain.Claim {
	t.Helper()
	next, err := e.Transition(c, to, actor, "notes")
	if err != nil {
		t.Fatalf("Transition(%s -> %s): %v", c.Status, to, err)
	}
	if err := domain.CheckInvariants(next); err != nil {
		t.Fatalf("invariants after %s: %v", to, err)
	}
	return next
}

func completedPrefix(c *domain.Claim) int {
	n := 0
	for _, ev := range c.WorkflowHistory {
		if ev.State != domain.StageStateCompleted {
			break
		}
		n++
	}
	return n
}

func TestEngine_Seed(t *testing.T) {
	t.Parallel()

	e, clk := newTestEngine(t)
	c := newClaim(e)

	if err := domain.CheckInvariants(c); err != nil {
		t.Fatalf("seeded claim violates invariants: %v", err)
	}
	first := c.WorkflowHistory[0]
	if first.State != domain.StageStateInProgress || first.Notes != InitialNotes {
		t.Errorf("first stage = %+v", first)
	}
	if !first.Date.Equal(clk.Now()) || *first.Actor != "Alice" {
		t.Errorf("first stage date/actor = %v/%v", first.Date, *first.Actor)
	}
}

func TestEngine_Transition_Accept(t *testing.T) {
	t.Parallel()

	e, clk := newTestEngine(t)
	c := newClaim(e)
	clk.Advance(2 * time.Hour)

	next := mustTransition(t, e, c, domain.ClaimStatusAccepted, "Bob")

	if next.Status != domain.ClaimStatusAccepted {
		t.Errorf("status = %s", next.Status)
	}
	if next.WorkflowHistory[0].State != domain.StageStateCompleted {
		t.Errorf("stage 0 = %s, want completed", next.WorkflowHistory[0].State)
	}
	if next.WorkflowHistory[1].State != domain.StageStateInProgress {
		t.Errorf("stage 1 = %s, want in-progress", next.WorkflowHistory[1].State)
	}
	if *next.WorkflowHistory[0].Actor != "Alice" {
		t.Error("completed stage lost its original actor")
	}
	if *next.WorkflowHistory[1].Actor != "Bob" || !next.WorkflowHistory[1].Date.Equal(clk.Now()) {
		t.Error("new stage not stamped with actor and now")
	}
	if !next.UpdatedAt.Equal(clk.Now()) {
		t.Errorf("UpdatedAt = %v", next.UpdatedAt)
	}
	if c.Status != domain.ClaimStatusCreated || c.WorkflowHistory[1].State != domain.StageStatePending {
		t.Error("input claim was modified")
	}
}

func TestEngine_Transition_ForwardJumpStampsSkipped(t *testing.T) {
	t.Parallel()

	e, clk := newTestEngine(t)
	c := newClaim(e)
	clk.Advance(time.Hour)

	next := mustTransition(t, e, c, domain.ClaimStatusPendingApproval, "Bob")

	for i := 1; i < 3; i++ {
		ev := next.WorkflowHistory[i]
		if ev.State != domain.StageStateCompleted || *ev.Actor != "Bob" || !ev.Date.Equal(clk.Now()) {
			t.Errorf("skipped stage %d = %+v", i, ev)
		}
		if ev.SLABreach {
			t.Errorf("skipped stage %d flagged as breach", i)
		}
	}
	if next.WorkflowHistory[3].State != domain.StageStateInProgress {
		t.Errorf("stage 3 = %s", next.WorkflowHistory[3].State)
	}
}

func TestEngine_Transition_RejectFromPendingApproval(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	c := newClaim(e)
	c = mustTransition(t, e, c, domain.ClaimStatusAccepted, "Bob")
	c = mustTransition(t, e, c, domain.ClaimStatusPendingApproval, "Bob")

	next, err := e.Transition(c, domain.ClaimStatusRejected, "Carol", "missing documents")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := domain.CheckInvariants(next); err != nil {
		t.Fatalf("invariants: %v", err)
	}

	idx := 3
	if next.WorkflowHistory[idx].State != domain.StageStateRejected {
		t.Errorf("pending approval stage = %s, want rejected", next.WorkflowHistory[idx].State)
	}
	if next.WorkflowHistory[idx].Notes != "missing documents" {
		t.Errorf("notes = %q", next.WorkflowHistory[idx].Notes)
	}
	for i := idx + 1; i < len(next.WorkflowHistory); i++ {
		ev := next.WorkflowHistory[i]
		if ev.State != domain.StageStatePending || ev.Date != nil || ev.Actor != nil {
			t.Errorf("stage %d = %+v, want untouched pending", i, ev)
		}
	}
}

func TestEngine_Transition_FraudFromCreated(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	next := mustTransition(t, e, newClaim(e), domain.ClaimStatusFraud, "Bob")
	if next.WorkflowHistory[0].State != domain.StageStateRejected {
		t.Errorf("stage 0 = %s, want rejected", next.WorkflowHistory[0].State)
	}
}

func TestEngine_Transition_Errors(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	created := newClaim(e)
	accepted := mustTransition(t, e, created, domain.ClaimStatusAccepted, "Bob")
	rejected := mustTransition(t, e, accepted, domain.ClaimStatusRejected, "Bob")
	escalated := mustTransition(t, e, accepted, domain.ClaimStatusEscalated, "Bob")

	tests := []struct {
		name    string
		claim   *domain.Claim
		to      domain.ClaimStatus
		wantErr error
	}{
		{"unknown status", created, "Lost", domain.ErrUnknownStatus},
		{"same stage", accepted, domain.ClaimStatusAccepted, domain.ErrInvalidTransition},
		{"backwards", accepted, domain.ClaimStatusCreated, domain.ErrInvalidTransition},
		{"out of terminal", rejected, domain.ClaimStatusReady, domain.ErrInvalidTransition},
		{"reject terminal", rejected, domain.ClaimStatusFraud, domain.ErrInvalidTransition},
		{"escalate twice", escalated, domain.ClaimStatusEscalated, domain.ErrInvalidTransition},
		{"escalated backwards", escalated, domain.ClaimStatusAccepted, domain.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := e.Transition(tt.claim, tt.to, "Bob", "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			var te *domain.TransitionError
			if !errors.As(err, &te) || te.To != tt.to {
				t.Errorf("expected TransitionError to %s, got %v", tt.to, err)
			}
		})
	}
}

func TestEngine_Transition_Escalation(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	c := mustTransition(t, e, newClaim(e), domain.ClaimStatusIroning, "Bob")
	esc := mustTransition(t, e, c, domain.ClaimStatusEscalated, "Bob")

	if e.CurrentStage(esc) != 2 {
		t.Errorf("escalated claim stage = %d, want 2", e.CurrentStage(esc))
	}
	if esc.WorkflowHistory[2].State != domain.StageStateInProgress {
		t.Errorf("active stage = %s", esc.WorkflowHistory[2].State)
	}

	resumed := mustTransition(t, e, esc, domain.ClaimStatusPendingApproval, "Bob")
	if resumed.WorkflowHistory[2].State != domain.StageStateCompleted {
		t.Error("review stage not completed after resuming")
	}
}

func TestEngine_Resume(t *testing.T) {
	t.Parallel()

	e, clk := newTestEngine(t)
	created := newClaim(e)
	ironing := mustTransition(t, e, created, domain.ClaimStatusIroning, "Bob")
	pending := mustTransition(t, e, ironing, domain.ClaimStatusPendingApproval, "Bob")

	tests := []struct {
		name       string
		from       *domain.Claim
		wantStatus domain.ClaimStatus
		wantStage  int
	}{
		{"held at Claim Created", created, domain.ClaimStatusCreated, 0},
		{"held at Initial Review", ironing, domain.ClaimStatusIroning, 2},
		{"held at Pending Approval", pending, domain.ClaimStatusReady, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			esc := mustTransition(t, e, tt.from, domain.ClaimStatusEscalated, "Bob")
			clk.Advance(time.Hour)

			got, err := e.Resume(esc, "Carol", "cleared")
			if err != nil {
				t.Fatalf("Resume: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			if e.CurrentStage(got) != tt.wantStage {
				t.Errorf("stage = %d, want %d", e.CurrentStage(got), tt.wantStage)
			}
			if err := domain.CheckInvariants(got); err != nil {
				t.Errorf("invariants: %v", err)
			}
			if esc.Status != domain.ClaimStatusEscalated {
				t.Error("input claim was modified")
			}
		})
	}
}

func TestEngine_Resume_KeepsHistory(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	esc := mustTransition(t, e, newClaim(e), domain.ClaimStatusEscalated, "Bob")

	got, err := e.Resume(esc, "Carol", "cleared")
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if got.Status != domain.ClaimStatusCreated {
		t.Fatalf("status = %s, want Created", got.Status)
	}
	for i, ev := range got.WorkflowHistory {
		want := esc.WorkflowHistory[i]
		if ev.State != want.State {
			t.Errorf("history[%d] state = %s, want %s", i, ev.State, want.State)
		}
		if ev.Actor != nil && *ev.Actor == "Carol" {
			t.Errorf("history[%d] %s credited to the resolver", i, ev.Stage)
		}
	}
	if *got.WorkflowHistory[0].Actor != "Alice" {
		t.Errorf("Claim Created actor = %q, want Alice", *got.WorkflowHistory[0].Actor)
	}
}

func TestEngine_Resume_NotEscalated(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	_, err := e.Resume(newClaim(e), "Carol", "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("got %v, want ErrInvalidTransition", err)
	}
	if _, err := e.Resume(nil, "Carol", ""); err == nil {
		t.Error("nil claim should fail")
	}
}

func TestEngine_Transition_SLA(t *testing.T) {
	t.Parallel()

	e, clk := newTestEngine(t)
	c := newClaim(e)

	clk.Advance(23 * time.Hour)
	c = mustTransition(t, e, c, domain.ClaimStatusAccepted, "Bob")
	if c.WorkflowHistory[0].SLABreach {
		t.Error("23h in Claim Created flagged, limit is 24h")
	}

	clk.Advance(49 * time.Hour)
	c = mustTransition(t, e, c, domain.ClaimStatusIroning, "Bob")
	if !c.WorkflowHistory[1].SLABreach {
		t.Error("49h in Claim Accepted not flagged, limit is 48h")
	}
	if !c.HasSLABreach() {
		t.Error("HasSLABreach() = false")
	}
	if c.WorkflowHistory[1].CompletedAt == nil || !c.WorkflowHistory[1].CompletedAt.Equal(clk.Now()) {
		t.Error("CompletedAt not stamped")
	}
}

func TestEngine_Transition_MonotoneCompletedPrefix(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	c := newClaim(e)
	path := []domain.ClaimStatus{
		domain.ClaimStatusAccepted,
		domain.ClaimStatusIroning,
		domain.ClaimStatusEscalated,
		domain.ClaimStatusPendingApproval,
		domain.ClaimStatusReady,
		domain.ClaimStatusProcessingPayment,
		domain.ClaimStatusPaymentProcessed,
	}
	prev := completedPrefix(c)
	for _, s := range path {
		c = mustTransition(t, e, c, s, "Bob")
		got := completedPrefix(c)
		if got < prev {
			t.Fatalf("completed prefix shrank from %d to %d at %s", prev, got, s)
		}
		prev = got
	}
	if prev != 6 {
		t.Errorf("completed prefix at PaymentProcessed = %d, want 6", prev)
	}
}

func TestEngine_CustomerPickedClosesLastStage(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine(t)
	c := mustTransition(t, e, newClaim(e), domain.ClaimStatusReady, "Bob")
	c = mustTransition(t, e, c, domain.ClaimStatusCustomerPicked, "Dana")
	if c.WorkflowHistory[7].State != domain.StageStateInProgress {
		t.Errorf("closing stage = %s", c.WorkflowHistory[7].State)
	}
}
