package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim is a service claim tracked from intake to closure.
type Claim struct {
	ID          string
	Status      ClaimStatus
	Customer    string
	Vehicle     string
	Issue       string
	Description string
	Amount      decimal.Decimal
	FinalAmount *decimal.Decimal
	Files       []Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Version is bumped by the repository on every stored mutation.
	Version         int
	WorkflowHistory []WorkflowEvent
	AuditLog        []AuditEntry
}

// Attachment is read-only metadata about a file attached to a claim.
type Attachment struct {
	Name string
	URL  string
	Type string
}

// WorkflowEvent is the per-claim progress record of one milestone.
type WorkflowEvent struct {
	Stage string
	State StageState
	// Date is when the stage was entered.
	Date  *time.Time
	Actor *string
	Notes string
	// CompletedAt is when the stage left in-progress (completed or rejected).
	CompletedAt *time.Time
	SLABreach   bool
}

// AuditEntry is one immutable line of a claim's audit log.
type AuditEntry struct {
	ID        int
	Timestamp time.Time
	Action    string
	Actor     string
	Details   string
}

// EffectiveAmount returns FinalAmount when set, otherwise Amount.
func (c *Claim) EffectiveAmount() decimal.Decimal {
	if c.FinalAmount != nil {
		return *c.FinalAmount
	}
	return c.Amount
}

// LastAuditID returns the id of the newest audit entry, 0 when the log is empty.
func (c *Claim) LastAuditID() int {
	if len(c.AuditLog) == 0 {
		return 0
	}
	return c.AuditLog[len(c.AuditLog)-1].ID
}

// HasSLABreach reports whether any stage of the claim breached its SLA.
func (c *Claim) HasSLABreach() bool {
	for _, ev := range c.WorkflowHistory {
		if ev.SLABreach {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Stored claims are only ever handed out as clones.
func (c *Claim) Clone() *Claim {
	if c == nil {
		return nil
	}
	cp := *c
	if c.FinalAmount != nil {
		fa := *c.FinalAmount
		cp.FinalAmount = &fa
	}
	if c.Files != nil {
		cp.Files = append([]Attachment(nil), c.Files...)
	}
	if c.WorkflowHistory != nil {
		cp.WorkflowHistory = make([]WorkflowEvent, len(c.WorkflowHistory))
		for i, ev := range c.WorkflowHistory {
			cp.WorkflowHistory[i] = ev.clone()
		}
	}
	if c.AuditLog != nil {
		cp.AuditLog = append([]AuditEntry(nil), c.AuditLog...)
	}
	return &cp
}

func (e WorkflowEvent) clone() WorkflowEvent {
	cp := e
	if e.Date != nil {
		d := *e.Date
		cp.Date = &d
	}
	if e.Actor != nil {
		a := *e.Actor
		cp.Actor = &a
	}
	if e.CompletedAt != nil {
		t := *e.CompletedAt
		cp.CompletedAt = &t
	}
	return cp
}
