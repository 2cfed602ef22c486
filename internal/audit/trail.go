// Package audit appends immutable entries to a claim's audit log.
package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// Action labels.
const (
	ActionClaimCreated     = "Claim created"
	ActionAmountCalculated = "Amount calculated"
	ActionClaimEscalated   = "Claim escalated"
)

// StatusChange returns the label recorded when a claim moves to s.
func StatusChange(s domain.ClaimStatus) string {
	return "Status change to " + s.Label()
}

// StatusChangeDetails renders the detail line of a status change.
func StatusChangeDetails(s domain.ClaimStatus, notes string) string {
	d := fmt.Sprintf("Claim status updated to %s.", s.Label())
	if notes = strings.TrimSpace(notes); notes != "" {
		d += " " + notes
	}
	return d
}

// Trail stamps audit entries. It is stateless apart from the clock.
type Trail struct {
	now func() time.Time
}

// NewTrail creates a trail. A nil clock means time.Now.
func NewTrail(now func() time.Time) *Trail {
	if now == nil {
		now = time.Now
	}
	return &Trail{now: now}
}

// Append returns a copy of c with one more audit entry. Existing entries are
// carried over untouched; the new id is the last id plus one. A nil claim
// yields nil.
func (t *Trail) Append(c *domain.Claim, actor, action, details string) *domain.Claim {
	if c == nil {
		return nil
	}
	next := c.Clone()
	next.AuditLog = append(next.AuditLog, domain.AuditEntry{
		ID:        c.LastAuditID() + 1,
		Timestamp: t.now(),
		Action:    action,
		Actor:     actor,
		Details:   details,
	})
	return next
}
