// Package workflow walks a claim through the fixed milestone sequence.
package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// InitialNotes is recorded on the first stage of every new claim.
const InitialNotes = "Initial submission"

// Engine computes status transitions and recomputes workflow history.
// It holds no claim state and is safe for concurrent use.
type Engine struct {
	sla SLAPolicy
	now func() time.Time
}

// NewEngine creates an engine. A nil clock means time.Now.
func NewEngine(sla SLAPolicy, now func() time.Time) *Engine {
	if sla == nil {
		sla = DefaultSLAPolicy()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{sla: sla, now: now}
}

// Seed builds the history of a freshly created claim: the first stage in
// progress, every other stage pending.
func (e *Engine) Seed(actor string) []domain.WorkflowEvent {
	now := e.now()
	history := make([]domain.WorkflowEvent, 0, domain.MilestoneCount())
	for i, m := range domain.Milestones() {
		ev := domain.WorkflowEvent{Stage: m.Name, State: domain.StageStatePending}
		if i == 0 {
			ev.State = domain.StageStateInProgress
			ev.Date = timePtr(now)
			ev.Actor = strPtr(actor)
			ev.Notes = InitialNotes
		}
		history = append(history, ev)
	}
	return history
}

// CurrentStage returns the index of the milestone the claim sits in.
// Statuses off the main sequence keep the stage recorded in the history.
func (e *Engine) CurrentStage(c *domain.Claim) int {
	if k, ok := domain.MilestoneIndex(c.Status); ok {
		return k
	}
	if k, ok := domain.ActiveStageIndex(c.WorkflowHistory); ok {
		return k
	}
	return 0
}

// Transition returns a copy of c moved to requested. The input claim is
// never modified. It does not touch the audit log or any store.
func (e *Engine) Transition(c *domain.Claim, requested domain.ClaimStatus, actor, notes string) (*domain.Claim, error) {
	if c == nil {
		return nil, errors.New("transition: nil claim")
	}
	if !requested.IsValid() {
		return nil, &domain.TransitionError{From: c.Status, To: requested, Err: domain.ErrUnknownStatus}
	}
	if c.Status.IsTerminal() {
		return nil, &domain.TransitionError{From: c.Status, To: requested, Err: domain.ErrInvalidTransition}
	}

	cur := e.CurrentStage(c)
	now := e.now()
	next := c.Clone()

	switch {
	case requested.IsRejection():
		e.reject(next, cur, now, notes)
	case requested == domain.ClaimStatusEscalated:
		if c.Status == domain.ClaimStatusEscalated {
			return nil, &domain.TransitionError{From: c.Status, To: requested, Err: domain.ErrInvalidTransition}
		}
	default:
		k, _ := domain.MilestoneIndex(requested)
		if k <= cur {
			return nil, &domain.TransitionError{From: c.Status, To: requested, Err: domain.ErrInvalidTransition}
		}
		e.advance(next, k, now, actor, notes)
	}

	next.Status = requested
	next.UpdatedAt = now
	return next, nil
}

// Resume returns a copy of an escalated claim put back where it was held.
// The claim gets the status of its retained stage and the history is left
// as it is, except that a claim held at Pending Approval moves on to Ready.
func (e *Engine) Resume(c *domain.Claim, actor, notes string) (*domain.Claim, error) {
	if c == nil {
		return nil, errors.New("resume: nil claim")
	}
	if c.Status != domain.ClaimStatusEscalated {
		return nil, fmt.Errorf("resume claim in status %s: %w", c.Status, domain.ErrInvalidTransition)
	}

	cur := e.CurrentStage(c)
	held := domain.Milestones()[cur].TargetStatus
	if held == domain.ClaimStatusPendingApproval {
		return e.Transition(c, domain.ClaimStatusReady, actor, notes)
	}

	next := c.Clone()
	next.Status = held
	next.UpdatedAt = e.now()
	return next, nil
}

// advance makes stage k the active one. Stages before it end up completed:
// the one that was in progress keeps its entry date and actor and gets its
// SLA evaluated, stages jumped over are stamped with now and actor.
func (e *Engine) advance(c *domain.Claim, k int, now time.Time, actor, notes string) {
	for i := range c.WorkflowHistory {
		ev := &c.WorkflowHistory[i]
		switch {
		case i < k:
			switch ev.State {
			case domain.StageStateCompleted:
			case domain.StageStateInProgress:
				ev.State = domain.StageStateCompleted
				ev.CompletedAt = timePtr(now)
				if ev.Date != nil {
					ev.SLABreach = e.sla.Breached(ev.Stage, *ev.Date, now)
				}
			default:
				*ev = domain.WorkflowEvent{
					Stage:       ev.Stage,
					State:       domain.StageStateCompleted,
					Date:        timePtr(now),
					Actor:       strPtr(actor),
					CompletedAt: timePtr(now),
				}
			}
		case i == k:
			*ev = domain.WorkflowEvent{
				Stage: ev.Stage,
				State: domain.StageStateInProgress,
				Date:  timePtr(now),
				Actor: strPtr(actor),
				Notes: notes,
			}
		default:
			*ev = domain.WorkflowEvent{Stage: ev.Stage, State: domain.StageStatePending}
		}
	}
}

// reject marks the active stage rejected. Nothing after it moves.
func (e *Engine) reject(c *domain.Claim, cur int, now time.Time, notes string) {
	if cur < 0 || cur >= len(c.WorkflowHistory) {
		return
	}
	ev := &c.WorkflowHistory[cur]
	ev.State = domain.StageStateRejected
	ev.CompletedAt = timePtr(now)
	if notes != "" {
		ev.Notes = notes
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }
