package domain

import (
	"errors"
	"fmt"
)

// ActiveStageIndex returns the position of the stage the claim currently sits
// in: the first in-progress or rejected entry of its workflow history.
func ActiveStageIndex(history []WorkflowEvent) (int, bool) {
	for i, ev := range history {
		if ev.State.IsActive() {
			return i, true
		}
	}
	return -1, false
}

// CheckInvariants verifies the at-rest rules every stored claim must satisfy.
// It returns nil or an error describing the first violation found.
func CheckInvariants(c *Claim) error {
	if c == nil {
		return errors.New("nil claim")
	}
	if !c.Status.IsValid() {
		return fmt.Errorf("status %q outside enumeration", c.Status)
	}
	if !c.Amount.IsPositive() {
		return fmt.Errorf("amount %s must be positive", c.Amount)
	}
	if c.FinalAmount != nil && !c.FinalAmount.IsPositive() {
		return fmt.Errorf("final amount %s must be positive", c.FinalAmount)
	}

	if err := checkHistory(c); err != nil {
		return err
	}

	if len(c.AuditLog) == 0 {
		return errors.New("audit log is empty")
	}
	for i, e := range c.AuditLog {
		if e.ID != i+1 {
			return fmt.Errorf("audit entry %d has id %d, want %d", i, e.ID, i+1)
		}
	}
	return nil
}

func checkHistory(c *Claim) error {
	if len(c.WorkflowHistory) != MilestoneCount() {
		return fmt.Errorf("workflow history has %d entries, want %d", len(c.WorkflowHistory), MilestoneCount())
	}
	for i, m := range milestones {
		if c.WorkflowHistory[i].Stage != m.Name {
			return fmt.Errorf("history[%d] is %q, want %q", i, c.WorkflowHistory[i].Stage, m.Name)
		}
	}

	k, ok := MilestoneIndex(c.Status)
	if !ok {
		k, ok = ActiveStageIndex(c.WorkflowHistory)
		if !ok {
			return fmt.Errorf("status %s has no active stage", c.Status)
		}
	}

	for i, ev := range c.WorkflowHistory {
		switch {
		case i < k:
			if ev.State != StageStateCompleted {
				return fmt.Errorf("history[%d] state %s, want completed", i, ev.State)
			}
		case i == k:
			want := StageStateInProgress
			if c.Status.IsRejection() {
				want = StageStateRejected
			}
			if ev.State != want {
				return fmt.Errorf("history[%d] state %s, want %s", i, ev.State, want)
			}
		default:
			if ev.State != StageStatePending {
				return fmt.Errorf("history[%d] state %s, want pending", i, ev.State)
			}
			if ev.Date != nil || ev.Actor != nil {
				return fmt.Errorf("history[%d] is pending but carries date or actor", i)
			}
		}
	}
	return nil
}
