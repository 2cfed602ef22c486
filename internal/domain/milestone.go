package domain

import "slices"

// Milestone is one named stage of the fixed claim workflow.
type Milestone struct {
	Name         string
	TargetStatus ClaimStatus
	// Roles may drive a claim into this stage.
	Roles []Role
}

// Milestone names.
const (
	StageClaimCreated      = "Claim Created"
	StageClaimAccepted     = "Claim Accepted"
	StageInitialReview     = "Initial Review"
	StagePendingApproval   = "Pending Approval"
	StageApproved          = "Approved"
	StageProcessingPayment = "Processing Payment"
	StagePaymentProcessed  = "Payment Processed"
	StageClaimClosed       = "Claim Closed"
)

var milestones = []Milestone{
	{Name: StageClaimCreated, TargetStatus: ClaimStatusCreated, Roles: []Role{RoleIntake}},
	{Name: StageClaimAccepted, TargetStatus: ClaimStatusAccepted, Roles: []Role{RoleAnalyst}},
	{Name: StageInitialReview, TargetStatus: ClaimStatusIroning, Roles: []Role{RoleAnalyst}},
	{Name: StagePendingApproval, TargetStatus: ClaimStatusPendingApproval, Roles: []Role{RoleApprover}},
	{Name: StageApproved, TargetStatus: ClaimStatusReady, Roles: []Role{RoleApprover}},
	{Name: StageProcessingPayment, TargetStatus: ClaimStatusProcessingPayment, Roles: []Role{RoleFinance}},
	{Name: StagePaymentProcessed, TargetStatus: ClaimStatusPaymentProcessed, Roles: []Role{RoleFinance}},
	{Name: StageClaimClosed, TargetStatus: ClaimStatusDelivered, Roles: []Role{RoleIntake, RoleAnalyst, RoleApprover, RoleFinance}},
}

// Milestones returns a copy of the ordered workflow definition.
func Milestones() []Milestone {
	out := make([]Milestone, len(milestones))
	for i, m := range milestones {
		out[i] = Milestone{Name: m.Name, TargetStatus: m.TargetStatus, Roles: slices.Clone(m.Roles)}
	}
	return out
}

// MilestoneCount is the length of every claim's workflow history.
func MilestoneCount() int { return len(milestones) }

// MilestoneIndex returns the position of the milestone a status lands on.
// CustomerPicked is an alternative closure and shares the Claim Closed stage.
// Statuses that do not move the claim along the sequence (Rejected, Fraud,
// Escalated) report false.
func MilestoneIndex(s ClaimStatus) (int, bool) {
	if s == ClaimStatusCustomerPicked {
		s = ClaimStatusDelivered
	}
	for i, m := range milestones {
		if m.TargetStatus == s {
			return i, true
		}
	}
	return -1, false
}
