package domain

// ClaimStatus is the workflow status of a claim.
type ClaimStatus string

const (
	ClaimStatusCreated           ClaimStatus = "Created"
	ClaimStatusAccepted          ClaimStatus = "Accepted"
	ClaimStatusIroning           ClaimStatus = "Ironing"
	ClaimStatusPendingApproval   ClaimStatus = "PendingApproval"
	ClaimStatusReady             ClaimStatus = "Ready"
	ClaimStatusProcessingPayment ClaimStatus = "ProcessingPayment"
	ClaimStatusPaymentProcessed  ClaimStatus = "PaymentProcessed"
	ClaimStatusDelivered         ClaimStatus = "Delivered"
	ClaimStatusCustomerPicked    ClaimStatus = "CustomerPicked"
	ClaimStatusRejected          ClaimStatus = "Rejected"
	ClaimStatusFraud             ClaimStatus = "Fraud"
	ClaimStatusEscalated         ClaimStatus = "Escalated"
)

// AllClaimStatuses returns the closed status enumeration in declaration order.
func AllClaimStatuses() []ClaimStatus {
	return []ClaimStatus{
		ClaimStatusCreated, ClaimStatusAccepted, ClaimStatusIroning,
		ClaimStatusPendingApproval, ClaimStatusReady, ClaimStatusProcessingPayment,
		ClaimStatusPaymentProcessed, ClaimStatusDelivered, ClaimStatusCustomerPicked,
		ClaimStatusRejected, ClaimStatusFraud, ClaimStatusEscalated,
	}
}

func (s ClaimStatus) String() string { return string(s) }

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusCreated, ClaimStatusAccepted, ClaimStatusIroning,
		ClaimStatusPendingApproval, ClaimStatusReady, ClaimStatusProcessingPayment,
		ClaimStatusPaymentProcessed, ClaimStatusDelivered, ClaimStatusCustomerPicked,
		ClaimStatusRejected, ClaimStatusFraud, ClaimStatusEscalated:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are accepted.
func (s ClaimStatus) IsTerminal() bool {
	switch s {
	case ClaimStatusDelivered, ClaimStatusCustomerPicked, ClaimStatusRejected,
		ClaimStatusFraud, ClaimStatusPaymentProcessed:
		return true
	}
	return false
}

// IsRejection reports whether the status is one of the terminal short-circuits.
func (s ClaimStatus) IsRejection() bool {
	return s == ClaimStatusRejected || s == ClaimStatusFraud
}

// IsClosed reports whether the claim finished successfully.
func (s ClaimStatus) IsClosed() bool {
	switch s {
	case ClaimStatusDelivered, ClaimStatusCustomerPicked, ClaimStatusPaymentProcessed:
		return true
	}
	return false
}

// IsInProgress reports whether the claim is actively being worked on past intake.
func (s ClaimStatus) IsInProgress() bool {
	switch s {
	case ClaimStatusAccepted, ClaimStatusIroning, ClaimStatusPendingApproval,
		ClaimStatusProcessingPayment:
		return true
	}
	return false
}

// IsOpen is the complement of IsTerminal over valid statuses.
func (s ClaimStatus) IsOpen() bool {
	return s.IsValid() && !s.IsTerminal()
}

// Label returns the display name of the status.
func (s ClaimStatus) Label() string {
	switch s {
	case ClaimStatusPendingApproval:
		return "Pending Approval"
	case ClaimStatusProcessingPayment:
		return "Processing Payment"
	case ClaimStatusPaymentProcessed:
		return "Payment Processed"
	case ClaimStatusCustomerPicked:
		return "Customer Picked"
	case ClaimStatusFraud:
		return "Fraud Detected"
	}
	return string(s)
}

// StageState is the progress of a single workflow milestone.
type StageState string

const (
	StageStatePending    StageState = "pending"
	StageStateInProgress StageState = "in-progress"
	StageStateCompleted  StageState = "completed"
	StageStateRejected   StageState = "rejected"
)

func (s StageState) String() string { return string(s) }

func (s StageState) IsValid() bool {
	switch s {
	case StageStatePending, StageStateInProgress, StageStateCompleted, StageStateRejected:
		return true
	}
	return false
}

// IsActive reports whether the stage is the one the claim currently sits in.
func (s StageState) IsActive() bool {
	return s == StageStateInProgress || s == StageStateRejected
}

// Role identifies the business actor performing an action.
type Role string

const (
	RoleIntake   Role = "intake"
	RoleAnalyst  Role = "analyst"
	RoleApprover Role = "approver"
	RoleFinance  Role = "finance"
)

// AllRoles returns every role in a stable order.
func AllRoles() []Role {
	return []Role{RoleIntake, RoleAnalyst, RoleApprover, RoleFinance}
}

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleIntake, RoleAnalyst, RoleApprover, RoleFinance:
		return true
	}
	return false
}

// Label returns the display name of the role.
func (r Role) Label() string {
	switch r {
	case RoleIntake:
		return "customer service representative"
	case RoleAnalyst:
		return "claim analyst"
	case RoleApprover:
		return "claim approver"
	case RoleFinance:
		return "finance manager"
	}
	return string(r)
}

// ActionKind is an authorization-gated operation on a claim.
type ActionKind string

const (
	ActionInitiate        ActionKind = "Initiate"
	ActionReview          ActionKind = "Review"
	ActionApproveReject   ActionKind = "ApproveReject"
	ActionCalculateAmount ActionKind = "CalculateAmount"
	ActionProcessPayment  ActionKind = "ProcessPayment"
	ActionEscalate        ActionKind = "Escalate"

	// ActionResolveEscalation settles an escalated claim.
	ActionResolveEscalation ActionKind = "ResolveEscalation"
)

// AllActionKinds returns every action kind in a stable order.
func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionInitiate, ActionReview, ActionApproveReject,
		ActionCalculateAmount, ActionProcessPayment, ActionEscalate,
		ActionResolveEscalation,
	}
}

func (a ActionKind) String() string { return string(a) }

func (a ActionKind) IsValid() bool {
	switch a {
	case ActionInitiate, ActionReview, ActionApproveReject,
		ActionCalculateAmount, ActionProcessPayment, ActionEscalate,
		ActionResolveEscalation:
		return true
	}
	return false
}
