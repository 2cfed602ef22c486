package claim

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

const (
	maxShortText = 200
	maxLongText  = 2000
	maxFiles     = 20
)

// reviewDecisions are the statuses an analyst review may end in.
var reviewDecisions = []domain.ClaimStatus{
	domain.ClaimStatusAccepted,
	domain.ClaimStatusIroning,
	domain.ClaimStatusPendingApproval,
	domain.ClaimStatusFraud,
}

// InitiateClaimInput holds the parameters for opening a claim.
type InitiateClaimInput struct {
	Customer    string
	Vehicle     string
	Issue       string
	Description string
	Amount      decimal.Decimal
	Files       []domain.Attachment
}

// Validate checks all fields and collects all errors.
func (i InitiateClaimInput) Validate() error {
	var errs []domain.FieldError

	errs = requireText(errs, "customer", i.Customer, maxShortText)
	errs = requireText(errs, "vehicle", i.Vehicle, maxShortText)
	errs = requireText(errs, "issue", i.Issue, maxShortText)
	errs = requireText(errs, "description", i.Description, maxLongText)

	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than 0"})
	}

	if len(i.Files) > maxFiles {
		errs = append(errs, domain.FieldError{Field: "files", Message: fmt.Sprintf("max %d files", maxFiles)})
	}
	for idx, f := range i.Files {
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("files[%d].name", idx), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReviewClaimInput holds an analyst's review decision.
type ReviewClaimInput struct {
	ClaimID  string
	Role     domain.Role
	Actor    string
	Decision domain.ClaimStatus
	Notes    string
}

// Validate checks all fields and collects all errors. A decision outside
// the status enumeration is reported as domain.ErrUnknownStatus.
func (i ReviewClaimInput) Validate() error {
	if i.Decision != "" && !i.Decision.IsValid() {
		return fmt.Errorf("decision %q: %w", i.Decision, domain.ErrUnknownStatus)
	}

	var errs []domain.FieldError
	errs = requireID(errs, i.ClaimID)

	switch {
	case i.Decision == "":
		errs = append(errs, domain.FieldError{Field: "decision", Message: "required"})
	case !isReviewDecision(i.Decision):
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be one of Accepted, Ironing, PendingApproval, Fraud"})
	}

	errs = requireText(errs, "notes", i.Notes, maxLongText)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds an approver's verdict.
type ApproveInput struct {
	ClaimID  string
	Role     domain.Role
	Actor    string
	Approved bool
	Notes    string
}

// Validate checks all fields and collects all errors.
func (i ApproveInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, i.ClaimID)
	errs = requireText(errs, "notes", i.Notes, maxLongText)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CalculateAmountInput holds the settled amount of a claim.
type CalculateAmountInput struct {
	ClaimID     string
	Role        domain.Role
	Actor       string
	FinalAmount decimal.Decimal
	Notes       string
}

// Validate checks all fields and collects all errors.
func (i CalculateAmountInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, i.ClaimID)

	if !i.FinalAmount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "final_amount", Message: "must be greater than 0"})
	}

	errs = requireText(errs, "notes", i.Notes, maxLongText)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompletePaymentInput marks a payment as sent.
type CompletePaymentInput struct {
	ClaimID string
	Role    domain.Role
	Actor   string
	Notes   string // optional
}

// Validate checks all fields and collects all errors.
func (i CompletePaymentInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, i.ClaimID)
	if len(i.Notes) > maxLongText {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", maxLongText)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EscalateInput flags a claim for supervisor attention.
type EscalateInput struct {
	ClaimID string
	Role    domain.Role
	Actor   string
	Reason  string
}

// Validate checks all fields and collects all errors.
func (i EscalateInput) Validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, i.ClaimID)
	errs = requireText(errs, "reason", i.Reason, maxLongText)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListFilter narrows ListClaims. Zero value lists everything.
type ListFilter struct {
	// Status keeps only claims in this status.
	Status domain.ClaimStatus
	// Queue keeps only claims in the work queue of this role.
	Queue domain.Role
	// Match is an extra caller predicate.
	Match func(*domain.Claim) bool
}

// Validate checks all fields and collects all errors.
func (f ListFilter) Validate() error {
	var errs []domain.FieldError
	if f.Status != "" && !f.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if f.Queue != "" && !f.Queue.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func requireID(errs []domain.FieldError, id string) []domain.FieldError {
	if strings.TrimSpace(id) == "" {
		return append(errs, domain.FieldError{Field: "claim_id", Message: "required"})
	}
	return errs
}

func requireText(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(v) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}

func isReviewDecision(s domain.ClaimStatus) bool {
	for _, d := range reviewDecisions {
		if d == s {
			return true
		}
	}
	return false
}
