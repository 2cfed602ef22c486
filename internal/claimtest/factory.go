// Package claimtest builds deterministic claims for tests. Production code
// must not import it.
package claimtest

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/audit"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/workflow"
)

// Epoch is the default reference time of a factory.
var Epoch = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

var customers = []string{"John Doe", "Jane Smith", "Peter Jones", "Alice Brown", "Bob White"}

var vehicles = []string{"Toyota Camry", "Honda Civic", "Ford F-150", "BMW X5", "Mercedes C-Class"}

var issues = []string{"Engine malfunction", "Brake failure", "Body damage", "Electrical fault", "Tire replacement"}

// Factory produces claims whose history and audit log are consistent with
// the status they are in.
type Factory struct {
	Engine *workflow.Engine
	Trail  *audit.Trail

	now time.Time
	seq int
}

// New returns a factory whose clock is frozen at now.
func New(now time.Time) *Factory {
	f := &Factory{now: now}
	clock := func() time.Time { return f.now }
	f.Engine = workflow.NewEngine(workflow.DefaultSLAPolicy(), clock)
	f.Trail = audit.NewTrail(clock)
	return f
}

// Now returns the factory clock.
func (f *Factory) Now() time.Time { return f.now }

// Advance moves the factory clock forward.
func (f *Factory) Advance(d time.Duration) { f.now = f.now.Add(d) }

// Created returns a freshly initiated claim without an id. Descriptive
// fields rotate through a fixed list so consecutive claims differ.
func (f *Factory) Created() *domain.Claim {
	i := f.seq
	f.seq++

	customer := customers[i%len(customers)]
	c := &domain.Claim{
		Status:      domain.ClaimStatusCreated,
		Customer:    customer,
		Vehicle:     vehicles[i%len(vehicles)],
		Issue:       issues[i%len(issues)],
		Description: fmt.Sprintf("Detailed description for claim %d.", i+1),
		Amount:      decimal.NewFromInt(int64(500 + 250*(i%8))),
		Files: []domain.Attachment{
			{Name: "Damage_Report.pdf", URL: "#", Type: "pdf"},
		},
		CreatedAt:       f.now,
		UpdatedAt:       f.now,
		WorkflowHistory: f.Engine.Seed(customer),
	}
	return f.Trail.Append(c, customer, audit.ActionClaimCreated, "Initial claim submitted by "+customer)
}

// At returns a claim driven from Created to status along the main path.
// Rejected branches off Pending Approval, Fraud off Created and Escalated
// off Initial Review.
func (f *Factory) At(status domain.ClaimStatus) *domain.Claim {
	c := f.Created()
	for _, s := range pathTo(status) {
		c = f.step(c, s)
	}
	return c
}

// WithID sets the id of c and returns it.
func WithID(c *domain.Claim, id string) *domain.Claim {
	c.ID = id
	return c
}

func (f *Factory) step(c *domain.Claim, s domain.ClaimStatus) *domain.Claim {
	next, err := f.Engine.Transition(c, s, "fixture", "fixture step")
	if err != nil {
		panic(fmt.Sprintf("claimtest: %s -> %s: %v", c.Status, s, err))
	}
	return f.Trail.Append(next, "fixture", audit.StatusChange(s), audit.StatusChangeDetails(s, "fixture step"))
}

func pathTo(status domain.ClaimStatus) []domain.ClaimStatus {
	switch status {
	case domain.ClaimStatusCreated:
		return nil
	case domain.ClaimStatusFraud:
		return []domain.ClaimStatus{domain.ClaimStatusFraud}
	case domain.ClaimStatusRejected:
		return append(pathTo(domain.ClaimStatusPendingApproval), domain.ClaimStatusRejected)
	case domain.ClaimStatusEscalated:
		return append(pathTo(domain.ClaimStatusIroning), domain.ClaimStatusEscalated)
	case domain.ClaimStatusDelivered, domain.ClaimStatusCustomerPicked:
		return append(pathTo(domain.ClaimStatusProcessingPayment), status)
	}

	k, ok := domain.MilestoneIndex(status)
	if !ok {
		panic("claimtest: no path to " + string(status))
	}
	var path []domain.ClaimStatus
	for _, m := range domain.Milestones()[1 : k+1] {
		path = append(path, m.TargetStatus)
	}
	return path
}
