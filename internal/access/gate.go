// Package access decides which role may perform which action on a claim.
package access

import (
	"slices"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// Capability is the static descriptor of what a role may ever attempt.
// Each flag gates one action kind; Allowed lists the claim statuses the role
// may act on for that action.
type Capability struct {
	Initiate        bool
	Review          bool
	ApproveReject   bool
	CalculateAmount bool
	ProcessPayment  bool
	Escalate        bool
	Resolve         bool

	Allowed map[domain.ActionKind][]domain.ClaimStatus
}

// Permits reports the flag for the given action kind.
func (c Capability) Permits(action domain.ActionKind) bool {
	switch action {
	case domain.ActionInitiate:
		return c.Initiate
	case domain.ActionReview:
		return c.Review
	case domain.ActionApproveReject:
		return c.ApproveReject
	case domain.ActionCalculateAmount:
		return c.CalculateAmount
	case domain.ActionProcessPayment:
		return c.ProcessPayment
	case domain.ActionEscalate:
		return c.Escalate
	case domain.ActionResolveEscalation:
		return c.Resolve
	}
	return false
}

func (c Capability) clone() Capability {
	cp := c
	cp.Allowed = make(map[domain.ActionKind][]domain.ClaimStatus, len(c.Allowed))
	for k, v := range c.Allowed {
		cp.Allowed[k] = slices.Clone(v)
	}
	return cp
}

func defaultTable() map[domain.Role]Capability {
	return map[domain.Role]Capability{
		domain.RoleIntake: {
			Initiate: true,
		},
		domain.RoleAnalyst: {
			Review:   true,
			Escalate: true,
			Allowed: map[domain.ActionKind][]domain.ClaimStatus{
				domain.ActionReview:   {domain.ClaimStatusCreated, domain.ClaimStatusAccepted, domain.ClaimStatusIroning},
				domain.ActionEscalate: {domain.ClaimStatusCreated, domain.ClaimStatusAccepted, domain.ClaimStatusIroning},
			},
		},
		domain.RoleApprover: {
			ApproveReject: true,
			Escalate:      true,
			Resolve:       true,
			Allowed: map[domain.ActionKind][]domain.ClaimStatus{
				domain.ActionApproveReject:     {domain.ClaimStatusPendingApproval},
				domain.ActionEscalate:          {domain.ClaimStatusPendingApproval},
				domain.ActionResolveEscalation: {domain.ClaimStatusEscalated},
			},
		},
		domain.RoleFinance: {
			CalculateAmount: true,
			ProcessPayment:  true,
			Allowed: map[domain.ActionKind][]domain.ClaimStatus{
				domain.ActionCalculateAmount: {domain.ClaimStatusReady},
				domain.ActionProcessPayment:  {domain.ClaimStatusProcessingPayment},
			},
		},
	}
}

// Gate evaluates the fixed capability table. It is immutable after
// construction and safe for concurrent use.
type Gate struct {
	table map[domain.Role]Capability
}

// NewGate returns a gate over the process-wide capability table.
func NewGate() *Gate {
	return &Gate{table: defaultTable()}
}

// Authorize reports whether role may perform action on claim. It never
// panics: unknown roles, unknown actions and a nil claim all yield false.
// Initiate has no claim yet and is decided on the flag alone.
func (g *Gate) Authorize(role domain.Role, action domain.ActionKind, claim *domain.Claim) bool {
	if action == domain.ActionInitiate {
		return g.Can(role, action, "")
	}
	if claim == nil {
		return false
	}
	return g.Can(role, action, claim.Status)
}

// Can is the status-level form of Authorize.
func (g *Gate) Can(role domain.Role, action domain.ActionKind, status domain.ClaimStatus) bool {
	c, ok := g.table[role]
	if !ok || !c.Permits(action) {
		return false
	}
	if action == domain.ActionInitiate {
		return true
	}
	allowed, ok := c.Allowed[action]
	if !ok {
		return false
	}
	return slices.Contains(allowed, status)
}

// Capabilities returns a copy of the role's descriptor.
func (g *Gate) Capabilities(role domain.Role) (Capability, bool) {
	c, ok := g.table[role]
	if !ok {
		return Capability{}, false
	}
	return c.clone(), true
}

// Permitted lists the action kinds role may perform on claim right now.
func (g *Gate) Permitted(role domain.Role, claim *domain.Claim) []domain.ActionKind {
	var out []domain.ActionKind
	for _, a := range domain.AllActionKinds() {
		if g.Authorize(role, a, claim) {
			out = append(out, a)
		}
	}
	return out
}
