package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

type attachmentDTO struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
	Type string `json:"type,omitempty"`
}

type workflowEventDTO struct {
	Stage       string     `json:"stage"`
	Status      string     `json:"status"`
	Date        *time.Time `json:"date"`
	Actor       *string    `json:"actor"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	SLABreach   bool       `json:"slaBreach"`
}

type auditEntryDTO struct {
	ID        int       `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Details   string    `json:"details"`
}

type claimResponse struct {
	ID              string             `json:"id"`
	Status          string             `json:"status"`
	StatusLabel     string             `json:"statusLabel"`
	Customer        string             `json:"customer"`
	Vehicle         string             `json:"vehicle"`
	Issue           string             `json:"issue"`
	Description     string             `json:"description"`
	Amount          decimal.Decimal    `json:"amount"`
	FinalAmount     *decimal.Decimal   `json:"finalAmount,omitempty"`
	Files           []attachmentDTO    `json:"files"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	WorkflowHistory []workflowEventDTO `json:"workflowHistory"`
	AuditLog        []auditEntryDTO    `json:"auditLog"`
}

func toClaimResponse(c *domain.Claim) claimResponse {
	resp := claimResponse{
		ID:              c.ID,
		Status:          c.Status.String(),
		StatusLabel:     c.Status.Label(),
		Customer:        c.Customer,
		Vehicle:         c.Vehicle,
		Issue:           c.Issue,
		Description:     c.Description,
		Amount:          c.Amount,
		FinalAmount:     c.FinalAmount,
		Files:           make([]attachmentDTO, len(c.Files)),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		WorkflowHistory: make([]workflowEventDTO, len(c.WorkflowHistory)),
		AuditLog:        make([]auditEntryDTO, len(c.AuditLog)),
	}
	for i, f := range c.Files {
		resp.Files[i] = attachmentDTO(f)
	}
	for i, ev := range c.WorkflowHistory {
		resp.WorkflowHistory[i] = workflowEventDTO{
			Stage:       ev.Stage,
			Status:      ev.State.String(),
			Date:        ev.Date,
			Actor:       ev.Actor,
			Notes:       ev.Notes,
			CompletedAt: ev.CompletedAt,
			SLABreach:   ev.SLABreach,
		}
	}
	for i, e := range c.AuditLog {
		resp.AuditLog[i] = auditEntryDTO(e)
	}
	return resp
}

func toClaimList(claims []*domain.Claim) []claimResponse {
	out := make([]claimResponse, len(claims))
	for i, c := range claims {
		out[i] = toClaimResponse(c)
	}
	return out
}

type metricDTO struct {
	Kind   string           `json:"kind"`
	Count  *int             `json:"count,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

func toMetrics(m domain.Metrics) map[string]metricDTO {
	out := make(map[string]metricDTO, len(m))
	for name, v := range m {
		dto := metricDTO{Kind: string(v.Kind)}
		if v.Kind == domain.MetricKindCurrency {
			amount := v.Amount
			dto.Amount = &amount
		} else {
			count := v.Count
			dto.Count = &count
		}
		out[name.String()] = dto
	}
	return out
}

type activityDTO struct {
	ClaimID   string    `json:"claimId"`
	Customer  string    `json:"customer"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Details   string    `json:"details"`
}

func toActivity(feed []domain.Activity) []activityDTO {
	out := make([]activityDTO, len(feed))
	for i, a := range feed {
		out[i] = activityDTO{
			ClaimID:   a.ClaimID,
			Customer:  a.Customer,
			Status:    a.Status.String(),
			Timestamp: a.Entry.Timestamp,
			Action:    a.Entry.Action,
			Actor:     a.Entry.Actor,
			Details:   a.Entry.Details,
		}
	}
	return out
}

type milestoneDTO struct {
	Name         string   `json:"name"`
	TargetStatus string   `json:"targetStatus"`
	Roles        []string `json:"roles"`
}

func toMilestones(ms []domain.Milestone) []milestoneDTO {
	out := make([]milestoneDTO, len(ms))
	for i, m := range ms {
		roles := make([]string, len(m.Roles))
		for j, r := range m.Roles {
			roles[j] = r.String()
		}
		out[i] = milestoneDTO{Name: m.Name, TargetStatus: m.TargetStatus.String(), Roles: roles}
	}
	return out
}

// Request bodies.

type initiateRequest struct {
	Customer    string          `json:"customer"`
	Vehicle     string          `json:"vehicle"`
	Issue       string          `json:"issue"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Files       []attachmentDTO `json:"files"`
}

type reviewRequest struct {
	Decision string `json:"decision"`
	Notes    string `json:"notes"`
}

type approvalRequest struct {
	Approved bool   `json:"approved"`
	Notes    string `json:"notes"`
}

type amountRequest struct {
	FinalAmount decimal.Decimal `json:"finalAmount"`
	Notes       string          `json:"notes"`
}

type paymentRequest struct {
	Notes string `json:"notes"`
}

type escalateRequest struct {
	Reason string `json:"reason"`
}
