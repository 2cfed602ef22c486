package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/service/claim"
	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/pkg/ctxutil"
)

// claimService defines the minimal interface needed by ClaimHandler.
type claimService interface {
	InitiateClaim(ctx context.Context, role domain.Role, input claim.InitiateClaimInput) (*domain.Claim, error)
	ReviewClaim(ctx context.Context, input claim.ReviewClaimInput) (*domain.Claim, error)
	ApproveOrReject(ctx context.Context, input claim.ApproveInput) (*domain.Claim, error)
	CalculateAmount(ctx context.Context, input claim.CalculateAmountInput) (*domain.Claim, error)
	CompletePayment(ctx context.Context, input claim.CompletePaymentInput) (*domain.Claim, error)
	EscalateClaim(ctx context.Context, input claim.EscalateInput) (*domain.Claim, error)
	ResolveEscalation(ctx context.Context, input claim.ApproveInput) (*domain.Claim, error)
	GetClaim(ctx context.Context, id string) (*domain.Claim, error)
	ListClaims(ctx context.Context, f claim.ListFilter) ([]*domain.Claim, error)
	GetDashboardMetrics(ctx context.Context, role domain.Role) (domain.Metrics, error)
	GetWorkload(ctx context.Context, role domain.Role) (domain.Metrics, error)
	GetRecentActivity(ctx context.Context, role domain.Role, limit int) ([]domain.Activity, error)
	PermittedActions(role domain.Role, c *domain.Claim) []domain.ActionKind
}

// ClaimHandler serves the claim REST endpoints.
type ClaimHandler struct {
	svc claimService
	log *slog.Logger
}

// NewClaimHandler creates a ClaimHandler.
func NewClaimHandler(svc claimService, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{svc: svc, log: logger.With("handler", "claim")}
}

// Register mounts the claim routes on mux.
func (h *ClaimHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /claims", h.Initiate)
	mux.HandleFunc("GET /claims", h.List)
	mux.HandleFunc("GET /claims/{id}", h.Get)
	mux.HandleFunc("POST /claims/{id}/review", h.Review)
	mux.HandleFunc("POST /claims/{id}/approval", h.Approval)
	mux.HandleFunc("POST /claims/{id}/amount", h.Amount)
	mux.HandleFunc("POST /claims/{id}/payment", h.Payment)
	mux.HandleFunc("POST /claims/{id}/escalate", h.Escalate)
	mux.HandleFunc("POST /claims/{id}/resolve", h.Resolve)
	mux.HandleFunc("GET /claims/{id}/permissions", h.Permissions)
	mux.HandleFunc("GET /dashboard", h.Dashboard)
	mux.HandleFunc("GET /dashboard/workload", h.Workload)
	mux.HandleFunc("GET /dashboard/activity", h.Activity)
	mux.HandleFunc("GET /workflow/milestones", h.Milestones)
}

// Initiate handles POST /claims.
func (h *ClaimHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	var req initiateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	files := make([]domain.Attachment, len(req.Files))
	for i, f := range req.Files {
		files[i] = domain.Attachment(f)
	}

	c, err := h.svc.InitiateClaim(r.Context(), actor.role, claim.InitiateClaimInput{
		Customer:    req.Customer,
		Vehicle:     req.Vehicle,
		Issue:       req.Issue,
		Description: req.Description,
		Amount:      req.Amount,
		Files:       files,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClaimResponse(c))
}

// List handles GET /claims?status=&mine=.
// mine=true narrows the result to the caller's work queue.
func (h *ClaimHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := claim.ListFilter{Status: domain.ClaimStatus(q.Get("status"))}

	if v := q.Get("mine"); v != "" {
		mine, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "mine must be a boolean")
			return
		}
		if mine {
			actor, ok := h.requireActor(w, r)
			if !ok {
				return
			}
			filter.Queue = actor.role
		}
	}

	claims, err := h.svc.ListClaims(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimList(claims))
}

// Get handles GET /claims/{id}.
func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetClaim(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c))
}

// Review handles POST /claims/{id}/review.
func (h *ClaimHandler) Review(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.ReviewClaim(r.Context(), claim.ReviewClaimInput{
		ClaimID:  r.PathValue("id"),
		Role:     actor.role,
		Actor:    actor.name,
		Decision: domain.ClaimStatus(req.Decision),
		Notes:    req.Notes,
	})
	h.respond(w, r, c, err)
}

// Approval handles POST /claims/{id}/approval.
func (h *ClaimHandler) Approval(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	var req approvalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.ApproveOrReject(r.Context(), claim.ApproveInput{
		ClaimID:  r.PathValue("id"),
		Role:     actor.role,
		Actor:    actor.name,
		Approved: req.Approved,
		Notes:    req.Notes,
	})
	h.respond(w, r, c, err)
}

// Amount handles POST /claims/{id}/amount.
func (h *ClaimHandler) Amount(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.CalculateAmount(r.Context(), claim.CalculateAmountInput{
		ClaimID:     r.PathValue("id"),
		Role:        actor.role,
		Actor:       actor.name,
		FinalAmount: req.FinalAmount,
		Notes:       req.Notes,
	})
	h.respond(w, r, c, err)
}

// Payment handles POST /claims/{id}/payment. The body is optional.
func (h *ClaimHandler) Payment(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.CompletePayment(r.Context(), claim.CompletePaymentInput{
		ClaimID: r.PathValue("id"),
		Role:    actor.role,
		Actor:   actor.name,
		Notes:   req.Notes,
	})
	h.respond(w, r, c, err)
}

// Escalate handles POST /claims/{id}/escalate.
func (h *ClaimHandler) Escalate(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	var req escalateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.EscalateClaim(r.Context(), claim.EscalateInput{
		ClaimID: r.PathValue("id"),
		Role:    actor.role,
		Actor:   actor.name,
		Reason:  req.Reason,
	})
	h.respond(w, r, c, err)
}

// Resolve handles POST /claims/{id}/resolve.
func (h *ClaimHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	var req approvalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.ResolveEscalation(r.Context(), claim.ApproveInput{
		ClaimID:  r.PathValue("id"),
		Role:     actor.role,
		Actor:    actor.name,
		Approved: req.Approved,
		Notes:    req.Notes,
	})
	h.respond(w, r, c, err)
}

type permissionsResponse struct {
	ClaimID string   `json:"claimId"`
	Role    string   `json:"role"`
	Actions []string `json:"actions"`
}

// Permissions handles GET /claims/{id}/permissions.
func (h *ClaimHandler) Permissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetClaim(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	permitted := h.svc.PermittedActions(actor.role, c)
	actions := make([]string, len(permitted))
	for i, a := range permitted {
		actions[i] = a.String()
	}
	writeJSON(w, http.StatusOK, permissionsResponse{ClaimID: c.ID, Role: actor.role.String(), Actions: actions})
}

func (h *ClaimHandler) respond(w http.ResponseWriter, r *http.Request, c *domain.Claim, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c))
}

type caller struct {
	role domain.Role
	name string
}

// requireActor reads the declared actor. A missing or unknown role is a
// validation failure on the role header.
func (h *ClaimHandler) requireActor(w http.ResponseWriter, r *http.Request) (caller, bool) {
	a, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.NewValidationError("role", "X-Actor-Role header required"))
		return caller{}, false
	}
	role := domain.Role(a.Role)
	if !role.IsValid() {
		handleError(h.log, w, r, domain.NewValidationError("role", "unknown role"))
		return caller{}, false
	}
	return caller{role: role, name: a.Name}, true
}
