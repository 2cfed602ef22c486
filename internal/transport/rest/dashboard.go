package rest

import (
	"net/http"
	"strconv"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

type dashboardResponse struct {
	Role    string               `json:"role"`
	Metrics map[string]metricDTO `json:"metrics"`
}

// Dashboard handles GET /dashboard.
func (h *ClaimHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	m, err := h.svc.GetDashboardMetrics(r.Context(), actor.role)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Role: actor.role.String(), Metrics: toMetrics(m)})
}

// Workload handles GET /dashboard/workload.
func (h *ClaimHandler) Workload(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}
	m, err := h.svc.GetWorkload(r.Context(), actor.role)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{Role: actor.role.String(), Metrics: toMetrics(m)})
}

type activityResponse struct {
	Role     string        `json:"role"`
	Activity []activityDTO `json:"activity"`
}

// Activity handles GET /dashboard/activity. The optional limit query
// parameter caps the feed.
func (h *ClaimHandler) Activity(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	feed, err := h.svc.GetRecentActivity(r.Context(), actor.role, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityResponse{Role: actor.role.String(), Activity: toActivity(feed)})
}

// Milestones handles GET /workflow/milestones.
func (h *ClaimHandler) Milestones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toMilestones(domain.Milestones()))
}
