package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/domain"
)

// SLAPolicy maps a milestone name to the longest a claim may dwell in it.
// Stages without an entry never breach.
type SLAPolicy map[string]time.Duration

// DefaultSLAPolicy returns the built-in dwell limits.
func DefaultSLAPolicy() SLAPolicy {
	return SLAPolicy{
		domain.StageClaimCreated:      24 * time.Hour,
		domain.StageClaimAccepted:     48 * time.Hour,
		domain.StageInitialReview:     72 * time.Hour,
		domain.StagePendingApproval:   48 * time.Hour,
		domain.StageApproved:          24 * time.Hour,
		domain.StageProcessingPayment: 72 * time.Hour,
		domain.StagePaymentProcessed:  24 * time.Hour,
	}
}

// Max returns the configured limit for stage.
func (p SLAPolicy) Max(stage string) (time.Duration, bool) {
	d, ok := p[stage]
	return d, ok
}

// Breached reports whether a stage entered at entered and left at left
// exceeded its limit.
func (p SLAPolicy) Breached(stage string, entered, left time.Time) bool {
	limit, ok := p.Max(stage)
	if !ok {
		return false
	}
	return left.Sub(entered) > limit
}

// ParseSLAPolicy reads overrides in the form "Claim Created=24h,Approved=12h"
// on top of the defaults. An empty string yields the defaults.
func ParseSLAPolicy(raw string) (SLAPolicy, error) {
	p := DefaultSLAPolicy()
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return p, nil
	}

	known := make(map[string]bool, domain.MilestoneCount())
	for _, m := range domain.Milestones() {
		known[m.Name] = true
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("sla entry %q: expected stage=duration", part)
		}
		name = strings.TrimSpace(name)
		if !known[name] {
			return nil, fmt.Errorf("sla entry %q: unknown stage %q", part, name)
		}
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("sla entry %q: %w", part, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("sla entry %q: negative duration", part)
		}
		if d == 0 {
			delete(p, name)
			continue
		}
		p[name] = d
	}
	return p, nil
}
