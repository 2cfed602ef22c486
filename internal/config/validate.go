package config

import (
	"fmt"
	"strings"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/workflow"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (w *WorkflowConfig) validate() error {
	if w.IDStart < 0 {
		return fmt.Errorf("id_start must be >= 0 (got %d)", w.IDStart)
	}

	sla, err := workflow.ParseSLAPolicy(w.SLARaw)
	if err != nil {
		return fmt.Errorf("sla: %w", err)
	}
	w.SLA = sla

	return nil
}

func (d *DashboardConfig) validate() error {
	if d.RequestWindowDays <= 0 {
		return fmt.Errorf("request_window_days must be > 0 (got %d)", d.RequestWindowDays)
	}
	if d.FollowUpAfter <= 0 {
		return fmt.Errorf("follow_up_after must be > 0 (got %s)", d.FollowUpAfter)
	}
	if d.RecentPaymentsWindow <= 0 {
		return fmt.Errorf("recent_payments_window must be > 0 (got %s)", d.RecentPaymentsWindow)
	}
	return nil
}
