package config

import (
	"net"
	"strconv"
	"time"

	"github.com/manjunagaraj95-sudo/10-Auto-Service-Claim/internal/workflow"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Workflow  WorkflowConfig  `yaml:"workflow"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Actor-Role,X-Actor-Name,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// WorkflowConfig holds claim workflow settings.
type WorkflowConfig struct {
	// SLARaw overrides per-stage dwell limits, e.g. "Claim Created=12h,Approved=0s".
	// A zero duration removes the limit of that stage.
	SLARaw string `yaml:"sla"      env:"WORKFLOW_SLA"`
	// IDStart is the counter value before the first claim; the first id is IDStart+1.
	IDStart int `yaml:"id_start" env:"WORKFLOW_ID_START" env-default:"1000"`

	// SLA is parsed from SLARaw during validation.
	SLA workflow.SLAPolicy `yaml:"-" env:"-"`
}

// DashboardConfig holds the windows KPIs are measured over.
type DashboardConfig struct {
	RequestWindowDays    int           `yaml:"request_window_days"    env:"DASHBOARD_REQUEST_WINDOW_DAYS"    env-default:"30"`
	FollowUpAfter        time.Duration `yaml:"follow_up_after"        env:"DASHBOARD_FOLLOW_UP_AFTER"        env-default:"72h"`
	RecentPaymentsWindow time.Duration `yaml:"recent_payments_window" env:"DASHBOARD_RECENT_PAYMENTS_WINDOW" env-default:"168h"`
}

// RequestWindow returns the claimRequests window as a duration.
func (d DashboardConfig) RequestWindow() time.Duration {
	return time.Duration(d.RequestWindowDays) * 24 * time.Hour
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
