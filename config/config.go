// Package config manages QAForge configuration.
//
// Configuration is merged from TOML files and environment variables in
// precedence order: system < user (~/.qaforge/config.toml) < project
// (qaforge.toml, found by walking up from the working directory) < env
// vars (QAFORGE_ prefix, dots replaced by underscores).
package config

// Config represents the QAForge configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Output   OutputConfig   `mapstructure:"output"`
	Generate GenerateConfig `mapstructure:"generate"`
	Publish  PublishConfig  `mapstructure:"publish"`
}

// ServerConfig configures the QAForge HTTP server
type ServerConfig struct {
	Port           *int     `mapstructure:"port"`            // nil = default 5000
	AllowedOrigins []string `mapstructure:"allowed_origins"` // CORS origins, empty = allow any
	RatePerMinute  int      `mapstructure:"rate_per_minute"` // generate requests per client per minute, 0 = unlimited
}

// OutputConfig configures the transient artifact working directory
type OutputConfig struct {
	Dir string `mapstructure:"dir"` // created on first write if absent
}

// GenerateConfig configures the artifact renderers.
//
// PlanFormat selects between the two historical test-plan strategies:
// "markdown" emits the structured-text plan, "pdf" emits the paginated
// document with rendered tables. Both carry identical content.
type GenerateConfig struct {
	PlanFormat         string `mapstructure:"plan_format"`          // "markdown" or "pdf"
	IncludeCharterRows bool   `mapstructure:"include_charter_rows"` // append charter-linked rows to the test-case table
}

// PublishConfig configures the Google Docs/Sheets publish adapter
type PublishConfig struct {
	Enabled         bool   `mapstructure:"enabled"`          // attempt remote publish after writing artifacts
	CredentialsFile string `mapstructure:"credentials_file"` // service-account JSON, fallback when GOOGLE_CREDENTIALS is unset
	ShareAnyone     bool   `mapstructure:"share_anyone"`     // relax sharing to anyone-with-link can edit
}

// Server port constants
const (
	// DefaultServerPort matches the historical deployment default.
	DefaultServerPort = 5000

	// FallbackPortScan is how many successive ports Start probes when
	// the configured port is taken.
	FallbackPortScan = 10
)

// DefaultDirPermissions for directories created by QAForge
const DefaultDirPermissions = 0o755
