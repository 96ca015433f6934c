package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.rate_per_minute", 30)

	// Output defaults
	v.SetDefault("output.dir", ".tmp")

	// Generate defaults
	v.SetDefault("generate.plan_format", "markdown")
	v.SetDefault("generate.include_charter_rows", false)

	// Publish defaults
	v.SetDefault("publish.enabled", false)
	v.SetDefault("publish.credentials_file", "credentials.json")
	v.SetDefault("publish.share_anyone", true)
}
