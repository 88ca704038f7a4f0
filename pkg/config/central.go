package config

import (
	"time"
)

// Render holds settings for the document rendering pipeline.
type Render struct {
	// Timeout bounds a single render run. Runs that exceed it are
	// reported as RENDER_TIMEOUT, not RENDER_FAILURE.
	Timeout time.Duration `koanf:"timeout"`

	// DefaultTemplate names the style template activated when a session
	// does not request one.
	DefaultTemplate string `koanf:"default_template"`
}

// Server holds settings for the HTTP API.
type Server struct {
	// Listen is the address the server binds to.
	Listen string `koanf:"listen"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// Log holds logging settings.
type Log struct {
	// FileEnabled also writes logs to docgen.log in the XDG state
	// directory, in addition to the console.
	FileEnabled bool `koanf:"file_enabled"`
}

// Config is the main runtime configuration structure.
type Config struct {
	Render Render `koanf:"render"`
	Server Server `koanf:"server"`
	Log    Log    `koanf:"log"`
}

// Default returns the built-in configuration, the same values the embedded
// defaults.toml carries.
func Default() *Config {
	cfg, err := loadDefaults()
	if err != nil {
		// The embedded defaults are compiled in, so parsing them cannot
		// normally fail. Fall back to hardcoded values anyway.
		return &Config{
			Render: Render{
				Timeout:         30 * time.Second,
				DefaultTemplate: "default",
			},
			Server: Server{
				Listen:         ":8080",
				MetricsEnabled: true,
			},
			Log: Log{
				FileEnabled: true,
			},
		}
	}
	return cfg
}
