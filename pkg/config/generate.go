package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# docgen runtime configuration.
# Every setting is optional and shown here with its default value.
# Uncomment a line to change it. Environment variables (DOCGEN_*) take
# precedence over this file.

`

// configDocument mirrors Config for generation. Timeout is a string so the
// generated file shows "30s" rather than nanoseconds.
type configDocument struct {
	Render struct {
		Timeout         string `toml:"timeout" comment:"Upper bound for a single render run."`
		DefaultTemplate string `toml:"default_template" comment:"Style template activated when none is requested."`
	} `toml:"render"`
	Server struct {
		Listen         string `toml:"listen" comment:"Address the HTTP API binds to."`
		MetricsEnabled bool   `toml:"metrics_enabled" comment:"Expose Prometheus metrics on /metrics."`
	} `toml:"server"`
	Log struct {
		FileEnabled bool `toml:"file_enabled" comment:"Also write logs to docgen.log in the XDG state directory."`
	} `toml:"log"`
}

// GenerateConfigContent renders a docgen.toml where every setting is present
// but commented out, seeded from the built-in defaults.
func GenerateConfigContent() string {
	var doc configDocument
	cfg := Default()
	doc.Render.Timeout = cfg.Render.Timeout.String()
	doc.Render.DefaultTemplate = cfg.Render.DefaultTemplate
	doc.Server.Listen = cfg.Server.Listen
	doc.Server.MetricsEnabled = cfg.Server.MetricsEnabled
	doc.Log.FileEnabled = cfg.Log.FileEnabled

	out, err := toml.Marshal(doc)
	if err != nil {
		// The document is a fixed struct of strings and bools; marshalling
		// it cannot fail.
		panic(err)
	}

	return generatedHeader + commentOutConfigValues(string(out))
}

// commentOutConfigValues takes TOML content and comments out all non-comment,
// non-blank lines that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [render], [server]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
