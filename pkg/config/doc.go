// Package config handles runtime configuration for docgen.
// It layers embedded TOML defaults, an optional docgen.toml, and
// DOCGEN_* environment variables into a typed Config.
//
// Style templates are not configuration: their contents are compiled
// into pkg/templates and adjusted per session, never read from files.
package config
