// Package output handles docgen's terminal output: format detection
// (rich terminal, plain text, JSON), a lipgloss style registry loaded
// from embedded YAML, and a JSON renderer for machine consumption.
//
// Styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes:
//
//	output.Render(format, "ActiveTemplate", "default")
package output
