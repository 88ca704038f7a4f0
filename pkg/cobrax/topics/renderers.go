package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats raw topic content for terminal display.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

// Render returns the content as-is.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics through glamour. Non-markdown
// content passes through untouched.
type GlamourRenderer struct {
	// Style is a glamour style name such as "auto", "dark", "light" or
	// "notty". An empty value means "auto".
	Style string

	// Width wraps output at the given column; 0 lets glamour decide.
	Width int
}

// NewGlamourRenderer creates a markdown renderer with the given glamour
// style. Callers that know the output is not a terminal should pass "notty".
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to styled terminal output. Any rendering problem
// falls back to the raw content; help must never fail.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStandardStyle(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
