package templates

// Message constants
const (
	MsgShort = "List the built-in style templates"
	MsgLong  = `List every built-in style template. A template fixes the page settings and
the per-element styles a document is rendered with; pick one with --template
on preview and render.`

	MsgExample = `  # List templates
  docgen templates

  # Machine-readable list
  docgen templates --json`

	MsgHeader = "Available templates:"
)
