package preview

// Message constants
const (
	MsgShort = "Show the resolved style configuration"
	MsgLong  = `Preview resolves a style configuration without rendering anything: the
chosen template with every --set edit applied, exactly as a render would see
it. Any edit marks the configuration as custom.`

	MsgExample = `  # Preview the default template
  docgen preview

  # Preview the formal template with a wider top margin
  docgen preview --template formal --set document.margin_top=4

  # Machine-readable configuration
  docgen preview --json`

	MsgHeaderFormat = "Style configuration (%s)"
)
