package serve

// Message constants
const (
	MsgShort = "Serve the style and render API over HTTP"
	MsgLong  = `Serve exposes the same operations the CLI runs locally as a JSON API:
listing and applying templates, editing the live configuration, and
rendering documents. The server holds one configuration session for its
whole lifetime.

Prometheus metrics are exposed at /metrics unless disabled in the
configuration.`

	MsgExample = `  # Serve on the configured address (usually :8080)
  docgen serve

  # Serve on a specific address
  docgen serve --listen 127.0.0.1:9000`
)
