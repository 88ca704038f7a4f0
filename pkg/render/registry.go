package render

import (
	"strings"

	"github.com/arthur-debert/docgen/pkg/registry"
)

// Global registry of gateways keyed by output file extension (".docx",
// ".pdf"). Backend packages register themselves in init().
var backendRegistry registry.Registry[Gateway]

func init() {
	backendRegistry = registry.New[Gateway]()
}

// RegisterBackend registers a gateway for an output extension such as ".docx".
func RegisterBackend(ext string, gw Gateway) error {
	return backendRegistry.Register(NormalizeExtension(ext), gw)
}

// MustRegisterBackend registers a gateway and panics if registration fails.
// This is useful for init() functions where a duplicate extension is a
// programming error.
func MustRegisterBackend(ext string, gw Gateway) {
	registry.MustRegister(backendRegistry, NormalizeExtension(ext), gw)
}

// Backends returns the global backend registry.
func Backends() registry.Registry[Gateway] {
	return backendRegistry
}

// Extensions returns the registered output extensions in sorted order.
func Extensions() []string {
	return backendRegistry.List()
}

// NormalizeExtension lowercases an extension and ensures the leading dot, so
// "DOCX", "docx" and ".docx" all resolve to the same backend.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
