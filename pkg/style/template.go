package style

// TemplateName names a built-in template, or the custom status label
type TemplateName string

const (
	// TemplateDefault is the official-document template (GB/T 9704 conventions)
	TemplateDefault TemplateName = "default"

	// TemplateFormal is the formal business template
	TemplateFormal TemplateName = "formal"

	// TemplateAcademic is the academic paper template
	TemplateAcademic TemplateName = "academic"

	// TemplateCustom labels a configuration that has diverged from its
	// template by at least one manual edit. It is a status, not a template:
	// there is no custom payload and the name never resolves to data.
	TemplateCustom TemplateName = "custom"
)

// IsBuiltin reports whether t names one of the resolvable built-in templates
func (t TemplateName) IsBuiltin() bool {
	switch t {
	case TemplateDefault, TemplateFormal, TemplateAcademic:
		return true
	}
	return false
}

// String returns the template name
func (t TemplateName) String() string {
	return string(t)
}
