package templates

import (
	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/style"
)

// catalogOrder is the order templates are listed in
var catalogOrder = []style.TemplateName{
	style.TemplateDefault,
	style.TemplateFormal,
	style.TemplateAcademic,
}

// Names returns the built-in template names in catalog order
func Names() []style.TemplateName {
	out := make([]style.TemplateName, len(catalogOrder))
	copy(out, catalogOrder)
	return out
}

// Has reports whether name resolves to a built-in template. The custom
// status label is not a template and reports false.
func Has(name style.TemplateName) bool {
	_, ok := builtins[name]
	return ok
}

// Resolve returns a deep, independent copy of a built-in template. Unknown
// names, including "custom", yield an UnknownTemplate error.
func Resolve(name style.TemplateName) (style.Configuration, error) {
	cfg, ok := builtins[name]
	if !ok {
		return style.Configuration{}, errors.Newf(errors.ErrUnknownTemplate, "unknown template %q", name).
			WithDetail("template", name.String())
	}
	return cfg.Clone(), nil
}

// MustResolve resolves a built-in template and panics on unknown names.
// Useful where the name is a compile-time constant.
func MustResolve(name style.TemplateName) style.Configuration {
	cfg, err := Resolve(name)
	if err != nil {
		panic(err)
	}
	return cfg
}
