// Package cli carries the plumbing shared by docgen's commands: building a
// style session from flags and turning flag strings into the typed values
// the schema checks.
package cli

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/store"
	"github.com/arthur-debert/docgen/pkg/style"

	// Rendering backends register themselves on import.
	_ "github.com/arthur-debert/docgen/pkg/docx"
	_ "github.com/arthur-debert/docgen/pkg/pdf"
)

// NewSession builds the per-invocation style store: the named template with
// every --set edit applied on top. An empty template name keeps the store's
// default.
func NewSession(templateName string, sets []string) (*store.Store, error) {
	st := store.New()

	if templateName != "" {
		if err := st.LoadTemplate(style.TemplateName(templateName)); err != nil {
			return nil, err
		}
	}

	for _, expr := range sets {
		if err := ApplySet(st, expr); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// ApplySet applies one --set expression of the form category.key=value.
// The document category routes to the document settings, element categories
// to their element.
func ApplySet(st *store.Store, expr string) error {
	target, rawValue, found := strings.Cut(expr, "=")
	if !found {
		return errors.Newf(errors.ErrInvalidInput, "--set wants category.key=value, got %q", expr)
	}

	catName, key, found := strings.Cut(target, ".")
	if !found {
		return errors.Newf(errors.ErrInvalidInput, "--set wants category.key=value, got %q", expr)
	}

	value := ParseValue(rawValue)
	cat := style.Category(catName)
	switch {
	case cat == style.CategoryDocument:
		return st.SetDocumentSetting(key, value)
	case cat.IsElement():
		return st.SetElementSetting(cat, key, value)
	default:
		return errors.Newf(errors.ErrInvalidValue, "unknown category %q", catName).
			WithDetail("categories", style.Categories())
	}
}

// ParseValue turns a flag string into the typed value the schema expects:
// numbers first, then booleans, everything else stays a string. Numbers win
// so that "1" means one, not true.
func ParseValue(raw string) interface{} {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
