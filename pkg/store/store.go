// Package store holds the live style configuration: one mutable
// configuration plus the label of the template it came from. Every operation
// is serialized by a single mutex. Edits are checked against the schema
// before they land; a rejected edit changes nothing, an accepted one flips
// the label to custom.
package store

import (
	"sync"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/schema"
	"github.com/arthur-debert/docgen/pkg/style"
	"github.com/arthur-debert/docgen/pkg/templates"
)

// Store is the live style configuration. The zero value is not usable; use New.
type Store struct {
	mu     sync.Mutex
	cfg    style.Configuration
	active style.TemplateName
}

// New returns a store primed with the default template
func New() *Store {
	return &Store{
		cfg:    templates.MustResolve(style.TemplateDefault),
		active: style.TemplateDefault,
	}
}

// LoadTemplate replaces the whole configuration with a built-in template and
// sets the active label to its name. Unknown names, including custom, leave
// the store untouched.
func (s *Store) LoadTemplate(name style.TemplateName) error {
	cfg, err := templates.Resolve(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	s.active = name

	logger := logging.GetLogger("store")
	logger.Debug().Str("template", name.String()).Msg("Template applied")
	return nil
}

// SetDocumentSetting applies one checked edit to the document category and
// marks the configuration custom. A rejected edit leaves configuration and
// label untouched.
func (s *Store) SetDocumentSetting(key string, value interface{}) error {
	normalized, err := schema.CheckDocumentValue(key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case schema.KeyMarginTop:
		s.cfg.Document.MarginTop = normalized.(float64)
	case schema.KeyMarginBottom:
		s.cfg.Document.MarginBottom = normalized.(float64)
	case schema.KeyMarginLeft:
		s.cfg.Document.MarginLeft = normalized.(float64)
	case schema.KeyMarginRight:
		s.cfg.Document.MarginRight = normalized.(float64)
	case schema.KeyLineSpacing:
		s.cfg.Document.LineSpacing = normalized.(style.LineSpacing)
	case schema.KeyFontFamily:
		s.cfg.Document.FontFamily = normalized.(string)
	case schema.KeyFontSize:
		s.cfg.Document.FontSize = normalized.(int)
	default:
		return errors.Newf(errors.ErrInternal, "unhandled document setting %s", key)
	}

	s.active = style.TemplateCustom

	logger := logging.GetLogger("store")
	logger.Debug().Str("key", key).Interface("value", value).Msg("Document setting updated")
	return nil
}

// SetElementSetting applies one checked edit to an element category and
// marks the configuration custom. A rejected edit leaves configuration and
// label untouched. Passing a non-element category is a programmer error and
// panics.
func (s *Store) SetElementSetting(cat style.Category, key string, value interface{}) error {
	normalized, err := schema.CheckElementValue(cat, key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	el := s.cfg.Element(cat)
	if el == nil {
		// cannot happen for configurations built from templates
		return errors.Newf(errors.ErrInternal, "no %s element in configuration", cat)
	}

	switch key {
	case schema.KeyFontFamily:
		el.FontFamily = normalized.(string)
	case schema.KeyFontSize:
		el.FontSize = normalized.(int)
	case schema.KeyBold:
		el.Bold = normalized.(bool)
	case schema.KeyAlignment:
		el.Alignment = normalized.(style.Alignment)
	case schema.KeyFirstLineIndent:
		v := normalized.(int)
		el.FirstLineIndent = &v
	default:
		return errors.Newf(errors.ErrInternal, "unhandled element setting %s", key)
	}

	s.active = style.TemplateCustom

	logger := logging.GetLogger("store")
	logger.Debug().Str("category", cat.String()).Str("key", key).Interface("value", value).Msg("Element setting updated")
	return nil
}

// Snapshot returns a deep copy of the configuration taken at one consistent
// instant. Callers may hold it as long as they like; it never changes.
func (s *Store) Snapshot() style.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// ActiveTemplate returns the current status label: the applied template
// name, or custom once any edit has landed.
func (s *Store) ActiveTemplate() style.TemplateName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// State returns the snapshot and the active label from the same instant
func (s *Store) State() (style.Configuration, style.TemplateName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone(), s.active
}
