// Package validate checks whole style configurations against the schema.
// Validation is total: every violation is reported in canonical category
// order, never just the first defect found.
package validate

import (
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/schema"
	"github.com/arthur-debert/docgen/pkg/style"
)

// Violation describes one defect of a configuration
type Violation struct {
	Category style.Category `json:"category"`
	Key      string         `json:"key,omitempty"`
	Message  string         `json:"message"`
}

// Validate checks a configuration against the schema and returns every
// violation found. An empty result means the configuration may cross the
// rendering boundary.
func Validate(cfg style.Configuration) []Violation {
	var violations []Violation

	for _, attr := range schema.AttributesFor(style.CategoryDocument) {
		value := documentValue(cfg.Document, attr.Key)
		if _, err := schema.CheckDocumentValue(attr.Key, value); err != nil {
			violations = append(violations, violation(style.CategoryDocument, attr.Key, err))
		}
	}

	for _, cat := range style.ElementCategories() {
		el := cfg.Element(cat)
		if el == nil {
			violations = append(violations, Violation{
				Category: cat,
				Message:  fmt.Sprintf("%s element style is missing", cat),
			})
			continue
		}

		for _, attr := range schema.AttributesFor(cat) {
			if attr.Key == schema.KeyFirstLineIndent {
				if el.FirstLineIndent == nil {
					violations = append(violations, Violation{
						Category: cat,
						Key:      attr.Key,
						Message:  fmt.Sprintf("%s.%s is required", cat, attr.Key),
					})
					continue
				}
				if _, err := schema.CheckElementValue(cat, attr.Key, *el.FirstLineIndent); err != nil {
					violations = append(violations, violation(cat, attr.Key, err))
				}
				continue
			}

			value := elementValue(el, attr.Key)
			if _, err := schema.CheckElementValue(cat, attr.Key, value); err != nil {
				violations = append(violations, violation(cat, attr.Key, err))
			}
		}

		// first_line_indent never belongs outside body
		if cat != style.CategoryBody && el.FirstLineIndent != nil {
			violations = append(violations, Violation{
				Category: cat,
				Key:      schema.KeyFirstLineIndent,
				Message:  fmt.Sprintf("%s.%s is only valid for body", cat, schema.KeyFirstLineIndent),
			})
		}
	}

	return violations
}

// violation extracts the bare message of a schema error, without its code prefix
func violation(cat style.Category, key string, err error) Violation {
	message := err.Error()
	var docgenErr *errors.DocgenError
	if stderrors.As(err, &docgenErr) {
		message = docgenErr.Message
	}
	return Violation{Category: cat, Key: key, Message: message}
}

func documentValue(doc style.DocumentSettings, key string) interface{} {
	switch key {
	case schema.KeyMarginTop:
		return doc.MarginTop
	case schema.KeyMarginBottom:
		return doc.MarginBottom
	case schema.KeyMarginLeft:
		return doc.MarginLeft
	case schema.KeyMarginRight:
		return doc.MarginRight
	case schema.KeyLineSpacing:
		return doc.LineSpacing
	case schema.KeyFontFamily:
		return doc.FontFamily
	case schema.KeyFontSize:
		return doc.FontSize
	}
	panic(fmt.Sprintf("validate: unknown document key %q", key))
}

func elementValue(el *style.ElementStyle, key string) interface{} {
	switch key {
	case schema.KeyFontFamily:
		return el.FontFamily
	case schema.KeyFontSize:
		return el.FontSize
	case schema.KeyBold:
		return el.Bold
	case schema.KeyAlignment:
		return el.Alignment
	}
	panic(fmt.Sprintf("validate: unknown element key %q", key))
}
