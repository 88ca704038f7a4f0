package schema

import (
	"fmt"

	"github.com/arthur-debert/docgen/pkg/style"
)

// Setting keys, shared by the document category and the element categories
const (
	KeyMarginTop       = "margin_top"
	KeyMarginBottom    = "margin_bottom"
	KeyMarginLeft      = "margin_left"
	KeyMarginRight     = "margin_right"
	KeyLineSpacing     = "line_spacing"
	KeyFontFamily      = "font_family"
	KeyFontSize        = "font_size"
	KeyBold            = "bold"
	KeyAlignment       = "alignment"
	KeyFirstLineIndent = "first_line_indent"
)

// Domain descriptions, used verbatim in InvalidValue messages and violations
const (
	DomainMargin     = "> 0"
	DomainFontSize   = "> 0"
	DomainFontFamily = "a non-empty string"
	DomainBold       = "a boolean"
	DomainAlignment  = "one of left, center, right, justify"
	DomainSpacing    = `1, 1.5, 2 or "fixed"`
	DomainIndent     = ">= 0"
)

// Attribute describes one setting of a category: its key and the domain of
// legal values
type Attribute struct {
	Key    string
	Domain string
}

var documentAttributes = []Attribute{
	{KeyMarginTop, DomainMargin},
	{KeyMarginBottom, DomainMargin},
	{KeyMarginLeft, DomainMargin},
	{KeyMarginRight, DomainMargin},
	{KeyLineSpacing, DomainSpacing},
	{KeyFontFamily, DomainFontFamily},
	{KeyFontSize, DomainFontSize},
}

var elementAttributes = []Attribute{
	{KeyFontFamily, DomainFontFamily},
	{KeyFontSize, DomainFontSize},
	{KeyBold, DomainBold},
	{KeyAlignment, DomainAlignment},
}

var bodyAttributes = append(append([]Attribute{}, elementAttributes...), Attribute{KeyFirstLineIndent, DomainIndent})

// AttributesFor returns the settings of a category in canonical order.
// Passing an unknown category is a programmer error and panics.
func AttributesFor(cat style.Category) []Attribute {
	switch cat {
	case style.CategoryDocument:
		return documentAttributes
	case style.CategoryBody:
		return bodyAttributes
	case style.CategoryTitle, style.CategoryHeading1, style.CategoryHeading2, style.CategorySignature:
		return elementAttributes
	}
	panic(fmt.Sprintf("schema: unknown category %q", cat))
}
