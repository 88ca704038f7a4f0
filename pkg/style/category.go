package style

// Category identifies one element category of the style schema.
// The set is closed: adding a category is a schema change, not runtime data.
type Category string

const (
	// CategoryDocument holds page-level settings: margins, line spacing, base font
	CategoryDocument Category = "document"

	// CategoryTitle styles the document title paragraph
	CategoryTitle Category = "title"

	// CategoryHeading1 styles first-level headings
	CategoryHeading1 Category = "heading1"

	// CategoryHeading2 styles second-level headings
	CategoryHeading2 Category = "heading2"

	// CategoryBody styles ordinary paragraphs
	CategoryBody Category = "body"

	// CategorySignature styles the trailing signature and date block
	CategorySignature Category = "signature"
)

// Categories returns every category in canonical order
func Categories() []Category {
	return []Category{
		CategoryDocument,
		CategoryTitle,
		CategoryHeading1,
		CategoryHeading2,
		CategoryBody,
		CategorySignature,
	}
}

// ElementCategories returns the text element categories in canonical order,
// excluding document
func ElementCategories() []Category {
	return []Category{
		CategoryTitle,
		CategoryHeading1,
		CategoryHeading2,
		CategoryBody,
		CategorySignature,
	}
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryDocument, CategoryTitle, CategoryHeading1, CategoryHeading2, CategoryBody, CategorySignature:
		return true
	}
	return false
}

// IsElement reports whether c is a text element category (anything but document)
func (c Category) IsElement() bool {
	return c.IsValid() && c != CategoryDocument
}

// String returns the category name
func (c Category) String() string {
	return string(c)
}
