package style

// DocumentSettings carries the page-level settings of the document category.
// Margins are centimeters, FontSize is points.
type DocumentSettings struct {
	MarginTop    float64     `json:"margin_top"`
	MarginBottom float64     `json:"margin_bottom"`
	MarginLeft   float64     `json:"margin_left"`
	MarginRight  float64     `json:"margin_right"`
	LineSpacing  LineSpacing `json:"line_spacing"`
	FontFamily   string      `json:"font_family"`
	FontSize     int         `json:"font_size"`
}

// ElementStyle carries the formatting of one text element category.
// FirstLineIndent is measured in character widths and is only present on body.
type ElementStyle struct {
	FontFamily      string    `json:"font_family"`
	FontSize        int       `json:"font_size"`
	Bold            bool      `json:"bold"`
	Alignment       Alignment `json:"alignment"`
	FirstLineIndent *int      `json:"first_line_indent,omitempty"`
}

// Clone returns a deep copy of the element style
func (e *ElementStyle) Clone() *ElementStyle {
	if e == nil {
		return nil
	}
	cp := *e
	if e.FirstLineIndent != nil {
		v := *e.FirstLineIndent
		cp.FirstLineIndent = &v
	}
	return &cp
}

// Equal reports whether two element styles hold the same values
func (e *ElementStyle) Equal(other *ElementStyle) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.FontFamily != other.FontFamily || e.FontSize != other.FontSize ||
		e.Bold != other.Bold || e.Alignment != other.Alignment {
		return false
	}
	if (e.FirstLineIndent == nil) != (other.FirstLineIndent == nil) {
		return false
	}
	return e.FirstLineIndent == nil || *e.FirstLineIndent == *other.FirstLineIndent
}

// Configuration is a complete style configuration: the document settings plus
// one style per element category. Field order follows the canonical category
// order, which is also the JSON shape callers see.
type Configuration struct {
	Document  DocumentSettings `json:"document"`
	Title     *ElementStyle    `json:"title"`
	Heading1  *ElementStyle    `json:"heading1"`
	Heading2  *ElementStyle    `json:"heading2"`
	Body      *ElementStyle    `json:"body"`
	Signature *ElementStyle    `json:"signature"`
}

// Element returns the style for an element category, or nil when the
// category is document, unknown, or missing from the configuration
func (c *Configuration) Element(cat Category) *ElementStyle {
	switch cat {
	case CategoryTitle:
		return c.Title
	case CategoryHeading1:
		return c.Heading1
	case CategoryHeading2:
		return c.Heading2
	case CategoryBody:
		return c.Body
	case CategorySignature:
		return c.Signature
	}
	return nil
}

// SetElement replaces the style for an element category. Document and
// unknown categories are ignored.
func (c *Configuration) SetElement(cat Category, el *ElementStyle) {
	switch cat {
	case CategoryTitle:
		c.Title = el
	case CategoryHeading1:
		c.Heading1 = el
	case CategoryHeading2:
		c.Heading2 = el
	case CategoryBody:
		c.Body = el
	case CategorySignature:
		c.Signature = el
	}
}

// Clone returns a deep copy sharing no memory with the original
func (c Configuration) Clone() Configuration {
	out := c
	out.Title = c.Title.Clone()
	out.Heading1 = c.Heading1.Clone()
	out.Heading2 = c.Heading2.Clone()
	out.Body = c.Body.Clone()
	out.Signature = c.Signature.Clone()
	return out
}

// Equal reports whether two configurations hold the same values
func (c Configuration) Equal(other Configuration) bool {
	if c.Document != other.Document {
		return false
	}
	for _, cat := range ElementCategories() {
		if !c.Element(cat).Equal(other.Element(cat)) {
			return false
		}
	}
	return true
}
