package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/style"
)

// CheckDocumentValue checks a value against the domain of a document setting.
// It returns the normalized value to store (float64 for margins,
// style.LineSpacing for line_spacing, string for font_family, int for
// font_size) or an InvalidValue error. Values are never coerced beyond
// numeric widening: an int is accepted where a float is expected, a string
// never is.
func CheckDocumentValue(key string, value interface{}) (interface{}, error) {
	switch key {
	case KeyMarginTop, KeyMarginBottom, KeyMarginLeft, KeyMarginRight:
		f, ok := asFloat(value)
		if !ok || f <= 0 {
			return nil, invalidValue(style.CategoryDocument, key, DomainMargin, value)
		}
		return f, nil

	case KeyLineSpacing:
		ls, ok := asSpacing(value)
		if !ok || !ls.IsValid() {
			return nil, invalidValue(style.CategoryDocument, key, DomainSpacing, value)
		}
		return ls, nil

	case KeyFontFamily:
		s, ok := asFontFamily(value)
		if !ok {
			return nil, invalidValue(style.CategoryDocument, key, DomainFontFamily, value)
		}
		return s, nil

	case KeyFontSize:
		n, ok := asInt(value)
		if !ok || n <= 0 {
			return nil, invalidValue(style.CategoryDocument, key, DomainFontSize, value)
		}
		return n, nil
	}

	return nil, errors.Newf(errors.ErrInvalidValue, "unknown setting document.%s", key).
		WithDetail("category", style.CategoryDocument.String()).
		WithDetail("key", key)
}

// CheckElementValue checks a value against the domain of an element setting.
// first_line_indent is only legal for body; every other defect is an
// InvalidValue error as well. Passing a non-element category is a programmer
// error and panics.
func CheckElementValue(cat style.Category, key string, value interface{}) (interface{}, error) {
	if !cat.IsElement() {
		panic(fmt.Sprintf("schema: %q is not an element category", cat))
	}

	switch key {
	case KeyFontFamily:
		s, ok := asFontFamily(value)
		if !ok {
			return nil, invalidValue(cat, key, DomainFontFamily, value)
		}
		return s, nil

	case KeyFontSize:
		n, ok := asInt(value)
		if !ok || n <= 0 {
			return nil, invalidValue(cat, key, DomainFontSize, value)
		}
		return n, nil

	case KeyBold:
		b, ok := value.(bool)
		if !ok {
			return nil, invalidValue(cat, key, DomainBold, value)
		}
		return b, nil

	case KeyAlignment:
		a, ok := asAlignment(value)
		if !ok || !a.IsValid() {
			return nil, invalidValue(cat, key, DomainAlignment, value)
		}
		return a, nil

	case KeyFirstLineIndent:
		if cat != style.CategoryBody {
			return nil, errors.Newf(errors.ErrInvalidValue, "%s.%s is only valid for body", cat, key).
				WithDetail("category", cat.String()).
				WithDetail("key", key)
		}
		n, ok := asInt(value)
		if !ok || n < 0 {
			return nil, invalidValue(cat, key, DomainIndent, value)
		}
		return n, nil
	}

	return nil, errors.Newf(errors.ErrInvalidValue, "unknown setting %s.%s", cat, key).
		WithDetail("category", cat.String()).
		WithDetail("key", key)
}

// invalidValue builds the canonical InvalidValue error:
// "document.margin_top must be > 0, got -1"
func invalidValue(cat style.Category, key, domain string, value interface{}) *errors.DocgenError {
	return errors.Newf(errors.ErrInvalidValue, "%s.%s must be %s, got %s", cat, key, domain, formatValue(value)).
		WithDetail("category", cat.String()).
		WithDetail("key", key).
		WithDetail("value", value)
}

// formatValue quotes string values so empty and whitespace values stay
// visible; numbers and booleans print bare
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case style.Alignment:
		return strconv.Quote(string(v))
	case style.LineSpacing:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

func asFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// asInt accepts ints and integral floats. JSON decodes every number to
// float64, so 16 arrives as 16.0; 16.5 stays invalid.
func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if math.Trunc(v) == v && !math.IsInf(v, 0) {
			return int(v), true
		}
	}
	return 0, false
}

func asFontFamily(value interface{}) (string, bool) {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func asAlignment(value interface{}) (style.Alignment, bool) {
	switch v := value.(type) {
	case style.Alignment:
		return v, true
	case string:
		return style.Alignment(v), true
	}
	return "", false
}

func asSpacing(value interface{}) (style.LineSpacing, bool) {
	switch v := value.(type) {
	case style.LineSpacing:
		return v, true
	case string:
		if v == "fixed" {
			return style.SpacingFixed(), true
		}
	case float64:
		return style.Spacing(v), true
	case int:
		return style.Spacing(float64(v)), true
	}
	return style.LineSpacing{}, false
}
