package style

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SpacingMultiples are the legal line-spacing multiples
var SpacingMultiples = []float64{1.0, 1.5, 2.0}

// LineSpacing is either a spacing multiple (1.0, 1.5 or 2.0) or the fixed
// marker. The fixed marker carries no numeric value: each rendering backend
// applies its own conventional fixed line height.
type LineSpacing struct {
	Fixed    bool
	Multiple float64
}

// Spacing returns a multiple-based line spacing
func Spacing(multiple float64) LineSpacing {
	return LineSpacing{Multiple: multiple}
}

// SpacingFixed returns the fixed line-spacing marker
func SpacingFixed() LineSpacing {
	return LineSpacing{Fixed: true}
}

// IsValid reports whether the spacing is the fixed marker or a legal multiple
func (s LineSpacing) IsValid() bool {
	if s.Fixed {
		return true
	}
	for _, m := range SpacingMultiples {
		if s.Multiple == m {
			return true
		}
	}
	return false
}

// String renders the spacing for messages: "1.5" or "fixed"
func (s LineSpacing) String() string {
	if s.Fixed {
		return "fixed"
	}
	return strconv.FormatFloat(s.Multiple, 'g', -1, 64)
}

// MarshalJSON encodes multiples as numbers and the fixed marker as "fixed"
func (s LineSpacing) MarshalJSON() ([]byte, error) {
	if s.Fixed {
		return json.Marshal("fixed")
	}
	return json.Marshal(s.Multiple)
}

// UnmarshalJSON accepts a number or the string "fixed". Out-of-domain
// multiples are accepted here and rejected by validation.
func (s *LineSpacing) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "fixed" {
			return fmt.Errorf("invalid line spacing %q", str)
		}
		*s = SpacingFixed()
		return nil
	}

	var multiple float64
	if err := json.Unmarshal(data, &multiple); err != nil {
		return fmt.Errorf("invalid line spacing %s", string(data))
	}
	*s = Spacing(multiple)
	return nil
}
