package style

// Alignment is the paragraph alignment domain
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Alignments returns the full alignment domain in declaration order
func Alignments() []Alignment {
	return []Alignment{AlignLeft, AlignCenter, AlignRight, AlignJustify}
}

// IsValid reports whether a is in the alignment domain
func (a Alignment) IsValid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// String returns the alignment name
func (a Alignment) String() string {
	return string(a)
}
