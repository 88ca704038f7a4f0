package pdf

import (
	"strings"

	gofpdf "github.com/lvillar/gofpdf"

	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/style"
)

// ptToCm converts font points to centimeters (72 points per inch).
const ptToCm = 2.54 / 72

// lineHeightFactor approximates the natural line height of a font in ems.
// Spacing multiples scale it, matching how word processors treat multiples.
const lineHeightFactor = 1.2

// fixedLineHeightPt mirrors the fixed-spacing rule of the .docx backend:
// an exact 28pt line regardless of font size.
const fixedLineHeightPt = 28.0

// buildDocument assembles an A4 portrait document in centimeter units from
// classified text blocks.
func buildDocument(cfg style.Configuration, blocks []render.Block) *gofpdf.Fpdf {
	doc := cfg.Document

	pdf := gofpdf.New("P", "cm", "A4", "")
	pdf.SetMargins(doc.MarginLeft, doc.MarginTop, doc.MarginRight)
	pdf.SetAutoPageBreak(true, doc.MarginBottom)
	if len(blocks) > 0 && blocks[0].Category == style.CategoryTitle {
		pdf.SetTitle(blocks[0].Text, true)
	}
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	for _, block := range blocks {
		el := cfg.Element(block.Category)
		if el == nil {
			continue
		}
		writeBlock(pdf, doc, el, block.Category, translate(block.Text))
	}

	return pdf
}

func writeBlock(pdf *gofpdf.Fpdf, doc style.DocumentSettings, el *style.ElementStyle, cat style.Category, text string) {
	fontStyle := ""
	if el.Bold {
		fontStyle = "B"
	}
	size := float64(el.FontSize)
	pdf.SetFont(coreFamilyFor(el.FontFamily), fontStyle, size)

	lineHeight := lineHeightCm(doc.LineSpacing, size)

	pageW, _ := pdf.GetPageSize()
	lm, _, rm, _ := pdf.GetMargins()
	contentW := pageW - lm - rm

	pdf.MultiCell(contentW, lineHeight, indentPrefix(pdf, el)+text, "", alignFor(el.Alignment), false)

	// A blank line after the title, a small gap after everything else.
	if cat == style.CategoryTitle {
		pdf.Ln(lineHeight)
	} else {
		pdf.Ln(lineHeight * 0.25)
	}
}

// coreFamilyFor maps a configured font family onto one of the PDF core
// fonts. Chinese serif faces (宋体, 仿宋, 楷体) read closest to Times; 黑体
// and unknown faces fall back to Helvetica.
func coreFamilyFor(family string) string {
	switch {
	case strings.Contains(family, "Times"),
		strings.Contains(family, "宋"),
		strings.Contains(family, "楷"):
		return "Times"
	case strings.Contains(family, "Courier"):
		return "Courier"
	default:
		return "Helvetica"
	}
}

// lineHeightCm derives the line height from the configured spacing: fixed
// spacing is an exact 28pt line, multiples scale the font's natural height.
func lineHeightCm(spacing style.LineSpacing, sizePt float64) float64 {
	if spacing.Fixed {
		return fixedLineHeightPt * ptToCm
	}
	return sizePt * lineHeightFactor * ptToCm * spacing.Multiple
}

// alignFor maps an alignment onto gofpdf's alignment codes.
func alignFor(a style.Alignment) string {
	switch a {
	case style.AlignCenter:
		return "C"
	case style.AlignRight:
		return "R"
	case style.AlignJustify:
		return "J"
	default:
		return "L"
	}
}

// indentPrefix renders a first-line indent as leading spaces: the indent is
// measured in character cells of the element's font size (one em each), and
// the space count comes from the actual space width of the current font.
// Call after SetFont.
func indentPrefix(pdf *gofpdf.Fpdf, el *style.ElementStyle) string {
	if el.FirstLineIndent == nil || *el.FirstLineIndent <= 0 {
		return ""
	}
	spaceW := pdf.GetStringWidth(" ")
	if spaceW <= 0 {
		return ""
	}
	indentW := float64(*el.FirstLineIndent) * float64(el.FontSize) * ptToCm
	n := int(indentW/spaceW + 0.5)
	return strings.Repeat(" ", n)
}
