package docx

import (
	"math"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/style"
)

// wordNamespace is the WordprocessingML main namespace.
const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// A4 page size in twips.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
)

// Header, footer and gutter distances in twips. These match the page setup
// used for official document layouts.
const (
	headerTwips = 851
	footerTwips = 992
	gutterTwips = 0
)

// fixedLineTwips is the exact line height used when line spacing is "fixed",
// 28pt in twips.
const fixedLineTwips = 560

// linesPerSpacingUnit converts a spacing multiple into twips under the
// "auto" line rule: single spacing is 240.
const linesPerSpacingUnit = 240

// cmToTwips converts centimeters to twips (1/20 point, 1440 per inch).
func cmToTwips(cm float64) int {
	return int(math.Round(cm / 2.54 * 1440))
}

// halfPoints converts a font size in points to the half-point unit used by
// w:sz and w:szCs.
func halfPoints(points int) int {
	return points * 2
}

// indentTwips converts a first-line indent in characters into twips relative
// to the element's font size: one character is the font size in points, and
// a point is 20 twips.
func indentTwips(chars, fontSizePoints int) int {
	return chars * fontSizePoints * 20
}

// buildDocument assembles a complete word/document.xml for the given blocks.
func buildDocument(cfg style.Configuration, blocks []render.Block) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", wordNamespace)

	body := root.CreateElement("w:body")
	for _, block := range blocks {
		body.AddChild(paragraph(cfg, block))
	}
	body.AddChild(sectionProperties(cfg.Document))

	return doc
}

// paragraph builds a w:p holding the block text as a single run styled per
// the block's element category.
func paragraph(cfg style.Configuration, block render.Block) *etree.Element {
	es := cfg.Element(block.Category)

	p := etree.NewElement("w:p")
	p.AddChild(paragraphProperties(cfg.Document, es))

	r := p.CreateElement("w:r")
	r.AddChild(runProperties(es))
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(block.Text)

	return p
}

// paragraphProperties builds a w:pPr carrying line spacing, the optional
// first-line indent and the alignment. Child order follows the CT_PPr
// schema sequence: spacing, ind, jc.
func paragraphProperties(doc style.DocumentSettings, es *style.ElementStyle) *etree.Element {
	pPr := etree.NewElement("w:pPr")

	spacing := pPr.CreateElement("w:spacing")
	if doc.LineSpacing.Fixed {
		spacing.CreateAttr("w:line", strconv.Itoa(fixedLineTwips))
		spacing.CreateAttr("w:lineRule", "exact")
	} else {
		spacing.CreateAttr("w:line", strconv.Itoa(int(math.Round(doc.LineSpacing.Multiple*linesPerSpacingUnit))))
		spacing.CreateAttr("w:lineRule", "auto")
	}

	if es.FirstLineIndent != nil && *es.FirstLineIndent > 0 {
		ind := pPr.CreateElement("w:ind")
		ind.CreateAttr("w:firstLineChars", strconv.Itoa(*es.FirstLineIndent*100))
		ind.CreateAttr("w:firstLine", strconv.Itoa(indentTwips(*es.FirstLineIndent, es.FontSize)))
	}

	jc := pPr.CreateElement("w:jc")
	jc.CreateAttr("w:val", justification(es.Alignment))

	return pPr
}

// runProperties builds a w:rPr with the element fonts, weight and size.
// Child order follows the CT_RPr schema sequence: rFonts, b, sz, szCs.
func runProperties(es *style.ElementStyle) *etree.Element {
	rPr := etree.NewElement("w:rPr")

	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", es.FontFamily)
	fonts.CreateAttr("w:eastAsia", es.FontFamily)
	fonts.CreateAttr("w:hAnsi", es.FontFamily)

	if es.Bold {
		rPr.CreateElement("w:b")
	}

	size := strconv.Itoa(halfPoints(es.FontSize))
	sz := rPr.CreateElement("w:sz")
	sz.CreateAttr("w:val", size)
	szCs := rPr.CreateElement("w:szCs")
	szCs.CreateAttr("w:val", size)

	return rPr
}

// sectionProperties builds a fresh w:sectPr with the A4 page size and the
// document margins.
func sectionProperties(doc style.DocumentSettings) *etree.Element {
	sectPr := etree.NewElement("w:sectPr")
	applyPageSize(sectPr.CreateElement("w:pgSz"))
	applyPageMargins(sectPr.CreateElement("w:pgMar"), doc)
	return sectPr
}

// updateSectionProperties rewrites the page size and margins of an existing
// w:sectPr, creating the elements when missing and leaving every other child
// untouched.
func updateSectionProperties(sectPr *etree.Element, doc style.DocumentSettings) {
	pgSz := sectPr.SelectElement("w:pgSz")
	if pgSz == nil {
		pgSz = etree.NewElement("w:pgSz")
		if pgMar := sectPr.SelectElement("w:pgMar"); pgMar != nil {
			sectPr.InsertChildAt(pgMar.Index(), pgSz)
		} else {
			sectPr.AddChild(pgSz)
		}
	}
	applyPageSize(pgSz)

	pgMar := sectPr.SelectElement("w:pgMar")
	if pgMar == nil {
		pgMar = etree.NewElement("w:pgMar")
		sectPr.InsertChildAt(pgSz.Index()+1, pgMar)
	}
	applyPageMargins(pgMar, doc)
}

func applyPageSize(pgSz *etree.Element) {
	pgSz.CreateAttr("w:w", strconv.Itoa(pageWidthTwips))
	pgSz.CreateAttr("w:h", strconv.Itoa(pageHeightTwips))
}

func applyPageMargins(pgMar *etree.Element, doc style.DocumentSettings) {
	pgMar.CreateAttr("w:top", strconv.Itoa(cmToTwips(doc.MarginTop)))
	pgMar.CreateAttr("w:right", strconv.Itoa(cmToTwips(doc.MarginRight)))
	pgMar.CreateAttr("w:bottom", strconv.Itoa(cmToTwips(doc.MarginBottom)))
	pgMar.CreateAttr("w:left", strconv.Itoa(cmToTwips(doc.MarginLeft)))
	pgMar.CreateAttr("w:header", strconv.Itoa(headerTwips))
	pgMar.CreateAttr("w:footer", strconv.Itoa(footerTwips))
	pgMar.CreateAttr("w:gutter", strconv.Itoa(gutterTwips))
}

// justification maps an alignment to the w:jc value; justified text is
// "both" in WordprocessingML.
func justification(a style.Alignment) string {
	if a == style.AlignJustify {
		return "both"
	}
	return string(a)
}
