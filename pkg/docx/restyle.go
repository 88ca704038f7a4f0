package docx

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/style"
)

// restyleDocument applies the configuration to every top-level paragraph of
// a parsed document. Paragraphs inside tables are left alone.
func restyleDocument(doc *etree.Document, cfg style.Configuration) error {
	body := doc.FindElement("//w:body")
	if body == nil {
		return errors.New(errors.ErrInputRead, "document has no body")
	}

	titleSeen := false
	for _, p := range body.SelectElements("w:p") {
		category := style.CategoryBody
		if !titleSeen && paragraphText(p) != "" {
			category = style.CategoryTitle
			titleSeen = true
		}
		restyleParagraph(p, cfg, category)
	}

	sections := doc.FindElements("//w:sectPr")
	for _, sectPr := range sections {
		updateSectionProperties(sectPr, cfg.Document)
	}
	if len(sections) == 0 {
		body.AddChild(sectionProperties(cfg.Document))
	}
	return nil
}

// restyleParagraph replaces the paragraph and run properties with the ones
// derived from the category's element style. A w:sectPr nested in the old
// paragraph properties is carried over into the new ones.
func restyleParagraph(p *etree.Element, cfg style.Configuration, category style.Category) {
	es := cfg.Element(category)

	var sectPr *etree.Element
	if old := p.SelectElement("w:pPr"); old != nil {
		if sectPr = old.SelectElement("w:sectPr"); sectPr != nil {
			old.RemoveChild(sectPr)
		}
		p.RemoveChild(old)
	}

	pPr := paragraphProperties(cfg.Document, es)
	if sectPr != nil {
		pPr.AddChild(sectPr)
	}
	p.InsertChildAt(0, pPr)

	for _, r := range p.FindElements(".//w:r") {
		if old := r.SelectElement("w:rPr"); old != nil {
			r.RemoveChild(old)
		}
		r.InsertChildAt(0, runProperties(es))
	}
}

// paragraphText joins the text runs of a paragraph.
func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	for _, t := range p.FindElements(".//w:t") {
		sb.WriteString(t.Text())
	}
	return strings.TrimSpace(sb.String())
}
