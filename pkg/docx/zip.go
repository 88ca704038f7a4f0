package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/arthur-debert/docgen/pkg/errors"
)

// documentPart is the main document part of an OOXML package.
const documentPart = "word/document.xml"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`

// writePackage writes a minimal OOXML package holding documentXML as its
// main document part.
func writePackage(outputPath string, documentXML []byte) error {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{documentPart, documentXML},
	}

	for _, part := range parts {
		fw, err := w.Create(part.name)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOutputWrite, "creating package part %s", part.name)
		}
		if _, err := fw.Write(part.content); err != nil {
			return errors.Wrapf(err, errors.ErrOutputWrite, "writing package part %s", part.name)
		}
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "finalizing package")
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "writing %s", outputPath)
	}
	return nil
}

// sourcePackage is an existing .docx file held in memory for restyling.
type sourcePackage struct {
	path   string
	reader *zip.Reader
}

// readPackage loads a .docx file and verifies it carries a main document
// part.
func readPackage(inputPath string) (*sourcePackage, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "reading %s", inputPath)
	}

	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "%s is not a .docx package", inputPath)
	}

	pkg := &sourcePackage{path: inputPath, reader: reader}
	if pkg.part(documentPart) == nil {
		return nil, errors.Newf(errors.ErrInputRead, "%s is not a .docx package: missing %s", inputPath, documentPart)
	}
	return pkg, nil
}

func (p *sourcePackage) part(name string) *zip.File {
	for _, f := range p.reader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// document parses the main document part.
func (p *sourcePackage) document() (*etree.Document, error) {
	content, err := readZipFile(p.part(documentPart))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "reading %s from %s", documentPart, p.path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "parsing %s of %s", documentPart, p.path)
	}
	return doc, nil
}

// writeWithDocument writes the package to outputPath, replacing the main
// document part with documentXML and copying every other part verbatim.
func (p *sourcePackage) writeWithDocument(outputPath string, documentXML []byte) error {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range p.reader.File {
		fw, err := w.Create(f.Name)
		if err != nil {
			return errors.Wrapf(err, errors.ErrOutputWrite, "creating package part %s", f.Name)
		}

		if f.Name == documentPart {
			if _, err := fw.Write(documentXML); err != nil {
				return errors.Wrapf(err, errors.ErrOutputWrite, "writing package part %s", f.Name)
			}
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return errors.Wrapf(err, errors.ErrInputRead, "opening package part %s", f.Name)
		}
		_, err = io.Copy(fw, rc)
		rc.Close()
		if err != nil {
			return errors.Wrapf(err, errors.ErrOutputWrite, "copying package part %s", f.Name)
		}
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "finalizing package")
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "writing %s", outputPath)
	}
	return nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
