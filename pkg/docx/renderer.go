package docx

import (
	"context"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/style"
)

// Extension is the output extension this backend serves.
const Extension = ".docx"

func init() {
	render.MustRegisterBackend(Extension, New())
}

// Renderer writes .docx packages. It is stateless and safe for concurrent
// use.
type Renderer struct{}

// New creates a docx renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderText classifies the text into element blocks and writes a fresh
// package to outputPath.
func (r *Renderer) RenderText(ctx context.Context, cfg style.Configuration, text, outputPath string) error {
	logger := logging.GetLogger("docx")

	blocks := render.InferBlocks(text)
	if len(blocks) == 0 {
		return errors.New(errors.ErrInvalidInput, "input text has no content")
	}
	logger.Debug().
		Int("blocks", len(blocks)).
		Str("output", outputPath).
		Msg("Building document from text")

	if err := ctx.Err(); err != nil {
		return err
	}

	doc := buildDocument(cfg, blocks)
	documentXML, err := doc.WriteToBytes()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "serializing document XML")
	}

	return writePackage(outputPath, documentXML)
}

// RenderFile rewrites the styling of an existing .docx file into outputPath.
// The first non-empty paragraph is styled as the title, every other
// paragraph as body text; paragraph text and all non-document parts are
// carried over untouched.
func (r *Renderer) RenderFile(ctx context.Context, cfg style.Configuration, inputPath, outputPath string) error {
	logger := logging.GetLogger("docx")

	pkg, err := readPackage(inputPath)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := pkg.document()
	if err != nil {
		return err
	}
	if err := restyleDocument(doc, cfg); err != nil {
		return err
	}

	documentXML, err := doc.WriteToBytes()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "serializing document XML")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debug().
		Str("input", inputPath).
		Str("output", outputPath).
		Msg("Restyling document")

	return pkg.writeWithDocument(outputPath, documentXML)
}
