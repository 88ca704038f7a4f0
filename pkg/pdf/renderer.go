package pdf

import (
	"context"
	"os"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/style"
)

// Extension is the output extension this backend serves.
const Extension = ".pdf"

func init() {
	render.MustRegisterBackend(Extension, New())
}

// Renderer writes PDF documents. It is stateless and safe for concurrent
// use.
type Renderer struct{}

// New creates a pdf renderer.
func New() *Renderer {
	return &Renderer{}
}

// RenderText classifies the text into element blocks and writes a PDF to
// outputPath.
func (r *Renderer) RenderText(ctx context.Context, cfg style.Configuration, text, outputPath string) error {
	logger := logging.GetLogger("pdf")

	blocks := render.InferBlocks(text)
	if len(blocks) == 0 {
		return errors.New(errors.ErrInvalidInput, "input text has no content")
	}
	logger.Debug().
		Int("blocks", len(blocks)).
		Str("output", outputPath).
		Msg("Building PDF from text")

	if err := ctx.Err(); err != nil {
		return err
	}

	doc := buildDocument(cfg, blocks)
	if doc.Err() {
		return errors.Wrap(doc.Error(), errors.ErrRenderFailure, "assembling PDF")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to create %s", outputPath)
	}
	defer func() { _ = out.Close() }()

	if err := doc.Output(out); err != nil {
		return errors.Wrap(err, errors.ErrRenderFailure, "writing PDF")
	}
	return nil
}

// RenderFile reports failure: restyling an existing document package is the
// .docx backend's job, and text inputs reach this backend through
// RenderText.
func (r *Renderer) RenderFile(ctx context.Context, cfg style.Configuration, inputPath, outputPath string) error {
	return errors.Newf(errors.ErrRenderFailure,
		"pdf backend cannot restyle %s; it renders text input only", inputPath)
}
