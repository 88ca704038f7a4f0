// Package render is the boundary between the style configuration model and
// the document writers. The Gateway interface is the contract every backend
// implements; the Service wires a configuration source, validation and the
// backend registry into the two rendering entry points.
package render

import (
	"context"

	"github.com/arthur-debert/docgen/pkg/style"
)

// Gateway renders documents under a style configuration. Implementations own
// all paragraph and run manipulation; callers guarantee that the
// configuration handed in has passed validation.
type Gateway interface {
	// RenderFile restyles an existing document file into outputPath
	RenderFile(ctx context.Context, cfg style.Configuration, inputPath, outputPath string) error

	// RenderText builds a new document at outputPath from plain text
	RenderText(ctx context.Context, cfg style.Configuration, text, outputPath string) error
}
