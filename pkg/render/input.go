package render

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/docgen/pkg/errors"
)

// RestyleExtension is the one input format the pipeline restyles in place.
// Any other input file is read as plain text and rebuilt from scratch.
const RestyleExtension = ".docx"

// IsRestylable reports whether an input file keeps its content and structure
// through a render, with only the styling replaced.
func IsRestylable(inputPath string) bool {
	return NormalizeExtension(filepath.Ext(inputPath)) == RestyleExtension
}

// RenderInput routes an input file to the right entry point: restylable
// documents go through RenderFile, everything else is read as text and goes
// through RenderText. Unreadable inputs fail before the pipeline starts.
func (s *Service) RenderInput(ctx context.Context, inputPath, outputPath string) error {
	if IsRestylable(inputPath) {
		if _, err := os.Stat(inputPath); err != nil {
			return errors.Wrapf(err, errors.ErrInputRead, "reading %s", inputPath)
		}
		return s.RenderFile(ctx, inputPath, outputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInputRead, "reading %s", inputPath)
	}
	return s.RenderText(ctx, string(data), outputPath)
}
