package render

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"time"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/registry"
	"github.com/arthur-debert/docgen/pkg/style"
	"github.com/arthur-debert/docgen/pkg/validate"
)

// ConfigSource yields the configuration snapshot a render runs under.
// *store.Store satisfies it.
type ConfigSource interface {
	Snapshot() style.Configuration
}

// Service runs the rendering pipeline: snapshot the configuration, validate
// it, resolve a backend by output extension, and render under a deadline.
// A configuration that fails validation never reaches a gateway.
type Service struct {
	source   ConfigSource
	backends registry.Registry[Gateway]
	timeout  time.Duration
}

// NewService builds a render service. A zero timeout disables the service
// deadline; callers can still cancel through the context they pass in.
func NewService(source ConfigSource, backends registry.Registry[Gateway], timeout time.Duration) *Service {
	return &Service{
		source:   source,
		backends: backends,
		timeout:  timeout,
	}
}

// RenderFile restyles an existing document file into outputPath.
func (s *Service) RenderFile(ctx context.Context, inputPath, outputPath string) error {
	return s.render(ctx, outputPath, "render_file", func(ctx context.Context, gw Gateway, cfg style.Configuration) error {
		return gw.RenderFile(ctx, cfg, inputPath, outputPath)
	})
}

// RenderText builds a new document at outputPath from plain text.
func (s *Service) RenderText(ctx context.Context, text, outputPath string) error {
	return s.render(ctx, outputPath, "render_text", func(ctx context.Context, gw Gateway, cfg style.Configuration) error {
		return gw.RenderText(ctx, cfg, text, outputPath)
	})
}

func (s *Service) render(ctx context.Context, outputPath, operation string, run func(context.Context, Gateway, style.Configuration) error) error {
	logger := logging.GetLogger("render")
	done := logging.LogOperationStart(logger, operation)
	defer done()

	cfg := s.source.Snapshot()
	if violations := validate.Validate(cfg); len(violations) > 0 {
		logger.Debug().
			Int("violations", len(violations)).
			Msg("Configuration rejected before rendering")
		return validate.Err(violations)
	}

	gw, err := s.backendFor(outputPath)
	if err != nil {
		return err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// The buffered channel lets the goroutine finish even when the select
	// below has already given up on it.
	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, gw, cfg)
	}()

	select {
	case err := <-errCh:
		if err == nil {
			logger.Info().Str("output", outputPath).Msg("Document rendered")
			return nil
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return timeoutError(outputPath, err)
		}
		return errors.Wrapf(err, errors.ErrRenderFailure, "rendering %s failed", outputPath)
	case <-ctx.Done():
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return timeoutError(outputPath, ctx.Err())
		}
		return errors.Wrapf(ctx.Err(), errors.ErrRenderFailure, "rendering %s aborted", outputPath)
	}
}

// backendFor resolves the gateway responsible for an output path by its
// extension. Resolution happens before any input is read, so an unsupported
// extension fails without touching the filesystem.
func (s *Service) backendFor(outputPath string) (Gateway, error) {
	ext := NormalizeExtension(filepath.Ext(outputPath))
	if ext == "" {
		return nil, errors.Newf(errors.ErrRenderFailure, "output path %q has no extension to choose a backend by", outputPath).
			WithDetail("available", s.backends.List())
	}

	gw, err := s.backends.Get(ext)
	if err != nil {
		return nil, errors.Newf(errors.ErrRenderFailure, "no rendering backend for %s output", ext).
			WithDetail("extension", ext).
			WithDetail("available", s.backends.List())
	}
	return gw, nil
}

func timeoutError(outputPath string, cause error) error {
	return errors.Wrapf(cause, errors.ErrRenderTimeout, "rendering %s timed out", outputPath)
}
