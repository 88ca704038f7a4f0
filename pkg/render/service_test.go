package render_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/registry"
	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/store"
	"github.com/arthur-debert/docgen/pkg/style"
	"github.com/arthur-debert/docgen/pkg/validate"
)

// The store is the production configuration source.
var _ render.ConfigSource = (*store.Store)(nil)

// staticSource hands out a fixed configuration, including invalid ones the
// store could never produce.
type staticSource struct {
	cfg style.Configuration
}

func (s *staticSource) Snapshot() style.Configuration {
	return s.cfg.Clone()
}

// stubGateway counts calls and can be told to fail, to wait while honoring
// the context, or to sleep right through it.
type stubGateway struct {
	mu        sync.Mutex
	fileCalls int
	textCalls int
	lastCfg   style.Configuration

	err      error
	delay    time.Duration // waits but returns ctx.Err() on cancellation
	stubborn time.Duration // sleeps without ever checking the context
}

func (g *stubGateway) RenderFile(ctx context.Context, cfg style.Configuration, inputPath, outputPath string) error {
	return g.record(ctx, cfg, &g.fileCalls)
}

func (g *stubGateway) RenderText(ctx context.Context, cfg style.Configuration, text, outputPath string) error {
	return g.record(ctx, cfg, &g.textCalls)
}

func (g *stubGateway) record(ctx context.Context, cfg style.Configuration, counter *int) error {
	g.mu.Lock()
	*counter++
	g.lastCfg = cfg.Clone()
	g.mu.Unlock()

	if g.stubborn > 0 {
		time.Sleep(g.stubborn)
	}
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return g.err
}

func (g *stubGateway) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fileCalls + g.textCalls
}

func newTestService(gw render.Gateway, src render.ConfigSource, timeout time.Duration) *render.Service {
	backends := registry.New[render.Gateway]()
	registry.MustRegister(backends, ".docx", gw)
	return render.NewService(src, backends, timeout)
}

func TestRenderFile(t *testing.T) {
	t.Run("renders_with_the_current_snapshot", func(t *testing.T) {
		st := store.New()
		gw := &stubGateway{}
		svc := newTestService(gw, st, 0)

		err := svc.RenderFile(context.Background(), "notice.docx", "out.docx")

		require.NoError(t, err)
		assert.Equal(t, 1, gw.fileCalls)
		assert.True(t, gw.lastCfg.Equal(st.Snapshot()), "gateway should see the store snapshot")
	})

	t.Run("wraps_backend_failures", func(t *testing.T) {
		gw := &stubGateway{err: assert.AnError}
		svc := newTestService(gw, store.New(), 0)

		err := svc.RenderFile(context.Background(), "notice.docx", "out.docx")

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRenderFailure))
		assert.Contains(t, err.Error(), assert.AnError.Error())
	})
}

func TestRenderText(t *testing.T) {
	st := store.New()
	gw := &stubGateway{}
	svc := newTestService(gw, st, 0)

	err := svc.RenderText(context.Background(), "正文内容", "out.docx")

	require.NoError(t, err)
	assert.Equal(t, 1, gw.textCalls)
	assert.True(t, gw.lastCfg.Equal(st.Snapshot()))
}

func TestInvalidConfigurationNeverReachesGateway(t *testing.T) {
	cfg := store.New().Snapshot()
	cfg.Document.MarginTop = -1
	cfg.Body = nil
	src := &staticSource{cfg: cfg}

	gw := &stubGateway{}
	svc := newTestService(gw, src, 0)

	fileErr := svc.RenderFile(context.Background(), "notice.docx", "out.docx")
	textErr := svc.RenderText(context.Background(), "正文内容", "out.docx")

	for _, err := range []error{fileErr, textErr} {
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrValidation))

		var vErr *validate.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Violations, 2)
	}

	assert.Equal(t, 0, gw.calls(), "gateway must not be called for an invalid configuration")
}

func TestBackendResolution(t *testing.T) {
	tests := []struct {
		name       string
		outputPath string
	}{
		{"unregistered_extension", "out.xlsx"},
		{"no_extension", "out"},
		{"extension_only_dot", "out."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{}
			svc := newTestService(gw, store.New(), 0)

			err := svc.RenderFile(context.Background(), "notice.docx", tt.outputPath)

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRenderFailure))
			assert.Equal(t, 0, gw.calls(), "backend resolution failures must happen before any rendering")
		})
	}

	t.Run("extension_is_case_insensitive", func(t *testing.T) {
		gw := &stubGateway{}
		svc := newTestService(gw, store.New(), 0)

		err := svc.RenderFile(context.Background(), "notice.docx", "OUT.DOCX")

		require.NoError(t, err)
		assert.Equal(t, 1, gw.fileCalls)
	})
}

func TestRenderTimeout(t *testing.T) {
	t.Run("cooperative_backend", func(t *testing.T) {
		gw := &stubGateway{delay: time.Second}
		svc := newTestService(gw, store.New(), 20*time.Millisecond)

		err := svc.RenderFile(context.Background(), "notice.docx", "out.docx")

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRenderTimeout))
	})

	t.Run("backend_that_ignores_the_context", func(t *testing.T) {
		gw := &stubGateway{stubborn: 300 * time.Millisecond}
		svc := newTestService(gw, store.New(), 20*time.Millisecond)

		start := time.Now()
		err := svc.RenderFile(context.Background(), "notice.docx", "out.docx")

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRenderTimeout))
		assert.Less(t, time.Since(start), 250*time.Millisecond, "the deadline must not wait for the backend")
	})
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gw := &stubGateway{delay: time.Second}
	svc := newTestService(gw, store.New(), 0)

	err := svc.RenderFile(ctx, "notice.docx", "out.docx")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderFailure))
	assert.False(t, errors.IsErrorCode(err, errors.ErrRenderTimeout), "cancellation is not a timeout")
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".docx", ".docx"},
		{"docx", ".docx"},
		{".DOCX", ".docx"},
		{" pdf ", ".pdf"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, render.NormalizeExtension(tt.in), "NormalizeExtension(%q)", tt.in)
	}
}

func TestGlobalBackendRegistry(t *testing.T) {
	gw := &stubGateway{}

	require.NoError(t, render.RegisterBackend(".stub", gw))
	assert.Contains(t, render.Extensions(), ".stub")

	err := render.RegisterBackend("STUB", gw)
	require.Error(t, err, "extensions normalize to the same key")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	assert.Panics(t, func() {
		render.MustRegisterBackend(".stub", gw)
	})
}
