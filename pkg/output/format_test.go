package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatAuto, "auto"},
		{FormatTerminal, "term"},
		{FormatText, "text"},
		{FormatJSON, "json"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{name: "auto", input: "auto", expected: FormatAuto},
		{name: "empty_is_auto", input: "", expected: FormatAuto},
		{name: "term", input: "term", expected: FormatTerminal},
		{name: "terminal_alias", input: "terminal", expected: FormatTerminal},
		{name: "text", input: "text", expected: FormatText},
		{name: "plain_alias", input: "plain", expected: FormatText},
		{name: "json", input: "json", expected: FormatJSON},
		{name: "case_insensitive", input: "JSON", expected: FormatJSON},
		{name: "unknown_errors", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("no_color_forces_text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		assert.Equal(t, FormatText, DetectFormat(os.Stdout))
	})

	t.Run("non_tty_is_text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")

		f, err := os.Create(filepath.Join(t.TempDir(), "out"))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, FormatText, DetectFormat(f))
	})
}

func TestResolve(t *testing.T) {
	t.Run("auto_detects", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		assert.Equal(t, FormatText, Resolve(FormatAuto, os.Stdout))
	})

	t.Run("explicit_passes_through", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		assert.Equal(t, FormatJSON, Resolve(FormatJSON, os.Stdout))
		assert.Equal(t, FormatTerminal, Resolve(FormatTerminal, os.Stdout))
	})
}
