package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	t.Run("env_override_wins", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/config")

		assert.Equal(t, "/custom/config", ConfigDir())
		assert.Equal(t, "/custom/config/docgen.toml", ConfigFilePath())
	})

	t.Run("expands_tilde_in_override", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "~/cfg")

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "cfg"), ConfigDir())
	})

	t.Run("falls_back_to_xdg_config_home", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		xdg.Reload()
		defer xdg.Reload()

		assert.Equal(t, "/xdg/config/docgen", ConfigDir())
	})
}

func TestStateDir(t *testing.T) {
	t.Run("env_override_wins", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/custom/state")

		assert.Equal(t, "/custom/state", StateDir())
		assert.Equal(t, "/custom/state/docgen.log", LogFilePath())
	})

	t.Run("falls_back_to_xdg_state_home", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "/xdg/state")
		xdg.Reload()
		defer xdg.Reload()

		assert.Equal(t, "/xdg/state/docgen", StateDir())
		assert.Equal(t, "/xdg/state/docgen/docgen.log", LogFilePath())
	})
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ext      string
		expected string
	}{
		{
			name:     "docx_beside_input",
			input:    "/tmp/报告.txt",
			ext:      ".docx",
			expected: "/tmp/格式化_报告.docx",
		},
		{
			name:     "pdf_beside_input",
			input:    "/home/user/docs/notice.md",
			ext:      ".pdf",
			expected: "/home/user/docs/格式化_notice.pdf",
		},
		{
			name:     "input_without_extension",
			input:    "/tmp/报告",
			ext:      ".docx",
			expected: "/tmp/格式化_报告.docx",
		},
		{
			name:     "relative_input",
			input:    "notes.txt",
			ext:      ".docx",
			expected: "格式化_notes.docx",
		},
		{
			name:     "dotfile_keeps_name",
			input:    "/tmp/.draft",
			ext:      ".pdf",
			expected: "/tmp/格式化_.draft.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultOutputPath(tt.input, tt.ext))
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "empty", path: "", expected: ""},
		{name: "bare_tilde", path: "~", expected: home},
		{name: "tilde_slash", path: "~/stuff", expected: filepath.Join(home, "stuff")},
		{name: "other_user_untouched", path: "~alice/stuff", expected: "~alice/stuff"},
		{name: "absolute_untouched", path: "/etc/docgen", expected: "/etc/docgen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.path))
		})
	}
}
