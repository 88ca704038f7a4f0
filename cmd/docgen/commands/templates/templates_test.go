package templates

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCommand(t *testing.T) {
	t.Run("lists_builtin_templates", func(t *testing.T) {
		cmd := NewCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)

		require.NoError(t, cmd.Execute())

		for _, name := range []string{"default", "formal", "academic"} {
			assert.Contains(t, out.String(), name)
		}
	})

	t.Run("json_output", func(t *testing.T) {
		cmd := NewCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"--json"})

		require.NoError(t, cmd.Execute())

		var result struct {
			Templates []string `json:"templates"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, []string{"default", "formal", "academic"}, result.Templates)
	})

	t.Run("rejects_arguments", func(t *testing.T) {
		cmd := NewCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"extra"})

		assert.Error(t, cmd.Execute())
	})
}
