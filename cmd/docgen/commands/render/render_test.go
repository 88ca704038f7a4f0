package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docgen/pkg/paths"
)

const sampleText = `关于开展年度工作总结的通知

一、总体要求
各部门应当认真总结本年度工作。

二〇二六年一月十五日`

func runRender(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Run("renders_text_file_to_docx", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "通知.txt")
		require.NoError(t, os.WriteFile(input, []byte(sampleText), 0o644))
		outputPath := filepath.Join(dir, "out.docx")

		out, err := runRender(t, input, "-o", outputPath)
		require.NoError(t, err)
		assert.Contains(t, out, outputPath)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("PK")), "docx output should be a zip container")
	})

	t.Run("renders_text_file_to_pdf", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "报告.txt")
		require.NoError(t, os.WriteFile(input, []byte(sampleText), 0o644))
		outputPath := filepath.Join(dir, "报告.pdf")

		_, err := runRender(t, input, "--template", "formal", "-o", outputPath)
		require.NoError(t, err)

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "pdf output should carry the PDF header")
	})

	t.Run("default_output_lands_beside_the_input", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "报告.txt")
		require.NoError(t, os.WriteFile(input, []byte(sampleText), 0o644))

		_, err := runRender(t, input)
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, "格式化_报告.docx"))
	})

	t.Run("inline_text_renders", func(t *testing.T) {
		outputPath := filepath.Join(t.TempDir(), "out.docx")

		out, err := runRender(t, "--text", sampleText, "-o", outputPath, "--json")
		require.NoError(t, err)

		var result renderResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, outputPath, result.OutputPath)
		assert.FileExists(t, outputPath)
	})

	t.Run("set_edits_apply_to_the_render", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "通知.txt")
		require.NoError(t, os.WriteFile(input, []byte(sampleText), 0o644))

		_, err := runRender(t, input, "-o", filepath.Join(dir, "out.docx"), "--set", "document.line_spacing=2")
		require.NoError(t, err)
	})

	t.Run("rejected_edit_fails_before_rendering", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "通知.txt")
		require.NoError(t, os.WriteFile(input, []byte(sampleText), 0o644))
		outputPath := filepath.Join(dir, "out.docx")

		_, err := runRender(t, input, "-o", outputPath, "--set", "document.margin_top=-1")
		require.Error(t, err)
		assert.NoFileExists(t, outputPath)
	})

	t.Run("requires_some_input", func(t *testing.T) {
		_, err := runRender(t)
		assert.Error(t, err)
	})

	t.Run("rejects_file_and_text_together", func(t *testing.T) {
		_, err := runRender(t, "in.txt", "--text", "正文")
		assert.Error(t, err)
	})

	t.Run("text_requires_an_output_path", func(t *testing.T) {
		_, err := runRender(t, "--text", "正文")
		assert.Error(t, err)
	})

	t.Run("unknown_template_fails", func(t *testing.T) {
		_, err := runRender(t, "--text", "正文", "-o", filepath.Join(t.TempDir(), "out.docx"), "--template", "ministry")
		assert.Error(t, err)
	})
}
