package topics

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicsFS() fstest.MapFS {
	return fstest.MapFS{
		"formats.md":        {Data: []byte("# Formats\n\nSupported output formats.")},
		"option-set.md":     {Data: []byte("# --set\n\nEdit syntax.")},
		"notes.txt":         {Data: []byte("plain notes")},
		"nested/deep.md":    {Data: []byte("# Deep\n\nNested topic.")},
		"ignored.json":      {Data: []byte(`{"not": "a topic"}`)},
		"nested/skip.xhtml": {Data: []byte("<x/>")},
	}
}

func TestScanTopics(t *testing.T) {
	tm := New(topicsFS())
	require.NoError(t, tm.scanTopics())

	names := tm.ListTopics()
	assert.ElementsMatch(t, []string{"formats", "option-set", "notes", "deep"}, names)
}

func TestScanTopicsHonorsExtensions(t *testing.T) {
	tm := NewWithOptions(topicsFS(), Options{Extensions: []string{".md"}})
	require.NoError(t, tm.scanTopics())

	names := tm.ListTopics()
	assert.ElementsMatch(t, []string{"formats", "option-set", "deep"}, names)
}

func TestGetTopic(t *testing.T) {
	tm := New(topicsFS())
	require.NoError(t, tm.scanTopics())

	t.Run("exact_name", func(t *testing.T) {
		topic, ok := tm.GetTopic("formats")
		require.True(t, ok)
		assert.Contains(t, topic.Content, "Supported output formats")
	})

	t.Run("flag_spelling_resolves_option_topic", func(t *testing.T) {
		topic, ok := tm.GetTopic("--set")
		require.True(t, ok)
		assert.Equal(t, "option-set", topic.Name)
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, ok := tm.GetTopic("missing")
		assert.False(t, ok)
	})
}

func TestInitializeReplacesHelpCommand(t *testing.T) {
	rootCmd := &cobra.Command{Use: "docgen"}
	rootCmd.AddCommand(&cobra.Command{Use: "render"})

	require.NoError(t, Initialize(rootCmd, topicsFS()))

	var helpCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			helpCmd = cmd
			break
		}
	}
	require.NotNil(t, helpCmd, "help command should be installed")

	completions, _ := helpCmd.ValidArgsFunction(helpCmd, nil, "")
	assert.Contains(t, completions, "topics")
	assert.Contains(t, completions, "render")
	assert.Contains(t, completions, "formats")
}

func TestPlainRendererPassesThrough(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# raw", r.Render("# raw", ".md"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer("notty")
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := NewGlamourRenderer("notty")
	out := r.Render("# Title\n\nBody text.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text")
}
