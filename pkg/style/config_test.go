package style_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/docgen/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfig() style.Configuration {
	indent := 2
	return style.Configuration{
		Document: style.DocumentSettings{
			MarginTop:    3.7,
			MarginBottom: 3.5,
			MarginLeft:   2.8,
			MarginRight:  2.6,
			LineSpacing:  style.Spacing(1.5),
			FontFamily:   "仿宋_GB2312",
			FontSize:     16,
		},
		Title:     &style.ElementStyle{FontFamily: "黑体", FontSize: 22, Bold: true, Alignment: style.AlignCenter},
		Heading1:  &style.ElementStyle{FontFamily: "黑体", FontSize: 16, Bold: true, Alignment: style.AlignLeft},
		Heading2:  &style.ElementStyle{FontFamily: "楷体_GB2312", FontSize: 15, Alignment: style.AlignLeft},
		Body:      &style.ElementStyle{FontFamily: "仿宋_GB2312", FontSize: 16, Alignment: style.AlignLeft, FirstLineIndent: &indent},
		Signature: &style.ElementStyle{FontFamily: "仿宋_GB2312", FontSize: 16, Alignment: style.AlignRight},
	}
}

func TestCategoryHelpers(t *testing.T) {
	t.Run("canonical_order", func(t *testing.T) {
		want := []style.Category{
			style.CategoryDocument,
			style.CategoryTitle,
			style.CategoryHeading1,
			style.CategoryHeading2,
			style.CategoryBody,
			style.CategorySignature,
		}
		assert.Equal(t, want, style.Categories())
	})

	t.Run("element_categories_exclude_document", func(t *testing.T) {
		for _, cat := range style.ElementCategories() {
			assert.NotEqual(t, style.CategoryDocument, cat)
			assert.True(t, cat.IsElement())
		}
		assert.Len(t, style.ElementCategories(), 5)
	})

	t.Run("document_is_not_an_element", func(t *testing.T) {
		assert.True(t, style.CategoryDocument.IsValid())
		assert.False(t, style.CategoryDocument.IsElement())
	})

	t.Run("unknown_category_is_invalid", func(t *testing.T) {
		assert.False(t, style.Category("footer").IsValid())
		assert.False(t, style.Category("footer").IsElement())
	})
}

func TestConfigurationClone(t *testing.T) {
	orig := sampleConfig()
	clone := orig.Clone()

	require.True(t, orig.Equal(clone))

	// Mutating the clone must not reach the original
	clone.Title.FontSize = 44
	clone.Document.MarginTop = 9.9
	*clone.Body.FirstLineIndent = 8

	assert.Equal(t, 22, orig.Title.FontSize)
	assert.Equal(t, 3.7, orig.Document.MarginTop)
	assert.Equal(t, 2, *orig.Body.FirstLineIndent)
	assert.False(t, orig.Equal(clone))
}

func TestConfigurationElementAccess(t *testing.T) {
	cfg := sampleConfig()

	assert.Same(t, cfg.Title, cfg.Element(style.CategoryTitle))
	assert.Same(t, cfg.Signature, cfg.Element(style.CategorySignature))
	assert.Nil(t, cfg.Element(style.CategoryDocument))
	assert.Nil(t, cfg.Element(style.Category("footer")))
}

func TestConfigurationEqual(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*style.Configuration)
	}{
		{"document_margin_differs", func(c *style.Configuration) { c.Document.MarginLeft = 1.1 }},
		{"line_spacing_differs", func(c *style.Configuration) { c.Document.LineSpacing = style.SpacingFixed() }},
		{"title_font_differs", func(c *style.Configuration) { c.Title.FontFamily = "宋体" }},
		{"bold_differs", func(c *style.Configuration) { c.Heading2.Bold = true }},
		{"indent_differs", func(c *style.Configuration) { *c.Body.FirstLineIndent = 0 }},
		{"indent_removed", func(c *style.Configuration) { c.Body.FirstLineIndent = nil }},
		{"element_missing", func(c *style.Configuration) { c.Signature = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleConfig()
			b := sampleConfig()
			require.True(t, a.Equal(b))

			tt.mutate(&b)
			assert.False(t, a.Equal(b))
		})
	}
}

func TestConfigurationJSONShape(t *testing.T) {
	cfg := sampleConfig()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"document", "title", "heading1", "heading2", "body", "signature"} {
		assert.Contains(t, raw, key)
	}

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["body"], &body))
	assert.Equal(t, float64(2), body["first_line_indent"])

	var title map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["title"], &title))
	assert.NotContains(t, title, "first_line_indent")

	var back style.Configuration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, cfg.Equal(back))
}
