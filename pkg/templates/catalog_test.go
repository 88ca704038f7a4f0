package templates_test

import (
	"testing"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/style"
	"github.com/arthur-debert/docgen/pkg/templates"
	"github.com/arthur-debert/docgen/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	want := []style.TemplateName{
		style.TemplateDefault,
		style.TemplateFormal,
		style.TemplateAcademic,
	}
	assert.Equal(t, want, templates.Names())
}

func TestHas(t *testing.T) {
	assert.True(t, templates.Has(style.TemplateDefault))
	assert.True(t, templates.Has(style.TemplateFormal))
	assert.True(t, templates.Has(style.TemplateAcademic))
	assert.False(t, templates.Has(style.TemplateCustom))
	assert.False(t, templates.Has(style.TemplateName("fancy")))
}

func TestResolveUnknown(t *testing.T) {
	tests := []struct {
		name     string
		template style.TemplateName
	}{
		{"custom_is_not_resolvable", style.TemplateCustom},
		{"empty_name", style.TemplateName("")},
		{"arbitrary_name", style.TemplateName("fancy")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := templates.Resolve(tt.template)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTemplate))
		})
	}
}

func TestEveryBuiltinPassesValidation(t *testing.T) {
	for _, name := range templates.Names() {
		t.Run(name.String(), func(t *testing.T) {
			cfg, err := templates.Resolve(name)
			require.NoError(t, err)
			assert.Empty(t, validate.Validate(cfg))
		})
	}
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	first, err := templates.Resolve(style.TemplateDefault)
	require.NoError(t, err)

	// Mutate everything reachable through the copy
	first.Document.MarginTop = 99
	first.Title.FontSize = 99
	*first.Body.FirstLineIndent = 99

	second, err := templates.Resolve(style.TemplateDefault)
	require.NoError(t, err)

	assert.Equal(t, 3.7, second.Document.MarginTop)
	assert.Equal(t, 22, second.Title.FontSize)
	assert.Equal(t, 2, *second.Body.FirstLineIndent)
	assert.False(t, first.Equal(second))
}

func TestDefaultTemplateLiterals(t *testing.T) {
	cfg, err := templates.Resolve(style.TemplateDefault)
	require.NoError(t, err)

	assert.Equal(t, 3.7, cfg.Document.MarginTop)
	assert.Equal(t, 3.5, cfg.Document.MarginBottom)
	assert.Equal(t, 2.8, cfg.Document.MarginLeft)
	assert.Equal(t, 2.6, cfg.Document.MarginRight)
	assert.Equal(t, style.Spacing(1.5), cfg.Document.LineSpacing)
	assert.Equal(t, "仿宋_GB2312", cfg.Document.FontFamily)
	assert.Equal(t, 16, cfg.Document.FontSize)

	assert.Equal(t, &style.ElementStyle{FontFamily: "黑体", FontSize: 22, Bold: true, Alignment: style.AlignCenter}, cfg.Title)
	assert.Equal(t, &style.ElementStyle{FontFamily: "黑体", FontSize: 16, Bold: true, Alignment: style.AlignLeft}, cfg.Heading1)
	assert.Equal(t, &style.ElementStyle{FontFamily: "楷体_GB2312", FontSize: 15, Alignment: style.AlignLeft}, cfg.Heading2)

	require.NotNil(t, cfg.Body.FirstLineIndent)
	assert.Equal(t, 2, *cfg.Body.FirstLineIndent)
	assert.Equal(t, "仿宋_GB2312", cfg.Body.FontFamily)
	assert.Equal(t, style.AlignLeft, cfg.Body.Alignment)

	assert.Equal(t, style.AlignRight, cfg.Signature.Alignment)
	assert.False(t, cfg.Signature.Bold)
}

func TestFormalTemplateLiterals(t *testing.T) {
	cfg, err := templates.Resolve(style.TemplateFormal)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Document.MarginTop)
	assert.Equal(t, 2.5, cfg.Document.MarginBottom)
	assert.Equal(t, 3.0, cfg.Document.MarginLeft)
	assert.Equal(t, 2.5, cfg.Document.MarginRight)
	assert.Equal(t, style.Spacing(1.5), cfg.Document.LineSpacing)
	assert.Equal(t, "宋体", cfg.Document.FontFamily)
	assert.Equal(t, 14, cfg.Document.FontSize)

	assert.Equal(t, 20, cfg.Title.FontSize)
	assert.True(t, cfg.Heading2.Bold)
	assert.Equal(t, "宋体", cfg.Heading2.FontFamily)
	assert.Equal(t, style.AlignLeft, cfg.Body.Alignment)
}

func TestAcademicTemplateLiterals(t *testing.T) {
	cfg, err := templates.Resolve(style.TemplateAcademic)
	require.NoError(t, err)

	assert.Equal(t, style.Spacing(2.0), cfg.Document.LineSpacing)
	assert.Equal(t, 12, cfg.Document.FontSize)
	assert.Equal(t, 18, cfg.Title.FontSize)
	assert.Equal(t, "黑体", cfg.Heading2.FontFamily)
	assert.Equal(t, style.AlignJustify, cfg.Body.Alignment)
	assert.Equal(t, 12, cfg.Signature.FontSize)
}

func TestMustResolve(t *testing.T) {
	assert.NotPanics(t, func() {
		cfg := templates.MustResolve(style.TemplateDefault)
		assert.Equal(t, 16, cfg.Document.FontSize)
	})

	assert.Panics(t, func() {
		templates.MustResolve(style.TemplateCustom)
	})
}
