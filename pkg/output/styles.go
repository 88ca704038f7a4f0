package output

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/registry"
)

//go:embed styles.yaml
var defaultStylesYAML []byte

// colorDef represents an adaptive color definition in YAML
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// styleDef represents a style definition in YAML
type styleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Align        string `yaml:"align,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// stylesConfig represents the complete styles configuration
type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

// styleRegistry maps semantic names to lipgloss styles. LoadStylesFromFile
// swaps in a fresh registry, so readers never see a half-built one.
var styleRegistry registry.Registry[lipgloss.Style]

func init() {
	if err := loadStyles(defaultStylesYAML); err != nil {
		panic(fmt.Sprintf("failed to load embedded styles: %v", err))
	}
}

// LoadStylesFromFile replaces the style registry with definitions from a
// user-provided YAML file. This allows overriding the built-in styles at
// runtime.
func LoadStylesFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read styles file %s", path)
	}
	return loadStyles(data)
}

func loadStyles(data []byte) error {
	var config stylesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles YAML")
	}

	colors := make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	reg := registry.New[lipgloss.Style]()
	for name, def := range config.Styles {
		if err := reg.Register(name, buildStyle(def, colors)); err != nil {
			return err
		}
	}

	styleRegistry = reg
	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def styleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.Align != "" {
		switch def.Align {
		case "left":
			style = style.Align(lipgloss.Left)
		case "center":
			style = style.Align(lipgloss.Center)
		case "right":
			style = style.Align(lipgloss.Right)
		}
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// GetStyle safely retrieves a style by semantic name. Unknown names get an
// unstyled fallback.
func GetStyle(name string) lipgloss.Style {
	style, err := styleRegistry.Get(name)
	if err != nil {
		return lipgloss.NewStyle()
	}
	return style
}

// StyleNames lists the registered semantic style names.
func StyleNames() []string {
	return styleRegistry.List()
}

// Render applies the named style to text for terminal output; every other
// format gets the text unchanged.
func Render(f Format, styleName, text string) string {
	if f != FormatTerminal {
		return text
	}
	return GetStyle(styleName).Render(text)
}
