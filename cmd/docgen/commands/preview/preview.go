package preview

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docgen/cmd/docgen/internal/cli"
	"github.com/arthur-debert/docgen/pkg/config"
	"github.com/arthur-debert/docgen/pkg/output"
	"github.com/arthur-debert/docgen/pkg/style"
)

type previewResult struct {
	Active style.TemplateName  `json:"active"`
	Config style.Configuration `json:"config"`
}

// NewCommand creates the preview command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preview",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templateName, _ := cmd.Flags().GetString("template")
			sets, _ := cmd.Flags().GetStringArray("set")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if templateName == "" {
				templateName = cfg.Render.DefaultTemplate
			}

			st, err := cli.NewSession(templateName, sets)
			if err != nil {
				return err
			}
			snapshot, active := st.State()

			if jsonOut {
				return output.NewJSONRenderer(cmd.OutOrStdout()).RenderResult(previewResult{
					Active: active,
					Config: snapshot,
				})
			}

			writeConfiguration(cmd.OutOrStdout(), output.DetectFormat(os.Stdout), snapshot, active)
			return nil
		},
	}

	cmd.Flags().StringP("template", "t", "", "Template to preview (default from configuration)")
	cmd.Flags().StringArray("set", nil, "Apply an edit before previewing (category.key=value, repeatable)")
	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}

// writeConfiguration prints the resolved configuration, one category block
// per element, in the schema's category order.
func writeConfiguration(w io.Writer, f output.Format, cfg style.Configuration, active style.TemplateName) {
	fmt.Fprintln(w, output.Render(f, "Header", fmt.Sprintf(MsgHeaderFormat, active)))

	fmt.Fprintln(w, output.Render(f, "Category", style.CategoryDocument.String()))
	writeSetting(w, f, "margin_top", formatCm(cfg.Document.MarginTop))
	writeSetting(w, f, "margin_bottom", formatCm(cfg.Document.MarginBottom))
	writeSetting(w, f, "margin_left", formatCm(cfg.Document.MarginLeft))
	writeSetting(w, f, "margin_right", formatCm(cfg.Document.MarginRight))
	writeSetting(w, f, "line_spacing", cfg.Document.LineSpacing.String())
	writeSetting(w, f, "font_family", cfg.Document.FontFamily)
	writeSetting(w, f, "font_size", formatPt(cfg.Document.FontSize))

	for _, cat := range style.ElementCategories() {
		el := cfg.Element(cat)
		if el == nil {
			continue
		}
		fmt.Fprintln(w, output.Render(f, "Category", cat.String()))
		writeSetting(w, f, "font_family", el.FontFamily)
		writeSetting(w, f, "font_size", formatPt(el.FontSize))
		writeSetting(w, f, "bold", strconv.FormatBool(el.Bold))
		writeSetting(w, f, "alignment", string(el.Alignment))
		if el.FirstLineIndent != nil {
			writeSetting(w, f, "first_line_indent", fmt.Sprintf("%d chars", *el.FirstLineIndent))
		}
	}
}

func writeSetting(w io.Writer, f output.Format, key, value string) {
	fmt.Fprintf(w, "  %s: %s\n", output.Render(f, "Key", key), value)
}

func formatCm(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " cm"
}

func formatPt(v int) string {
	return strconv.Itoa(v) + " pt"
}
