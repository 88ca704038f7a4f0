package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docgen/cmd/docgen/internal/cli"
	"github.com/arthur-debert/docgen/pkg/config"
	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/output"
	"github.com/arthur-debert/docgen/pkg/paths"
	"github.com/arthur-debert/docgen/pkg/render"
)

type renderResult struct {
	OutputPath string `json:"output_path"`
}

// NewCommand creates the render command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [input-file]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateName, _ := cmd.Flags().GetString("template")
			sets, _ := cmd.Flags().GetStringArray("set")
			text, _ := cmd.Flags().GetString("text")
			outputPath, _ := cmd.Flags().GetString("output")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if templateName == "" {
				templateName = cfg.Render.DefaultTemplate
			}

			timeout := cfg.Render.Timeout
			if cmd.Flags().Changed("timeout") {
				timeout, _ = cmd.Flags().GetDuration("timeout")
			}

			var inputPath string
			if len(args) > 0 {
				inputPath = args[0]
			}
			switch {
			case inputPath == "" && text == "":
				return errors.New(errors.ErrInvalidInput, MsgErrNoInput)
			case inputPath != "" && text != "":
				return errors.New(errors.ErrInvalidInput, MsgErrBothInputs)
			case inputPath == "" && outputPath == "":
				return errors.New(errors.ErrInvalidInput, MsgErrTextNeedsOutput)
			}
			if outputPath == "" {
				outputPath = paths.DefaultOutputPath(inputPath, render.RestyleExtension)
			}

			st, err := cli.NewSession(templateName, sets)
			if err != nil {
				return err
			}
			svc := render.NewService(st, render.Backends(), timeout)

			if text != "" {
				err = svc.RenderText(cmd.Context(), text, outputPath)
			} else {
				err = svc.RenderInput(cmd.Context(), inputPath, outputPath)
			}
			if err != nil {
				return err
			}

			if jsonOut {
				return output.NewJSONRenderer(cmd.OutOrStdout()).RenderResult(renderResult{OutputPath: outputPath})
			}
			f := output.DetectFormat(os.Stdout)
			fmt.Fprintln(cmd.OutOrStdout(), output.Render(f, "Success", fmt.Sprintf(MsgRenderedFormat, outputPath)))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file; its extension picks the backend (default 格式化_<input>.docx beside the input)")
	cmd.Flags().StringP("template", "t", "", "Template to render with (default from configuration)")
	cmd.Flags().StringArray("set", nil, "Apply an edit before rendering (category.key=value, repeatable)")
	cmd.Flags().Duration("timeout", 0, "Abort the render after this long (default from configuration)")
	cmd.Flags().String("text", "", "Render this text instead of reading an input file")
	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}
