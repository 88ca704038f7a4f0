package templates

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docgen/pkg/output"
	"github.com/arthur-debert/docgen/pkg/style"
	catalog "github.com/arthur-debert/docgen/pkg/templates"
)

type listResult struct {
	Templates []style.TemplateName `json:"templates"`
}

// NewCommand creates the templates command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			names := catalog.Names()

			if jsonOut {
				return output.NewJSONRenderer(cmd.OutOrStdout()).RenderResult(listResult{Templates: names})
			}

			f := output.DetectFormat(os.Stdout)
			fmt.Fprintln(cmd.OutOrStdout(), output.Render(f, "Header", MsgHeader))
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", output.Render(f, "TemplateName", name.String()))
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}
