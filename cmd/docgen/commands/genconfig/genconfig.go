package genconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docgen/pkg/config"
	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/output"
	"github.com/arthur-debert/docgen/pkg/paths"
)

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			content := config.GenerateConfigContent()

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			logger := logging.GetLogger("genconfig")
			target := paths.ConfigFilePath()

			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrOutputWrite, "creating %s", filepath.Dir(target))
			}

			f := output.DetectFormat(os.Stdout)
			if _, err := os.Stat(target); err == nil {
				// Never clobber an existing configuration.
				logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
				fmt.Fprintln(cmd.OutOrStdout(), output.Render(f, "Warning", fmt.Sprintf(MsgExistsFormat, target)))
				return nil
			}

			if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrOutputWrite, "writing %s", target)
			}

			logger.Info().Str("path", target).Msg("Written config file")
			fmt.Fprintln(cmd.OutOrStdout(), output.Render(f, "Success", fmt.Sprintf(MsgWrittenFormat, target)))
			return nil
		},
	}

	cmd.Flags().BoolP("write", "w", false, "Write the config file instead of printing it")

	return cmd
}
