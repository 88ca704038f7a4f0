package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/docgen/cmd/docgen/internal/cli"
	"github.com/arthur-debert/docgen/pkg/config"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/server"
)

// NewCommand creates the serve command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A .env beside the process feeds the DOCGEN_* environment
			// layer; missing files are fine.
			_ = godotenv.Load()

			var overrides map[string]interface{}
			if cmd.Flags().Changed("listen") {
				addr, _ := cmd.Flags().GetString("listen")
				overrides = map[string]interface{}{"server.listen": addr}
			}

			cfg, err := config.LoadWithOverrides(overrides)
			if err != nil {
				return err
			}

			st, err := cli.NewSession(cfg.Render.DefaultTemplate, nil)
			if err != nil {
				return err
			}
			svc := render.NewService(st, render.Backends(), cfg.Render.Timeout)
			srv := server.New(st, svc, cfg)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				sig := <-sigCh
				logger := logging.GetLogger("serve")
				logger.Info().Str("signal", sig.String()).Msg("Shutting down")
				_ = srv.Shutdown()
			}()

			return srv.Listen(cfg.Server.Listen)
		},
	}

	cmd.Flags().String("listen", "", "Listen address (default from configuration, usually :8080)")

	return cmd
}
