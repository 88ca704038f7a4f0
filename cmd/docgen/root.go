package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/docgen/cmd/docgen/commands/genconfig"
	"github.com/arthur-debert/docgen/cmd/docgen/commands/preview"
	"github.com/arthur-debert/docgen/cmd/docgen/commands/render"
	"github.com/arthur-debert/docgen/cmd/docgen/commands/serve"
	"github.com/arthur-debert/docgen/cmd/docgen/commands/templates"
	"github.com/arthur-debert/docgen/internal/version"
	"github.com/arthur-debert/docgen/pkg/cobrax/topics"
	"github.com/arthur-debert/docgen/pkg/config"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/output"
)

// Help topics ship inside the binary so the help system works regardless
// of where the executable lives.
//
//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "docgen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Console logging first so loading the configuration already
			// logs at the requested level, then again with the file sink
			// once the configuration says whether it wants one.
			logging.SetupLoggerWithFile(verbosity, false)
			fileLogs := config.Default().Log.FileEnabled
			if cfg, err := config.Load(); err == nil {
				fileLogs = cfg.Log.FileEnabled
			}
			if fileLogs {
				logging.SetupLogger(verbosity)
			}
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(templates.NewCommand())
	rootCmd.AddCommand(preview.NewCommand())
	rootCmd.AddCommand(render.NewCommand())
	rootCmd.AddCommand(serve.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	// Initialize topic-based help system from the embedded files
	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		style := "auto"
		if output.DetectFormat(os.Stdout) != output.FormatTerminal {
			style = "notty"
		}
		opts := topics.Options{
			Extensions: []string{".txt", ".md"},
			Renderer:   topics.NewGlamourRenderer(style),
		}
		_ = topics.InitializeWithOptions(rootCmd, sub, opts)
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [directory]",
		Short:   MsgManShort,
		Long:    MsgManLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			header := &doc.GenManHeader{
				Title:   "DOCGEN",
				Section: "1",
				Source:  "docgen " + version.Version,
				Manual:  "docgen manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWrittenFormat, dir)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
