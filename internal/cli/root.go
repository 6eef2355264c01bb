// Package cli implements the plank command-line interface.
//
// This package provides commands for importing DXF drawings, resolving
// tabletop configurations against the material catalogue, pricing them,
// serving the HTTP API, and running the interactive configurator. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parse: Extract a tabletop outline from a DXF drawing
//   - quote: Price a configuration along both estimation paths
//   - materials: List the material catalogue
//   - serve: Run the HTTP API
//   - tui: Interactive configurator
//   - draft: Manage saved configuration drafts
//   - cache: Manage the quote cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plankworks/plank/pkg/buildinfo"
)

// Execute runs the plank CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "plank",
		Short:        "Plank configures and prices parametric tabletops",
		Long:         `Plank is a CLI tool for configuring made-to-measure tabletops: import DXF outlines, resolve dimensions and thicknesses against the live material catalogue, and price the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to settings file")

	root.AddCommand(newParseCmd())
	root.AddCommand(newQuoteCmd(&configPath))
	root.AddCommand(newMaterialsCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newDraftCmd())
	root.AddCommand(newCacheCmd(&configPath))
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
