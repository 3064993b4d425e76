// Package cli provides the Cobra command structure for docnav.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	logFile    string
}

// NewRootCommand creates the root docnav command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "docnav",
		Short: "Read and navigate Markdown and wiki documents in the terminal",
		Long: `docnav renders Markdown and MediaWiki article HTML as wrapped, styled text
and lets you move between the links of a document with the keyboard.

Open a document interactively with "docnav view", or print it, its table of
contents or its links with "docnav render", "docnav toc" and "docnav links".`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !config.ColorMode(global.color).IsValid() {
				return fmt.Errorf("%w: --color must be auto, always or never, got %q", ErrUsage, global.color)
			}
			if global.debug {
				logging.SetLevel("debug")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&global.logFile, "log-file", "",
		"write logs of the interactive viewer to this file")

	// Add subcommands.
	rootCmd.AddCommand(newViewCommand(global))
	rootCmd.AddCommand(newRenderCommand(global))
	rootCmd.AddCommand(newTocCommand(global))
	rootCmd.AddCommand(newLinksCommand(global))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(string(config.ColorAuto), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// documentArgs accepts between min and max document paths. A max of zero
// means no upper bound.
func documentArgs(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch {
		case len(args) < minArgs:
			return fmt.Errorf("%w: expected at least %d document path(s), got %d", ErrUsage, minArgs, len(args))
		case maxArgs > 0 && len(args) > maxArgs:
			return fmt.Errorf("%w: expected at most %d document path(s), got %d", ErrUsage, maxArgs, len(args))
		}
		return nil
	}
}
