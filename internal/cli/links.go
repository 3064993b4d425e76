package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/reporter"
)

type linksFlags struct {
	width   int
	summary bool
	format  string
}

func newLinksCommand(global *globalFlags) *cobra.Command {
	flags := &linksFlags{}

	cmd := &cobra.Command{
		Use:   "links PATH...",
		Short: "List the links of documents",
		Long: `List every link of each document with the line it is rendered on, what
following it would do, its text and its target.

Line numbers depend on the render width.

Examples:
  docnav links README.md
  docnav links --width 100 --summary docs/
  docnav links --format json README.md`,
		Args: documentArgs(1, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, args, global, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "render width in columns (default: terminal width)")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print document and link totals")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json")

	return cmd
}

func runLinks(cmd *cobra.Command, paths []string, global *globalFlags, flags *linksFlags) error {
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	s, err := newSession(cmd, global, &config.Config{Width: flags.width})
	if err != nil {
		return err
	}

	result, err := s.loadAll(paths)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		Format:      format,
		View:        reporter.ViewLinks,
		Color:       s.colorEnabled(out),
		ShowSummary: flags.summary,
		WorkingDir:  s.loader.WorkingDir,
		Width:       s.width(out),
		Layout:      s.layout,
	})
	if err != nil {
		return err
	}
	if err := rep.Report(s.ctx, result); err != nil {
		return err
	}

	return result.Err()
}
