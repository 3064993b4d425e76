package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/reporter"
	"github.com/yaklabco/docnav/pkg/toc"
)

type tocFlags struct {
	noTop    bool
	maxLevel int
	format   string
}

func newTocCommand(global *globalFlags) *cobra.Command {
	flags := &tocFlags{}

	cmd := &cobra.Command{
		Use:   "toc PATH...",
		Short: "Print the table of contents of documents",
		Long: `Print the numbered sections of each document with their anchors.

Directories are searched for Markdown and HTML documents.

Examples:
  docnav toc README.md
  docnav toc --max-level 2 docs/
  docnav toc --format json docs/`,
		Args: documentArgs(1, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToc(cmd, args, global, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.noTop, "no-top", false, "omit the entry for the top of the document")
	cmd.Flags().IntVar(&flags.maxLevel, "max-level", 0, "deepest header level to list (0 = all)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json")

	return cmd
}

func runToc(cmd *cobra.Command, paths []string, global *globalFlags, flags *tocFlags) error {
	if flags.maxLevel < 0 {
		return fmt.Errorf("%w: --max-level must be >= 0", ErrUsage)
	}
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	overrides := &config.Config{}
	if flags.noTop {
		overrides.Contents.IncludeTop = config.Bool(false)
	}

	s, err := newSession(cmd, global, overrides)
	if err != nil {
		return err
	}

	result, err := s.loadAll(paths)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rep, err := reporter.New(reporter.Options{
		Writer:     out,
		Format:     format,
		View:       reporter.ViewContents,
		Color:      s.colorEnabled(out),
		WorkingDir: s.loader.WorkingDir,
		Contents: toc.Options{
			IncludeTop: config.BoolValue(s.cfg.Contents.IncludeTop, true),
			MaxLevel:   flags.maxLevel,
		},
	})
	if err != nil {
		return err
	}
	if err := rep.Report(s.ctx, result); err != nil {
		return err
	}

	return result.Err()
}
