package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/loader"
)

type renderFlags struct {
	width int
	mode  string
	theme string
}

func newRenderCommand(global *globalFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print a rendered document",
		Long: `Render a document the way the viewer shows it and print the lines.

The width defaults to the terminal width, or 80 columns when the output is
not a terminal. Debug render modes print the document tree instead.

Examples:
  docnav render README.md
  docnav render --width 60 docs/guide.md
  docnav render --mode tree-data article.html`,
		Args: documentArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], global, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "render width in columns (default: terminal width)")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "render mode: default, tree-data, tree-raw, node-raw")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "theme name")

	return cmd
}

func runRender(cmd *cobra.Command, path string, global *globalFlags, flags *renderFlags) error {
	s, err := newSession(cmd, global, &config.Config{
		Width: flags.width,
		Mode:  flags.mode,
		Theme: flags.theme,
	})
	if err != nil {
		return err
	}

	tree, err := loader.Load(s.ctx, path, s.loader)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := s.width(out)
	doc := layout.Render(tree, width, s.layout)

	s.logger.Debug("rendered",
		logging.FieldPath, path,
		logging.FieldWidth, width,
		logging.FieldLines, doc.LineCount(),
	)

	return pretty.WriteDocument(out, doc, pretty.LineOptions{Color: s.colorEnabled(out)})
}
