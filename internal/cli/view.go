package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/internal/tui"
	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/loader"
)

type viewFlags struct {
	theme    string
	mode     string
	noWatch  bool
	contents bool
}

func newViewCommand(global *globalFlags) *cobra.Command {
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Open a document in the interactive viewer",
		Long: `Open a document in the interactive viewer.

Key bindings:
  ←/→              previous/next link
  shift+←/→        first/last link
  shift+↑/↓        top/bottom visible link
  ↑/↓, k/j         scroll
  ctrl+u/ctrl+d    half page up/down
  g/G              top/bottom
  enter            follow the selected link
  tab              contents (↑/↓ to move, enter to jump)
  ctrl+r           next render mode
  esc              close a popup
  q, ctrl+c        quit

The document is reloaded when the file changes unless --no-watch is given.

Examples:
  docnav view README.md
  docnav view --theme light --contents docs/guide.md`,
		Args: documentArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args[0], global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.theme, "theme", "", "theme name")
	cmd.Flags().StringVar(&flags.mode, "mode", "", "initial render mode")
	cmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "do not reload the document when it changes")
	cmd.Flags().BoolVar(&flags.contents, "contents", false, "keep the contents sidebar open")

	return cmd
}

func runView(cmd *cobra.Command, path string, global *globalFlags, flags *viewFlags) error {
	overrides := &config.Config{
		Theme: flags.theme,
		Mode:  flags.mode,
	}
	if flags.noWatch {
		overrides.Watch = config.Bool(false)
	}
	if flags.contents {
		overrides.Contents.Show = config.Bool(true)
	}

	s, err := newSession(cmd, global, overrides)
	if err != nil {
		return err
	}

	tree, err := loader.Load(s.ctx, path, s.loader)
	if err != nil {
		return err
	}

	// The viewer owns the terminal, so it only logs to a file.
	logger := logging.Discard()
	if s.cfg.LogFile != "" {
		fileLogger, closer, err := logging.NewFile(s.cfg.LogFile, s.cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = closer.Close() }()
		logger = fileLogger
		if global.debug {
			logger.SetLevel(logging.Default().GetLevel())
		}
	}

	if s.cfg.Color == config.ColorNever {
		pretty.SetColor(false)
	}

	logger.Info("viewer started", logging.FieldPath, path, logging.FieldNodes, tree.Len())

	return tui.Run(logging.WithLogger(s.ctx, logger), tree, tui.Options{
		Path:                 path,
		Loader:               s.loader,
		Layout:               s.layout,
		CacheSize:            s.cfg.CacheSize,
		ScrollAmount:         s.cfg.ScrollAmount,
		ShowContents:         config.BoolValue(s.cfg.Contents.Show, false),
		IncludeTop:           config.BoolValue(s.cfg.Contents.IncludeTop, true),
		ContentsWidthPercent: s.cfg.Contents.WidthPercent,
		Watch:                s.cfg.WatchEnabled(),
		Logger:               logger,
	})
}
