package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/docnav/internal/configloader"
	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/internal/ui/pretty"
	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/layout"
	"github.com/yaklabco/docnav/pkg/loader"
)

// defaultRenderWidth is used when the output is not a terminal.
const defaultRenderWidth = 80

// session is the resolved configuration a document command runs with.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	layout layout.Options
	loader loader.Options
	logger *log.Logger
}

// newSession loads configuration for cmd, with overrides holding the values
// of the command's own flags.
func newSession(cmd *cobra.Command, global *globalFlags, overrides *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	if overrides == nil {
		overrides = &config.Config{}
	}
	overrides.Color = config.ColorMode(global.color)
	overrides.LogFile = global.logFile

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: global.configPath,
		CLIConfig:    overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, result.LoadedFrom)
	}

	cfg := result.Config

	th, err := cfg.ResolveTheme()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	mode, err := layout.ParseMode(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger.Debug("configuration loaded",
		logging.FieldTheme, th.Name,
		logging.FieldMode, mode,
		logging.FieldFlavor, cfg.Flavor,
	)

	return &session{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		layout: layout.Options{
			Mode:   mode,
			Theme:  th,
			Indent: layout.DefaultIndent,
		},
		loader: loader.Options{
			WorkingDir:   workDir,
			ExcludeGlobs: cfg.Ignore,
			Jobs:         cfg.Jobs,
			Flavor:       string(cfg.Flavor),
			RedLinks:     cfg.RedLinksEnabled(),
		},
	}, nil
}

// loadAll loads every document under paths, logging the ones that fail.
func (s *session) loadAll(paths []string) (*loader.Result, error) {
	opts := s.loader
	opts.Paths = paths

	result, err := loader.LoadAll(s.ctx, opts)
	if err != nil {
		return nil, err
	}
	for _, doc := range result.Docs {
		if doc.Err != nil {
			s.logger.Error("load failed", logging.FieldPath, doc.Path, logging.FieldError, doc.Err)
		}
	}
	s.logger.Debug("documents loaded",
		"discovered", result.Stats.Discovered,
		"loaded", result.Stats.Loaded,
		logging.FieldLinks, result.Stats.Links,
	)
	return result, nil
}

// width returns the render width for w: the --width flag, the terminal
// width, or defaultRenderWidth.
func (s *session) width(w io.Writer) int {
	if s.cfg.Width > 0 {
		return s.cfg.Width
	}
	return terminalWidth(w)
}

// colorEnabled resolves --color against w and configures lipgloss to match.
func (s *session) colorEnabled(w io.Writer) bool {
	enabled := pretty.IsColorEnabled(string(s.cfg.Color), w)
	pretty.SetColor(enabled)
	return enabled
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultRenderWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultRenderWidth
	}
	return width
}
