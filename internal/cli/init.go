package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docnav/internal/configloader"
	"github.com/yaklabco/docnav/internal/logging"
	"github.com/yaklabco/docnav/pkg/config"
	"github.com/yaklabco/docnav/pkg/fsutil"
)

// configFileMode is the mode of written configuration files.
const configFileMode = 0o644

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a docnav configuration file",
		Long: `Write a ` + configloader.ProjectConfigName + ` file in the current directory holding the
default settings. Pass --full to include every setting with its documentation.`,
		Example: `  docnav init
  docnav init --full
  docnav init --output ~/.config/docnav/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every setting")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "file to write")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	path, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	_, err = os.Stat(path)
	switch {
	case err == nil && !flags.force:
		return fmt.Errorf("%w: %s already exists, use --force to overwrite", ErrUsage, flags.output)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", flags.output, err)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	written, err := fsutil.WriteAtomicIfChanged(cmd.Context(), path, content, configFileMode)
	if err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}

	if !written {
		logger.Info("configuration file is already up to date", logging.FieldPath, flags.output)
		return nil
	}
	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}
