package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/internal/paths"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and an empty board file",
		Long:  "Create the configuration directory with a default config.yaml, then create the board file if it does not exist.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	c, err := currentConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	if err := writeConfigIfMissing(configDir, c); err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(c.BoardFile), 0o755); err != nil {
		return sysError(fmt.Errorf("create board directory: %w", err))
	}
	created, err := createEmptyFile(c.BoardFile)
	if err != nil {
		return sysError(fmt.Errorf("create board file: %w", err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config: %s\n", filepath.Join(configDir, configFileExt))
	if created {
		fmt.Fprintf(out, "board:  %s (created)\n", c.BoardFile)
	} else {
		fmt.Fprintf(out, "board:  %s (exists)\n", c.BoardFile)
	}
	return nil
}

// createEmptyFile creates path unless it already exists.
func createEmptyFile(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}
	return true, f.Close()
}
