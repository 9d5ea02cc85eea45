// Package cli implements the aacboard command-line interface, a thin
// collaborator that drives a board through Select, AddItem and Save.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/aacboard/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	boardFile string
	strict    bool
	jsonMode  bool
	verbose   bool
	noColor   bool
}

var flags rootFlags

// Per-invocation state set by PersistentPreRunE.
var (
	cfg    *viper.Viper
	logger *log.Logger
)

// NewRootCmd creates the top-level "aacboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aacboard",
		Short: "Navigate and edit a two-level AAC symbol board",
		Long: `aacboard loads a symbol board (a home screen of categories, each holding
symbols paired with spoken text), lets you select symbols as a device would,
and edits or converts the board file.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir, e.g. ~/.config/aacboard)")
	root.PersistentFlags().StringVar(&flags.boardFile, "board", "", "board file (default: $(CWD)/board.txt)")
	root.PersistentFlags().BoolVar(&flags.strict, "strict", false, "abort on malformed board lines instead of skipping them")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newSelectCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup loads config.yaml and builds the logger for this invocation.
func setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	if err := v.BindPFlag(cfgKeyStrict, cmd.Flag("strict")); err != nil {
		return sysError(fmt.Errorf("bind strict flag: %w", err))
	}
	cfg = v

	logger = log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	level, err := log.ParseLevel(cfg.GetString(cfgKeyLogLevel))
	if err != nil {
		return userErrorf("invalid %s %q", cfgKeyLogLevel, cfg.GetString(cfgKeyLogLevel))
	}
	if flags.verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	if flags.noColor {
		color.NoColor = true
	}
	return nil
}

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userErrorf(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error returned by a command to a process exit code.
// Untagged errors (flag parsing, argument counts) are user errors.
func exitCode(err error) int {
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}
