// Package paths resolves the configuration directory and board file
// locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Default names, relative to the platform config root or the CWD.
const (
	AppDirName           = "aacboard"
	DefaultBoardFileName = "board.txt"
)

// Environment variable names for overrides.
const (
	EnvConfigDir = "AACBOARD_CONFIG_DIR"
	EnvBoardFile = "AACBOARD_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/aacboard (fallback ~/.config/aacboard)
// macOS:   ~/Library/Application Support/aacboard
// Windows: %APPDATA%/aacboard
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > AACBOARD_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveBoardFile returns the board file following the precedence chain:
// flag > configYAMLValue > AACBOARD_FILE env > $(CWD)/board.txt.
func ResolveBoardFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvBoardFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultBoardFileName), nil
}
