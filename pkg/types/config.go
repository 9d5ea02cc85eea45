package types

import "errors"

// Config holds the board location and load policy used by the CLI.
type Config struct {
	BoardFile string `json:"board_file" yaml:"board_file"`
	Strict    bool   `json:"strict" yaml:"strict"`
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Interchange formats for export and import.
const (
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBoardFileEmpty = errors.New("board file must not be empty")
	ErrUnknownFormat  = errors.New("unknown interchange format")
)

// knownFormats lists the formats ValidateFormat accepts.
var knownFormats = map[string]bool{
	FormatJSONL:  true,
	FormatSQLite: true,
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.BoardFile == "" {
		return ErrBoardFileEmpty
	}
	return nil
}

// ValidateFormat returns ErrUnknownFormat unless format is a supported
// interchange format.
func ValidateFormat(format string) error {
	if !knownFormats[format] {
		return ErrUnknownFormat
	}
	return nil
}
