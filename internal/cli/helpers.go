package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mesh-intelligence/aacboard/internal/paths"
	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// currentConfig resolves the effective configuration for this invocation.
func currentConfig() (types.Config, error) {
	path, err := paths.ResolveBoardFile(flags.boardFile, cfg.GetString(cfgKeyBoardFile))
	if err != nil {
		return types.Config{}, sysError(fmt.Errorf("resolve board file: %w", err))
	}
	c := types.Config{
		BoardFile: path,
		Strict:    cfg.GetBool(cfgKeyStrict),
		LogLevel:  cfg.GetString(cfgKeyLogLevel),
	}
	if err := c.Validate(); err != nil {
		return types.Config{}, userErrorf("%s", err)
	}
	return c, nil
}

func boardOptions(strict bool) []board.Option {
	return []board.Option{board.WithLogger(logger), board.WithStrict(strict)}
}

// openBoard returns the configured board, or an empty one when the file
// cannot be used. For read-only commands.
func openBoard() (*board.Board, types.Config, error) {
	c, err := currentConfig()
	if err != nil {
		return nil, c, err
	}
	return board.Open(c.BoardFile, boardOptions(c.Strict)...), c, nil
}

// loadBoardForEdit loads the board strictly so that a rewrite never drops
// malformed lines. A missing file yields an empty board.
func loadBoardForEdit() (*board.Board, types.Config, error) {
	c, err := currentConfig()
	if err != nil {
		return nil, c, err
	}
	b, err := board.Load(c.BoardFile, boardOptions(true)...)
	switch {
	case err == nil:
		return b, c, nil
	case errors.Is(err, fs.ErrNotExist):
		return board.New(boardOptions(true)...), c, nil
	default:
		return nil, c, classify(err)
	}
}

// saveBoard writes b to the configured board file.
func saveBoard(b *board.Board, c types.Config) error {
	if err := b.Save(c.BoardFile); err != nil {
		return classify(err)
	}
	return nil
}

// classify tags board errors with an exit code: bad content is a user
// error, file system trouble is a system error.
func classify(err error) error {
	switch {
	case errors.Is(err, types.ErrMalformedLine), errors.Is(err, types.ErrInvalidRecord):
		return &exitError{code: exitUserError, err: err}
	default:
		return sysError(err)
	}
}
