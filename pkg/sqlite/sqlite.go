// Package sqlite provides the public API for storing boards in SQLite.
// Implementation details live in internal/sqlite.
package sqlite

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/aacboard/internal/sqlite"
	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// SaveBoard replaces the snapshot stored in the database at path with b.
// The database is created if it does not exist.
//
// Example:
//
//	b := board.Open("board.txt")
//	if err := sqlite.SaveBoard("board.db", b); err != nil {
//	    return err
//	}
func SaveBoard(path string, b *board.Board) (err error) {
	store, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, store.Close())
	}()
	return store.Replace(b.Records())
}

// LoadBoard builds a board from the snapshot stored at path. A missing
// database wraps ErrIOFailure and is not created.
func LoadBoard(path string, opts ...board.Option) (b *board.Board, err error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, store.Close())
	}()

	records, err := store.Records()
	if err != nil {
		return nil, err
	}
	return board.FromRecords(records, opts...)
}
