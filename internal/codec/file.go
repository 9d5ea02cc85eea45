package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// WriteFile atomically replaces path with records in text format.
func WriteFile(path string, records []types.Record) error {
	return writeAtomic(path, ".board-*.tmp", func(w io.Writer) error {
		return Encode(w, records)
	})
}

// ReadFile decodes every record in path. A malformed line aborts with a
// *types.LineError; failure to open or read wraps ErrIOFailure.
func ReadFile(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrIOFailure, path, err)
	}
	defer f.Close()

	var records []types.Record
	r := NewReader(f)
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		var lineErr *types.LineError
		if errors.As(err, &lineErr) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", types.ErrIOFailure, path, err)
		}
		records = append(records, rec)
	}
}

// writeAtomic writes through a temp file in the destination directory,
// then fsyncs and renames it over path. Errors other than ErrInvalidRecord
// wrap ErrIOFailure.
func writeAtomic(path, pattern string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %w", types.ErrIOFailure, err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		if errors.Is(err, types.ErrInvalidRecord) {
			return err
		}
		return fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		return fail(err)
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %w", types.ErrIOFailure, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming temp file: %w", types.ErrIOFailure, err)
	}
	return nil
}
