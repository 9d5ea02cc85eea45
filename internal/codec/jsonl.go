package codec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// ReadJSONL reads records from a JSONL file, one object per line.
// Blank lines, lines that are not valid JSON, and objects with an unknown
// kind are skipped.
func ReadJSONL(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrIOFailure, path, err)
	}
	defer f.Close()

	var records []types.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec types.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		if rec.Kind != types.KindCategory && rec.Kind != types.KindItem {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %w", types.ErrIOFailure, path, err)
	}
	return records, nil
}

// WriteJSONL atomically replaces path with one JSON object per record.
func WriteJSONL(path string, records []types.Record) error {
	return writeAtomic(path, ".jsonl-*.tmp", func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
		return nil
	})
}
