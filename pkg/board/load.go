package board

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/aacboard/internal/codec"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

// loader feeds records into a board, tracking the category that item
// records attach to. It never touches the board's navigation cursor.
type loader struct {
	b      *Board
	target *types.Category
	source string
	logger *log.Logger
	policy Policy

	skipped int
}

func newLoader(b *Board, source string) *loader {
	return &loader{
		b:      b,
		source: source,
		logger: b.opts.logger,
		policy: b.opts.policy,
	}
}

func (l *loader) apply(rec types.Record) {
	switch rec.Kind {
	case types.KindCategory:
		l.target = l.b.addCategory(rec.Symbol, rec.Text)
	case types.KindItem:
		l.target.AddItem(rec.Symbol, rec.Text)
	}
}

// malformed applies the policy to a bad line. It returns err under
// PolicyStrict and nil after logging under PolicySkip.
func (l *loader) malformed(err *types.LineError) error {
	if l.policy == PolicyStrict {
		return err
	}
	l.skipped++
	l.logger.WithFields(log.Fields{
		"source": l.source,
		"line":   err.Line,
		"reason": err.Reason,
	}).Warn("skipping malformed line")
	return nil
}

// Read builds a board from the text format in r. Under PolicyStrict the
// first malformed line aborts with a *types.LineError; under PolicySkip
// malformed lines are logged and ignored. The board starts in home mode.
func Read(r io.Reader, opts ...Option) (*Board, error) {
	return read(r, "<reader>", opts)
}

func read(r io.Reader, source string, opts []Option) (*Board, error) {
	b := New(opts...)
	l := newLoader(b, source)
	cr := codec.NewReader(r)
	for {
		rec, err := cr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var lineErr *types.LineError
		if errors.As(err, &lineErr) {
			if err := l.malformed(lineErr); err != nil {
				return nil, fmt.Errorf("%s: %w", source, err)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", types.ErrIOFailure, source, err)
		}
		l.apply(rec)
	}

	b.Reset()
	b.opts.logger.WithFields(log.Fields{
		"source":     source,
		"categories": b.categories.Size(),
		"skipped":    l.skipped,
	}).Debug("board loaded")
	return b, nil
}

// Load reads the board stored at path. Failure to open or read the file
// wraps ErrIOFailure; malformed lines follow the configured Policy.
func Load(path string, opts ...Option) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrIOFailure, path, err)
	}
	defer f.Close()
	return read(f, path, opts)
}

// Open loads the board at path, falling back to an empty board in home
// mode when the file cannot be read or is rejected under PolicyStrict.
// The fallback is logged.
func Open(path string, opts ...Option) *Board {
	b, err := Load(path, opts...)
	if err == nil {
		return b
	}
	empty := New(opts...)
	empty.opts.logger.WithFields(log.Fields{
		"path":  path,
		"error": err,
	}).Warn("using empty board")
	return empty
}

// FromRecords builds a board from records in persisted order, applying the
// same rules as Read: an item before any category, or a record that could
// not be written back, is malformed.
func FromRecords(records []types.Record, opts ...Option) (*Board, error) {
	b := New(opts...)
	l := newLoader(b, "<records>")
	for i, rec := range records {
		reason := ""
		line, err := codec.FormatLine(rec)
		switch {
		case err != nil:
			reason = err.Error()
		case rec.Kind == types.KindItem && l.target == nil:
			reason = "item without category"
		}
		if reason != "" {
			if line == "" {
				line = rec.Symbol + " " + rec.Text
			}
			lineErr := &types.LineError{Line: i + 1, Text: line, Reason: reason}
			if err := l.malformed(lineErr); err != nil {
				return nil, err
			}
			continue
		}
		l.apply(rec)
	}
	b.Reset()
	return b, nil
}
