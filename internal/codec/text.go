package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mesh-intelligence/aacboard/pkg/types"
)

const (
	itemPrefix = ">"
	separator  = " "

	// maxLineSize bounds a single record.
	maxLineSize = 1 << 20
	// tooLongPrefix is how much of an overlong line is kept for reporting.
	tooLongPrefix = 64
)

// ParseLine classifies a single line and splits it into a Record.
// The line must not include its terminator. Errors wrap ErrMalformedLine.
func ParseLine(line string) (types.Record, error) {
	rec, reason := parseLine(line)
	if reason != "" {
		return types.Record{}, fmt.Errorf("%w: %s", types.ErrMalformedLine, reason)
	}
	return rec, nil
}

// parseLine returns the record or a non-empty reason it is malformed.
func parseLine(line string) (types.Record, string) {
	kind := types.KindCategory
	body := line
	if strings.HasPrefix(line, itemPrefix) {
		kind = types.KindItem
		body = line[len(itemPrefix):]
	}

	symbol, text, ok := strings.Cut(body, separator)
	if !ok {
		return types.Record{}, "missing separator"
	}
	if symbol == "" {
		return types.Record{}, "empty symbol"
	}
	return types.Record{Kind: kind, Symbol: symbol, Text: text}, ""
}

// FormatLine renders rec as a single line without terminator.
// Returns ErrInvalidRecord if rec could not be parsed back unchanged.
func FormatLine(rec types.Record) (string, error) {
	if err := validateRecord(rec); err != nil {
		return "", err
	}
	if rec.Kind == types.KindItem {
		return itemPrefix + rec.Symbol + separator + rec.Text, nil
	}
	return rec.Symbol + separator + rec.Text, nil
}

func validateRecord(rec types.Record) error {
	switch rec.Kind {
	case types.KindCategory:
		if strings.HasPrefix(rec.Symbol, itemPrefix) {
			return fmt.Errorf("%w: category symbol %q starts with %q", types.ErrInvalidRecord, rec.Symbol, itemPrefix)
		}
	case types.KindItem:
	default:
		return fmt.Errorf("%w: unknown kind %q", types.ErrInvalidRecord, rec.Kind)
	}
	if rec.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", types.ErrInvalidRecord)
	}
	if strings.ContainsAny(rec.Symbol, " \r\n") {
		return fmt.Errorf("%w: symbol %q contains whitespace", types.ErrInvalidRecord, rec.Symbol)
	}
	if strings.ContainsAny(rec.Text, "\r\n") {
		return fmt.Errorf("%w: text for %q contains a line break", types.ErrInvalidRecord, rec.Symbol)
	}
	return nil
}

// Reader decodes records from a text-format stream.
// Blank lines are skipped. An item line seen before any category line is
// malformed, as is a line longer than maxLineSize. After a *types.LineError
// the Reader remains usable, so callers choose whether to skip the line or
// abort.
type Reader struct {
	br          *bufio.Reader
	line        int
	hasCategory bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 64<<10)}
}

// Line returns the 1-based number of the line most recently read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next record. It returns io.EOF at end of input, a *types.LineError
// for a malformed line, or the underlying read error.
func (r *Reader) Next() (types.Record, error) {
	for {
		raw, tooLong, err := r.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return types.Record{}, io.EOF
			}
			return types.Record{}, fmt.Errorf("reading line %d: %w", r.line+1, err)
		}
		r.line++
		if tooLong {
			return types.Record{}, &types.LineError{Line: r.line, Text: raw + "...", Reason: "line too long"}
		}
		if raw == "" {
			continue
		}

		rec, reason := parseLine(raw)
		if reason != "" {
			return types.Record{}, &types.LineError{Line: r.line, Text: raw, Reason: reason}
		}
		if rec.Kind == types.KindItem && !r.hasCategory {
			return types.Record{}, &types.LineError{Line: r.line, Text: raw, Reason: "item without category"}
		}
		if rec.Kind == types.KindCategory {
			r.hasCategory = true
		}
		return rec, nil
	}
}

// readLine returns the next line without its terminator. A line longer than
// maxLineSize is consumed in full and reported with tooLong set; only a short
// prefix of it is kept. io.EOF is returned only when no bytes remain.
func (r *Reader) readLine() (string, bool, error) {
	var (
		buf     []byte
		n       int
		tooLong bool
	)
	for {
		chunk, err := r.br.ReadSlice('\n')
		n += len(chunk)
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineSize+len("\r\n") {
				buf = buf[:min(len(buf), tooLongPrefix)]
				tooLong = true
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) && n == 0 {
			return "", false, io.EOF
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, err
		}
		break
	}

	if tooLong {
		return string(buf), true, nil
	}
	line := strings.TrimSuffix(string(buf), "\n")
	line = strings.TrimSuffix(line, "\r")
	if len(line) > maxLineSize {
		return line[:tooLongPrefix], true, nil
	}
	return line, false, nil
}

// Encode writes records to w, one line each. Every record is validated
// before anything is written, so an invalid record leaves w untouched.
func Encode(w io.Writer, records []types.Record) error {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		line, err := FormatLine(rec)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	return nil
}
