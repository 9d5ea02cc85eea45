package codec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aacboard/pkg/types"
)

func TestJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.jsonl")
	records := []types.Record{
		types.CategoryRecord("img/food/plate.png", "food"),
		types.ItemRecord("img/food/fries.png", "french fries & <ketchup>"),
	}

	require.NoError(t, WriteJSONL(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"kind":"category"`)
	assert.Contains(t, lines[1], "<ketchup>", "HTML must not be escaped")

	got, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadJSONLSkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.jsonl")
	content := `{"kind":"category","symbol":"a","text":"food"}

not json
{"kind":"screen","symbol":"x","text":"y"}
{"kind":"item","symbol":"b","text":"fries"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Record{
		types.CategoryRecord("a", "food"),
		types.ItemRecord("b", "fries"),
	}, got)
}

func TestReadJSONLMissingFile(t *testing.T) {
	_, err := ReadJSONL(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.ErrorIs(t, err, types.ErrIOFailure)
}
