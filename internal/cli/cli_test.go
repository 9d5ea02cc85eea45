package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/aacboard/pkg/board"
)

const sampleBoard = `img/food/plate.png food
>img/food/fries.png french fries
>img/food/watermelon.png watermelon
img/clothing/hanger.png clothing
>img/clothing/shirt.png collared shirt
`

// testEnv isolates one CLI invocation sequence in temp directories.
type testEnv struct {
	t         *testing.T
	configDir string
	boardFile string
}

func newTestEnv(t *testing.T, board string) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := &testEnv{
		t:         t,
		configDir: filepath.Join(dir, "config"),
		boardFile: filepath.Join(dir, "board.txt"),
	}
	t.Setenv("AACBOARD_CONFIG_DIR", "")
	t.Setenv("AACBOARD_FILE", "")
	if board != "" {
		require.NoError(t, os.WriteFile(env.boardFile, []byte(board), 0o644))
	}
	return env
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the root command with the environment's global flags.
func (e *testEnv) run(args ...string) result {
	e.t.Helper()
	full := append([]string{"--config-dir", e.configDir, "--board", e.boardFile, "--no-color"}, args...)
	return e.runRaw(full...)
}

func (e *testEnv) runRaw(args ...string) result {
	e.t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	r := e.run(args...)
	require.NoError(e.t, r.err, "stderr: %s", r.stderr)
	return r.stdout
}

func (e *testEnv) boardContent() string {
	e.t.Helper()
	data, err := os.ReadFile(e.boardFile)
	require.NoError(e.t, err)
	return string(data)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, "")
	out := env.mustRun("version")
	assert.Equal(t, "aacboard v"+Version+"\nmodule: "+modulePath+"\n", out)
}

func TestInit(t *testing.T) {
	env := newTestEnv(t, "")

	out := env.mustRun("init")
	assert.Contains(t, out, "(created)")
	assert.FileExists(t, filepath.Join(env.configDir, "config.yaml"))
	assert.Equal(t, "", env.boardContent())

	cfgData, err := os.ReadFile(filepath.Join(env.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfgData), "board_file: "+env.boardFile)

	out = env.mustRun("init")
	assert.Contains(t, out, "(exists)")
}

func TestInitKeepsExistingBoard(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	env.mustRun("init")
	assert.Equal(t, sampleBoard, env.boardContent())
}

func TestShowHome(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	out := env.mustRun("show")

	assert.True(t, strings.HasPrefix(out, "home\n"), "got %q", out)
	assert.Contains(t, out, "img/food/plate.png")
	assert.Contains(t, out, "clothing")
	assert.Contains(t, out, "category")
	assert.NotContains(t, out, "img/food/fries.png")
}

func TestShowCategory(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	out := env.mustRun("show", "img/food/plate.png")

	assert.True(t, strings.HasPrefix(out, "food\n"), "got %q", out)
	assert.Contains(t, out, "french fries")
	assert.Contains(t, out, "img/food/watermelon.png")
	assert.NotContains(t, out, "collared shirt")
}

func TestShowUnknownCategory(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	r := env.run("show", "img/food/fries.png")
	require.Error(t, r.err)
	assert.Equal(t, exitUserError, exitCode(r.err))
}

func TestShowJSON(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	out := env.mustRun("--json", "show")

	var screen screenJSON
	require.NoError(t, json.Unmarshal([]byte(out), &screen))
	assert.Equal(t, "", screen.Category)
	require.Len(t, screen.Symbols, 2)
	assert.Equal(t, symbolJSON{Symbol: "img/food/plate.png", Text: "food", IsCategory: true}, screen.Symbols[0])
}

func TestShowMissingBoardIsEmpty(t *testing.T) {
	env := newTestEnv(t, "")
	out := env.mustRun("show")
	assert.Equal(t, "home\n(empty)\n", out)
}

func TestSelect(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	out := env.mustRun("select",
		"img/food/plate.png",
		"img/food/fries.png",
		"img/nowhere.png",
		"img/clothing/hanger.png",
		"img/clothing/shirt.png",
	)
	assert.Equal(t, "french fries\ncollared shirt\n", out)
}

func TestSelectJSON(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	out := env.mustRun("--json", "select", "img/food/plate.png", "img/food/watermelon.png")

	var got []selectionJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []selectionJSON{
		{Symbol: "img/food/plate.png", Text: "", Category: "food"},
		{Symbol: "img/food/watermelon.png", Text: "watermelon", Category: "food"},
	}, got)
}

func TestSelectRequiresArgs(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	r := env.run("select")
	require.Error(t, r.err)
	assert.Equal(t, exitUserError, exitCode(r.err))
}

func TestAddToCategory(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	out := env.mustRun("add", "--category", "img/food/plate.png", "img/food/apple.png", "red", "apple")
	assert.Equal(t, "added img/food/apple.png to food\n", out)

	assert.Equal(t, `img/food/plate.png food
>img/food/fries.png french fries
>img/food/watermelon.png watermelon
>img/food/apple.png red apple
img/clothing/hanger.png clothing
>img/clothing/shirt.png collared shirt
`, env.boardContent())
}

func TestAddToHomeWithoutCategoryIsRejected(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	r := env.run("add", "img/hello.png", "hello")
	require.Error(t, r.err)
	assert.Equal(t, exitUserError, exitCode(r.err))
	assert.Contains(t, r.err.Error(), "use --category")
	assert.Equal(t, sampleBoard, env.boardContent())
}

func TestAddRenamesCategoryThroughHomeScreen(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	env.mustRun("add", "img/food/plate.png", "meals")
	assert.True(t, strings.HasPrefix(env.boardContent(), "img/food/plate.png meals\n"))
}

func TestAddErrors(t *testing.T) {
	tests := []struct {
		name  string
		board string
		args  []string
	}{
		{
			name:  "unknown category",
			board: sampleBoard,
			args:  []string{"add", "--category", "img/nope.png", "x.png", "x"},
		},
		{
			name:  "symbol with space",
			board: sampleBoard,
			args:  []string{"add", "--category", "img/food/plate.png", "hot dog.png", "hot dog"},
		},
		{
			name:  "malformed board is not rewritten",
			board: sampleBoard + "broken\n",
			args:  []string{"add", "--category", "img/food/plate.png", "x.png", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.board)
			r := env.run(tt.args...)
			require.Error(t, r.err)
			assert.Equal(t, exitUserError, exitCode(r.err))
			assert.Equal(t, tt.board, env.boardContent(), "board file must be untouched")
		})
	}
}

func TestAddToHomeOnMissingBoardIsRejected(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run("add", "img/hello.png", "hello")
	require.Error(t, r.err)
	assert.Equal(t, exitUserError, exitCode(r.err))
	assert.NoFileExists(t, env.boardFile)
}

func TestCheck(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	out := env.mustRun("check")
	assert.Equal(t, "ok: 2 categories, 3 items\n", out)
}

func TestCheckMalformed(t *testing.T) {
	env := newTestEnv(t, "a.png food\nbroken\n")
	r := env.run("check")
	require.Error(t, r.err)
	assert.Equal(t, exitUserError, exitCode(r.err))
	assert.Contains(t, r.err.Error(), "line 2")
}

func TestCheckMissingBoard(t *testing.T) {
	env := newTestEnv(t, "")
	r := env.run("check")
	require.Error(t, r.err)
	assert.Equal(t, exitSysError, exitCode(r.err))
}

func TestExportImportRoundTrip(t *testing.T) {
	for _, format := range []string{"jsonl", "sqlite"} {
		t.Run(format, func(t *testing.T) {
			src := newTestEnv(t, sampleBoard)
			exported := filepath.Join(t.TempDir(), "board."+format)

			out := src.mustRun("export", "--format", format, "--out", exported)
			assert.Equal(t, "exported 5 records to "+exported+"\n", out)

			dst := newTestEnv(t, "")
			out = dst.mustRun("import", "--format", format, "--in", exported)
			assert.Contains(t, out, "imported 2 categories")
			assert.Equal(t, sampleBoard, dst.boardContent())
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	r := env.run("export", "--format", "csv", "--out", filepath.Join(t.TempDir(), "x"))
	require.Error(t, r.err)
	assert.Equal(t, exitUserError, exitCode(r.err))
}

func TestImportMissingSQLite(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	missing := filepath.Join(t.TempDir(), "missing.db")
	r := env.run("import", "--format", "sqlite", "--in", missing)
	require.Error(t, r.err)
	assert.Equal(t, exitSysError, exitCode(r.err))
	assert.NoFileExists(t, missing)
	assert.Equal(t, sampleBoard, env.boardContent())
}

func TestConfigFileSuppliesBoardAndStrict(t *testing.T) {
	env := newTestEnv(t, "a.png food\nbroken\n>x.png fries\n")
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	cfgYAML := "board_file: " + env.boardFile + "\nstrict: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"), []byte(cfgYAML), 0o644))

	// Strict from config: the malformed board falls back to empty.
	r := env.runRaw("--config-dir", env.configDir, "--no-color", "show")
	require.NoError(t, r.err)
	assert.Equal(t, "home\n(empty)\n", r.stdout)
	assert.Contains(t, r.stderr, "using empty board")
}

func TestDefaultPolicySkipsMalformed(t *testing.T) {
	env := newTestEnv(t, "a.png food\nbroken\n>x.png fries\n")
	r := env.run("select", "a.png", "x.png")
	require.NoError(t, r.err)
	assert.Equal(t, "fries\n", r.stdout)
	assert.Contains(t, r.stderr, "skipping malformed line")
}

func TestInvalidLogLevel(t *testing.T) {
	env := newTestEnv(t, sampleBoard)
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"), []byte("log_level: loud\n"), 0o644))

	r := env.run("show")
	require.Error(t, r.err)
	assert.Equal(t, exitUserError, exitCode(r.err))
}

func TestDescribeScreen(t *testing.T) {
	b, err := board.Read(strings.NewReader(sampleBoard))
	require.NoError(t, err)
	quiet, hook := test.NewNullLogger()
	quiet.SetLevel(log.DebugLevel)

	home := describeScreen(b, quiet)
	assert.Equal(t, "", home.Category)
	assert.Equal(t, []symbolJSON{
		{Symbol: "img/food/plate.png", Text: "food", IsCategory: true},
		{Symbol: "img/clothing/hanger.png", Text: "clothing", IsCategory: true},
	}, home.Symbols)

	b.Select("img/food/plate.png")
	food := describeScreen(b, quiet)
	assert.Equal(t, "food", food.Category)
	require.Len(t, food.Symbols, 2)
	assert.Equal(t, symbolJSON{Symbol: "img/food/fries.png", Text: "french fries"}, food.Symbols[0])

	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, "omitting symbol from screen", e.Message)
	}
}
