package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/graph"
	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/oracle"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// execute 每次都新建命令树，viper 是全局状态需要先清掉
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	cmd := RootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const scenario = `5
L 1 2
L 2 3
Q 1 3
C 1 2
Q 1 3
Q 2 3
L 3 1
Q 1 2
X
`

func TestRun(t *testing.T) {
	out, _, err := execute(t, scenario, "run")
	require.NoError(t, err)
	assert.Equal(t, "T\nF\nT\nT\n", out)

	out, _, err = execute(t, scenario, "run", "--impl", "oracle")
	require.NoError(t, err)
	assert.Equal(t, "T\nF\nT\nT\n", out)
}

func TestRunZeroBased(t *testing.T) {
	out, _, err := execute(t, "3\nL 0 2\nQ 2 0\nQ 1 0\n", "run", "--base", "0")
	require.NoError(t, err)
	assert.Equal(t, "T\nF\n", out)
}

func TestRunFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0644))

	out, _, err := execute(t, "", "run", path)
	require.NoError(t, err)
	assert.Equal(t, "T\nF\nT\nT\n", out)
}

func TestRunSkipsBadLines(t *testing.T) {
	script := "3\nZ 1 2\nQ 1 4\nQ 1 1\nL 1\n"
	out, _, err := execute(t, script, "run")
	require.NoError(t, err)
	assert.Equal(t, "T\n", out)

	_, _, err = execute(t, script, "run", "--strict")
	require.Error(t, err)
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, errorutil.CodeMissingInput, errorutil.ExitCodeFromError(err))

	_, _, err = execute(t, "", "run")
	assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))

	_, _, err = execute(t, scenario, "run", "--base", "2")
	assert.Equal(t, errorutil.CodeConfigError, errorutil.ExitCodeFromError(err))

	_, _, err = execute(t, scenario, "run", "--impl", "splay")
	assert.Equal(t, errorutil.CodeInvalidUsage, errorutil.ExitCodeFromError(err))
}

func TestRunDump(t *testing.T) {
	out, _, err := execute(t, "3\nL 1 2\nT\nX\n", "run", "--style", "ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "  node   left  right parent     pp  flip   size\n")
	assert.Contains(t, out, "'-- 0\n    '-- 1\n")
	assert.Contains(t, out, "isolated: 2\n")
}

func TestRunStatsAndReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	_, errOut, err := execute(t, scenario, "run", "--stats", "--report", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "linkcut: 5 vertices, 8 commands\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	assert.Equal(t, int64(4), gjson.Get(doc, "ops.queries").Int())
	assert.Equal(t, int64(3), gjson.Get(doc, "ops.queries_true").Int())
	assert.Equal(t, int64(3), gjson.Get(doc, "ops.links").Int())
	assert.Equal(t, "test", gjson.Get(doc, "version").String())
}

func TestGenThenVerify(t *testing.T) {
	script, _, err := execute(t, "", "gen", "--nodes", "20", "--ops", "3000", "--seed", "9")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(script, "20\n"))

	again, _, err := execute(t, "", "gen", "--nodes", "20", "--ops", "3000", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, script, again)

	path := filepath.Join(t.TempDir(), "verify.json")
	out, _, err := execute(t, script, "verify", "--report", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok: "), out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(data, "verify.ok").Bool())
}

func TestGenInvalid(t *testing.T) {
	_, _, err := execute(t, "", "gen", "--nodes", "0")
	assert.Equal(t, errorutil.CodeInvalidUsage, errorutil.ExitCodeFromError(err))
}

func TestCompareForests(t *testing.T) {
	lc := linkcut.New(3)
	or := oracle.New(3)
	require.NoError(t, lc.Link(0, 1))
	require.NoError(t, or.Link(1, 0))
	assert.NoError(t, compareForests(lc, or))

	require.NoError(t, lc.Link(1, 2))
	require.NoError(t, or.Link(0, 2))
	assert.Error(t, compareForests(lc, or))
}

func TestDot(t *testing.T) {
	out, _, err := execute(t, "4\nL 1 2\nL 1 3\nQ 2 3\nX\n", "dot")
	require.NoError(t, err)

	g, err := graph.Parse(out)
	require.NoError(t, err)
	require.NoError(t, graph.CheckForest(g))
	assert.Equal(t, []string{"1", "4"}, graph.Roots(g))
	assert.Equal(t, []string{"2", "3"}, graph.ToAdjacencyMap(g)["1"])
}
