package command_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"lct_tool/pkg/command"
	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/oracle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		base    int
		want    command.Command
		wantErr error
	}{
		{"link", "L 1 2", 1, command.Command{Op: command.OpLink, U: 0, V: 1}, nil},
		{"cut zero based", "C 3 4", 0, command.Command{Op: command.OpCut, U: 3, V: 4}, nil},
		{"query extra spaces", "  Q   5\t6 ", 1, command.Command{Op: command.OpQuery, U: 4, V: 5}, nil},
		{"dump", "T", 1, command.Command{Op: command.OpDump}, nil},
		{"exit", "X", 1, command.Command{Op: command.OpExit}, nil},
		{"unknown", "Z 1 2", 1, command.Command{}, command.ErrUnknownCommand},
		{"long op", "LINK 1 2", 1, command.Command{}, command.ErrUnknownCommand},
		{"missing arg", "L 1", 1, command.Command{}, command.ErrBadArgs},
		{"not a number", "Q a 2", 1, command.Command{}, command.ErrBadArgs},
		{"dump with args", "T 1", 1, command.Command{}, command.ErrBadArgs},
		{"below base", "L 0 1", 1, command.Command{}, command.ErrVertexRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := command.Parse(tt.line, tt.base)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParserHeaderAndExit(t *testing.T) {
	p := command.NewParser(strings.NewReader("\n4\nL 1 2\n\nQ 1 2\nX\nL 3 4\n"), 1)
	n, err := p.Header()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	cmd, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, command.Command{Op: command.OpLink, U: 0, V: 1, Line: 3}, cmd)

	cmd, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, 5, cmd.Line)

	// X 之后的内容不再读取
	_, err = p.Next()
	assert.Equal(t, io.EOF, err)
	_, err = p.Next()
	assert.Equal(t, io.EOF, err)
}

func TestParserMissingHeader(t *testing.T) {
	for _, input := range []string{"", "L 1 2\n", "-3\n"} {
		p := command.NewParser(strings.NewReader(input), 1)
		_, err := p.Header()
		assert.True(t, errors.Is(err, command.ErrMissingHeader), "input %q", input)
	}

	p := command.NewParser(strings.NewReader("3\n"), 1)
	_, err := p.Next()
	assert.True(t, errors.Is(err, command.ErrMissingHeader), "没读 header 就调用 Next")
}

func run(t *testing.T, f command.Forest, script string, strict bool) (string, command.Stats, error) {
	t.Helper()
	p := command.NewParser(strings.NewReader(script), 1)
	_, err := p.Header()
	require.NoError(t, err)

	var out bytes.Buffer
	exec := command.NewExecutor(f, &out)
	exec.Strict = strict
	err = exec.Run(p)
	return out.String(), exec.Stats(), err
}

const scenario = `4
L 1 2
L 2 3
Q 1 3
Q 1 4
L 1 3
C 1 2
Q 1 3
Q 2 3
C 1 2
X
`

func TestExecutorScenario(t *testing.T) {
	out, stats, err := run(t, linkcut.New(4), scenario, false)
	require.NoError(t, err)
	assert.Equal(t, "T\nF\nF\nT\n", out)
	assert.Equal(t, command.Stats{
		Links:         2,
		LinksRejected: 1,
		Cuts:          1,
		CutsRejected:  1,
		Queries:       4,
		QueriesTrue:   2,
		MutationTime:  stats.MutationTime,
		TotalTime:     stats.TotalTime,
	}, stats)
	assert.Equal(t, 9, stats.Ops())
}

func TestExecutorMatchesOracle(t *testing.T) {
	want, _, err := run(t, oracle.New(4), scenario, false)
	require.NoError(t, err)
	got, _, err := run(t, linkcut.New(4), scenario, false)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutorSkipsBadLines(t *testing.T) {
	script := "3\nL 1 2\nL 1 4\nW 1 2\nQ 0 1\nQ 1 2\nX\n"
	out, stats, err := run(t, linkcut.New(3), script, false)
	require.NoError(t, err)
	assert.Equal(t, "T\n", out)
	assert.Equal(t, 3, stats.Skipped)
}

func TestExecutorStrict(t *testing.T) {
	script := "3\nL 1 2\nL 1 4\nQ 1 2\n"
	out, _, err := run(t, linkcut.New(3), script, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, command.ErrVertexRange))

	var syntaxErr *command.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, 3, syntaxErr.Line)
	assert.Empty(t, out, "出错之后不再执行")
}

func TestExecutorDump(t *testing.T) {
	p := command.NewParser(strings.NewReader("2\nT\nL 1 2\nT\n"), 1)
	_, err := p.Header()
	require.NoError(t, err)

	var out bytes.Buffer
	exec := command.NewExecutor(linkcut.New(2), &out)
	calls := 0
	exec.Dump = func(w io.Writer) error {
		calls++
		_, err := io.WriteString(w, "dump\n")
		return err
	}
	require.NoError(t, exec.Run(p))
	assert.Equal(t, 2, calls)
	assert.Equal(t, "dump\ndump\n", out.String())
	assert.Equal(t, 2, exec.Stats().Dumps)
}
