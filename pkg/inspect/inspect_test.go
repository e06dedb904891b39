package inspect

import (
	"strings"
	"testing"

	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/treeprinter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	f := linkcut.New(1)
	got := Table(f.Snapshot())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  node   left  right parent     pp  flip   size", lines[0])
	assert.Equal(t, "     0      -      -      -      -     0      1", lines[1])
}

func TestAuxForest(t *testing.T) {
	f := linkcut.New(3)
	require.NoError(t, f.Link(0, 1))

	got := AuxForest(f.Snapshot(), treeprinter.Unicode)
	want := "" +
		"aux root 1, path-parent -\n" +
		"    ┌──>0(s=1)\n" +
		"│── 1(s=2)\n"
	assert.Equal(t, want, got)
}

func TestRepresented(t *testing.T) {
	edges := []linkcut.Edge{{Parent: 0, Child: 1}, {Parent: 1, Child: 2}, {Parent: 0, Child: 4}}
	got := Represented(6, edges, treeprinter.Unicode)
	want := "" +
		"└── 0\n" +
		"    ├── 1\n" +
		"    │   └── 2\n" +
		"    └── 4\n" +
		"isolated: 3 5\n"
	assert.Equal(t, want, got)
}

func TestDump(t *testing.T) {
	f := linkcut.New(4)
	require.NoError(t, f.Link(0, 1))
	require.NoError(t, f.Link(1, 2))

	out := Dump(f, treeprinter.ASCII)
	assert.Contains(t, out, "aux root")
	assert.Contains(t, out, "'-- 0\n    '-- 1\n        '-- 2\n")
	assert.Contains(t, out, "isolated: 3\n")
}
