package oracle

import (
	"errors"
	"testing"

	"lct_tool/pkg/linkcut"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkCutConnected(t *testing.T) {
	f := New(5)
	require.NoError(t, f.Link(0, 1))
	require.NoError(t, f.Link(1, 2))
	assert.True(t, f.Connected(0, 2))
	assert.False(t, f.Connected(0, 3))

	err := f.Link(2, 0)
	assert.True(t, errors.Is(err, linkcut.ErrAlreadyConnected))

	require.NoError(t, f.Cut(1, 0), "删边不区分方向")
	assert.False(t, f.Connected(0, 2))
	assert.True(t, errors.Is(f.Cut(0, 1), linkcut.ErrNotAnEdge))
}

func TestEdgesAndComponents(t *testing.T) {
	f := New(6)
	require.NoError(t, f.Link(4, 1))
	require.NoError(t, f.Link(1, 3))
	require.NoError(t, f.Link(5, 2))

	assert.Equal(t, [][2]int{{1, 3}, {1, 4}, {2, 5}}, f.Edges())
	assert.Equal(t, 3, f.EdgeCount())
	assert.Equal(t, [][]int{{0}, {1, 3, 4}, {2, 5}}, f.Components())
}

func TestCloneIsIndependent(t *testing.T) {
	f := New(4)
	require.NoError(t, f.Link(0, 1))

	c := f.Clone()
	require.NoError(t, c.Link(1, 2))
	require.NoError(t, c.Cut(0, 1))

	assert.True(t, f.Connected(0, 1))
	assert.False(t, f.Connected(1, 2))
	assert.Equal(t, [][2]int{{0, 1}}, f.Edges())
	assert.Equal(t, [][2]int{{1, 2}}, c.Edges())
}

func TestOutOfRangePanics(t *testing.T) {
	f := New(2)
	assert.Panics(t, func() { f.Connected(0, 2) })
	assert.Panics(t, func() { _ = f.Link(-1, 0) })
}
