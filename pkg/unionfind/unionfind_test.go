package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionFind(t *testing.T) {
	uf := NewUnionFind(10)

	// 初始状态：每个元素独立
	if uf.Connected(1, 2) {
		t.Errorf("Expected 1 and 2 not connected")
	}
	if uf.Count() != 10 {
		t.Errorf("Expected 10 sets, got %d", uf.Count())
	}

	// 合并 1 和 2
	uf.Union(1, 2)
	if !uf.Connected(1, 2) {
		t.Errorf("Expected 1 and 2 connected")
	}

	// 合并 2 和 3
	uf.Union(2, 3)
	if !uf.Connected(1, 3) {
		t.Errorf("Expected 1 and 3 connected")
	}

	// 检查集合大小
	if uf.Size(1) != 3 {
		t.Errorf("Expected size of set containing 1 to be 3, got %d", uf.Size(1))
	}

	// 合并不同集合
	uf.Union(4, 5)
	if !uf.Connected(4, 5) {
		t.Errorf("Expected 4 and 5 connected")
	}

	// 检查未合并的元素
	if uf.Connected(1, 4) {
		t.Errorf("Expected 1 and 4 not connected")
	}
	if uf.Count() != 7 {
		t.Errorf("Expected 7 sets, got %d", uf.Count())
	}
}

func TestUnionSameSet(t *testing.T) {
	uf := NewUnionFind(3)
	require.True(t, uf.Union(0, 1))
	assert.False(t, uf.Union(1, 0), "重复合并应返回 false")
	assert.Equal(t, 2, uf.Count())
}

func TestLongChainNoRecursion(t *testing.T) {
	const n = 200000
	uf := NewUnionFind(n)
	for i := 1; i < n; i++ {
		uf.Union(i-1, i)
	}
	assert.True(t, uf.Connected(0, n-1))
	assert.Equal(t, n, uf.Size(n/2))
	assert.Equal(t, 1, uf.Count())
}

func TestGroups(t *testing.T) {
	uf := NewUnionFind(6)
	uf.Union(0, 3)
	uf.Union(4, 5)
	uf.Union(3, 5)

	assert.Equal(t, [][]int{{0, 3, 4, 5}, {1}, {2}}, uf.Groups())
}
