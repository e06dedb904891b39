// Package oracle 是一个朴素的动态森林实现，用来校验 Link-Cut 树
//
// 每次查询都做一次 BFS，复杂度 O(n)，只适合测试和 verify 子命令。
// 返回的错误值和 linkcut 完全一致，两边的输出可以逐行比较。
package oracle

import (
	"fmt"

	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/unionfind"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/google/btree"
	"github.com/mohae/deepcopy"
)

// 无向边，总是 A < B
type edge struct {
	A, B int
}

func newEdge(u, v int) edge {
	if u > v {
		u, v = v, u
	}
	return edge{A: u, B: v}
}

func edgeLess(x, y edge) bool {
	if x.A != y.A {
		return x.A < y.A
	}
	return x.B < y.B
}

// Forest 用邻接表保存森林
type Forest struct {
	adj   []map[int]struct{}
	edges *btree.BTreeG[edge]
}

func New(n int) *Forest {
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	return &Forest{adj: adj, edges: btree.NewG(8, edgeLess)}
}

func (f *Forest) Len() int {
	return len(f.adj)
}

func (f *Forest) check(v int) {
	if v < 0 || v >= len(f.adj) {
		panic(fmt.Sprintf("oracle: vertex %d out of range [0, %d)", v, len(f.adj)))
	}
}

// Connected 从 u 出发 BFS 看能不能走到 v
func (f *Forest) Connected(u, v int) bool {
	f.check(u)
	f.check(v)
	if u == v {
		return true
	}

	visited := make([]bool, len(f.adj))
	visited[u] = true
	queue := linkedlistqueue.New()
	queue.Enqueue(u)
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		cur := item.(int)
		for next := range f.adj[cur] {
			if next == v {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue.Enqueue(next)
			}
		}
	}
	return false
}

// HasEdge 判断 (u, v) 是否是森林中的一条边，不区分方向
func (f *Forest) HasEdge(u, v int) bool {
	f.check(u)
	f.check(v)
	return f.edges.Has(newEdge(u, v))
}

func (f *Forest) Link(u, v int) error {
	if f.Connected(u, v) {
		return &linkcut.EdgeError{Op: "link", U: u, V: v, Err: linkcut.ErrAlreadyConnected}
	}
	f.adj[u][v] = struct{}{}
	f.adj[v][u] = struct{}{}
	f.edges.ReplaceOrInsert(newEdge(u, v))
	return nil
}

func (f *Forest) Cut(u, v int) error {
	if !f.HasEdge(u, v) {
		return &linkcut.EdgeError{Op: "cut", U: u, V: v, Err: linkcut.ErrNotAnEdge}
	}
	delete(f.adj[u], v)
	delete(f.adj[v], u)
	f.edges.Delete(newEdge(u, v))
	return nil
}

// EdgeCount 返回边数
func (f *Forest) EdgeCount() int {
	return f.edges.Len()
}

// Edges 返回所有无向边，每条边小编号在前，整体按字典序
func (f *Forest) Edges() [][2]int {
	out := make([][2]int, 0, f.edges.Len())
	f.edges.Ascend(func(e edge) bool {
		out = append(out, [2]int{e.A, e.B})
		return true
	})
	return out
}

// Components 返回连通分量，格式同 unionfind.Groups
func (f *Forest) Components() [][]int {
	uf := unionfind.NewUnionFind(len(f.adj))
	f.edges.Ascend(func(e edge) bool {
		uf.Union(e.A, e.B)
		return true
	})
	return uf.Groups()
}

// Clone 深拷贝一份，之后两边互不影响
func (f *Forest) Clone() *Forest {
	return &Forest{
		adj:   deepcopy.Copy(f.adj).([]map[int]struct{}),
		edges: f.edges.Clone(),
	}
}
