// Package graph 把森林的表示树导出成 graphviz 图，并提供基于 gographviz 的结构检查
package graph

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"lct_tool/pkg/linkcut"

	"github.com/awalterschulze/gographviz"
)

const graphName = "forest"

var (
	ErrMultipleParents = errors.New("node has more than one parent")
	ErrCycle           = errors.New("graph has a cycle")
)

// NodeName 返回顶点在图里的名字，base 是对外展示的编号起点
func NodeName(v, base int) string {
	return strconv.Itoa(v + base)
}

// FromForest 用 n 个顶点和父→子边构造有向图，孤立顶点也会出现在图里
func FromForest(n int, edges []linkcut.Edge, base int) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	roots := make([]bool, n)
	for i := range roots {
		roots[i] = true
	}
	for _, e := range edges {
		roots[e.Child] = false
	}

	for v := 0; v < n; v++ {
		var attrs map[string]string
		if roots[v] {
			attrs = map[string]string{"shape": "doublecircle"}
		}
		if err := g.AddNode(graphName, NodeName(v, base), attrs); err != nil {
			return nil, fmt.Errorf("add node %d: %w", v, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(NodeName(e.Parent, base), NodeName(e.Child, base), true, nil); err != nil {
			return nil, fmt.Errorf("add edge %d->%d: %w", e.Parent, e.Child, err)
		}
	}
	return g, nil
}

// ToDOT 直接得到 DOT 文本
func ToDOT(n int, edges []linkcut.Edge, base int) (string, error) {
	g, err := FromForest(n, edges, base)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// Parse 解析 DOT 文本，dot 子命令的输出可以再读回来做检查
func Parse(dot string) (*gographviz.Graph, error) {
	ast, err := gographviz.Parse([]byte(dot))
	if err != nil {
		return nil, err
	}
	g := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, g); err != nil {
		return nil, err
	}
	return g, nil
}

// HasCycleDFS 判断有向图里是否有环，有环时返回环上的第一个节点
func HasCycleDFS(g *gographviz.Graph) (bool, string) {
	cycle := FindCycle(g)
	if cycle == nil {
		return false, ""
	}
	return true, cycle[0]
}

// FindCycle 找出一个环，返回首尾相同的路径，无环返回 nil
// 用显式栈做三色 DFS，森林可以退化成很长的链，递归会爆栈
func FindCycle(g *gographviz.Graph) []string {
	const (
		white = iota
		grey
		black
	)
	color := make(map[string]int, len(g.Nodes.Nodes))

	type frame struct {
		node string
		next []string
	}

	for _, start := range sortedNodes(g) {
		if color[start] != white {
			continue
		}
		color[start] = grey
		stack := []frame{{node: start, next: successors(g, start)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				color[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}
			dst := top.next[0]
			top.next = top.next[1:]
			switch color[dst] {
			case grey:
				// 栈上从 dst 到栈顶就是环
				var cycle []string
				for i := len(stack) - 1; i >= 0; i-- {
					cycle = append(cycle, stack[i].node)
					if stack[i].node == dst {
						break
					}
				}
				slices.Reverse(cycle)
				return append(cycle, dst)
			case white:
				color[dst] = grey
				stack = append(stack, frame{node: dst, next: successors(g, dst)})
			}
		}
	}
	return nil
}

// CheckForest 检查图是一片森林：每个点最多一个父亲，并且无环
func CheckForest(g *gographviz.Graph) error {
	for dst, srcs := range g.Edges.DstToSrcs {
		count := 0
		for _, edges := range srcs {
			count += len(edges)
		}
		if count > 1 {
			return fmt.Errorf("%w: %s", ErrMultipleParents, dst)
		}
	}
	if cycle := FindCycle(g); cycle != nil {
		return fmt.Errorf("%w: %s", ErrCycle, FormatPath(cycle))
	}
	return nil
}

// Roots 返回没有入边的节点，按名字排序
func Roots(g *gographviz.Graph) []string {
	var roots []string
	for _, name := range sortedNodes(g) {
		if len(g.Edges.DstToSrcs[name]) == 0 {
			roots = append(roots, name)
		}
	}
	return roots
}

// ToAdjacencyMap 将 gographviz.Graph 转换为邻接表，出边按名字排序
func ToAdjacencyMap(g *gographviz.Graph) map[string][]string {
	adj := make(map[string][]string)
	for src := range g.Edges.SrcToDsts {
		adj[src] = successors(g, src)
	}
	return adj
}

// FormatPath 将路径格式化为 "a → b → c"
func FormatPath(path []string) string {
	return strings.Join(path, " → ")
}

func successors(g *gographviz.Graph, node string) []string {
	var out []string
	for dst, edges := range g.Edges.SrcToDsts[node] {
		for range edges {
			out = append(out, dst)
		}
	}
	sortNames(out)
	return out
}

func sortedNodes(g *gographviz.Graph) []string {
	names := make([]string, 0, len(g.Nodes.Nodes))
	for _, n := range g.Nodes.Nodes {
		names = append(names, n.Name)
	}
	sortNames(names)
	return names
}

// 数字名按数值排，其它按字典序
func sortNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, errA := strconv.Atoi(names[i])
		b, errB := strconv.Atoi(names[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return names[i] < names[j]
	})
}
