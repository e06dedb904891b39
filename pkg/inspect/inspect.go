// Package inspect 把 Link-Cut 森林渲染成文本，对应脚本里的 T 命令
package inspect

import (
	"fmt"
	"strings"

	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/treeprinter"
)

func ptr(i int) string {
	if i < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", i)
}

// Table 按节点仓库的顺序逐行打印原始字段
func Table(states []linkcut.NodeState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6s %6s %6s %6s %6s %5s %6s\n", "node", "left", "right", "parent", "pp", "flip", "size")
	for _, s := range states {
		flip := 0
		if s.Flip {
			flip = 1
		}
		fmt.Fprintf(&b, "%6d %6s %6s %6s %6s %5d %6d\n",
			s.Index, ptr(s.Left), ptr(s.Right), ptr(s.Parent), ptr(s.PathParent), flip, s.Size)
	}
	return b.String()
}

// AuxForest 画出所有辅助树（伸展树），只画包含两个及以上节点的
// 画的是物理结构，带 * 的节点翻转标记还没有下放
func AuxForest(states []linkcut.NodeState, style treeprinter.Style) string {
	var b strings.Builder
	for _, s := range states {
		if s.Parent >= 0 || s.Size < 2 {
			continue
		}
		fmt.Fprintf(&b, "aux root %d, path-parent %s\n", s.Index, ptr(s.PathParent))
		b.WriteString(treeprinter.PrintTreeGeneric(treeprinter.TreePrinter[int]{
			Root: s.Index,
			GetChild: func(n int, side treeprinter.Side) int {
				if side == treeprinter.Left {
					return states[n].Left
				}
				return states[n].Right
			},
			GetValue: func(n int) string {
				mark := ""
				if states[n].Flip {
					mark = "*"
				}
				return fmt.Sprintf("%d%s(s=%d)", n, mark, states[n].Size)
			},
			IsNil: func(n int) bool { return n < 0 },
			Style: style,
			// 左边深度小，放上面读起来是从根往下
			LeftOnTop: true,
		}))
	}
	return b.String()
}

// Represented 画出表示树，孤立顶点合并成一行
func Represented(n int, edges []linkcut.Edge, style treeprinter.Style) string {
	nodes := make([]*treeprinter.MultiNode, n)
	hasParent := make([]bool, n)
	hasChild := make([]bool, n)
	for i := range nodes {
		nodes[i] = &treeprinter.MultiNode{Data: i}
	}
	for _, e := range edges {
		nodes[e.Parent].Children = append(nodes[e.Parent].Children, nodes[e.Child])
		hasParent[e.Child] = true
		hasChild[e.Parent] = true
	}

	var (
		b        strings.Builder
		isolated []string
	)
	for v := 0; v < n; v++ {
		if hasParent[v] {
			continue
		}
		if !hasChild[v] {
			isolated = append(isolated, fmt.Sprintf("%d", v))
			continue
		}
		b.WriteString(treeprinter.PrintMultiTree(treeprinter.MultiTreePrinter{Root: nodes[v], Style: style}))
	}
	if len(isolated) > 0 {
		fmt.Fprintf(&b, "isolated: %s\n", strings.Join(isolated, " "))
	}
	return b.String()
}

// Dump 是 T 命令的完整输出：原始字段表 + 辅助树 + 表示树
// 注意 Edges 会做 access，调用之后辅助树的形状会变
func Dump(f *linkcut.Forest, style treeprinter.Style) string {
	states := f.Snapshot()
	var b strings.Builder
	b.WriteString(Table(states))
	b.WriteString(AuxForest(states, style))
	b.WriteString(Represented(f.Len(), f.Edges(), style))
	return b.String()
}
