package treeprinter

import (
	"fmt"
	"strings"
)

const (
	nodeVisitFirst        = 0
	nodeVisitReadyToPrint = 1
	nodeVisitDone         = 2

	BranchUpper = 1
	BranchLower = 0
	BranchRoot  = -1
)

// Side 表示二叉树的左右孩子
type Side int

const (
	Left Side = iota
	Right
)

// Style 画线风格
type Style int

const (
	ASCII Style = iota
	Unicode
)

// ParseStyle 把配置里的字符串转换成 Style，未知值按 unicode 处理
func ParseStyle(s string) Style {
	if s == "ascii" {
		return ASCII
	}
	return Unicode
}

// TreePrinter 是二叉树打印器的配置
// 节点类型可以是下标也可以是指针，由 IsNil 判断空节点
type TreePrinter[T any] struct {
	Root     T
	GetChild func(T, Side) T // 获取左右子节点
	GetValue func(T) string  // 获取节点值的字符串表示
	IsNil    func(T) bool    // 判断节点是否为空
	Style    Style
	// LeftOnTop 为 true 时左孩子画在上面，默认右孩子在上（逆时针转 90 度看树）
	LeftOnTop bool
}

// PrintTreeGeneric 横向打印二叉树，用显式栈代替递归，深树也不会爆栈
func PrintTreeGeneric[T any](printer TreePrinter[T]) string {
	var (
		vert     string
		uRArrow  string
		dRArrow  string
		rootSign string
	)

	if printer.Style == Unicode {
		vert = "│"
		uRArrow = "┌──>"
		dRArrow = "└──>"
		rootSign = "│── "
	} else {
		vert = "|"
		uRArrow = ".-->"
		dRArrow = "'-->"
		rootSign = "|-- "
	}

	upper, lower := Right, Left
	if printer.LeftOnTop {
		upper, lower = Left, Right
	}

	type stackEntry struct {
		node          T
		branchPos     int
		pre           string
		hasUpperChild bool
		hasLowerChild bool
		nodeSts       int
	}

	if printer.IsNil(printer.Root) {
		return "tree is empty\n"
	}

	stack := []stackEntry{
		{node: printer.Root, branchPos: BranchRoot, hasUpperChild: true, hasLowerChild: true, nodeSts: nodeVisitFirst},
	}

	var b strings.Builder
	for len(stack) > 0 {
		idx := len(stack) - 1
		top := stack[idx]

		switch top.nodeSts {
		case nodeVisitFirst:
			stack[idx].nodeSts = nodeVisitReadyToPrint

			child := printer.GetChild(top.node, upper)
			if !printer.IsNil(child) {
				newPre := top.pre
				if top.hasUpperChild {
					newPre += "    "
				} else {
					newPre += vert + "   "
				}
				stack = append(stack, stackEntry{
					node:          child,
					branchPos:     BranchUpper,
					pre:           newPre,
					hasUpperChild: true,
					nodeSts:       nodeVisitFirst,
				})
			}
		case nodeVisitReadyToPrint:
			stack[idx].nodeSts = nodeVisitDone
			valStr := printer.GetValue(top.node)
			switch top.branchPos {
			case BranchUpper:
				fmt.Fprintf(&b, "%s%s%s\n", top.pre, uRArrow, valStr)
			case BranchLower:
				fmt.Fprintf(&b, "%s%s%s\n", top.pre, dRArrow, valStr)
			default:
				fmt.Fprintf(&b, "%s%s\n", rootSign, valStr)
			}
		case nodeVisitDone:
			stack = stack[:idx]

			child := printer.GetChild(top.node, lower)
			if !printer.IsNil(child) {
				newPre := top.pre
				if top.hasLowerChild {
					newPre += "    "
				} else {
					newPre += vert + "   "
				}
				stack = append(stack, stackEntry{
					node:          child,
					branchPos:     BranchLower,
					pre:           newPre,
					hasLowerChild: true,
					nodeSts:       nodeVisitFirst,
				})
			}
		}
	}

	return b.String()
}

// MultiNode 多叉树节点
type MultiNode struct {
	Data     any // 节点数据，可以是任意类型
	Children []*MultiNode
}

type MultiTreePrinter struct {
	Root     *MultiNode
	Style    Style
	FormatFn func(*MultiNode) string // 可选的自定义格式化函数
}

// PrintMultiTree 打印多叉树，同样使用显式栈
func PrintMultiTree(printer MultiTreePrinter) string {
	if printer.Root == nil {
		return "tree is empty\n"
	}

	connector, branch, space := "'-- ", ".-- ", "|   "
	if printer.Style == Unicode {
		connector, branch, space = "└── ", "├── ", "│   "
	}

	type frame struct {
		node   *MultiNode
		prefix string
		isLast bool
	}

	var b strings.Builder
	stack := []frame{{node: printer.Root, isLast: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nil {
			continue
		}

		// 使用 FormatFn，如果没有就用默认 Data 的字符串
		label := fmt.Sprintf("%v", f.node.Data)
		if printer.FormatFn != nil {
			label = printer.FormatFn(f.node)
		}
		if f.isLast {
			fmt.Fprintf(&b, "%s%s%s\n", f.prefix, connector, label)
		} else {
			fmt.Fprintf(&b, "%s%s%s\n", f.prefix, branch, label)
		}

		newPrefix := f.prefix + space
		if f.isLast {
			newPrefix = f.prefix + "    "
		}
		// 倒序入栈，保证先打印第一个孩子
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:   f.node.Children[i],
				prefix: newPrefix,
				isLast: i == len(f.node.Children)-1,
			})
		}
	}
	return b.String()
}
