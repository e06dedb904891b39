package linkcut

import (
	"errors"
	"fmt"
)

// none 表示空指针（没有孩子、没有父节点、没有路径父节点）
const none = -1

var (
	// ErrAlreadyConnected 两个顶点已经在同一棵树里，再加边会成环
	ErrAlreadyConnected = errors.New("vertices already connected")
	// ErrNotAnEdge 两个顶点之间没有直接的树边
	ErrNotAnEdge = errors.New("not an edge")
)

// EdgeError 是 Link/Cut 的预期失败结果，森林保持不变
type EdgeError struct {
	Op   string // "link" 或 "cut"
	U, V int
	Err  error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("%s(%d, %d): %v", e.Op, e.U, e.V, e.Err)
}

func (e *EdgeError) Unwrap() error {
	return e.Err
}

// node 是节点仓库中的一个槽位，所有指针都是下标
//
// parent 只表示伸展树里的父节点；pathParent 只挂在辅助树的根上，
// 指向这条路径在表示树中挂靠的那个节点。两者永远不会同时有效。
type node struct {
	left       int
	right      int
	parent     int
	pathParent int
	flip       bool // 懒标记：子树左右待翻转
	size       int  // 辅助树中以本节点为根的子树节点数
}

// Forest 是 Link-Cut 树维护的动态森林，顶点编号为 [0, n)
// 不是并发安全的，调用方需要自己串行化
type Forest struct {
	nodes []node
	// splay 时复用的栈，避免每次分配
	stack []int
}

// New 创建 n 个孤立顶点组成的森林
func New(n int) *Forest {
	if n < 0 {
		panic(fmt.Sprintf("linkcut: negative vertex count %d", n))
	}
	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = node{
			left:       none,
			right:      none,
			parent:     none,
			pathParent: none,
			size:       1,
		}
	}
	return &Forest{nodes: nodes}
}

// Len 返回顶点个数
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Destroy 整体释放节点仓库，之后任何操作都会 panic
func (f *Forest) Destroy() {
	f.nodes = nil
	f.stack = nil
}

// check 校验顶点下标，越界属于调用方 bug，直接 panic
func (f *Forest) check(v int) {
	if f.nodes == nil {
		panic("linkcut: use of destroyed or uninitialized forest")
	}
	if v < 0 || v >= len(f.nodes) {
		panic(fmt.Sprintf("linkcut: vertex %d out of range [0, %d)", v, len(f.nodes)))
	}
}

func (f *Forest) sizeOf(x int) int {
	if x == none {
		return 0
	}
	return f.nodes[x].size
}

// update 根据左右孩子重新计算 size
func (f *Forest) update(x int) {
	n := &f.nodes[x]
	n.size = 1 + f.sizeOf(n.left) + f.sizeOf(n.right)
}
