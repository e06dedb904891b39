package linkcut

// Edge 是表示树中的一条父子边
type Edge struct {
	Parent int
	Child  int
}

// NodeState 是节点仓库里一个槽位的原始字段，不做翻转下放
// 用于调试输出，none 用 -1 表示
type NodeState struct {
	Index      int
	Left       int
	Right      int
	Parent     int
	PathParent int
	Flip       bool
	Size       int
}

// Depth 返回 v 在表示树中的深度，根的深度为 0
// access 之后 v 左子树的 size 就是它上面的节点数
func (f *Forest) Depth(v int) int {
	f.check(v)
	f.access(v)
	return f.sizeOf(f.nodes[v].left)
}

// Parent 返回 v 在表示树中的父节点，v 是根时第二个返回值为 false
func (f *Forest) Parent(v int) (int, bool) {
	f.check(v)
	return f.parentOf(v)
}

func (f *Forest) parentOf(v int) (int, bool) {
	f.access(v)
	x := f.nodes[v].left
	if x == none {
		return none, false
	}
	// 前驱：左子树里最右边的节点
	for {
		f.pushDown(x)
		r := f.nodes[x].right
		if r == none {
			break
		}
		x = r
	}
	f.splay(x)
	return x, true
}

// Path 返回表示树中从根到 v 的顶点序列
func (f *Forest) Path(v int) []int {
	f.check(v)
	f.access(v)

	var (
		out   []int
		stack []int
	)
	x := v
	for x != none || len(stack) > 0 {
		for x != none {
			f.pushDown(x)
			stack = append(stack, x)
			x = f.nodes[x].left
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, x)
		x = f.nodes[x].right
	}
	return out
}

// Edges 列出当前森林的所有父子边，按孩子编号升序
func (f *Forest) Edges() []Edge {
	if f.nodes == nil {
		panic("linkcut: use of destroyed or uninitialized forest")
	}
	var edges []Edge
	for v := range f.nodes {
		if p, ok := f.parentOf(v); ok {
			edges = append(edges, Edge{Parent: p, Child: v})
		}
	}
	return edges
}

// Snapshot 导出所有节点的原始状态
func (f *Forest) Snapshot() []NodeState {
	states := make([]NodeState, len(f.nodes))
	for i, n := range f.nodes {
		states[i] = NodeState{
			Index:      i,
			Left:       n.left,
			Right:      n.right,
			Parent:     n.parent,
			PathParent: n.pathParent,
			Flip:       n.flip,
			Size:       n.size,
		}
	}
	return states
}
