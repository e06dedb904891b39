package linkcut

import "fmt"

// pushDown 下放翻转标记：交换左右孩子，把标记传给孩子
// 读写 left/right 之前必须先调用
func (f *Forest) pushDown(x int) {
	n := &f.nodes[x]
	if !n.flip {
		return
	}
	n.left, n.right = n.right, n.left
	if n.left != none {
		f.nodes[n.left].flip = !f.nodes[n.left].flip
	}
	if n.right != none {
		f.nodes[n.right].flip = !f.nodes[n.right].flip
	}
	n.flip = false
}

// rotate 把 x 往上转一层，方向由 x 是左孩子还是右孩子决定
// 调用前 x、父节点、祖父节点的翻转标记都必须已经下放
func (f *Forest) rotate(x int) {
	p := f.nodes[x].parent
	if p == none {
		panic(fmt.Sprintf("linkcut: rotate on auxiliary root %d", x))
	}
	g := f.nodes[p].parent

	if f.nodes[p].left == x {
		b := f.nodes[x].right
		f.nodes[p].left = b
		if b != none {
			f.nodes[b].parent = p
		}
		f.nodes[x].right = p
	} else {
		b := f.nodes[x].left
		f.nodes[p].right = b
		if b != none {
			f.nodes[b].parent = p
		}
		f.nodes[x].left = p
	}
	f.nodes[p].parent = x
	f.nodes[x].parent = g

	if g != none {
		if f.nodes[g].left == p {
			f.nodes[g].left = x
		} else {
			f.nodes[g].right = x
		}
	} else {
		// p 原来是辅助树的根，路径父指针跟着根走
		f.nodes[x].pathParent = f.nodes[p].pathParent
		f.nodes[p].pathParent = none
	}

	f.update(p)
	f.update(x)
}

// splay 把 x 旋转到所在辅助树的根
func (f *Forest) splay(x int) {
	// 先从辅助树的根到 x 依次下放翻转标记，用显式栈代替递归
	f.stack = f.stack[:0]
	for y := x; y != none; y = f.nodes[y].parent {
		f.stack = append(f.stack, y)
	}
	for i := len(f.stack) - 1; i >= 0; i-- {
		f.pushDown(f.stack[i])
	}

	for f.nodes[x].parent != none {
		p := f.nodes[x].parent
		g := f.nodes[p].parent
		switch {
		case g == none:
			// zig
			f.rotate(x)
		case (f.nodes[g].left == p) == (f.nodes[p].left == x):
			// zig-zig
			f.rotate(p)
			f.rotate(x)
		default:
			// zig-zag
			f.rotate(x)
			f.rotate(x)
		}
	}
}
