package linkcut

// access 让表示树中根到 v 的路径成为偏好路径，结束后 v 是这棵辅助树的根
// 辅助树的中序序列恰好是 根..v，按深度从左到右
func (f *Forest) access(v int) {
	f.splay(v)
	// 砍掉更深的那一段，挂成路径父关系
	if r := f.nodes[v].right; r != none {
		f.nodes[r].parent = none
		f.nodes[r].pathParent = v
		f.nodes[v].right = none
		f.update(v)
	}

	for f.nodes[v].pathParent != none {
		p := f.nodes[v].pathParent
		f.splay(p)
		if r := f.nodes[p].right; r != none {
			f.nodes[r].parent = none
			f.nodes[r].pathParent = p
		}
		f.nodes[p].right = v
		f.nodes[v].parent = p
		f.nodes[v].pathParent = none
		f.update(p)
		f.splay(v)
	}
}

// ReRoot 把 v 变成所在表示树的根
func (f *Forest) ReRoot(v int) {
	f.check(v)
	f.reRoot(v)
}

func (f *Forest) reRoot(v int) {
	f.access(v)
	f.nodes[v].flip = !f.nodes[v].flip
	// 第二次 access 把翻转下放并规整
	f.access(v)
}

// FindRoot 返回 v 所在表示树的根，不改变谁是根
func (f *Forest) FindRoot(v int) int {
	f.check(v)
	return f.findRoot(v)
}

func (f *Forest) findRoot(v int) int {
	f.access(v)
	x := v
	for {
		f.pushDown(x)
		l := f.nodes[x].left
		if l == none {
			break
		}
		x = l
	}
	// 伸展一次，保证重复调用的均摊复杂度
	f.splay(x)
	return x
}

// Connected 判断 u、v 是否在同一棵表示树中
// 只用 findRoot，不会改变表示树的根
func (f *Forest) Connected(u, v int) bool {
	f.check(u)
	f.check(v)
	return f.connected(u, v)
}

func (f *Forest) connected(u, v int) bool {
	if u == v {
		return true
	}
	return f.findRoot(u) == f.findRoot(v)
}

// Link 加入边 (u, v)，v 成为 u 的孩子
// 已经连通时返回 ErrAlreadyConnected，森林不变
func (f *Forest) Link(u, v int) error {
	f.check(u)
	f.check(v)
	if f.connected(u, v) {
		return &EdgeError{Op: "link", U: u, V: v, Err: ErrAlreadyConnected}
	}

	f.reRoot(v)
	f.access(u)
	// v 刚被换根，access 之后没有左子树，可以直接把 u 的整条路径挂上去
	f.access(v)
	f.nodes[v].left = u
	f.nodes[u].parent = v
	f.update(v)
	return nil
}

// Cut 删除边 (u, v)，边不存在时返回 ErrNotAnEdge，森林不变
func (f *Forest) Cut(u, v int) error {
	f.check(u)
	f.check(v)

	f.reRoot(u)
	f.access(v)
	// 此时辅助树应当恰好是 u, v 两个节点：u 是 v 的左孩子且 u 没有右孩子
	if f.nodes[v].left != u {
		return &EdgeError{Op: "cut", U: u, V: v, Err: ErrNotAnEdge}
	}
	f.pushDown(u)
	if f.nodes[u].right != none {
		return &EdgeError{Op: "cut", U: u, V: v, Err: ErrNotAnEdge}
	}

	f.nodes[v].left = none
	f.nodes[u].parent = none
	f.update(v)
	return nil
}
