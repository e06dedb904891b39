package unionfind

// UnionFind 是并查集结构，支持路径压缩和按秩合并
// 只能合并不能拆分，Link-Cut 森林删边之后需要重新构建
type UnionFind struct {
	parent []int
	rank   []int
	size   []int // 每个集合的大小
	count  int   // 当前集合个数
}

// NewUnionFind 初始化并查集，元素范围为 [0, n)
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	rank := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{parent: parent, rank: rank, size: size, count: n}
}

// Find 查找元素所在集合的根节点
// 两趟循环做路径压缩，不用递归，长链也不会爆栈
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}
	return root
}

// Union 合并两个集合（按秩优化），已经在同一个集合时返回 false
func (uf *UnionFind) Union(x, y int) bool {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return false
	}

	if uf.rank[rootX] < uf.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	if uf.rank[rootX] == uf.rank[rootY] {
		uf.rank[rootX]++
	}
	uf.count--
	return true
}

// Connected 判断两个元素是否在同一个集合
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size 返回某个集合的大小
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}

// Count 返回集合个数
func (uf *UnionFind) Count() int {
	return uf.count
}

// Groups 按集合分组，组内元素升序，组之间按最小元素升序
func (uf *UnionFind) Groups() [][]int {
	index := make(map[int]int)
	var groups [][]int
	for x := range uf.parent {
		root := uf.Find(x)
		i, ok := index[root]
		if !ok {
			i = len(groups)
			index[root] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], x)
	}
	return groups
}
