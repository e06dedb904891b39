package testutils

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoGoMod = errors.New("go.mod not found")

// FindGoModRoot 从 dir 开始逐级向上查找 go.mod 所在目录
func FindGoModRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoGoMod
		}
		dir = parent
	}
}

// Op 是随机脚本里的一条操作，U/V 从 0 开始
type Op struct {
	Kind byte // 'L' 'C' 'Q'
	U, V int
}

// RandomOps 生成 count 条随机操作
// 删边时有一半概率挑一条确实存在的边，否则随机删边几乎总是失败
func RandomOps(seed uint64, n, count int) []Op {
	r := rand.New(rand.NewPCG(seed, seed+1))
	var (
		ops   []Op
		links [][2]int
	)
	for i := 0; i < count; i++ {
		u, v := r.IntN(n), r.IntN(n)
		switch x := r.IntN(10); {
		case x < 4:
			ops = append(ops, Op{Kind: 'L', U: u, V: v})
			links = append(links, [2]int{u, v})
		case x < 6:
			if len(links) > 0 && r.IntN(2) == 0 {
				e := links[r.IntN(len(links))]
				u, v = e[0], e[1]
				if r.IntN(2) == 0 {
					u, v = v, u
				}
			}
			ops = append(ops, Op{Kind: 'C', U: u, V: v})
		default:
			ops = append(ops, Op{Kind: 'Q', U: u, V: v})
		}
	}
	return ops
}

// Script 把操作序列写成命令脚本，顶点编号从 base 开始
func Script(n int, ops []Op, base int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", n)
	for _, op := range ops {
		fmt.Fprintf(&b, "%c %d %d\n", op.Kind, op.U+base, op.V+base)
	}
	b.WriteString("X\n")
	return b.String()
}
