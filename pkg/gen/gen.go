// Package gen 生成随机的命令脚本，用于压测和 verify
package gen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

var ErrInvalidOptions = errors.New("invalid generator options")

// Options 生成参数
type Options struct {
	Nodes int // 顶点个数
	Ops   int // 命令条数（不含首行和 X）
	// LinkPercent 在 L/C 中 L 所占的百分比
	LinkPercent int
	// QueryPercent 所有命令中 Q 所占的百分比，为 0 时只生成 L/C
	QueryPercent int
	Seed         uint64
	Base         int // 顶点编号起始值，0 或 1
}

// DefaultOptions 默认参数
func DefaultOptions() Options {
	return Options{
		Nodes:        1000,
		Ops:          10000,
		LinkPercent:  70,
		QueryPercent: 30,
		Seed:         1,
		Base:         1,
	}
}

func (o Options) validate() error {
	switch {
	case o.Nodes <= 0:
		return fmt.Errorf("%w: nodes 必须为正数，当前 %d", ErrInvalidOptions, o.Nodes)
	case o.Ops < 0:
		return fmt.Errorf("%w: ops 不能为负数，当前 %d", ErrInvalidOptions, o.Ops)
	case o.LinkPercent < 0 || o.LinkPercent > 100:
		return fmt.Errorf("%w: link-percent 取值 0-100，当前 %d", ErrInvalidOptions, o.LinkPercent)
	case o.QueryPercent < 0 || o.QueryPercent > 100:
		return fmt.Errorf("%w: query-percent 取值 0-100，当前 %d", ErrInvalidOptions, o.QueryPercent)
	case o.Base != 0 && o.Base != 1:
		return fmt.Errorf("%w: base 只能是 0 或 1，当前 %d", ErrInvalidOptions, o.Base)
	}
	return nil
}

// Generate 按参数写出脚本，同一个 Seed 输出完全相同
// 顶点在 [Base, Base+Nodes) 中均匀选取
func Generate(w io.Writer, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	r := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", opts.Nodes)
	for i := 0; i < opts.Ops; i++ {
		u := r.IntN(opts.Nodes) + opts.Base
		v := r.IntN(opts.Nodes) + opts.Base

		op := 'C'
		switch {
		case r.IntN(100) < opts.QueryPercent:
			op = 'Q'
		case r.IntN(100) < opts.LinkPercent:
			op = 'L'
		}
		fmt.Fprintf(bw, "%c %d %d\n", op, u, v)
	}
	fmt.Fprintln(bw, "X")
	return bw.Flush()
}
