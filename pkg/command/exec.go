package command

import (
	"errors"
	"fmt"
	"io"
	"time"

	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/logutil"
)

// Forest 是执行器需要的森林接口，linkcut.Forest 和 oracle.Forest 都满足
type Forest interface {
	Link(u, v int) error
	Cut(u, v int) error
	Connected(u, v int) bool
	Len() int
}

// Stats 执行统计
type Stats struct {
	Links         int
	LinksRejected int
	Cuts          int
	CutsRejected  int
	Queries       int
	QueriesTrue   int
	Dumps         int
	Skipped       int // 非法行，非严格模式下跳过
	// 只统计 L/C 两种操作的耗时
	MutationTime time.Duration
	TotalTime    time.Duration
}

// Ops 返回实际执行的命令条数
func (s Stats) Ops() int {
	return s.Links + s.LinksRejected + s.Cuts + s.CutsRejected + s.Queries + s.Dumps
}

// Executor 把命令应用到森林上
type Executor struct {
	forest Forest
	out    io.Writer
	// Strict 为 true 时遇到非法行直接返回错误
	Strict bool
	// Dump 处理 T 命令，为空时 T 命令什么都不做
	Dump  func(w io.Writer) error
	stats Stats
}

func NewExecutor(f Forest, out io.Writer) *Executor {
	return &Executor{forest: f, out: out}
}

func (e *Executor) Stats() Stats {
	return e.stats
}

// Exec 执行一条命令
// 加边成环、删不存在的边属于预期内的失败，只计数不返回错误
func (e *Executor) Exec(cmd Command) error {
	if cmd.Op == OpLink || cmd.Op == OpCut || cmd.Op == OpQuery {
		n := e.forest.Len()
		if cmd.U < 0 || cmd.U >= n || cmd.V < 0 || cmd.V >= n {
			return &SyntaxError{
				Line: cmd.Line,
				Text: fmt.Sprintf("%s %d %d", cmd.Op, cmd.U, cmd.V),
				Err:  fmt.Errorf("%w: [0, %d)", ErrVertexRange, n),
			}
		}
	}

	switch cmd.Op {
	case OpLink:
		begin := time.Now()
		err := e.forest.Link(cmd.U, cmd.V)
		e.stats.MutationTime += time.Since(begin)
		if err != nil {
			if !errors.Is(err, linkcut.ErrAlreadyConnected) {
				return err
			}
			e.stats.LinksRejected++
			logutil.Debug("line %d: %v", cmd.Line, err)
			return nil
		}
		e.stats.Links++
	case OpCut:
		begin := time.Now()
		err := e.forest.Cut(cmd.U, cmd.V)
		e.stats.MutationTime += time.Since(begin)
		if err != nil {
			if !errors.Is(err, linkcut.ErrNotAnEdge) {
				return err
			}
			e.stats.CutsRejected++
			logutil.Debug("line %d: %v", cmd.Line, err)
			return nil
		}
		e.stats.Cuts++
	case OpQuery:
		e.stats.Queries++
		answer := "F"
		if e.forest.Connected(cmd.U, cmd.V) {
			answer = "T"
			e.stats.QueriesTrue++
		}
		if _, err := fmt.Fprintln(e.out, answer); err != nil {
			return err
		}
	case OpDump:
		e.stats.Dumps++
		if e.Dump == nil {
			logutil.Debug("line %d: 没有注册 dump 处理函数，忽略 T", cmd.Line)
			return nil
		}
		return e.Dump(e.out)
	case OpExit:
	default:
		return &SyntaxError{Line: cmd.Line, Text: cmd.Op.String(), Err: ErrUnknownCommand}
	}
	return nil
}

// Run 读完整个脚本并执行
func (e *Executor) Run(p *Parser) error {
	begin := time.Now()
	defer func() {
		e.stats.TotalTime += time.Since(begin)
	}()

	for {
		cmd, err := p.Next()
		if err == nil {
			err = e.Exec(cmd)
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		var syntaxErr *SyntaxError
		if !e.Strict && errors.As(err, &syntaxErr) && !errors.Is(err, ErrMissingHeader) {
			e.stats.Skipped++
			logutil.Warn("跳过非法行 %v", err)
			continue
		}
		return err
	}
}
