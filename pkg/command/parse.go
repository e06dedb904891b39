// Package command 解析并执行 Link-Cut 森林的文本命令
//
// 输入格式：
//
//	第一行          顶点个数 n
//	L u v          加边，v 成为 u 的孩子
//	C u v          删边
//	Q u v          查询是否连通，输出 T 或 F
//	T              打印节点仓库（调试用）
//	X              结束
//
// 顶点编号默认从 1 开始，读入后转换为从 0 开始的下标。
package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Op 命令类型，取值就是命令字符本身
type Op byte

const (
	OpLink  Op = 'L'
	OpCut   Op = 'C'
	OpQuery Op = 'Q'
	OpDump  Op = 'T'
	OpExit  Op = 'X'
)

func (o Op) String() string {
	return string(rune(o))
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("bad arguments")
	ErrVertexRange    = errors.New("vertex out of range")
	ErrMissingHeader  = errors.New("missing vertex count header")
)

// SyntaxError 带行号的解析错误
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Command 一条已经解析好的命令，U/V 是从 0 开始的下标
type Command struct {
	Op   Op
	U, V int
	Line int
}

// Parse 解析一行命令，base 是脚本里顶点编号的起始值
// 不检查顶点上界，上界由执行器根据森林大小判断
func Parse(line string, base int) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || len(fields[0]) != 1 {
		return Command{}, ErrUnknownCommand
	}

	cmd := Command{Op: Op(fields[0][0])}
	switch cmd.Op {
	case OpDump, OpExit:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %s 不需要参数", ErrBadArgs, cmd.Op)
		}
		return cmd, nil
	case OpLink, OpCut, OpQuery:
	default:
		return Command{}, ErrUnknownCommand
	}

	if len(fields) != 3 {
		return Command{}, fmt.Errorf("%w: %s 需要两个顶点", ErrBadArgs, cmd.Op)
	}
	u, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	v, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	cmd.U, cmd.V = u-base, v-base
	if cmd.U < 0 || cmd.V < 0 {
		return Command{}, fmt.Errorf("%w: %d %d", ErrVertexRange, u, v)
	}
	return cmd, nil
}

// Parser 逐行读取命令脚本
type Parser struct {
	scanner *bufio.Scanner
	base    int
	line    int
	header  bool
	done    bool
}

func NewParser(r io.Reader, base int) *Parser {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Parser{scanner: sc, base: base}
}

// nextLine 返回下一行非空内容
func (p *Parser) nextLine() (string, bool) {
	for p.scanner.Scan() {
		p.line++
		text := strings.TrimSpace(p.scanner.Text())
		if text != "" {
			return text, true
		}
	}
	return "", false
}

// Header 读取第一行的顶点个数，必须在 Next 之前调用
func (p *Parser) Header() (int, error) {
	text, ok := p.nextLine()
	if !ok {
		if err := p.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, &SyntaxError{Line: p.line, Err: ErrMissingHeader}
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, &SyntaxError{Line: p.line, Text: text, Err: ErrMissingHeader}
	}
	p.header = true
	return n, nil
}

// Next 返回下一条命令，遇到 X 或文件结束时返回 io.EOF
// 解析失败返回 *SyntaxError，调用方可以选择跳过继续读
func (p *Parser) Next() (Command, error) {
	if !p.header {
		return Command{}, &SyntaxError{Line: p.line, Err: ErrMissingHeader}
	}
	if p.done {
		return Command{}, io.EOF
	}
	text, ok := p.nextLine()
	if !ok {
		p.done = true
		if err := p.scanner.Err(); err != nil {
			return Command{}, err
		}
		return Command{}, io.EOF
	}

	cmd, err := Parse(text, p.base)
	if err != nil {
		return Command{}, &SyntaxError{Line: p.line, Text: text, Err: err}
	}
	cmd.Line = p.line
	if cmd.Op == OpExit {
		p.done = true
		return Command{}, io.EOF
	}
	return cmd, nil
}
