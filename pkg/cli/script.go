package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"lct_tool/pkg/command"
	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/inspect"
	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/logutil"
	"lct_tool/pkg/oracle"
)

const (
	implLinkCut = "linkcut"
	implOracle  = "oracle"
)

// openInput 打开脚本，没有参数或者参数是 "-" 时读标准输入
func openInput(cmdIn io.Reader, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmdIn), "-", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		code := errorutil.CodeIOError
		if errors.Is(err, fs.ErrNotExist) {
			code = errorutil.CodeMissingInput
		}
		return nil, args[0], errorutil.NewExitErrorWithMessage(code, "打开脚本失败", err)
	}
	return f, args[0], nil
}

// session 是一次脚本执行的结果
type session struct {
	impl   string
	nodes  int
	exec   *command.Executor
	forest command.Forest
}

// linkCut 返回 Link-Cut 森林，oracle 执行时返回 nil
func (s *session) linkCut() *linkcut.Forest {
	f, _ := s.forest.(*linkcut.Forest)
	return f
}

// execute 读取脚本并在指定实现上执行，Q 的结果写到 out
// withDump 为 false 时忽略 T 命令，verify 需要两边输出可比
func (a *app) execute(r io.Reader, out io.Writer, impl string, withDump bool) (*session, error) {
	p := command.NewParser(r, a.cfg.IndexBase)
	n, err := p.Header()
	if err != nil {
		return nil, wrapScriptError(err)
	}

	s := &session{impl: impl, nodes: n}
	switch impl {
	case implLinkCut:
		s.forest = linkcut.New(n)
	case implOracle:
		s.forest = oracle.New(n)
	default:
		return nil, errorutil.NewExitError(errorutil.CodeInvalidUsage, fmt.Errorf("unknown implementation %q", impl))
	}
	logutil.Info("%s: %d vertices", impl, n)

	w := bufio.NewWriter(out)
	s.exec = command.NewExecutor(s.forest, w)
	s.exec.Strict = a.cfg.Strict
	if f := s.linkCut(); f != nil && withDump {
		style := a.style()
		s.exec.Dump = func(w io.Writer) error {
			_, err := io.WriteString(w, inspect.Dump(f, style))
			return err
		}
	}

	runErr := s.exec.Run(p)
	if err := w.Flush(); err != nil && runErr == nil {
		runErr = errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "写输出失败", err)
	}
	if runErr != nil {
		return s, wrapScriptError(runErr)
	}
	stats := s.exec.Stats()
	logutil.Info("%s: %d commands, %d skipped, %v", impl, stats.Ops(), stats.Skipped, stats.TotalTime)
	return s, nil
}

func wrapScriptError(err error) error {
	if errorutil.HasExitCode(err) {
		return err
	}
	var syntaxErr *command.SyntaxError
	if errors.As(err, &syntaxErr) {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "脚本格式错误", err)
	}
	return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "执行脚本失败", err)
}
