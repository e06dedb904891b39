package main

import (
	"fmt"
	"os"

	"lct_tool/pkg/cli"
	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/logutil"
)

const TOOL_VERSION = "1.0.0+20261018"

func main() {
	rootCmd := cli.RootCmd(TOOL_VERSION)

	if err := rootCmd.Execute(); err != nil {
		msg, code := errorutil.FormatErrorAndCode(err)
		logutil.Debug("命令执行失败: %s", msg)
		fmt.Fprintf(os.Stderr, "lct: %v\n", err)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}
