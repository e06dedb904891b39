package cli

import (
	"fmt"
	"os"

	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/report"

	"github.com/spf13/cobra"
)

func (a *app) runCmd() *cobra.Command {
	var (
		showStats bool
		reportOut string
		impl      string
	)

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "执行命令脚本，输出每条 Q 的结果",
		Long: `执行命令脚本，输出每条 Q 的结果
不指定脚本或者指定 - 时从标准输入读取

Examples:
  lct run demo.txt
  lct gen --nodes 100000 --ops 1000000 | lct run --stats
  lct run --impl oracle --report result.json demo.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer in.Close()

			s, err := a.execute(in, cmd.OutOrStdout(), impl, true)
			if err != nil {
				return err
			}

			meta := report.Meta{Version: a.version, Input: name, Impl: impl, Nodes: s.nodes}
			stats := s.exec.Stats()
			if showStats {
				fmt.Fprint(cmd.ErrOrStderr(), report.Summary(meta, stats))
			}

			if reportOut == "" {
				reportOut = a.cfg.Report
			}
			if reportOut == "" {
				return nil
			}
			doc, err := report.Build(meta, stats)
			if err != nil {
				return errorutil.NewExitError(errorutil.CodeInternalErr, err)
			}
			if err := os.WriteFile(reportOut, []byte(doc), 0644); err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "写报告失败", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "执行结束后在标准错误输出统计摘要")
	cmd.Flags().StringVar(&reportOut, "report", "", "JSON 报告输出路径(覆盖配置中的 report)")
	cmd.Flags().StringVar(&impl, "impl", implLinkCut, "森林实现(linkcut/oracle)")
	return cmd
}
