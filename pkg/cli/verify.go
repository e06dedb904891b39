package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"lct_tool/pkg/diffutil"
	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/graph"
	"lct_tool/pkg/linkcut"
	"lct_tool/pkg/logutil"
	"lct_tool/pkg/oracle"
	"lct_tool/pkg/report"

	"github.com/spf13/cobra"
)

func (a *app) verifyCmd() *cobra.Command {
	var (
		context   int
		reportOut string
	)

	cmd := &cobra.Command{
		Use:   "verify [script]",
		Short: "分别用 Link-Cut 树和朴素实现执行脚本并比较结果",
		Long: `分别用 Link-Cut 树和朴素实现执行脚本并比较结果
两边的 Q 输出逐行比较，结束后再比较森林的边集合。T 命令在这里被忽略。
不一致时打印左右对比并以 68 退出。

Examples:
  lct gen --nodes 50 --ops 100000 | lct verify`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			script, err := io.ReadAll(in)
			in.Close()
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取脚本失败", err)
			}

			var lcOut, orOut bytes.Buffer
			lc, err := a.execute(bytes.NewReader(script), &lcOut, implLinkCut, false)
			if err != nil {
				return err
			}
			or, err := a.execute(bytes.NewReader(script), &orOut, implOracle, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			mismatches := 0
			if lcOut.String() != orOut.String() {
				diff := diffutil.CompareMultiline(lcOut.String(), orOut.String())
				mismatches = diffutil.Mismatches(diff)
				fmt.Fprint(out, diffutil.FormatSideBySide(diffutil.OnlyChanges(diff, context), implLinkCut, implOracle))
			}
			if err := compareForests(lc.linkCut(), or.forest.(*oracle.Forest)); err != nil {
				mismatches++
				fmt.Fprintf(out, "forest mismatch: %v\n", err)
			}

			if reportOut == "" {
				reportOut = a.cfg.Report
			}
			if reportOut != "" {
				meta := report.Meta{Version: a.version, Input: name, Impl: implLinkCut, Nodes: lc.nodes}
				doc, err := report.Build(meta, lc.exec.Stats())
				if err == nil {
					doc, err = report.SetVerify(doc, mismatches)
				}
				if err != nil {
					return errorutil.NewExitError(errorutil.CodeInternalErr, err)
				}
				if err := os.WriteFile(reportOut, []byte(doc), 0644); err != nil {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "写报告失败", err)
				}
			}

			if mismatches > 0 {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeAssertionFailed,
					fmt.Sprintf("verify 失败: %d 处不一致", mismatches), nil)
			}
			fmt.Fprintf(out, "ok: %d queries, %d edges\n", lc.exec.Stats().Queries, or.forest.(*oracle.Forest).EdgeCount())
			return nil
		},
	}

	cmd.Flags().IntVar(&context, "context", 3, "不一致的行前后各显示多少行")
	cmd.Flags().StringVar(&reportOut, "report", "", "JSON 报告输出路径(覆盖配置中的 report)")
	return cmd
}

// compareForests 检查两边最终的边集合一致，并且 Link-Cut 一侧确实是森林
func compareForests(lc *linkcut.Forest, or *oracle.Forest) error {
	edges := lc.Edges()
	g, err := graph.FromForest(lc.Len(), edges, 0)
	if err != nil {
		return err
	}
	if err := graph.CheckForest(g); err != nil {
		return err
	}

	got := make([][2]int, 0, len(edges))
	for _, e := range edges {
		got = append(got, [2]int{min(e.Parent, e.Child), max(e.Parent, e.Child)})
	}
	slices.SortFunc(got, func(x, y [2]int) int {
		if x[0] != y[0] {
			return x[0] - y[0]
		}
		return x[1] - y[1]
	})
	want := or.Edges()
	if !slices.Equal(got, want) {
		logutil.Debug("linkcut edges: %v", got)
		logutil.Debug("oracle edges: %v", want)
		return fmt.Errorf("edge sets differ: linkcut %d, oracle %d", len(got), len(want))
	}
	return nil
}
