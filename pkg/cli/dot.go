package cli

import (
	"fmt"
	"io"

	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/graph"

	"github.com/spf13/cobra"
)

func (a *app) dotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot [script]",
		Short: "执行脚本后以 Graphviz DOT 格式输出表示森林",
		Long: `执行脚本后以 Graphviz DOT 格式输出表示森林，Q 的结果被丢弃
边从父节点指向孩子，根节点画成双圈

Examples:
  lct dot demo.txt | dot -Tsvg > forest.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, err := openInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			defer in.Close()

			s, err := a.execute(in, io.Discard, implLinkCut, false)
			if err != nil {
				return err
			}
			f := s.linkCut()
			dot, err := graph.ToDOT(f.Len(), f.Edges(), a.cfg.IndexBase)
			if err != nil {
				return errorutil.NewExitError(errorutil.CodeInternalErr, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), dot)
			return nil
		},
	}
}
