package cli

import (
	"errors"
	"io"
	"os"

	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/gen"

	"github.com/spf13/cobra"
)

func (a *app) genCmd() *cobra.Command {
	opts := gen.DefaultOptions()
	var out string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "生成随机命令脚本",
		Long: `生成随机命令脚本，同一个 seed 生成的内容完全相同
顶点编号的起始值跟随 --base

Examples:
  lct gen --nodes 1000 --ops 10000 --seed 7 --out demo.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Base = a.cfg.IndexBase

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "创建输出文件失败", err)
				}
				defer f.Close()
				w = f
			}

			if err := gen.Generate(w, opts); err != nil {
				if errors.Is(err, gen.ErrInvalidOptions) {
					return errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
				}
				return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "写脚本失败", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.Nodes, "nodes", opts.Nodes, "顶点个数")
	flags.IntVar(&opts.Ops, "ops", opts.Ops, "命令条数(不含首行和 X)")
	flags.IntVar(&opts.LinkPercent, "link-percent", opts.LinkPercent, "修改操作中 L 所占百分比，其余为 C")
	flags.IntVar(&opts.QueryPercent, "query-percent", opts.QueryPercent, "Q 占全部命令的百分比")
	flags.Uint64Var(&opts.Seed, "seed", opts.Seed, "随机种子")
	flags.StringVarP(&out, "out", "o", "", "输出文件，默认标准输出")
	return cmd
}
