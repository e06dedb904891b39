// Package cli 组装 lct 的 cobra 命令树
package cli

import (
	"fmt"

	"lct_tool/pkg/config"
	"lct_tool/pkg/errorutil"
	"lct_tool/pkg/logutil"
	"lct_tool/pkg/treeprinter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app 保存一次命令执行期间共享的状态
type app struct {
	version  string
	cfgFile  string
	logLevel logutil.LogLevel
	cfg      config.Config
}

func (a *app) style() treeprinter.Style {
	return treeprinter.ParseStyle(a.cfg.Style)
}

// RootCmd 构造根命令
func RootCmd(version string) *cobra.Command {
	a := &app{version: version, logLevel: logutil.WARN}

	rootCmd := &cobra.Command{
		Use:   "lct",
		Short: fmt.Sprintf("lct v%s: Link-Cut 树动态森林的命令脚本工具", version),
		Long: fmt.Sprintf("lct v%s: Link-Cut 树动态森林的命令脚本工具\n\n", version) +
			"脚本第一行是顶点个数，后面每行一条命令：\n" +
			"  L u v   加边，v 成为 u 的孩子\n" +
			"  C u v   删边\n" +
			"  Q u v   查询连通性，输出 T 或 F\n" +
			"  T       打印节点仓库\n" +
			"  X       结束\n",
		Version: version,
		// 阻止 Cobra 在命令参数错误时输出帮助
		SilenceUsage: true,
		// 错误由 main 统一打印
		SilenceErrors: true,
	}

	// 屁股后面带 P 的函数才支持短选项
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "配置文件路径(默认查找 ./.lct.yaml 和 $HOME/.lct.yaml)")
	flags.VarP(&a.logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	flags.StringP("log-file", "l", "stderr", "日志输出，stdout/stderr 或文件路径")
	flags.Int("base", 1, "脚本中顶点编号的起始值(0 或 1)")
	flags.Bool("strict", false, "遇到非法行直接失败，而不是跳过")
	flags.String("style", "unicode", "T 命令的画线风格(unicode/ascii)")

	for key, name := range map[string]string{
		"log_level":  "log-level",
		"log_file":   "log-file",
		"index_base": "base",
		"strict":     "strict",
		"style":      "style",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	// 这个钩子在 flag 值填充之后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Init(a.cfgFile); err != nil {
			return errorutil.NewExitError(errorutil.CodeConfigError, err)
		}
		cfg, err := config.Load()
		if err != nil {
			return errorutil.NewExitError(errorutil.CodeConfigError, err)
		}
		level, err := logutil.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return errorutil.NewExitError(errorutil.CodeConfigError, err)
		}
		if err := logutil.InitLogger(cfg.LogFile, level); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "初始化日志失败", err)
		}
		a.cfg = cfg
		logutil.Debug("config: %v", cfg)
		return nil
	}

	rootCmd.AddCommand(
		a.runCmd(),
		a.genCmd(),
		a.verifyCmd(),
		a.dotCmd(),
	)
	return rootCmd
}
