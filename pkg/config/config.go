package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config 是 lct 工具的运行配置
// 来源优先级：命令行 flag > LCT_* 环境变量 > .lct.yaml > 默认值
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFile   string `mapstructure:"log_file"`
	IndexBase int    `mapstructure:"index_base"` // 脚本里的顶点编号从几开始，默认 1
	Strict    bool   `mapstructure:"strict"`     // 非法行直接报错而不是跳过
	Style     string `mapstructure:"style"`      // T 命令输出的画线风格 unicode/ascii
	Report    string `mapstructure:"report"`     // JSON 报告输出路径，空表示不输出
}

// ErrInvalid 配置值不合法
var ErrInvalid = errors.New("invalid config")

// Init 设置配置文件搜索路径和环境变量前缀
// cfgFile 为空时在当前目录和 HOME 下找 .lct.yaml，找不到不算错误
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lct")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LCT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("读取配置文件失败: %w", err)
	}
	return nil
}

// Load 读取配置并填充默认值
func Load() (Config, error) {
	viper.SetDefault("log_level", "WARN")
	viper.SetDefault("log_file", "stderr")
	viper.SetDefault("index_base", 1)
	viper.SetDefault("strict", false)
	viper.SetDefault("style", "unicode")
	viper.SetDefault("report", "")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("解析配置失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate 校验取值范围
func (c Config) Validate() error {
	if c.IndexBase != 0 && c.IndexBase != 1 {
		return fmt.Errorf("%w: index_base 只能是 0 或 1，当前为 %d", ErrInvalid, c.IndexBase)
	}
	if c.Style != "unicode" && c.Style != "ascii" {
		return fmt.Errorf("%w: style 只能是 unicode 或 ascii，当前为 %q", ErrInvalid, c.Style)
	}
	return nil
}
