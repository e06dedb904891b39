package logutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

// LogLevel 日志级别，值越小打印得越多
type LogLevel int

// 定义日志级别
const (
	DEBUG LogLevel = iota // 0
	INFO                  // 1
	WARN                  // 2
	ERROR                 // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]LogLevel{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

// 让 cobra 的 VarP 可以直接绑定日志级别
var _ pflag.Value = (*LogLevel)(nil)

func (l *LogLevel) String() string {
	for name, level := range LOG_LEVELS {
		if level == *l {
			return name
		}
	}
	return fmt.Sprintf("LogLevel(%d)", int(*l))
}

func (l *LogLevel) Set(val string) error {
	level, err := ParseLogLevel(val)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l *LogLevel) Type() string {
	return "loglevel"
}

// ParseLogLevel 解析日志级别字符串，大小写不敏感
func ParseLogLevel(val string) (LogLevel, error) {
	level, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(val))]
	if !ok {
		return WARN, fmt.Errorf("无效的日志级别: %s (可选 DEBUG/INFO/WARN/ERROR)", val)
	}
	return level, nil
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	currentLevel = WARN // 默认日志级别
)

// InitLogger 初始化日志，output 可以是 stdout、stderr 或者文件路径
// 文件以追加模式打开，不会覆盖已有内容
func InitLogger(output string, level LogLevel) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	switch output {
	case "stdout":
		logger = log.New(os.Stdout, "", log.LstdFlags)
	case "", "stderr":
		logger = log.New(os.Stderr, "", log.LstdFlags)
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("无法创建日志文件 %s: %w", output, err)
		}
		logFile = f
		logger = log.New(f, "", log.LstdFlags)
	}
	currentLevel = level
	return nil
}

// SetOutput 把日志写到任意 io.Writer，测试里用来截获输出
func SetOutput(w io.Writer, level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = log.New(w, "", 0)
	currentLevel = level
}

// 设置日志级别
func SetLogLevel(level LogLevel) {
	mu.Lock()
	currentLevel = level
	mu.Unlock()
}

// Enabled 判断某个级别当前是否会输出，调用方可以借此跳过昂贵的格式化
func Enabled(level LogLevel) bool {
	mu.Lock()
	defer mu.Unlock()
	return level >= currentLevel
}

// logMessage 记录日志，仅输出符合当前级别的日志
func logMessage(level LogLevel, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	if level < currentLevel {
		return
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	formattedMsg := fmt.Sprintf(msg, formatArgs(args)...)
	logger.Printf("[%s:%d] %s", filepath.Base(file), line, formattedMsg)
}

// 切片和字典转换成 JSON，方便在日志里看
func formatArgs(args []any) []any {
	formatted := make([]any, 0, len(args))
	for _, arg := range args {
		v := reflect.ValueOf(arg)
		if v.Kind() == reflect.Slice || v.Kind() == reflect.Map {
			jsonData, err := json.Marshal(arg)
			if err != nil {
				formatted = append(formatted, fmt.Sprintf("无法格式化: %v", err))
			} else {
				formatted = append(formatted, string(jsonData))
			}
			continue
		}
		formatted = append(formatted, arg)
	}
	return formatted
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，附带调用堆栈
func Error(msg string, args ...any) {
	size := 1024
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			// 堆栈里可能有 % 符号，作为参数传进去而不是拼接到格式串里
			logMessage(ERROR, "[ERR] "+msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}
		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// CloseLogger 关闭日志文件（如果有的话）
// 不要用 defer 配合 os.Exit，defer 不会执行
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = nil
	return err
}
