// Package report 把一次运行的统计整理成 JSON 报告和给人看的摘要
package report

import (
	"fmt"
	"strings"
	"time"

	"lct_tool/pkg/command"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Meta 报告的描述信息
type Meta struct {
	Version string
	Input   string // 脚本路径，标准输入时为 "-"
	Impl    string // linkcut 或 oracle
	Nodes   int
}

// Build 生成格式化后的 JSON 报告
func Build(meta Meta, stats command.Stats) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"version", meta.Version},
		{"input", meta.Input},
		{"impl", meta.Impl},
		{"nodes", meta.Nodes},
		{"ops.total", stats.Ops()},
		{"ops.links", stats.Links},
		{"ops.links_rejected", stats.LinksRejected},
		{"ops.cuts", stats.Cuts},
		{"ops.cuts_rejected", stats.CutsRejected},
		{"ops.queries", stats.Queries},
		{"ops.queries_true", stats.QueriesTrue},
		{"ops.dumps", stats.Dumps},
		{"ops.skipped", stats.Skipped},
		{"time.mutation_ns", stats.MutationTime.Nanoseconds()},
		{"time.total_ns", stats.TotalTime.Nanoseconds()},
		{"time.total", stats.TotalTime.String()},
	}

	doc := "{}"
	for _, f := range fields {
		var err error
		if doc, err = sjson.Set(doc, f.path, f.value); err != nil {
			return "", fmt.Errorf("report set %s: %w", f.path, err)
		}
	}
	return string(pretty.Pretty([]byte(doc))), nil
}

// SetVerify 在报告里记录 verify 的比较结果
func SetVerify(doc string, mismatches int) (string, error) {
	doc, err := sjson.Set(doc, "verify.mismatches", mismatches)
	if err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "verify.ok", mismatches == 0); err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(doc))), nil
}

// Lookup 按 gjson 路径读报告里的字段
func Lookup(doc, path string) gjson.Result {
	return gjson.Get(doc, path)
}

// Summary 生成多行的可读摘要
func Summary(meta Meta, stats command.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s vertices, %s commands\n",
		meta.Impl, humanize.Comma(int64(meta.Nodes)), humanize.Comma(int64(stats.Ops())))
	fmt.Fprintf(&b, "  link    %s ok, %s rejected\n", humanize.Comma(int64(stats.Links)), humanize.Comma(int64(stats.LinksRejected)))
	fmt.Fprintf(&b, "  cut     %s ok, %s rejected\n", humanize.Comma(int64(stats.Cuts)), humanize.Comma(int64(stats.CutsRejected)))
	fmt.Fprintf(&b, "  query   %s (%s connected)\n", humanize.Comma(int64(stats.Queries)), humanize.Comma(int64(stats.QueriesTrue)))
	if stats.Skipped > 0 {
		fmt.Fprintf(&b, "  skipped %s\n", humanize.Comma(int64(stats.Skipped)))
	}
	if stats.TotalTime > 0 {
		fmt.Fprintf(&b, "  time    %s (%s)\n", stats.TotalTime.Round(time.Microsecond), rate(stats.Ops(), stats.TotalTime))
	}
	return b.String()
}

func rate(ops int, d time.Duration) string {
	return humanize.SIWithDigits(float64(ops)/d.Seconds(), 2, "ops/s")
}
