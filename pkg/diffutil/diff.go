// Package diffutil 按行比较两份输出记录，verify 用它展示两种实现的差异
package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	MarkEqual   = "|"
	MarkChanged = "~"
	MarkDelete  = "-"
	MarkInsert  = "+"
)

// DiffLine 是并排对比中的一行，行号从 1 开始，0 表示这一侧没有内容
type DiffLine struct {
	LeftNo  int
	RightNo int
	Left    string
	Right   string
	Mark    string
}

// CompareMultiline 以行为单位比较 before 和 after
func CompareMultiline(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(withNewline(before), withNewline(after))
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var (
		result []DiffLine
		l, r   int
	)
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		// 紧挨着的删除 + 插入按行配对成修改
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {
			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)
			for j := 0; j < max(len(delLines), len(insLines)); j++ {
				line := DiffLine{Mark: MarkChanged}
				if j < len(delLines) {
					l++
					line.LeftNo, line.Left = l, delLines[j]
				} else {
					line.Mark = MarkInsert
				}
				if j < len(insLines) {
					r++
					line.RightNo, line.Right = r, insLines[j]
				} else {
					line.Mark = MarkDelete
				}
				result = append(result, line)
			}
			i++
			continue
		}

		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				l++
				r++
				result = append(result, DiffLine{LeftNo: l, RightNo: r, Left: text, Right: text, Mark: MarkEqual})
			case diffmatchpatch.DiffDelete:
				l++
				result = append(result, DiffLine{LeftNo: l, Left: text, Mark: MarkDelete})
			case diffmatchpatch.DiffInsert:
				r++
				result = append(result, DiffLine{RightNo: r, Right: text, Mark: MarkInsert})
			}
		}
	}
	return result
}

// Mismatches 统计不相同的行数
func Mismatches(diff []DiffLine) int {
	n := 0
	for _, d := range diff {
		if d.Mark != MarkEqual {
			n++
		}
	}
	return n
}

// OnlyChanges 只保留不同的行以及它们前后 context 行
func OnlyChanges(diff []DiffLine, context int) []DiffLine {
	keep := make([]bool, len(diff))
	for i, d := range diff {
		if d.Mark == MarkEqual {
			continue
		}
		for j := max(0, i-context); j <= min(len(diff)-1, i+context); j++ {
			keep[j] = true
		}
	}
	var out []DiffLine
	for i, d := range diff {
		if keep[i] {
			out = append(out, d)
		}
	}
	return out
}

func withNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
