package diffutil

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// FormatSideBySide 把对比结果排成左右两栏
// fmt 的宽度按字符数计算，中文和框线字符要按显示宽度补空格：
// 总字符数 = 字符数 + (最大显示宽度 - 当前行显示宽度)
func FormatSideBySide(diff []DiffLine, leftTitle, rightTitle string) string {
	// 模糊宽度字符按 1 计算，框线字符才能对齐
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	maxWidth := cond.StringWidth(leftTitle)
	numWidth := 1
	for _, d := range diff {
		maxWidth = max(maxWidth, cond.StringWidth(d.Left))
		numWidth = max(numWidth, len(strconv.Itoa(d.LeftNo)), len(strconv.Itoa(d.RightNo)))
	}

	pad := func(s string) int {
		return utf8.RuneCountInString(s) + maxWidth - cond.StringWidth(s)
	}
	lineNo := func(n int) string {
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}

	var out []string
	header := fmt.Sprintf("%*s %-*s  %s  %*s %s", numWidth, "", pad(leftTitle), leftTitle, " ", numWidth, "", rightTitle)
	out = append(out, strings.TrimRight(header, " "))
	out = append(out, strings.Repeat("-", cond.StringWidth(header)))
	for _, d := range diff {
		line := fmt.Sprintf("%*s %-*s  %s  %*s %s",
			numWidth, lineNo(d.LeftNo), pad(d.Left), d.Left, d.Mark, numWidth, lineNo(d.RightNo), d.Right)
		out = append(out, strings.TrimRight(line, " "))
	}
	return strings.Join(out, "\n") + "\n"
}
