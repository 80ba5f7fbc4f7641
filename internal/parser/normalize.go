package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"agritrace/internal/model"
)

var (
	reSpaces     = regexp.MustCompile(`\s+`)
	reNonNumeric = regexp.MustCompile(`[^0-9.\-]`)
	reFloatHead  = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)
)

// UnitSuffix 数值单位后缀，按表序匹配，先命中者生效
type UnitSuffix struct {
	Suffix string
	Factor float64
}

// unitSuffixes 中文数量单位表
var unitSuffixes = []UnitSuffix{
	{"千", 1e3},
	{"万", 1e4},
	{"百万", 1e6},
	{"千万", 1e7},
	{"亿", 1e8},
}

// CollapseSpace 去除首尾空白并把内部空白（含换行、制表符）压缩为单个空格
func CollapseSpace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// excelEpoch Windows 1900 日期系统的纪元（序列号 1 对应 1899-12-30）
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// excelSerialToDate 把疑似日期序列号的数值解码为 ISO 日期
func excelSerialToDate(v float64) (string, bool) {
	if v <= 0 || v >= 100000 {
		return "", false
	}
	d := excelEpoch.Add(time.Duration((v - 1) * float64(24*time.Hour)))
	return d.Format("2006-01-02"), true
}

// CleanText 把原始单元格归一化为文本。
// 文本单元格压缩空白；数值单元格在日期序列号范围内时解码为 YYYY-MM-DD，
// 否则返回数值的字符串形式。
func CleanText(c model.Cell) string {
	if c.Numeric {
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
		if err != nil {
			return CollapseSpace(c.Value)
		}
		if s, ok := excelSerialToDate(v); ok {
			return s
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return CollapseSpace(c.Value)
}

// CleanNumber 把原始单元格归一化为数值，任何无法解析的输入都归零。
// 文本支持中文单位后缀（"12.5万" → 125000）。
func CleanNumber(c model.Cell) float64 {
	if c.Numeric {
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	return cleanNumberText(c.Value)
}

func cleanNumberText(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	factor := 1.0
	for _, u := range unitSuffixes {
		if strings.Contains(s, u.Suffix) {
			s = strings.Replace(s, u.Suffix, "", 1)
			factor = u.Factor
			break
		}
	}

	s = reNonNumeric.ReplaceAllString(s, "")
	if s == "" || s == "-" {
		return 0
	}

	v, ok := parseFloatHead(s)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v * factor
}

// parseFloatHead 解析字符串开头的浮点数，结尾的垃圾字符忽略（"3-5" → 3）
func parseFloatHead(s string) (float64, bool) {
	m := reFloatHead.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ContainsAny 检查文本是否包含任意一个关键词
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
