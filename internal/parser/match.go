package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reEnumPrefix = regexp.MustCompile(`^\d+\.\s*`)
	reNameNoise  = regexp.MustCompile(`[^a-z0-9_\x{4e00}-\x{9fa5}]`)
)

// normalizeName 归一化品类名称：小写、去序号前缀、去空白，只保留汉字、字母、数字
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = reEnumPrefix.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, "")
	return reNameNoise.ReplaceAllString(s, "")
}

// NamesMatch 判断两个自由文本标签是否指向同一品类。
// 归一化后完全相等即匹配；否则双方长度均不小于 3 且存在包含关系时，
// 以短长比作为匹配分，严格大于 0.5 才算命中。
// 刻意偏宽松：宁可误合并，也不丢财务数据。
func NamesMatch(a, b string) bool {
	na := normalizeName(a)
	nb := normalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	la := utf8.RuneCountInString(na)
	lb := utf8.RuneCountInString(nb)
	if la < 2 || lb < 2 {
		return false
	}
	shorter, longer := la, lb
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if shorter < 3 {
		return false
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return float64(shorter)/float64(longer) > 0.5
	}
	return false
}
