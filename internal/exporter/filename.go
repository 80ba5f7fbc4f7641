package exporter

import (
	"regexp"
	"strings"

	"agritrace/internal/model"
)

var (
	reIllegalChars  = regexp.MustCompile(`[<>:"/\\|?*\[\]]`)
	reFilenameSpace = regexp.MustCompile(`\s+`)
)

// maxFilenameRunes 文件名长度上限
const maxFilenameRunes = 100

// SafeFilename 把展示名称转成安全文件名：
// 替换文件系统非法字符、去掉路径穿越序列、空白折叠为下划线、截断到上限长度
func SafeFilename(name string) string {
	if name == "" {
		return model.DefaultCooperativeName
	}

	s := reIllegalChars.ReplaceAllString(name, "_")
	s = strings.ReplaceAll(s, "..", "_")
	s = reFilenameSpace.ReplaceAllString(s, "_")

	runes := []rune(s)
	if len(runes) > maxFilenameRunes {
		s = string(runes[:maxFilenameRunes])
	}
	return s
}
