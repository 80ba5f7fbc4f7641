package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"agritrace/internal/model"
)

var (
	reEnumRow      = regexp.MustCompile(`^\d+\.`)
	reListPunctuation = regexp.MustCompile(`^[、，,]\s*`)
)

// maxCategoryRows 表头之后允许读取的最大行数，防止失控表格
const maxCategoryRows = 50

// ParseCategories 从品类列表区块提取品类记录。
// 三种行形态：带序号（名称在第 2 列）、无序号（第 1 列即名称）、以及
// 只有一列的残行（跳过）。首列出现其他区块关键词或为空时结束。
func ParseCategories(t *model.Table, rules *Rules) []model.Category {
	categories := []model.Category{}

	section := locateCategorySection(t, rules)
	if section < 0 {
		return categories
	}
	header := locateCategoryHeader(t, section, rules)

	for i := header + 1; i < t.RowCount(); i++ {
		row := t.Row(i)
		if len(row) < 2 {
			continue
		}

		first := CleanText(row.Cell(0))
		if first == "" || ContainsAny(first, rules.CategoryStopKeywords) {
			break
		}

		var name, season, description string
		if reEnumRow.MatchString(first) {
			name = CleanText(row.Cell(1))
			season = CleanText(row.Cell(2))
			description = CleanText(row.Cell(3))
		} else {
			name = first
			season = CleanText(row.Cell(1))
			description = CleanText(row.Cell(2))
		}

		name = cleanCategoryName(name)
		if name != "" && utf8.RuneCountInString(name) >= 2 {
			categories = append(categories, model.Category{
				Name:        name,
				Season:      season,
				Description: description,
			})
		}

		if i > header+maxCategoryRows {
			break
		}
	}

	return categories
}

// cleanCategoryName 去掉序号前缀和行首的列表标点
func cleanCategoryName(name string) string {
	name = reEnumPrefix.ReplaceAllString(name, "")
	name = reListPunctuation.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
