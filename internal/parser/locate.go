package parser

import (
	"strings"

	"agritrace/internal/model"
)

// LocateStrategy 在表格中定位目标行，未命中返回 -1
type LocateStrategy func(t *model.Table) int

// Locate 依次尝试各个策略，返回第一个命中的行号；全部未命中返回 -1。
// 区块缺失不是错误：调用方拿到 -1 后返回空的部分记录即可。
func Locate(t *model.Table, strategies ...LocateStrategy) int {
	for _, s := range strategies {
		if row := s(t); row >= 0 {
			return row
		}
	}
	return -1
}

// firstCellContains 在 [from, to) 行范围内找第一列包含任一关键词的行
func firstCellContains(keywords []string, from, to int) LocateStrategy {
	return func(t *model.Table) int {
		for i := from; i < min(to, t.RowCount()); i++ {
			cell := CleanText(t.Cell(i, 0))
			if cell != "" && ContainsAny(cell, keywords) {
				return i
			}
		}
		return -1
	}
}

const wholeTable = int(^uint(0) >> 1)

// locateBasicHeader 定位基本信息区块的表头行。
// 先按标题文本找，找不到时退到第一个命中字段映射标签的键值行。
func locateBasicHeader(t *model.Table, rules *Rules) int {
	byTitle := firstCellMatches(rules.BasicHeaderExact, rules.BasicHeaderContains, 0, wholeTable)

	byFieldLabel := func(t *model.Table) int {
		for i := 0; i < t.RowCount(); i++ {
			if len(t.Row(i)) < 2 {
				continue
			}
			key := CleanText(t.Cell(i, 0))
			for _, fr := range rules.BasicFields {
				if key == fr.Label {
					return i
				}
			}
		}
		return -1
	}

	return Locate(t, byTitle, byFieldLabel)
}

// locateCategorySection 定位品类区块的标题行
func locateCategorySection(t *model.Table, rules *Rules) int {
	return Locate(t, firstCellContains(rules.CategorySectionKeywords, 0, wholeTable))
}

// locateCategoryHeader 在区块标题后的窗口内定位品类列表头行。
// 依次尝试：第二列的标准表头、首个序号行的前一行、区块标题行本身。
func locateCategoryHeader(t *model.Table, sectionRow int, rules *Rules) int {
	window := min(t.RowCount(), sectionRow+10)

	byColumnTitle := func(t *model.Table) int {
		for i := sectionRow; i < window; i++ {
			if len(t.Row(i)) < 2 {
				continue
			}
			second := CleanText(t.Cell(i, 1))
			for _, label := range rules.CategoryHeaderExact {
				if second == label {
					return i
				}
			}
			if strings.Contains(second, "名称") &&
				(strings.Contains(second, "品类") || strings.Contains(second, "产品")) {
				return i
			}
		}
		return -1
	}

	byEnumRow := func(t *model.Table) int {
		for i := sectionRow; i < window; i++ {
			first := CleanText(t.Cell(i, 0))
			if reEnumRow.MatchString(first) {
				if i-1 < sectionRow {
					return sectionRow
				}
				return i - 1
			}
		}
		return -1
	}

	bySectionRow := func(t *model.Table) int {
		return sectionRow
	}

	return Locate(t, byColumnTitle, byEnumRow, bySectionRow)
}

// locateFinancialSection 定位财务数据区块，返回区块标题的下一行
func locateFinancialSection(t *model.Table, rules *Rules) int {
	for i := 0; i < t.RowCount(); i++ {
		cell := CleanText(t.Cell(i, 0))
		if cell == "" {
			continue
		}
		for _, label := range rules.FinancialSectionExact {
			if cell == label {
				return i + 1
			}
		}
		if ContainsAny(cell, rules.FinancialSectionContains) {
			return i + 1
		}
	}
	return -1
}

// locateFinancialHeader 在区块起点后的窗口内定位财务表头行，找不到时用起点行
func locateFinancialHeader(t *model.Table, startRow int, rules *Rules) int {
	byColumnTitle := func(t *model.Table) int {
		for i := startRow; i < min(t.RowCount(), startRow+5); i++ {
			if len(t.Row(i)) < 5 {
				continue
			}
			first := CleanText(t.Cell(i, 0))
			if ContainsAny(first, rules.FinancialHeaderContains) || reEnumRow.MatchString(first) {
				return i
			}
		}
		return -1
	}

	byStartRow := func(t *model.Table) int {
		return startRow
	}

	return Locate(t, byColumnTitle, byStartRow)
}

// firstCellMatches 在 [from, to) 行范围内找第一列等于任一标签或包含任一关键词的行。
// 精确与包含在同一行上判断，保证取到最早命中的行。
func firstCellMatches(exact, contains []string, from, to int) LocateStrategy {
	return func(t *model.Table) int {
		for i := from; i < min(to, t.RowCount()); i++ {
			cell := CleanText(t.Cell(i, 0))
			if cell == "" {
				continue
			}
			for _, label := range exact {
				if cell == label {
					return i
				}
			}
			if ContainsAny(cell, contains) {
				return i
			}
		}
		return -1
	}
}

// locateQualitySection 定位质量合规区块的表头行
func locateQualitySection(t *model.Table, rules *Rules) int {
	return Locate(t, firstCellMatches(rules.QualitySectionExact, rules.QualitySectionContains, 0, wholeTable))
}

// locateLogisticsSection 定位物流区块的标题行
func locateLogisticsSection(t *model.Table, rules *Rules) int {
	return Locate(t, firstCellMatches(rules.LogisticsSectionExact, rules.LogisticsSectionContains, 0, wholeTable))
}

// locateLogisticsRange 在物流区块内定位"配送范围"子表头行
func locateLogisticsRange(t *model.Table, sectionRow int, rules *Rules) int {
	window := min(t.RowCount(), sectionRow+10)
	return Locate(t, firstCellMatches(rules.LogisticsRangeExact, rules.LogisticsRangeContains, sectionRow, window))
}
