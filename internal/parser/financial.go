package parser

import (
	"unicode/utf8"

	"agritrace/internal/model"
)

// MergeFinancial 扫描财务数据区块，将每行产品按名称归并进已有品类：
// 命中时覆盖该品类的四个财务字段并重算吨单价，未命中时合成一条新品类追加。
// 归并不会失败：没有品类列表时，财务表就是品类的唯一来源。
// 输入切片不被修改，返回归并后的新切片。
func MergeFinancial(t *model.Table, categories []model.Category, rules *Rules) []model.Category {
	merged := make([]model.Category, len(categories))
	copy(merged, categories)

	start := locateFinancialSection(t, rules)
	if start < 0 {
		return merged
	}
	header := locateFinancialHeader(t, start, rules)

	for i := header; i < t.RowCount(); i++ {
		row := t.Row(i)
		if len(row) < 5 {
			break
		}

		name := CleanText(row.Cell(0))
		if name == "" || ContainsAny(name, rules.TotalKeywords) || isSpuriousDate(name, rules) {
			break
		}

		name = reEnumPrefix.ReplaceAllString(name, "")

		plantingArea := CleanNumber(row.Cell(1))
		annualOutput := CleanNumber(row.Cell(2))
		annualSales := CleanNumber(row.Cell(3))
		annualRevenue := CleanNumber(row.Cell(4))

		matched := false
		for j := range merged {
			if NamesMatch(name, merged[j].Name) {
				merged[j].PlantingArea = plantingArea
				merged[j].AnnualOutput = annualOutput
				merged[j].AnnualSales = annualSales
				merged[j].AnnualRevenue = annualRevenue
				if price, ok := pricePerTon(annualSales, annualRevenue); ok {
					merged[j].PricePerTon = price
				}
				matched = true
				break
			}
		}

		if !matched && name != "" && utf8.RuneCountInString(name) >= 2 {
			cat := model.Category{
				Name:          name,
				PlantingArea:  plantingArea,
				AnnualOutput:  annualOutput,
				AnnualSales:   annualSales,
				AnnualRevenue: annualRevenue,
			}
			if price, ok := pricePerTon(annualSales, annualRevenue); ok {
				cat.PricePerTon = price
			}
			merged = append(merged, cat)
		}
	}

	return merged
}

// pricePerTon 由年销量（吨）和年销售额（万元）推导吨单价（元/吨）
func pricePerTon(annualSales, annualRevenue float64) (float64, bool) {
	if annualSales > 0 && annualRevenue > 0 {
		return annualRevenue * 10000 / annualSales, true
	}
	return 0, false
}

// isSpuriousDate 判断首列文本是否为纪元附近的日期解码伪影
func isSpuriousDate(name string, rules *Rules) bool {
	for _, d := range rules.SpuriousDates {
		if name == d {
			return true
		}
	}
	return false
}
