package exporter

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"agritrace/internal/model"
)

// topCategoryCount 频次统计展示的品类数量上限
const topCategoryCount = 15

// PrintStats 输出提取统计：各合作社品类数量、高频品类、财务数据覆盖率、示范社数量
func PrintStats(coops []*model.Cooperative, categories []model.Category) {
	fmt.Println("\n品类统计信息:")

	fmt.Println("\n各合作社品类数量:")
	for _, coop := range coops {
		fmt.Printf("  %s: %d个品类\n", ellipsis(coop.DisplayName(), 30), len(coop.Categories))
	}

	counts := map[string]int{}
	for i := range categories {
		if name := categories[i].Name; name != "" {
			counts[name]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	// 同频次的品类按中文排序，保证输出稳定
	coll := collate.New(language.Chinese)
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return coll.CompareString(names[i], names[j]) < 0
	})
	if len(names) > topCategoryCount {
		names = names[:topCategoryCount]
	}

	fmt.Printf("\n最常见品类 (前%d):\n", topCategoryCount)
	for _, name := range names {
		fmt.Printf("  %s: %d次\n", ellipsis(name, 25), counts[name])
	}

	withFinancial := 0
	for i := range categories {
		if categories[i].AnnualSales > 0 {
			withFinancial++
		}
	}
	if len(categories) > 0 {
		pct := int(float64(withFinancial)/float64(len(categories))*100 + 0.5)
		fmt.Printf("\n有财务数据的品类: %d/%d (%d%%)\n", withFinancial, len(categories), pct)
	}

	demonstration := 0
	for _, coop := range coops {
		if coop.IsDemonstrationLevel() {
			demonstration++
		}
	}
	fmt.Printf("示范社数量: %d/%d\n", demonstration, len(coops))
}

// ellipsis 超长名称截断，留出省略号
func ellipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
