package parser

// FieldRule 标签到基本信息字段的映射规则，按序匹配，先命中者生效
type FieldRule struct {
	Label   string
	Field   string
	Numeric bool
}

// Rules 各区块定位与解析使用的关键词规则表。
// 全部以显式配置传入流水线，便于用合成表格测试。
type Rules struct {
	// 基本信息区块
	BasicHeaderExact     []string
	BasicHeaderContains  []string
	BasicFields          []FieldRule
	DemonstrationKeyword string
	BasicStopKeywords    []string

	// 品类列表区块
	CategorySectionKeywords []string
	CategoryHeaderExact     []string
	CategoryStopKeywords    []string

	// 财务数据区块
	FinancialSectionExact    []string
	FinancialSectionContains []string
	FinancialHeaderContains  []string
	TotalKeywords            []string
	SpuriousDates            []string

	// 质量合规区块
	QualitySectionExact    []string
	QualitySectionContains []string

	// 物流区块
	LogisticsSectionExact    []string
	LogisticsSectionContains []string
	LogisticsRangeExact      []string
	LogisticsRangeContains   []string

	// 工作表名称分类
	BasicSheetKeywords     []string
	QualitySheetKeywords   []string
	FinancialSheetKeywords []string

	// 多合作社汇总工作簿的文件名
	SummaryWorkbooks []string
}

// DefaultRules 返回默认规则表
func DefaultRules() *Rules {
	return &Rules{
		BasicHeaderExact:    []string{"填写项目", "项目"},
		BasicHeaderContains: []string{"合作社"},
		BasicFields: []FieldRule{
			{Label: "企业名称", Field: "name"},
			{Label: "负责人姓名", Field: "contact"},
			{Label: "联系电话", Field: "phone"},
			{Label: "成立时间", Field: "establishedDate"},
			{Label: "注册资本（万元）", Field: "registeredCapital", Numeric: true},
			{Label: "员工数量（户）", Field: "employees", Numeric: true},
			{Label: "总种植面积（亩）", Field: "plantingArea", Numeric: true},
			{Label: "是否示范社", Field: "isDemonstration"},
			{Label: "荣获资质/曾获荣誉", Field: "honors"},
			{Label: "合作社名称", Field: "name"},
			{Label: "负责人", Field: "contact"},
			{Label: "电话", Field: "phone"},
		},
		DemonstrationKeyword: "示范社",
		BasicStopKeywords:    []string{"核心优势品类", "核心品类", "物流方面", "质量合规"},

		CategorySectionKeywords: []string{"核心优势品类", "核心品类", "主要品类", "经营品类"},
		CategoryHeaderExact:     []string{"核心品类名称", "品类名称"},
		CategoryStopKeywords: []string{
			"物流方面", "物流配送范围", "质量合规", "财务数据", "合作社", "合计",
		},

		FinancialSectionExact:    []string{"品类名称及单价"},
		FinancialSectionContains: []string{"财务数据", "销售额", "销量"},
		FinancialHeaderContains:  []string{"品类", "产品", "名称"},
		TotalKeywords:            []string{"合计", "总计", "小计"},
		// Excel 纪元附近的日期解码伪影，出现在财务表边界时视为表结束。
		// 其他地区的纪元偏移可能需要扩充此表。
		SpuriousDates: []string{
			"1899-12-29", "1899-12-30", "1899-12-31",
			"1900-01-01", "1900-01-02", "1900-01-03",
		},

		QualitySectionExact:    []string{"合作社（公司）名称"},
		QualitySectionContains: []string{"质量合规", "质量体系"},

		LogisticsSectionExact:    []string{"物流方面"},
		LogisticsSectionContains: []string{"物流配送", "运输方式"},
		LogisticsRangeExact:      []string{"物流配送范围"},
		LogisticsRangeContains:   []string{"配送范围"},

		BasicSheetKeywords:     []string{"基础经营信息", "基本信息", "合作社信息"},
		QualitySheetKeywords:   []string{"质量合规", "质量"},
		FinancialSheetKeywords: []string{"财务数据", "财务"},

		SummaryWorkbooks: []string{"数据汇总.xlsx", "数据汇总.xls"},
	}
}

// IsSummaryWorkbook 判断文件名是否为多合作社汇总工作簿
func (r *Rules) IsSummaryWorkbook(filename string) bool {
	for _, name := range r.SummaryWorkbooks {
		if filename == name {
			return true
		}
	}
	return false
}
