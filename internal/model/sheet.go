package model

// SheetType 工作表类型（按表名关键字识别）
type SheetType string

const (
	SheetTypeUnknown   SheetType = "unknown"
	SheetTypeBasicInfo SheetType = "basic_info" // 基础经营信息表
	SheetTypeQuality   SheetType = "quality"    // 质量合规表
	SheetTypeFinancial SheetType = "financial"  // 财务数据表
)

// Sheet 一个已读入的工作表
type Sheet struct {
	Name  string
	Table Table
}
