package model

// SummaryMetadata categories.json 的元信息
type SummaryMetadata struct {
	TotalCooperatives int      `json:"totalCooperatives"`
	TotalCategories   int      `json:"totalCategories"`
	GeneratedAt       string   `json:"generatedAt"`
	SourceFiles       []string `json:"sourceFiles"`
	ProcessingDate    string   `json:"processingDate"`
}

// CategoryDigest 嵌套视图中的品类摘要
type CategoryDigest struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Season           string `json:"season"`
	HasFinancialData bool   `json:"hasFinancialData"`
}

// CooperativeDigest 嵌套视图中的合作社摘要
type CooperativeDigest struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Level         string           `json:"level"`
	Contact       string           `json:"contact"`
	Phone         string           `json:"phone"`
	PlantingArea  float64          `json:"plantingArea"`
	CategoryCount int              `json:"categoryCount"`
	Categories    []CategoryDigest `json:"categories"`
}

// FlatCategory 扁平视图中的品类记录
type FlatCategory struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Season               string  `json:"season"`
	Description          string  `json:"description"`
	CooperativeName      string  `json:"cooperativeName"`
	CooperativeLevel     string  `json:"cooperativeLevel"`
	QualityCertification string  `json:"qualityCertification"`
	PlantingArea         float64 `json:"plantingArea"`
	AnnualOutput         float64 `json:"annualOutput"`
	AnnualSales          float64 `json:"annualSales"`
	AnnualRevenue        float64 `json:"annualRevenue"`
	PricePerTon          float64 `json:"pricePerTon"`
}

// CategoriesSummary categories.json 汇总产物
type CategoriesSummary struct {
	Metadata      SummaryMetadata     `json:"metadata"`
	Cooperatives  []CooperativeDigest `json:"cooperatives"`
	AllCategories []FlatCategory      `json:"allCategories"`
}

// SimplifiedMetadata categories-simple.json 的元信息
type SimplifiedMetadata struct {
	Total       int    `json:"total"`
	LastUpdated string `json:"lastUpdated"`
	Version     string `json:"version"`
}

// SimplifiedCooperative 简化视图中内嵌的合作社信息
type SimplifiedCooperative struct {
	Name    string `json:"name"`
	Level   string `json:"level"`
	Quality string `json:"quality"`
}

// CategoryStats 简化视图中的数值统计
type CategoryStats struct {
	PlantingArea  float64 `json:"plantingArea"`
	AnnualOutput  float64 `json:"annualOutput"`
	AnnualSales   float64 `json:"annualSales"`
	AnnualRevenue float64 `json:"annualRevenue"`
	PricePerTon   float64 `json:"pricePerTon"`
}

// SimplifiedCategory 简化视图中的品类记录，描述截断、单价取整
type SimplifiedCategory struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Season      string                `json:"season"`
	Description string                `json:"description"`
	Cooperative SimplifiedCooperative `json:"cooperative"`
	Stats       CategoryStats         `json:"stats"`
	Tags        []string              `json:"tags"`
}

// SimplifiedData categories-simple.json 产物，前端数据层的精确消费形态
type SimplifiedData struct {
	Metadata   SimplifiedMetadata   `json:"metadata"`
	Categories []SimplifiedCategory `json:"categories"`
}

// ErrorEntry 错误日志中的一行记录
type ErrorEntry struct {
	File      string `json:"file"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}
