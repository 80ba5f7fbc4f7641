package model

import (
	"strings"
	"time"
)

// BasicInfo 合作社基本信息（字段允许缺失，缺失即零值）
type BasicInfo struct {
	Name              string  `json:"name,omitempty"`
	Contact           string  `json:"contact,omitempty"`
	Phone             string  `json:"phone,omitempty"`
	EstablishedDate   string  `json:"establishedDate,omitempty"`
	RegisteredCapital float64 `json:"registeredCapital,omitempty"`
	Employees         float64 `json:"employees,omitempty"`
	PlantingArea      float64 `json:"plantingArea,omitempty"`
	IsDemonstration   string  `json:"isDemonstration,omitempty"`
	Honors            string  `json:"honors,omitempty"`
}

// IsZero 是否未提取到任何字段
func (b BasicInfo) IsZero() bool {
	return b == BasicInfo{}
}

// QualityInfo 质量合规信息
type QualityInfo struct {
	QualitySystem     string `json:"qualitySystem,omitempty"`
	PesticideRecords  string `json:"pesticideRecords,omitempty"`
	GreenControl      string `json:"greenControl,omitempty"`
	DetectionMethod   string `json:"detectionMethod,omitempty"`
	DetectionCount    string `json:"detectionCount,omitempty"`
	EvidenceMaterials string `json:"evidenceMaterials,omitempty"`
}

// IsZero 是否未提取到任何字段
func (q QualityInfo) IsZero() bool {
	return q == QualityInfo{}
}

// LogisticsInfo 物流信息
type LogisticsInfo struct {
	Range    string `json:"range,omitempty"`
	Method   string `json:"method,omitempty"`
	Duration string `json:"duration,omitempty"`
	Mode     string `json:"mode,omitempty"`
}

// IsZero 是否未提取到任何字段
func (l LogisticsInfo) IsZero() bool {
	return l == LogisticsInfo{}
}

// Category 一个品类记录，归属于唯一的合作社
// cooperativeXxx 字段为冗余回填，供脱离合作社上下文的扁平消费方使用
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Season      string `json:"season"`
	Description string `json:"description"`

	PlantingArea  float64 `json:"plantingArea"`
	AnnualOutput  float64 `json:"annualOutput"`
	AnnualSales   float64 `json:"annualSales"`
	AnnualRevenue float64 `json:"annualRevenue"`
	PricePerTon   float64 `json:"pricePerTon"`

	CooperativeID        string `json:"cooperativeId"`
	CooperativeName      string `json:"cooperativeName"`
	CooperativeLevel     string `json:"cooperativeLevel"`
	QualityCertification string `json:"qualityCertification"`

	SourceFile  string `json:"sourceFile,omitempty"`
	SourceSheet string `json:"sourceSheet,omitempty"`
}

// HasFinancialData 是否带有财务数据
func (c *Category) HasFinancialData() bool {
	return c.AnnualSales > 0 && c.AnnualRevenue > 0
}

// Cooperative 一个合作社的完整提取结果
type Cooperative struct {
	ID          string        `json:"id"`
	SourceFile  string        `json:"sourceFile"`
	SheetName   string        `json:"sheetName,omitempty"`
	SheetNames  []string      `json:"sheetNames,omitempty"`
	BasicInfo   BasicInfo     `json:"basicInfo"`
	Categories  []Category    `json:"categories"`
	Quality     QualityInfo   `json:"quality"`
	Logistics   LogisticsInfo `json:"logistics"`
	ProcessedAt time.Time     `json:"processedAt"`
}

// DefaultCooperativeName 未提取到名称时的展示名
const DefaultCooperativeName = "未命名合作社"

// DisplayName 展示名称，未命名时返回占位名
func (c *Cooperative) DisplayName() string {
	if c.BasicInfo.Name != "" {
		return c.BasicInfo.Name
	}
	return DefaultCooperativeName
}

// IsDemonstrationLevel 判断是否算作示范社
// 与前端筛选保持一致：空值、"否"、"0"、"false" 均视为非示范社
func (c *Cooperative) IsDemonstrationLevel() bool {
	v := strings.ToLower(strings.TrimSpace(c.BasicInfo.IsDemonstration))
	if v == "" || v == "0" || v == "false" {
		return false
	}
	return !strings.Contains(v, "否")
}
