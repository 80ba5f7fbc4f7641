package parser

import (
	"strings"

	"agritrace/internal/model"
)

// SheetRecognizer 按表名关键字对工作表分类
type SheetRecognizer struct {
	rules *Rules
}

// NewSheetRecognizer 创建识别器
func NewSheetRecognizer(rules *Rules) *SheetRecognizer {
	return &SheetRecognizer{rules: rules}
}

// Recognize 识别工作表类型。关键字按 基础信息 → 质量 → 财务 的顺序判断，
// "质量合规" 这类更长的关键字排在前面，避免被短词抢先命中。
func (r *SheetRecognizer) Recognize(sheetName string) model.SheetType {
	if containsAnyKeyword(sheetName, r.rules.BasicSheetKeywords) {
		return model.SheetTypeBasicInfo
	}
	if containsAnyKeyword(sheetName, r.rules.QualitySheetKeywords) {
		return model.SheetTypeQuality
	}
	if containsAnyKeyword(sheetName, r.rules.FinancialSheetKeywords) {
		return model.SheetTypeFinancial
	}
	return model.SheetTypeUnknown
}

func containsAnyKeyword(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
