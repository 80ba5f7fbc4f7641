package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"agritrace/internal/model"
)

const (
	summaryFilename    = "categories.json"
	simplifiedFilename = "categories-simple.json"
	errorLogFilename   = "error-log.json"

	// 简化产物里描述文本的截断长度
	maxDescriptionRunes = 100
	simplifiedVersion   = "1.0"
)

// Emitter 把提取结果写成前端消费的 JSON 产物
type Emitter struct {
	outputDir string
}

// NewEmitter 创建输出器并确保输出目录存在
func NewEmitter(outputDir string) (*Emitter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	return &Emitter{outputDir: outputDir}, nil
}

// WriteCooperatives 每个合作社写一个明细 JSON 文件。
// 单个文件写失败只记日志，继续写其余合作社；返回成功写出的数量。
func (e *Emitter) WriteCooperatives(coops []*model.Cooperative) int {
	written := 0
	for _, coop := range coops {
		fileName := SafeFilename(coop.DisplayName()) + ".json"
		if err := e.writeJSON(fileName, coop); err != nil {
			log.Printf("保存合作社 %s 数据失败: %v", coop.DisplayName(), err)
			continue
		}
		fmt.Printf("%s (%d个品类)\n", fileName, len(coop.Categories))
		written++
	}
	return written
}

// WriteSummary 写出 categories.json：运行元信息 + 嵌套视图 + 扁平视图
func (e *Emitter) WriteSummary(coops []*model.Cooperative, categories []model.Category, sourceFiles []string) error {
	now := time.Now()

	summary := model.CategoriesSummary{
		Metadata: model.SummaryMetadata{
			TotalCooperatives: len(coops),
			TotalCategories:   len(categories),
			GeneratedAt:       now.UTC().Format(time.RFC3339),
			SourceFiles:       sourceFiles,
			ProcessingDate:    fmt.Sprintf("%d/%d/%d", now.Year(), int(now.Month()), now.Day()),
		},
		Cooperatives:  make([]model.CooperativeDigest, 0, len(coops)),
		AllCategories: make([]model.FlatCategory, 0, len(categories)),
	}

	for _, coop := range coops {
		digest := model.CooperativeDigest{
			ID:            coop.ID,
			Name:          digestName(coop),
			Level:         coop.BasicInfo.IsDemonstration,
			Contact:       coop.BasicInfo.Contact,
			Phone:         coop.BasicInfo.Phone,
			PlantingArea:  coop.BasicInfo.PlantingArea,
			CategoryCount: len(coop.Categories),
			Categories:    make([]model.CategoryDigest, 0, len(coop.Categories)),
		}
		for i := range coop.Categories {
			cat := &coop.Categories[i]
			digest.Categories = append(digest.Categories, model.CategoryDigest{
				ID:               cat.ID,
				Name:             cat.Name,
				Season:           cat.Season,
				HasFinancialData: cat.HasFinancialData(),
			})
		}
		summary.Cooperatives = append(summary.Cooperatives, digest)
	}

	for i := range categories {
		cat := &categories[i]
		summary.AllCategories = append(summary.AllCategories, model.FlatCategory{
			ID:                   cat.ID,
			Name:                 cat.Name,
			Season:               cat.Season,
			Description:          cat.Description,
			CooperativeName:      cat.CooperativeName,
			CooperativeLevel:     cat.CooperativeLevel,
			QualityCertification: cat.QualityCertification,
			PlantingArea:         cat.PlantingArea,
			AnnualOutput:         cat.AnnualOutput,
			AnnualSales:          cat.AnnualSales,
			AnnualRevenue:        cat.AnnualRevenue,
			PricePerTon:          cat.PricePerTon,
		})
	}

	if err := e.writeJSON(summaryFilename, summary); err != nil {
		return fmt.Errorf("创建汇总文件失败: %w", err)
	}
	fmt.Printf("\n%s (汇总文件)\n", summaryFilename)
	return nil
}

// WriteSimplified 写出 categories-simple.json：
// 描述截断、单价取整、按字段生成筛选标签，形态与前端数据层约定一致
func (e *Emitter) WriteSimplified(categories []model.Category) error {
	data := model.SimplifiedData{
		Metadata: model.SimplifiedMetadata{
			Total:       len(categories),
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
			Version:     simplifiedVersion,
		},
		Categories: make([]model.SimplifiedCategory, 0, len(categories)),
	}

	for i := range categories {
		cat := &categories[i]
		data.Categories = append(data.Categories, model.SimplifiedCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Season:      cat.Season,
			Description: truncateDescription(cat.Description),
			Cooperative: model.SimplifiedCooperative{
				Name:    cat.CooperativeName,
				Level:   cat.CooperativeLevel,
				Quality: cat.QualityCertification,
			},
			Stats: model.CategoryStats{
				PlantingArea:  cat.PlantingArea,
				AnnualOutput:  cat.AnnualOutput,
				AnnualSales:   cat.AnnualSales,
				AnnualRevenue: cat.AnnualRevenue,
				PricePerTon:   math.Round(cat.PricePerTon),
			},
			Tags: buildTags(cat),
		})
	}

	if err := e.writeJSON(simplifiedFilename, data); err != nil {
		return fmt.Errorf("创建简化文件失败: %w", err)
	}
	fmt.Printf("%s (简化版)\n", simplifiedFilename)
	return nil
}

// AppendErrors 把失败记录逐行追加到错误日志，一行一个 JSON 对象
func (e *Emitter) AppendErrors(entries []model.ErrorEntry) error {
	if len(entries) == 0 {
		return nil
	}

	path := filepath.Join(e.outputDir, errorLogFilename)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("无法写入错误日志: %w", err)
	}
	defer f.Close()

	for _, entry := range entries {
		line, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if _, err := f.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("无法写入错误日志: %w", err)
		}
	}
	return nil
}

// digestName 嵌套视图里的合作社名称，未命名时用比文件名更短的占位名
func digestName(coop *model.Cooperative) string {
	if coop.BasicInfo.Name != "" {
		return coop.BasicInfo.Name
	}
	return "未命名"
}

// buildTags 生成前端筛选标签，来源字段为空的标签不输出
func buildTags(cat *model.Category) []string {
	tags := []string{}
	if cat.CooperativeLevel != "" {
		tags = append(tags, "示范社:"+cat.CooperativeLevel)
	}
	if cat.QualityCertification != "" {
		tags = append(tags, "认证:"+cat.QualityCertification)
	}
	if cat.Season != "" {
		tags = append(tags, "上市期:"+cat.Season)
	}
	if cat.AnnualSales > 0 {
		tags = append(tags, "有销售数据")
	}
	return tags
}

func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) > maxDescriptionRunes {
		return string(runes[:maxDescriptionRunes]) + "..."
	}
	return s
}

// writeJSON 带缩进写出一个 JSON 文件，中文不做 HTML 转义
func (e *Emitter) writeJSON(fileName string, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(e.outputDir, fileName), buf.Bytes(), 0644)
}
