package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agritrace/internal/model"
)

func sampleCategory() model.Category {
	return model.Category{
		ID:                   "coop_test_1_cat_0",
		Name:                 "黄桃",
		Season:               "7-8月",
		Description:          strings.Repeat("优质黄桃，", 30),
		PlantingArea:         50,
		AnnualOutput:         80,
		AnnualSales:          80,
		AnnualRevenue:        16,
		PricePerTon:          2333.33,
		CooperativeID:        "coop_test_1",
		CooperativeName:      "示例合作社",
		CooperativeLevel:     "是",
		QualityCertification: "ISO9001",
	}
}

func TestWriteSimplified_Shape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, err := NewEmitter(dir)
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}

	if err := e.WriteSimplified([]model.Category{sampleCategory()}); err != nil {
		t.Fatalf("write simplified: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "categories-simple.json"))
	if err != nil {
		t.Fatalf("read simplified: %v", err)
	}

	var data model.SimplifiedData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("decode simplified: %v", err)
	}

	if data.Metadata.Total != 1 || data.Metadata.Version != "1.0" {
		t.Fatalf("unexpected metadata: %+v", data.Metadata)
	}

	cat := data.Categories[0]
	if cat.Stats.PricePerTon != 2333 {
		t.Fatalf("pricePerTon should be rounded, got=%v", cat.Stats.PricePerTon)
	}
	if n := len([]rune(cat.Description)); n != 103 || !strings.HasSuffix(cat.Description, "...") {
		t.Fatalf("description should be truncated to 100 runes plus ellipsis, got %d runes", n)
	}
	if cat.Cooperative.Name != "示例合作社" || cat.Cooperative.Quality != "ISO9001" {
		t.Fatalf("unexpected cooperative info: %+v", cat.Cooperative)
	}

	wantTags := []string{"示范社:是", "认证:ISO9001", "上市期:7-8月", "有销售数据"}
	if len(cat.Tags) != len(wantTags) {
		t.Fatalf("tags want=%v got=%v", wantTags, cat.Tags)
	}
	for i := range wantTags {
		if cat.Tags[i] != wantTags[i] {
			t.Fatalf("tags want=%v got=%v", wantTags, cat.Tags)
		}
	}
}

func TestWriteSummary_DigestAndFlatViews(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, err := NewEmitter(dir)
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}

	cat := sampleCategory()
	coop := &model.Cooperative{
		ID:         "coop_test_1",
		SourceFile: "示例.xlsx",
		BasicInfo:  model.BasicInfo{Name: "示例合作社", IsDemonstration: "是", Contact: "张三"},
		Categories: []model.Category{cat},
	}

	if err := e.WriteSummary([]*model.Cooperative{coop}, []model.Category{cat}, []string{"示例.xlsx"}); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "categories.json"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}

	var summary model.CategoriesSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}

	if summary.Metadata.TotalCooperatives != 1 || summary.Metadata.TotalCategories != 1 {
		t.Fatalf("unexpected metadata: %+v", summary.Metadata)
	}
	if len(summary.Metadata.SourceFiles) != 1 || summary.Metadata.SourceFiles[0] != "示例.xlsx" {
		t.Fatalf("unexpected source files: %v", summary.Metadata.SourceFiles)
	}

	digest := summary.Cooperatives[0]
	if digest.Name != "示例合作社" || digest.Level != "是" || digest.CategoryCount != 1 {
		t.Fatalf("unexpected digest: %+v", digest)
	}
	if !digest.Categories[0].HasFinancialData {
		t.Fatalf("category with sales and revenue should flag financial data")
	}

	flat := summary.AllCategories[0]
	if flat.CooperativeName != "示例合作社" || flat.PricePerTon != 2333.33 {
		t.Fatalf("unexpected flat category: %+v", flat)
	}
}

func TestWriteSummary_UnnamedCooperativeShortPlaceholder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, err := NewEmitter(dir)
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}

	coop := &model.Cooperative{ID: "coop_test_1"}
	if err := e.WriteSummary([]*model.Cooperative{coop}, nil, nil); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "categories.json"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var summary model.CategoriesSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}

	// 汇总视图里的占位名比明细文件名的短
	if got := summary.Cooperatives[0].Name; got != "未命名" {
		t.Fatalf("digest name want=未命名 got=%q", got)
	}
}

func TestWriteCooperatives_SafeFileNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, err := NewEmitter(dir)
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}

	coops := []*model.Cooperative{
		{ID: "coop_test_1", BasicInfo: model.BasicInfo{Name: "示例/合作社"}},
		{ID: "coop_test_2"},
	}
	if written := e.WriteCooperatives(coops); written != 2 {
		t.Fatalf("want 2 files written got=%d", written)
	}

	for _, name := range []string{"示例_合作社.json", model.DefaultCooperativeName + ".json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing output file %s: %v", name, err)
		}
	}
}

func TestAppendErrors_OneJSONPerLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, err := NewEmitter(dir)
	if err != nil {
		t.Fatalf("new emitter: %v", err)
	}

	entry := model.ErrorEntry{File: "坏文件.xlsx", Error: "文件验证失败: 文件为空", Timestamp: "2026-01-01T00:00:00Z"}
	if err := e.AppendErrors([]model.ErrorEntry{entry}); err != nil {
		t.Fatalf("append errors: %v", err)
	}
	if err := e.AppendErrors([]model.ErrorEntry{entry}); err != nil {
		t.Fatalf("append errors again: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "error-log.json"))
	if err != nil {
		t.Fatalf("read error log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines got=%d: %q", len(lines), raw)
	}
	for _, line := range lines {
		var decoded model.ErrorEntry
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Fatalf("line is not standalone JSON: %v", err)
		}
		if decoded.File != "坏文件.xlsx" {
			t.Fatalf("unexpected entry: %+v", decoded)
		}
	}
}
