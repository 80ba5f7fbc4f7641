package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeCooperativeWorkbook 生成一个单表合作社工作簿：
// 基本信息、品类列表、财务数据都在同一张表上
func writeCooperativeWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	rows := map[string][]interface{}{
		"A1":  {"合作社基本信息表"},
		"A2":  {"企业名称", "示例合作社"},
		"A3":  {"负责人姓名", "张三"},
		"A4":  {"联系电话", "13800000000"},
		"A5":  {"是否示范社", "是"},
		"A7":  {"核心优势品类"},
		"A8":  {"序号", "核心品类名称", "上市期", "品类介绍"},
		"A9":  {"1.", "黄桃", "7-8月", "优质黄桃"},
		"A11": {"财务数据"},
		"A12": {"黄桃", 50, 80, 80, 16},
		"A13": {"合计", 50, 80, 80, 16},
	}
	for cell, row := range rows {
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow %s: %v", cell, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestRun_SingleCooperativeWorkbook(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCooperativeWorkbook(t, filepath.Join(dir, "示例合作社.xlsx"))

	c := NewCoordinator(Options{IDSalt: "test"})
	result, err := c.Run(dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Cooperatives) != 1 {
		t.Fatalf("want 1 cooperative got=%d", len(result.Cooperatives))
	}

	coop := result.Cooperatives[0]
	if coop.ID != "coop_test_1" {
		t.Fatalf("id want=coop_test_1 got=%q", coop.ID)
	}
	if coop.BasicInfo.Name != "示例合作社" {
		t.Fatalf("name want=示例合作社 got=%q", coop.BasicInfo.Name)
	}
	if coop.BasicInfo.IsDemonstration != "是" {
		t.Fatalf("isDemonstration want=是 got=%q", coop.BasicInfo.IsDemonstration)
	}

	if len(coop.Categories) != 1 {
		t.Fatalf("want 1 category got=%d: %+v", len(coop.Categories), coop.Categories)
	}
	cat := coop.Categories[0]
	if cat.ID != "coop_test_1_cat_0" {
		t.Fatalf("category id want=coop_test_1_cat_0 got=%q", cat.ID)
	}
	if cat.Name != "黄桃" || cat.Season != "7-8月" {
		t.Fatalf("unexpected category: %+v", cat)
	}
	if cat.AnnualSales != 80 || cat.AnnualRevenue != 16 {
		t.Fatalf("unexpected financials: %+v", cat)
	}
	if cat.PricePerTon != 2000 {
		t.Fatalf("pricePerTon want=2000 got=%v", cat.PricePerTon)
	}
	if cat.CooperativeName != "示例合作社" || cat.CooperativeLevel != "是" {
		t.Fatalf("cooperative fields not backfilled: %+v", cat)
	}
	if cat.SourceFile != "" {
		t.Fatalf("single workbooks must not carry sheet provenance, got=%q", cat.SourceFile)
	}

	if len(result.Categories) != 1 || len(result.Errors) != 0 {
		t.Fatalf("unexpected totals: categories=%d errors=%d", len(result.Categories), len(result.Errors))
	}
}

func TestRun_SummaryWorkbook_OneCooperativePerSheet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "绿野合作社"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := f.NewSheet("山泉合作社"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	for _, sheet := range []string{"绿野合作社", "山泉合作社"} {
		title := []interface{}{"核心优势品类"}
		row := []interface{}{"1.", "苹果", "9-10月"}
		if err := f.SetSheetRow(sheet, "A1", &title); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
		if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, "数据汇总.xlsx")); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	c := NewCoordinator(Options{IDSalt: "test"})
	result, err := c.Run(dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Cooperatives) != 2 {
		t.Fatalf("want 2 cooperatives got=%d", len(result.Cooperatives))
	}
	if result.Cooperatives[0].BasicInfo.Name != "绿野合作社" {
		t.Fatalf("sheet name should become cooperative name, got=%q", result.Cooperatives[0].BasicInfo.Name)
	}

	if len(result.Categories) != 2 {
		t.Fatalf("want 2 flattened categories got=%d", len(result.Categories))
	}
	flat := result.Categories[0]
	if flat.SourceFile != "数据汇总.xlsx" || flat.SourceSheet != "绿野合作社" {
		t.Fatalf("flattened category missing provenance: %+v", flat)
	}
	// 原始合作社上的品类不带来源字段，只有扁平副本带
	if result.Cooperatives[0].Categories[0].SourceFile != "" {
		t.Fatalf("provenance leaked onto cooperative category")
	}
}

func TestRun_BlankTrailingCellKeepsFinancialBlockAlive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	rows := map[string][]interface{}{
		"A1": {"财务数据"},
		"A2": {"黄桃", 50, 80, 80, 16},
		"A3": {"苹果", 10, 20, 30}, // 销售额未填，E 列空白
		"A4": {"雪梨", 5, 6, 7, 8},
	}
	for cell, row := range rows {
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow %s: %v", cell, err)
		}
	}
	if err := f.SaveAs(filepath.Join(dir, "财务.xlsx")); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	c := NewCoordinator(Options{IDSalt: "test"})
	result, err := c.Run(dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	cats := result.Cooperatives[0].Categories
	if len(cats) != 3 {
		t.Fatalf("rows after the blank cell must survive, want 3 categories got=%d: %+v", len(cats), cats)
	}
	if cats[0].Name != "黄桃" || cats[1].Name != "苹果" || cats[2].Name != "雪梨" {
		t.Fatalf("unexpected category names: %+v", cats)
	}
	if cats[1].AnnualRevenue != 0 || cats[1].PricePerTon != 0 {
		t.Fatalf("blank revenue should read as zero: %+v", cats[1])
	}
	if cats[2].AnnualSales != 7 || cats[2].AnnualRevenue != 8 {
		t.Fatalf("unexpected financials: %+v", cats[2])
	}
}

func TestRun_BadFileRecordedAndRunContinues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCooperativeWorkbook(t, filepath.Join(dir, "好文件.xlsx"))
	if err := os.WriteFile(filepath.Join(dir, "坏文件.xlsx"), nil, 0644); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	c := NewCoordinator(Options{IDSalt: "test"})
	result, err := c.Run(dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Cooperatives) != 1 {
		t.Fatalf("good workbook should still be extracted, got=%d", len(result.Cooperatives))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("want 1 error entry got=%d: %+v", len(result.Errors), result.Errors)
	}
	entry := result.Errors[0]
	if entry.File != "坏文件.xlsx" || entry.Error == "" || entry.Timestamp == "" {
		t.Fatalf("unexpected error entry: %+v", entry)
	}
}

func TestRun_SkipsOfficeTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCooperativeWorkbook(t, filepath.Join(dir, "示例合作社.xlsx"))
	if err := os.WriteFile(filepath.Join(dir, "~$示例合作社.xlsx"), []byte("x"), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	c := NewCoordinator(Options{IDSalt: "test"})
	result, err := c.Run(dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.SourceFiles) != 1 || len(result.Errors) != 0 {
		t.Fatalf("temp file should be ignored: files=%v errors=%+v", result.SourceFiles, result.Errors)
	}
}

func TestScanSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeCooperativeWorkbook(t, filepath.Join(dir, "示例合作社.xlsx"))

	files, err := ScanSource(dir)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(files) != 1 || files[0] != "示例合作社.xlsx" {
		t.Fatalf("unexpected files: %v", files)
	}

	if _, err := ScanSource(filepath.Join(dir, "不存在")); !errors.Is(err, ErrNoSourceDir) {
		t.Fatalf("want ErrNoSourceDir got=%v", err)
	}
	if _, err := ScanSource(t.TempDir()); !errors.Is(err, ErrNoWorkbooks) {
		t.Fatalf("want ErrNoWorkbooks got=%v", err)
	}
}

func TestRun_FatalSetupErrors(t *testing.T) {
	t.Parallel()

	c := NewCoordinator(Options{})

	if _, err := c.Run(filepath.Join(t.TempDir(), "不存在")); !errors.Is(err, ErrNoSourceDir) {
		t.Fatalf("want ErrNoSourceDir got=%v", err)
	}

	empty := t.TempDir()
	if err := os.WriteFile(filepath.Join(empty, "说明.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := c.Run(empty); !errors.Is(err, ErrNoWorkbooks) {
		t.Fatalf("want ErrNoWorkbooks got=%v", err)
	}
}
