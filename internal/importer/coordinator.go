package importer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"agritrace/internal/model"
	"agritrace/internal/parser"
	"agritrace/internal/store"
	"agritrace/internal/workbook"
)

var (
	// ErrNoSourceDir Excel 目录不存在，属于致命启动错误
	ErrNoSourceDir = errors.New("excel 目录不存在")
	// ErrNoWorkbooks 目录中没有受支持的工作簿，属于致命启动错误
	ErrNoWorkbooks = errors.New("目录中没有 Excel 文件")
)

// Coordinator 提取协调器：扫描输入目录，逐个工作簿解析并汇总。
// 工作簿之间严格串行，单个文件的失败只记录错误，不中断整个运行。
type Coordinator struct {
	reader     *workbook.Reader
	recognizer *parser.SheetRecognizer
	rules      *parser.Rules
	ids        *IDGenerator
	store      *store.Store
}

// Options 协调器选项
type Options struct {
	MaxFileSize int64
	Rules       *parser.Rules // nil 时使用默认规则
	IDSalt      string        // 注入固定盐可让测试断言生成的 ID
	Store       *store.Store  // nil 时不记录运行历史
}

// NewCoordinator 创建协调器
func NewCoordinator(opts Options) *Coordinator {
	rules := opts.Rules
	if rules == nil {
		rules = parser.DefaultRules()
	}
	return &Coordinator{
		reader:     workbook.NewReader(opts.MaxFileSize),
		recognizer: parser.NewSheetRecognizer(rules),
		rules:      rules,
		ids:        NewIDGenerator(opts.IDSalt),
		store:      opts.Store,
	}
}

// Result 一次提取运行的汇总
type Result struct {
	Cooperatives []*model.Cooperative
	Categories   []model.Category // 跨合作社的扁平品类列表
	SourceFiles  []string
	Errors       []model.ErrorEntry
}

// ScanSource 校验输入目录并返回其中受支持的工作簿列表。
// 目录缺失或没有工作簿时返回致命错误；调用方应在创建任何输出
// （目录、历史库）之前先做这个检查。
func ScanSource(excelDir string) ([]string, error) {
	if info, err := os.Stat(excelDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoSourceDir, excelDir)
	}

	files, err := listWorkbooks(excelDir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoWorkbooks, excelDir)
	}
	return files, nil
}

// Run 执行一次完整的提取。目录缺失或没有工作簿时返回致命错误，
// 此时不产生任何输出。
func (c *Coordinator) Run(excelDir string) (*Result, error) {
	files, err := ScanSource(excelDir)
	if err != nil {
		return nil, err
	}

	fmt.Printf("找到 %d 个Excel文件:\n", len(files))
	for i, f := range files {
		fmt.Printf("  %d. %s\n", i+1, f)
	}

	var runID int64
	if c.store != nil {
		if runID, err = c.store.CreateRun(c.ids.Salt(), excelDir); err != nil {
			log.Printf("创建运行记录失败: %v", err)
			runID = 0
		}
	}

	result := &Result{SourceFiles: files}

	for _, file := range files {
		path := filepath.Join(excelDir, file)

		var coops []*model.Cooperative
		var err error
		if c.rules.IsSummaryWorkbook(file) {
			fmt.Printf("\n处理汇总文件: %s\n", file)
			coops, err = c.processSummaryFile(path, file)
		} else {
			fmt.Printf("\n处理文件: %s\n", file)
			var coop *model.Cooperative
			if coop, err = c.processFile(path, file); err == nil {
				coops = []*model.Cooperative{coop}
			}
		}

		if err != nil {
			log.Printf("处理文件 %s 失败: %v", file, err)
			result.Errors = append(result.Errors, model.ErrorEntry{
				File:      file,
				Error:     err.Error(),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})
			c.recordFile(runID, file, "error", nil, err)
			continue
		}

		for _, coop := range coops {
			fromSummary := coop.SheetName != ""
			for _, cat := range coop.Categories {
				if fromSummary {
					cat.SourceFile = coop.SourceFile
					cat.SourceSheet = coop.SheetName
				}
				result.Categories = append(result.Categories, cat)
			}
			fmt.Printf("提取完成: %s (%d个品类)\n", coop.DisplayName(), len(coop.Categories))
		}
		result.Cooperatives = append(result.Cooperatives, coops...)
		c.recordFile(runID, file, "ok", coops, nil)
	}

	if c.store != nil && runID > 0 {
		status := "done"
		if len(result.Cooperatives) == 0 {
			status = "empty"
		}
		if err := c.store.CompleteRun(runID, len(files), len(result.Cooperatives), len(result.Categories), status); err != nil {
			log.Printf("更新运行记录失败: %v", err)
		}
	}

	return result, nil
}

// processFile 处理单个合作社工作簿
func (c *Coordinator) processFile(path, fileName string) (coop *model.Cooperative, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("解析异常: %v", r)
		}
	}()

	sheets, err := c.reader.Read(path)
	if err != nil {
		return nil, err
	}

	coop = &model.Cooperative{
		SourceFile:  fileName,
		Categories:  []model.Category{},
		ProcessedAt: time.Now().UTC(),
	}
	for _, sh := range sheets {
		coop.SheetNames = append(coop.SheetNames, sh.Name)
	}

	for i := range sheets {
		sh := &sheets[i]
		t := &sh.Table
		fmt.Printf("  处理sheet: %s\n", sh.Name)

		switch c.recognizer.Recognize(sh.Name) {
		case model.SheetTypeBasicInfo:
			coop.BasicInfo = parser.ParseBasicInfo(t, c.rules)
			coop.Categories = parser.ParseCategories(t, c.rules)
			coop.Logistics = parser.ParseLogistics(t, c.rules)
		case model.SheetTypeQuality:
			coop.Quality = parser.ParseQuality(t, c.rules)
		case model.SheetTypeFinancial:
			coop.Categories = parser.MergeFinancial(t, coop.Categories, c.rules)
		default:
			// 单表工作簿：所有区块都从这一张表提取，已有内容不覆盖
			if len(sheets) == 1 {
				if coop.BasicInfo.IsZero() {
					coop.BasicInfo = parser.ParseBasicInfo(t, c.rules)
				}
				if len(coop.Categories) == 0 {
					coop.Categories = parser.ParseCategories(t, c.rules)
				}
				if coop.Logistics.IsZero() {
					coop.Logistics = parser.ParseLogistics(t, c.rules)
				}
				if coop.Quality.IsZero() {
					coop.Quality = parser.ParseQuality(t, c.rules)
				}
				coop.Categories = parser.MergeFinancial(t, coop.Categories, c.rules)
			}
		}
	}

	Assemble(coop, c.ids, trimWorkbookExt(fileName))
	return coop, nil
}

// processSummaryFile 处理多合作社汇总工作簿：每个工作表是一个独立合作社
func (c *Coordinator) processSummaryFile(path, fileName string) (coops []*model.Cooperative, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("解析异常: %v", r)
		}
	}()

	sheets, err := c.reader.Read(path)
	if err != nil {
		return nil, err
	}

	for i := range sheets {
		sh := &sheets[i]
		t := &sh.Table
		fmt.Printf("  处理合作社: %s\n", sh.Name)

		coop := &model.Cooperative{
			SourceFile:  fileName,
			SheetName:   sh.Name,
			Categories:  []model.Category{},
			ProcessedAt: time.Now().UTC(),
		}

		coop.BasicInfo = parser.ParseBasicInfo(t, c.rules)
		if coop.BasicInfo.Name == "" {
			// 表名通常就是合作社名称
			coop.BasicInfo.Name = sh.Name
		}
		coop.Categories = parser.ParseCategories(t, c.rules)
		coop.Quality = parser.ParseQuality(t, c.rules)
		coop.Logistics = parser.ParseLogistics(t, c.rules)
		coop.Categories = parser.MergeFinancial(t, coop.Categories, c.rules)

		Assemble(coop, c.ids, sh.Name)
		coops = append(coops, coop)
	}

	return coops, nil
}

// recordFile 把单个文件的处理结果写入运行历史库
func (c *Coordinator) recordFile(runID int64, file, status string, coops []*model.Cooperative, procErr error) {
	if c.store == nil || runID == 0 {
		return
	}
	categories := 0
	for _, coop := range coops {
		categories += len(coop.Categories)
	}
	errMsg := ""
	if procErr != nil {
		errMsg = procErr.Error()
	}
	if err := c.store.RecordFile(runID, file, status, len(coops), categories, errMsg); err != nil {
		log.Printf("记录文件结果失败: %v", err)
	}
}

// listWorkbooks 列出目录下受支持的工作簿，过滤临时文件并排序
func listWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		// Office 与 macOS 的临时文件
		if strings.HasPrefix(name, "~$") || strings.HasPrefix(name, "._") {
			continue
		}
		if workbook.Supported(name) {
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, nil
}

// trimWorkbookExt 去掉工作簿文件名的扩展名
func trimWorkbookExt(fileName string) string {
	name := strings.TrimSuffix(fileName, ".xlsx")
	return strings.TrimSuffix(name, ".xls")
}
