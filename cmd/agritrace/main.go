package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"agritrace/internal/config"
	"agritrace/internal/exporter"
	"agritrace/internal/importer"
	"agritrace/internal/parser"
	"agritrace/internal/store"
)

var (
	excelDir = flag.String("excelDir", "", "Excel 输入目录 (覆盖配置文件)")
	outDir   = flag.String("outDir", "", "JSON 输出目录 (覆盖配置文件)")
	dbPath   = flag.String("dbPath", "", "提取历史库路径 (覆盖配置文件)")
	noStore  = flag.Bool("noStore", false, "不记录提取历史")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Agritrace - 农产品溯源数据提取工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *excelDir != "" {
		cfg.Data.ExcelDir = *excelDir
	}
	if *outDir != "" {
		cfg.Data.OutputDir = *outDir
	}
	if *dbPath != "" {
		cfg.Store.DBPath = *dbPath
	}

	rules := parser.DefaultRules()
	if len(cfg.Extract.SummaryWorkbooks) > 0 {
		rules.SummaryWorkbooks = cfg.Extract.SummaryWorkbooks
	}

	// 致命启动错误在打开历史库之前检查，保证失败的运行不留任何输出
	if _, err := importer.ScanSource(cfg.Data.ExcelDir); err != nil {
		log.Printf("错误: %v", err)
		os.Exit(1)
	}

	var st *store.Store
	if cfg.Store.Enabled && !*noStore {
		st, err = store.New(cfg.DBPath())
		if err != nil {
			log.Printf("打开提取历史库失败，跳过历史记录: %v", err)
			st = nil
		} else {
			defer st.Close()
		}
	}

	coordinator := importer.NewCoordinator(importer.Options{
		MaxFileSize: cfg.MaxFileSize(),
		Rules:       rules,
		Store:       st,
	})

	fmt.Println("开始从Excel提取品类数据")

	result, err := coordinator.Run(cfg.Data.ExcelDir)
	if err != nil {
		log.Printf("错误: %v", err)
		os.Exit(1)
	}

	fmt.Println("\n数据处理统计")
	fmt.Printf("总计处理合作社: %d\n", len(result.Cooperatives))
	fmt.Printf("总计提取品类: %d\n", len(result.Categories))

	emitter, err := exporter.NewEmitter(cfg.Data.OutputDir)
	if err != nil {
		log.Printf("错误: %v", err)
		os.Exit(1)
	}

	if err := emitter.AppendErrors(result.Errors); err != nil {
		log.Printf("%v", err)
	}

	if len(result.Cooperatives) == 0 {
		log.Printf("错误: 没有成功处理任何合作社数据")
		os.Exit(1)
	}

	fmt.Println("\n保存数据文件:")
	emitter.WriteCooperatives(result.Cooperatives)
	if err := emitter.WriteSummary(result.Cooperatives, result.Categories, result.SourceFiles); err != nil {
		log.Printf("%v", err)
	}
	if err := emitter.WriteSimplified(result.Categories); err != nil {
		log.Printf("%v", err)
	}

	exporter.PrintStats(result.Cooperatives, result.Categories)

	fmt.Println("\n数据转换完成！")
	fmt.Printf("输出目录: %s\n", cfg.Data.OutputDir)
}
