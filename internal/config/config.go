package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Data    DataConfig    `toml:"data"`
	Extract ExtractConfig `toml:"extract"`
	Store   StoreConfig   `toml:"store"`
}

// DataConfig 输入输出目录配置
type DataConfig struct {
	ExcelDir  string `toml:"excel_dir"`
	OutputDir string `toml:"output_dir"`
}

// ExtractConfig 提取过程配置
type ExtractConfig struct {
	MaxFileSizeMB    int64    `toml:"max_file_size_mb"`
	SummaryWorkbooks []string `toml:"summary_workbooks"`
}

// StoreConfig 提取历史库配置
type StoreConfig struct {
	Enabled bool   `toml:"enabled"`
	DBPath  string `toml:"db_path"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			ExcelDir:  "data/excel",
			OutputDir: "public/data/json",
		},
		Extract: ExtractConfig{
			MaxFileSizeMB: 100,
		},
		Store: StoreConfig{
			Enabled: true,
			DBPath:  "",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录下的 config.toml 加载配置。
// 配置文件不存在时使用默认配置。
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// 环境变量覆盖（用于 E2E / 本地运行）
	if v := os.Getenv("AGRITRACE_EXCEL_DIR"); v != "" {
		config.Data.ExcelDir = v
	}
	if v := os.Getenv("AGRITRACE_OUTPUT_DIR"); v != "" {
		config.Data.OutputDir = v
	}

	return config, nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// MaxFileSize 文件大小上限（字节）
func (c *AppConfig) MaxFileSize() int64 {
	return c.Extract.MaxFileSizeMB * 1024 * 1024
}

// DBPath 提取历史库路径，未配置时落在输出目录下
func (c *AppConfig) DBPath() string {
	if c.Store.DBPath != "" {
		return c.Store.DBPath
	}
	return filepath.Join(c.Data.OutputDir, "agritrace.db")
}
