package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"agritrace/internal/model"
)

// DefaultMaxFileSize 单个工作簿的默认大小上限
const DefaultMaxFileSize = 100 * 1024 * 1024

// Reader 把 Excel 工作簿读成有序的工作表行列矩阵
type Reader struct {
	maxFileSize int64
}

// NewReader 创建读取器，maxFileSize <= 0 时使用默认上限
func NewReader(maxFileSize int64) *Reader {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Reader{maxFileSize: maxFileSize}
}

// Supported 判断文件名是否为受支持的工作簿格式
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// Read 校验并读取一个工作簿的全部工作表
func (r *Reader) Read(path string) ([]model.Sheet, error) {
	if err := r.validate(path); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	}
	return nil, fmt.Errorf("不支持的文件格式: %s", filepath.Base(path))
}

// validate 基础校验：文件存在、非空、未超出大小上限
func (r *Reader) validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("文件验证失败: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("文件验证失败: 文件为空")
	}
	if info.Size() > r.maxFileSize {
		return fmt.Errorf("文件验证失败: 文件过大（超过%dMB）", r.maxFileSize/(1024*1024))
	}
	return nil
}
