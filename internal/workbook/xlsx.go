package workbook

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"agritrace/internal/model"
)

// readXLSX 读取 .xlsx 工作簿。
// 以原始值读行，数值单元格保留序列号形式并打上 Numeric 标记，
// 文本归一化交给上层的值清洗函数。
// 每行补齐到工作表最大列数，空白单元格一律是空字符串，
// 避免行尾空白导致解析器把行当成残行。
func readXLSX(path string) ([]model.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer f.Close()

	var sheets []model.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			continue
		}

		width := 0
		for _, rawRow := range rows {
			if len(rawRow) > width {
				width = len(rawRow)
			}
		}

		table := model.Table{Rows: make([]model.Row, len(rows))}
		for ri, rawRow := range rows {
			row := make(model.Row, width)
			for ci, v := range rawRow {
				row[ci] = model.Cell{
					Value:   v,
					Numeric: v != "" && isNumericCell(f, name, ri, ci, v),
				}
			}
			table.Rows[ri] = row
		}

		sheets = append(sheets, model.Sheet{Name: name, Table: table})
	}

	return sheets, nil
}

// isNumericCell 判断单元格在源文件中是否为数值类型。
// xlsx 中数值单元格通常不带 t 属性（CellTypeUnset），共享字符串与内联
// 字符串一定是文本。
func isNumericCell(f *excelize.File, sheet string, ri, ci int, raw string) bool {
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return false
	}

	axis, err := excelize.CoordinatesToCellName(ci+1, ri+1)
	if err != nil {
		return false
	}
	ct, err := f.GetCellType(sheet, axis)
	if err != nil {
		return false
	}

	switch ct {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeBool:
		return false
	}
	return true
}
