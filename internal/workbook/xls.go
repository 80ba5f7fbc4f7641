package workbook

import (
	"fmt"
	"strconv"

	exls "github.com/extrame/xls"

	"agritrace/internal/model"
)

// readXLS 读取旧版 .xls 工作簿。
// 该格式只能拿到格式化后的字符串，数值单元格按"能否解析为数字"近似判定。
// 与 xlsx 读取一致，每行补齐到工作表最大列数，空白单元格是空字符串。
func readXLS(path string) ([]model.Sheet, error) {
	f, err := exls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}

	var sheets []model.Sheet
	for i := 0; i < f.NumSheets(); i++ {
		sheet := f.GetSheet(i)
		if sheet == nil {
			continue
		}

		width := 0
		for ri := 0; ri <= int(sheet.MaxRow); ri++ {
			if row := sheet.Row(ri); row != nil && row.LastCol() > width {
				width = row.LastCol()
			}
		}

		table := model.Table{}
		for ri := 0; ri <= int(sheet.MaxRow); ri++ {
			cells := make(model.Row, width)
			row := sheet.Row(ri)
			if row != nil {
				for ci := 0; ci < row.LastCol(); ci++ {
					v := row.Col(ci)
					cells[ci] = model.Cell{Value: v}
					if v != "" {
						if _, err := strconv.ParseFloat(v, 64); err == nil {
							cells[ci].Numeric = true
						}
					}
				}
			}
			table.Rows = append(table.Rows, cells)
		}

		sheets = append(sheets, model.Sheet{Name: sheet.Name, Table: table})
	}

	return sheets, nil
}
