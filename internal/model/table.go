package model

import "strconv"

// Cell 工作表中的一个原始单元格
// Numeric 标记该单元格在源文件中是数值类型（日期序列号也属于数值）
type Cell struct {
	Value   string
	Numeric bool
}

// Text 构造文本单元格
func Text(v string) Cell {
	return Cell{Value: v}
}

// Number 构造数值单元格
func Number(v float64) Cell {
	return Cell{Value: strconv.FormatFloat(v, 'f', -1, 64), Numeric: true}
}

// Row 一行单元格
type Row []Cell

// Cell 返回指定列的单元格，越界返回空单元格
func (r Row) Cell(col int) Cell {
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}

// Table 一个工作表读入后的行列矩阵，解析期间只读
type Table struct {
	Rows []Row
}

// RowCount 行数
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Row 返回指定行，越界返回 nil
func (t *Table) Row(i int) Row {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// Cell 返回指定行列的单元格，越界返回空单元格
func (t *Table) Cell(row, col int) Cell {
	return t.Row(row).Cell(col)
}
