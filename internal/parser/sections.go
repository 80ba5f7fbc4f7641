package parser

import "agritrace/internal/model"

// ParseQuality 从质量合规区块读取一行固定形态的数据。
// 只取表头后第一个列数足够的数据行，读完即止。
func ParseQuality(t *model.Table, rules *Rules) model.QualityInfo {
	var quality model.QualityInfo

	start := locateQualitySection(t, rules)
	if start < 0 {
		return quality
	}

	for i := start + 1; i < min(t.RowCount(), start+10); i++ {
		row := t.Row(i)
		if len(row) < 6 {
			continue
		}
		quality.QualitySystem = CleanText(row.Cell(1))
		quality.PesticideRecords = CleanText(row.Cell(2))
		quality.GreenControl = CleanText(row.Cell(3))
		quality.DetectionMethod = CleanText(row.Cell(4))
		quality.DetectionCount = CleanText(row.Cell(5))
		quality.EvidenceMaterials = CleanText(row.Cell(6))
		break
	}

	return quality
}

// ParseLogistics 从物流区块读取"配送范围"子表头之后的一行数据
func ParseLogistics(t *model.Table, rules *Rules) model.LogisticsInfo {
	var logistics model.LogisticsInfo

	section := locateLogisticsSection(t, rules)
	if section < 0 {
		return logistics
	}

	rangeRow := locateLogisticsRange(t, section, rules)
	if rangeRow < 0 {
		return logistics
	}

	row := t.Row(rangeRow + 1)
	if len(row) >= 4 {
		logistics.Range = CleanText(row.Cell(0))
		logistics.Method = CleanText(row.Cell(1))
		logistics.Duration = CleanText(row.Cell(2))
		logistics.Mode = CleanText(row.Cell(3))
	}

	return logistics
}
