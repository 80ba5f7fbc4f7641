package parser

import (
	"strings"

	"agritrace/internal/model"
)

// coreBasicFields 判断提前结束时参考的核心字段
var coreBasicFields = []string{"name", "contact", "phone", "isDemonstration"}

// ParseBasicInfo 从基本信息区块提取合作社基本信息。
// 找不到区块表头时返回空记录，不报错。
func ParseBasicInfo(t *model.Table, rules *Rules) model.BasicInfo {
	var info model.BasicInfo
	set := map[string]bool{}

	start := locateBasicHeader(t, rules)
	if start < 0 {
		return info
	}

	end := min(t.RowCount(), start+20)
	for i := start; i < end; i++ {
		row := t.Row(i)
		if len(row) < 2 {
			continue
		}

		key := CleanText(row.Cell(0))
		value := row.Cell(1)

		if key == "" {
			// 空键行：已经读出一定数量的字段后视为区块结束
			if i > start+5 && len(set) > 3 {
				break
			}
			continue
		}

		// 示范社标签优先于通用映射
		if strings.Contains(key, rules.DemonstrationKeyword) {
			assignBasicField(&info, set, "isDemonstration", false, value)
		} else {
			for _, fr := range rules.BasicFields {
				if fr.Field == "isDemonstration" {
					continue
				}
				if key == fr.Label || strings.Contains(key, fr.Label) || strings.Contains(fr.Label, key) {
					assignBasicField(&info, set, fr.Field, fr.Numeric, value)
					break
				}
			}
		}

		// 下一区块的标题意味着基本信息结束
		if ContainsAny(key, rules.BasicStopKeywords) {
			break
		}

		coreCount := 0
		for _, f := range coreBasicFields {
			if set[f] {
				coreCount++
			}
		}
		if coreCount >= 3 && i > start+8 {
			break
		}
	}

	return info
}

func assignBasicField(info *model.BasicInfo, set map[string]bool, field string, numeric bool, cell model.Cell) {
	if numeric {
		v := CleanNumber(cell)
		switch field {
		case "registeredCapital":
			info.RegisteredCapital = v
		case "employees":
			info.Employees = v
		case "plantingArea":
			info.PlantingArea = v
		}
	} else {
		v := CleanText(cell)
		switch field {
		case "name":
			info.Name = v
		case "contact":
			info.Contact = v
		case "phone":
			info.Phone = v
		case "establishedDate":
			info.EstablishedDate = v
		case "isDemonstration":
			info.IsDemonstration = v
		case "honors":
			info.Honors = v
		}
	}
	set[field] = true
}
