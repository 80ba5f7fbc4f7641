package importer

import "agritrace/internal/model"

// Assemble 收尾一个合作社：分配运行内唯一 ID，
// 按位置派生品类 ID，并把合作社侧的冗余字段回填到每个品类。
// 基本信息里没有名称时用 fallbackName（文件名或表名）。
func Assemble(coop *model.Cooperative, ids *IDGenerator, fallbackName string) {
	coop.ID = ids.NextCooperativeID()

	name := coop.BasicInfo.Name
	if name == "" {
		name = fallbackName
	}

	for i := range coop.Categories {
		cat := &coop.Categories[i]
		cat.ID = CategoryID(coop.ID, i)
		cat.CooperativeID = coop.ID
		cat.CooperativeName = name
		cat.CooperativeLevel = coop.BasicInfo.IsDemonstration
		cat.QualityCertification = coop.Quality.QualitySystem
	}
}
