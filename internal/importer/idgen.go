package importer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator 运行内单调递增的 ID 生成器。
// salt 是一次运行的随机盐，同一运行内生成的 ID 可预测且互不重复；
// 跨运行合并结果时 ID 不保证全局唯一。
type IDGenerator struct {
	salt string
	seq  int
}

// NewIDGenerator 创建生成器；salt 为空时取随机盐
func NewIDGenerator(salt string) *IDGenerator {
	if salt == "" {
		salt = strings.SplitN(uuid.New().String(), "-", 2)[0]
	}
	return &IDGenerator{salt: salt}
}

// Salt 返回本次运行的盐
func (g *IDGenerator) Salt() string {
	return g.salt
}

// NextCooperativeID 生成下一个合作社 ID
func (g *IDGenerator) NextCooperativeID() string {
	g.seq++
	return fmt.Sprintf("coop_%s_%d", g.salt, g.seq)
}

// CategoryID 由合作社 ID 和品类在列表中的位置派生品类 ID
func CategoryID(cooperativeID string, index int) string {
	return fmt.Sprintf("%s_cat_%d", cooperativeID, index)
}
