package leaderboard

import (
	"github.com/jflippa/boxing/internal/domain/boxer"
)

// SortKey 排行榜排序维度
// 教学要点:与比赛结果一样定义为类型别名,非法值在解析时统一拦截
type SortKey string

const (
	SortByWins   SortKey = "wins"    // 按胜场数排序
	SortByWinPct SortKey = "win_pct" // 按胜率排序
)

// ParseSortKey 解析并校验排序维度
// 只接受wins/win_pct,其他值返回ErrInvalidSortKey
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !k.Valid() {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

// Valid 判断排序维度是否合法
func (k SortKey) Valid() bool {
	return k == SortByWins || k == SortByWinPct
}

// Row 排行榜行(读模型)
// 设计说明:
// 1. 排行榜是存量数据的纯函数投影,Row只读不可写
// 2. WeightClass/WinPct是派生值,构建Row时由实体计算
type Row struct {
	ID          uint
	Name        string
	Weight      float64
	Height      float64
	Reach       float64
	Age         int
	WeightClass boxer.WeightClass
	Fights      int
	Wins        int
	WinPct      float64 // 胜率(百分比,保留1位小数)
}

// NewRow 由拳击手实体构建排行榜行
func NewRow(b *boxer.Boxer) *Row {
	return &Row{
		ID:          b.ID,
		Name:        b.Name,
		Weight:      b.Weight,
		Height:      b.Height,
		Reach:       b.Reach,
		Age:         b.Age,
		WeightClass: b.WeightClass(),
		Fights:      b.Fights,
		Wins:        b.Wins,
		WinPct:      b.WinPct(),
	}
}
