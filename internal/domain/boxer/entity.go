package boxer

import (
	"math"
	"time"
)

// Boxer 拳击手实体(聚合根)
// DDD设计说明:
// 1. Boxer是拳击手聚合的根实体,包含选手档案与战绩计数
// 2. Name作为业务唯一标识(存储去除首尾空白后的形式,数据库层保证唯一性)
// 3. WeightClass是派生属性,不落库,每次由Weight实时计算
// 4. Fights/Wins只通过比赛结果流程递增,任何时刻满足Wins<=Fights
type Boxer struct {
	ID        uint
	Name      string  // 姓名(业务唯一标识)
	Weight    float64 // 体重(磅),创建后不可变
	Height    float64 // 身高
	Reach     float64 // 臂展
	Age       int     // 年龄(18-40)
	Fights    int     // 总场次
	Wins      int     // 胜场数
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBoxer 创建新拳击手(工厂方法)
// 参数校验由领域服务负责(字段校验有固定顺序),工厂只负责组装
// 初始战绩固定为0胜0场,不可由调用方指定
func NewBoxer(name string, weight, height, reach float64, age int) *Boxer {
	now := time.Now()
	return &Boxer{
		Name:      name,
		Weight:    weight,
		Height:    height,
		Reach:     reach,
		Age:       age,
		Fights:    0,
		Wins:      0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WeightClass 返回派生的重量级别
// 创建时已保证Weight>=125,存量数据不会出现无法归类的体重
func (b *Boxer) WeightClass() WeightClass {
	wc, _ := Classify(b.Weight)
	return wc
}

// ApplyResult 应用一场比赛结果(领域行为)
// 业务规则:
// - 结果必须是win或loss
// - 总场次+1,获胜时胜场数+1
// - 累加前检查Wins<=Fights,已损坏的数据拒绝继续累加
func (b *Boxer) ApplyResult(result FightResult) error {
	if !result.Valid() {
		return ErrInvalidResult
	}
	if b.Wins > b.Fights {
		return ErrWinsExceedFights
	}
	b.Fights++
	if result.Won() {
		b.Wins++
	}
	b.UpdatedAt = time.Now()
	return nil
}

// WinPct 胜率(百分比,保留1位小数)
// 无比赛记录时返回0(排行榜只统计Fights>0的选手,此分支仅作兜底)
func (b *Boxer) WinPct() float64 {
	if b.Fights == 0 {
		return 0
	}
	return math.Round(float64(b.Wins)/float64(b.Fights)*1000) / 10
}
