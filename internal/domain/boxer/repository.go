package boxer

import (
	"context"
)

// Repository 拳击手仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 计数字段(Fights/Wins)只允许通过ApplyFightResult修改,
//    不提供通用Update方法,防止绕过原子更新破坏Wins<=Fights约束
type Repository interface {
	// Create 创建拳击手
	// 姓名唯一性由数据库唯一索引兜底,冲突时返回ErrNameDuplicate
	Create(ctx context.Context, b *Boxer) error

	// FindByID 根据ID查找拳击手
	FindByID(ctx context.Context, id uint) (*Boxer, error)

	// FindByName 根据姓名查找拳击手(精确匹配trim后的姓名)
	FindByName(ctx context.Context, name string) (*Boxer, error)

	// Delete 删除拳击手(硬删除)
	// 记录不存在时返回ErrBoxerNotFound(通过RowsAffected判断)
	Delete(ctx context.Context, id uint) error

	// ApplyFightResult 累加一场比赛结果(原子操作)
	// 单条UPDATE语句完成fights+1(获胜时wins+1),
	// WHERE条件兜底Wins<=Fights约束,绝不落库非法状态
	ApplyFightResult(ctx context.Context, id uint, won bool) error

	// ListWithFights 查询所有有比赛记录的拳击手(fights > 0)
	// 排行榜的数据来源
	ListWithFights(ctx context.Context) ([]*Boxer, error)
}
