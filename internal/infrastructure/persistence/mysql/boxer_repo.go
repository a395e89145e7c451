package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jflippa/boxing/internal/domain/boxer"
	apperrors "github.com/jflippa/boxing/pkg/errors"
)

// boxerRepository 拳击手仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/boxer/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误(如姓名重复),转换为业务错误
type boxerRepository struct {
	db *gorm.DB
}

// NewBoxerRepository 创建拳击手仓储
func NewBoxerRepository(db *gorm.DB) boxer.Repository {
	return &boxerRepository{db: db}
}

// Create 创建拳击手
func (r *boxerRepository) Create(ctx context.Context, b *boxer.Boxer) error {
	// 1. 领域实体 → GORM模型
	model := &BoxerModel{
		Name:   b.Name,
		Weight: b.Weight,
		Height: b.Height,
		Reach:  b.Reach,
		Age:    b.Age,
		Fights: b.Fights,
		Wins:   b.Wins,
	}

	// 2. 插入数据库
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		// 并发创建同名选手时,领域服务的预检查会漏过,
		// 唯一索引冲突在这里兜底转换为业务错误
		if isDuplicateError(err) {
			return boxer.ErrNameDuplicate
		}
		return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "创建拳击手失败")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找拳击手
func (r *boxerRepository) FindByID(ctx context.Context, id uint) (*boxer.Boxer, error) {
	var model BoxerModel
	err := r.getDB(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, boxer.ErrBoxerNotFound
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询拳击手失败")
	}

	return toBoxerEntity(&model), nil
}

// FindByName 根据姓名查找拳击手
func (r *boxerRepository) FindByName(ctx context.Context, name string) (*boxer.Boxer, error) {
	var model BoxerModel
	err := r.getDB(ctx).Where("name = ?", name).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, boxer.ErrBoxerNotFound
		}
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询拳击手失败")
	}

	return toBoxerEntity(&model), nil
}

// Delete 删除拳击手(物理删除)
func (r *boxerRepository) Delete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(&BoxerModel{}, id)

	if result.Error != nil {
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, "删除拳击手失败")
	}

	// RowsAffected为0说明记录不存在(重复删除同一ID也会走到这里)
	if result.RowsAffected == 0 {
		return boxer.ErrBoxerNotFound
	}

	return nil
}

// ApplyFightResult 累加一场比赛结果(原子操作)
func (r *boxerRepository) ApplyFightResult(ctx context.Context, id uint, won bool) error {
	winDelta := 0
	if won {
		winDelta = 1
	}

	// 单条UPDATE原子完成累加:
	// UPDATE boxers SET fights = fights + 1, wins = wins + ? WHERE id = ? AND wins + ? <= fights + 1
	// 教学要点:
	// 1. 不做读取-修改-写回,并发登记比赛结果时每次累加都不会丢失
	// 2. WHERE条件即"更新后wins<=fights"的等价形式,非法状态绝不落库
	result := r.getDB(ctx).Model(&BoxerModel{}).
		Where("id = ?", id).
		Where("wins + ? <= fights + 1", winDelta).
		Updates(map[string]interface{}{
			"fights": gorm.Expr("fights + 1"),
			"wins":   gorm.Expr("wins + ?", winDelta),
		})

	if result.Error != nil {
		return apperrors.WrapCode(result.Error, apperrors.ErrCodeDatabaseError, "更新战绩失败")
	}

	if result.RowsAffected == 0 {
		// 可能是拳击手不存在,或者存量数据已违反约束
		// 再查一次确定原因
		var model BoxerModel
		if err := r.getDB(ctx).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return boxer.ErrBoxerNotFound
			}
			return apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询拳击手失败")
		}
		// 记录存在,说明是战绩数据异常
		return boxer.ErrWinsExceedFights
	}

	return nil
}

// ListWithFights 查询所有有比赛记录的拳击手
func (r *boxerRepository) ListWithFights(ctx context.Context) ([]*boxer.Boxer, error) {
	var models []BoxerModel

	// 排序在领域层完成,这里按ID升序只为保证扫描结果稳定
	err := r.getDB(ctx).
		Where("fights > ?", 0).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询拳击手列表失败")
	}

	boxers := make([]*boxer.Boxer, len(models))
	for i := range models {
		boxers[i] = toBoxerEntity(&models[i])
	}

	return boxers, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBoxerEntity GORM模型 → 领域实体
func toBoxerEntity(model *BoxerModel) *boxer.Boxer {
	return &boxer.Boxer{
		ID:        model.ID,
		Name:      model.Name,
		Weight:    model.Weight,
		Height:    model.Height,
		Reach:     model.Reach,
		Age:       model.Age,
		Fights:    model.Fights,
		Wins:      model.Wins,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 教学要点:事务传递机制,登记比赛结果时查询和累加在同一事务中执行
func (r *boxerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
