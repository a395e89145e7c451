package boxer

import (
	"context"
	"strings"
)

// Service 拳击手领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验与跨实体的业务逻辑
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBoxer 注册拳击手
	// 业务规则(按固定顺序校验,命中第一条即返回):
	// - 体重必须>=125磅
	// - 身高必须>0
	// - 臂展必须>0
	// - 年龄必须在18-40岁之间
	// - 姓名去除首尾空白后不能为空
	// - 姓名不能与已有拳击手重复
	CreateBoxer(ctx context.Context, name string, weight, height, reach float64, age int) (*Boxer, error)

	// GetBoxerByID 根据ID获取拳击手
	GetBoxerByID(ctx context.Context, id uint) (*Boxer, error)

	// GetBoxerByName 根据姓名获取拳击手(查询前先trim)
	GetBoxerByName(ctx context.Context, name string) (*Boxer, error)

	// DeleteBoxer 删除拳击手
	DeleteBoxer(ctx context.Context, id uint) error

	// RecordFight 登记一场比赛结果
	// 业务规则:
	// - 结果必须是win或loss(先于存在性检查,非法结果不触发任何查询)
	// - 拳击手必须存在
	// - 总场次+1,获胜时胜场数+1,始终保持Wins<=Fights
	RecordFight(ctx context.Context, id uint, result string) (*Boxer, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建拳击手领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBoxer 注册拳击手
func (s *service) CreateBoxer(ctx context.Context, name string, weight, height, reach float64, age int) (*Boxer, error) {
	// 1. 字段校验(顺序固定:体重→身高→臂展→年龄→姓名)
	if weight < MinWeight {
		return nil, ErrInvalidWeight
	}
	if height <= 0 {
		return nil, ErrInvalidHeight
	}
	if reach <= 0 {
		return nil, ErrInvalidReach
	}
	if age < 18 || age > 40 {
		return nil, ErrInvalidAge
	}

	// 2. 姓名规范化:去除首尾空白后校验非空,后续存储和查重都使用trim后的形式
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	// 3. 检查姓名是否已存在(并发创建时由数据库唯一索引兜底)
	existing, err := s.repo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, ErrNameDuplicate
	}
	if err != nil && err != ErrBoxerNotFound {
		return nil, err
	}

	// 4. 创建实体(战绩从0开始)
	b := NewBoxer(name, weight, height, reach, age)

	// 5. 持久化(唯一索引冲突会被转换为ErrNameDuplicate)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBoxerByID 根据ID获取拳击手
func (s *service) GetBoxerByID(ctx context.Context, id uint) (*Boxer, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBoxerByName 根据姓名获取拳击手
func (s *service) GetBoxerByName(ctx context.Context, name string) (*Boxer, error) {
	return s.repo.FindByName(ctx, strings.TrimSpace(name))
}

// DeleteBoxer 删除拳击手
// 不存在时返回ErrBoxerNotFound,重复删除同一ID第二次依然返回ErrBoxerNotFound
func (s *service) DeleteBoxer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// RecordFight 登记一场比赛结果
func (s *service) RecordFight(ctx context.Context, id uint, result string) (*Boxer, error) {
	// 1. 结果校验先行:非法结果直接拒绝,不产生任何数据库访问
	res, err := ParseFightResult(result)
	if err != nil {
		return nil, err
	}

	// 2. 查询拳击手(不存在返回ErrBoxerNotFound)
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 在内存实体上应用结果(含Wins<=Fights校验)
	if err := b.ApplyResult(res); err != nil {
		return nil, err
	}

	// 4. 原子累加落库(UPDATE语句内再次兜底约束)
	if err := s.repo.ApplyFightResult(ctx, id, res.Won()); err != nil {
		return nil, err
	}

	return b, nil
}
