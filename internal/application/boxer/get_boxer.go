package boxer

import (
	"context"

	"github.com/jflippa/boxing/internal/domain/boxer"
	"github.com/jflippa/boxing/pkg/tracing"
)

// GetBoxerUseCase 拳击手查询用例
// 设计说明:
// 1. 按ID和按姓名两种查询共用同一个投影(BoxerResponse)
// 2. 纯读操作,不产生任何副作用,也不走排行榜缓存(单条查询直接回源)
type GetBoxerUseCase struct {
	boxerService boxer.Service
}

// NewGetBoxerUseCase 创建查询用例
func NewGetBoxerUseCase(boxerService boxer.Service) *GetBoxerUseCase {
	return &GetBoxerUseCase{
		boxerService: boxerService,
	}
}

// ByID 根据ID查询拳击手
// 不存在时返回ErrBoxerNotFound
func (uc *GetBoxerUseCase) ByID(ctx context.Context, id uint) (*BoxerResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetBoxerByID")
	defer span.End()

	b, err := uc.boxerService.GetBoxerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return newBoxerResponse(b), nil
}

// ByName 根据姓名查询拳击手
// 查询前由领域服务去除姓名首尾空白,再做精确匹配
func (uc *GetBoxerUseCase) ByName(ctx context.Context, name string) (*BoxerResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetBoxerByName")
	defer span.End()

	b, err := uc.boxerService.GetBoxerByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return newBoxerResponse(b), nil
}
