package boxer

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/jflippa/boxing/internal/domain/boxer"
	"github.com/jflippa/boxing/internal/infrastructure/persistence/mysql"
	"github.com/jflippa/boxing/internal/infrastructure/persistence/redis"
	"github.com/jflippa/boxing/pkg/circuitbreaker"
	"github.com/jflippa/boxing/pkg/logger"
	"github.com/jflippa/boxing/pkg/metrics"
	"github.com/jflippa/boxing/pkg/tracing"
)

// RecordFightUseCase 比赛结果登记用例
// 教学要点:这是唯一会修改战绩计数的入口
// 涉及:事务处理、原子累加、Wins<=Fights约束兜底
type RecordFightUseCase struct {
	boxerService boxer.Service
	txManager    *mysql.TxManager
	cache        *redis.LeaderboardCache
	cacheCB      *circuitbreaker.CircuitBreaker
}

// NewRecordFightUseCase 创建比赛结果登记用例
func NewRecordFightUseCase(
	boxerService boxer.Service,
	txManager *mysql.TxManager,
	cache *redis.LeaderboardCache,
	cacheCB *circuitbreaker.CircuitBreaker,
) *RecordFightUseCase {
	return &RecordFightUseCase{
		boxerService: boxerService,
		txManager:    txManager,
		cache:        cache,
		cacheCB:      cacheCB,
	}
}

// RecordFightRequest 比赛结果登记请求DTO
type RecordFightRequest struct {
	BoxerID uint   // 拳击手ID
	Result  string // 比赛结果(win | loss)
}

// Execute 执行登记用例
// 教学重点:check-then-act的原子化
//
// 核心问题:并发登记导致的丢失更新
// 场景:同一拳击手的两场结果几乎同时登记
// 错误实现:
//  1. 读取fights/wins → fights=3, wins=2
//  2. 内存中+1 → fights=4
//  3. 写回 → 两个请求都写fights=4,丢了一场
//
// 正确实现:
//  1. 事务内先做存在性检查(不存在返回ErrBoxerNotFound)
//  2. 累加用单条UPDATE在数据库侧完成(fights = fights + 1),
//     WHERE条件兜底"更新后wins<=fights",非法状态绝不落库
//  3. 提交后才让榜单缓存失效
func (uc *RecordFightUseCase) Execute(ctx context.Context, req RecordFightRequest) (*BoxerResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "RecordFight")
	defer span.End()

	// 使用事务执行整个登记流程
	// 领域服务内部的FindByID与ApplyFightResult会通过Context
	// 拿到同一个事务DB,任一步失败整体回滚
	var b *boxer.Boxer
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		b, err = uc.boxerService.RecordFight(txCtx, req.BoxerID, req.Result)
		return err
	})
	if err != nil {
		return nil, err
	}

	// 战绩已变化,让排行榜缓存失效
	invalidateLeaderboard(ctx, uc.cache, uc.cacheCB)

	// 按比赛结果维度记录指标
	metrics.FightsRecordedTotal.With(prometheus.Labels{"result": req.Result}).Inc()
	logger.Info("比赛结果登记成功",
		zap.Uint("boxer_id", b.ID),
		zap.String("result", req.Result),
		zap.Int("fights", b.Fights),
		zap.Int("wins", b.Wins),
	)

	return newBoxerResponse(b), nil
}
