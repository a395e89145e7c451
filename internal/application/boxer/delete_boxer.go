package boxer

import (
	"context"

	"go.uber.org/zap"

	"github.com/jflippa/boxing/internal/domain/boxer"
	"github.com/jflippa/boxing/internal/infrastructure/persistence/redis"
	"github.com/jflippa/boxing/pkg/circuitbreaker"
	"github.com/jflippa/boxing/pkg/logger"
	"github.com/jflippa/boxing/pkg/metrics"
	"github.com/jflippa/boxing/pkg/tracing"
)

// DeleteBoxerUseCase 拳击手删除用例
// 设计说明:
// 1. 物理删除,删除后姓名可以重新注册
// 2. 删除不存在的ID返回ErrBoxerNotFound;
//    重复删除同一ID,第二次同样返回ErrBoxerNotFound(不会静默成功)
type DeleteBoxerUseCase struct {
	boxerService boxer.Service
	cache        *redis.LeaderboardCache
	cacheCB      *circuitbreaker.CircuitBreaker
}

// NewDeleteBoxerUseCase 创建删除用例
func NewDeleteBoxerUseCase(
	boxerService boxer.Service,
	cache *redis.LeaderboardCache,
	cacheCB *circuitbreaker.CircuitBreaker,
) *DeleteBoxerUseCase {
	return &DeleteBoxerUseCase{
		boxerService: boxerService,
		cache:        cache,
		cacheCB:      cacheCB,
	}
}

// Execute 执行删除用例
func (uc *DeleteBoxerUseCase) Execute(ctx context.Context, id uint) error {
	ctx, span := tracing.StartSpan(ctx, tracerName, "DeleteBoxer")
	defer span.End()

	// 1. 调用领域服务删除(不存在时返回ErrBoxerNotFound)
	if err := uc.boxerService.DeleteBoxer(ctx, id); err != nil {
		return err
	}

	// 2. 名册已变化,让排行榜缓存失效
	invalidateLeaderboard(ctx, uc.cache, uc.cacheCB)

	// 3. 记录业务指标与日志
	metrics.BoxersDeletedTotal.Inc()
	logger.Info("拳击手已删除", zap.Uint("boxer_id", id))

	return nil
}
