package boxer

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/jflippa/boxing/internal/infrastructure/persistence/redis"
	"github.com/jflippa/boxing/pkg/circuitbreaker"
	"github.com/jflippa/boxing/pkg/logger"
	"github.com/jflippa/boxing/pkg/metrics"
)

// invalidateLeaderboard 让排行榜缓存失效
// 设计说明:
// 1. 创建/删除拳击手、登记比赛结果都会改变榜单,成功后统一走这里
// 2. 失效失败不影响主流程:榜单缓存有TTL兜底,最多陈旧一个TTL周期
// 3. Redis调用经过熔断器,Redis故障时快速失败而不是拖慢写路径
func invalidateLeaderboard(ctx context.Context, cache *redis.LeaderboardCache, cb *circuitbreaker.CircuitBreaker) {
	if cache == nil {
		// 未启用缓存
		return
	}

	invalidate := func() error {
		return cache.Invalidate(ctx)
	}

	var err error
	if cb != nil {
		err = cb.Execute(invalidate)
		observeBreakerResult(cb, err)
	} else {
		err = invalidate()
	}
	if err != nil {
		// 只记告警:失效失败时榜单短暂陈旧,由TTL兜底过期
		logger.Warn("排行榜缓存失效失败", zap.Error(err))
	}
}

// observeBreakerResult 上报熔断器请求结果指标
func observeBreakerResult(cb *circuitbreaker.CircuitBreaker, err error) {
	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.CircuitBreakerRequests.With(prometheus.Labels{
		"name":   cb.Name(),
		"result": result,
	}).Inc()
}
