package leaderboard

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/jflippa/boxing/internal/domain/leaderboard"
	"github.com/jflippa/boxing/internal/infrastructure/persistence/redis"
	"github.com/jflippa/boxing/pkg/circuitbreaker"
	"github.com/jflippa/boxing/pkg/logger"
	"github.com/jflippa/boxing/pkg/metrics"
	"github.com/jflippa/boxing/pkg/tracing"
)

// tracerName 应用层Span的Tracer名称
const tracerName = "boxing-api"

// GetLeaderboardUseCase 排行榜查询用例
// 教学要点:Cache-Aside(旁路缓存)模式的完整读路径
//
//  1. 先查Redis缓存,命中直接返回
//  2. 未命中回源MySQL计算,成功后回填缓存
//  3. 缓存任何故障都降级为直接回源——绝不因缓存失败让查询失败
//  4. Redis调用经过熔断器:Redis宕机时快速失败,
//     避免每次查询都等到连接超时才回源
type GetLeaderboardUseCase struct {
	leaderboardService leaderboard.Service
	cache              *redis.LeaderboardCache
	cacheCB            *circuitbreaker.CircuitBreaker
}

// NewGetLeaderboardUseCase 创建排行榜查询用例
func NewGetLeaderboardUseCase(
	leaderboardService leaderboard.Service,
	cache *redis.LeaderboardCache,
	cacheCB *circuitbreaker.CircuitBreaker,
) *GetLeaderboardUseCase {
	return &GetLeaderboardUseCase{
		leaderboardService: leaderboardService,
		cache:              cache,
		cacheCB:            cacheCB,
	}
}

// GetLeaderboardRequest 排行榜查询请求DTO
type GetLeaderboardRequest struct {
	SortBy string // 排序维度(wins | win_pct),空串采用默认值wins
}

// LeaderboardRow 排行榜行DTO
type LeaderboardRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
	WinPct      float64 `json:"win_pct"` // 胜率(百分比,保留1位小数)
}

// GetLeaderboardResponse 排行榜查询响应DTO
type GetLeaderboardResponse struct {
	SortBy string           `json:"sort_by"`
	Total  int              `json:"total"`
	List   []LeaderboardRow `json:"list"`
}

// Execute 执行排行榜查询用例
func (uc *GetLeaderboardUseCase) Execute(ctx context.Context, req GetLeaderboardRequest) (*GetLeaderboardResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "GetLeaderboard")
	defer span.End()

	// 1. 解析排序维度
	// 空串采用默认值wins;非法值返回ErrInvalidSortKey
	raw := req.SortBy
	if raw == "" {
		raw = string(leaderboard.SortByWins)
	}
	sortBy, err := leaderboard.ParseSortKey(raw)
	if err != nil {
		return nil, err
	}

	// 2. 查缓存(Cache-Aside读路径)
	if rows, ok := uc.loadFromCache(ctx, sortBy); ok {
		metrics.LeaderboardQueriesTotal.With(prometheus.Labels{
			"sort_by": string(sortBy),
			"source":  "cache",
		}).Inc()
		return newLeaderboardResponse(sortBy, rows), nil
	}

	// 3. 未命中,回源计算榜单
	rows, err := uc.leaderboardService.GetLeaderboard(ctx, sortBy)
	if err != nil {
		return nil, err
	}

	// 4. 回填缓存(失败只记日志,不影响本次查询)
	uc.storeToCache(ctx, sortBy, rows)

	metrics.LeaderboardQueriesTotal.With(prometheus.Labels{
		"sort_by": string(sortBy),
		"source":  "db",
	}).Inc()
	logger.Debug("排行榜回源计算完成",
		zap.String("sort_by", string(sortBy)),
		zap.Int("total", len(rows)),
	)

	return newLeaderboardResponse(sortBy, rows), nil
}

// loadFromCache 尝试从缓存读取榜单
// 缓存未启用、未命中、熔断打开、Redis出错都返回(nil, false),统一降级回源
func (uc *GetLeaderboardUseCase) loadFromCache(ctx context.Context, sortBy leaderboard.SortKey) ([]*leaderboard.Row, bool) {
	if uc.cache == nil {
		return nil, false
	}

	var (
		rows []*leaderboard.Row
		hit  bool
	)
	load := func() error {
		var err error
		rows, hit, err = uc.cache.Get(ctx, sortBy)
		return err
	}

	var err error
	if uc.cacheCB != nil {
		err = uc.cacheCB.Execute(load)
		observeBreakerResult(uc.cacheCB, err)
	} else {
		err = load()
	}
	if err != nil {
		// 出错按未命中处理并计入miss指标(本次请求实际走了DB)
		logger.Warn("读取排行榜缓存失败,降级回源", zap.Error(err))
		metrics.CacheMissesTotal.Inc()
		return nil, false
	}
	if !hit {
		metrics.CacheMissesTotal.Inc()
		return nil, false
	}

	metrics.CacheHitsTotal.Inc()
	return rows, true
}

// storeToCache 回填榜单缓存
func (uc *GetLeaderboardUseCase) storeToCache(ctx context.Context, sortBy leaderboard.SortKey, rows []*leaderboard.Row) {
	if uc.cache == nil {
		return
	}

	store := func() error {
		return uc.cache.Set(ctx, sortBy, rows)
	}

	var err error
	if uc.cacheCB != nil {
		err = uc.cacheCB.Execute(store)
		observeBreakerResult(uc.cacheCB, err)
	} else {
		err = store()
	}
	if err != nil {
		logger.Warn("回填排行榜缓存失败", zap.Error(err))
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

// newLeaderboardResponse 领域读模型 → 应用层DTO
func newLeaderboardResponse(sortBy leaderboard.SortKey, rows []*leaderboard.Row) *GetLeaderboardResponse {
	list := make([]LeaderboardRow, len(rows))
	for i, r := range rows {
		list[i] = LeaderboardRow{
			ID:          r.ID,
			Name:        r.Name,
			Weight:      r.Weight,
			Height:      r.Height,
			Reach:       r.Reach,
			Age:         r.Age,
			WeightClass: string(r.WeightClass),
			Fights:      r.Fights,
			Wins:        r.Wins,
			WinPct:      r.WinPct,
		}
	}

	return &GetLeaderboardResponse{
		SortBy: string(sortBy),
		Total:  len(list),
		List:   list,
	}
}
