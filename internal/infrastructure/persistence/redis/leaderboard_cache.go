package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jflippa/boxing/internal/domain/leaderboard"
	apperrors "github.com/jflippa/boxing/pkg/errors"
)

// LeaderboardCache 排行榜缓存
// 设计说明：
// 1. 排行榜是读多写少的典型场景，适合Cache-Aside模式
// 2. Key设计：leaderboard:{sort_key}，每个排序维度一份缓存
// 3. 任何名册/战绩变更后整体失效（榜单是全量计算的，无法增量更新）
// 4. 缓存值直接JSON序列化领域读模型（仅内部使用，无跨版本兼容负担）
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache 创建排行榜缓存
// ttl是榜单的最长陈旧时间，失效兜底（正常路径靠主动Invalidate）
func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

// Get 读取缓存的榜单
// 返回值：(榜单, 是否命中, 错误)。未命中不是错误。
func (c *LeaderboardCache) Get(ctx context.Context, sortBy leaderboard.SortKey) ([]*leaderboard.Row, bool, error) {
	data, err := c.client.Get(ctx, leaderboardKey(sortBy)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "读取排行榜缓存失败")
	}

	var rows []*leaderboard.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		// 反序列化失败按未命中处理（可能是旧版本残留数据），回源后会覆盖
		return nil, false, nil
	}

	return rows, true, nil
}

// Set 写入榜单缓存
func (c *LeaderboardCache) Set(ctx context.Context, sortBy leaderboard.SortKey, rows []*leaderboard.Row) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return apperrors.Wrap(err, "序列化排行榜失败")
	}

	if err := c.client.Set(ctx, leaderboardKey(sortBy), data, c.ttl).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "写入排行榜缓存失败")
	}

	return nil
}

// Invalidate 清除所有排序维度的榜单缓存
// 调用时机：创建/删除拳击手、登记比赛结果成功之后
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	keys := []string{
		leaderboardKey(leaderboard.SortByWins),
		leaderboardKey(leaderboard.SortByWinPct),
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "清除排行榜缓存失败")
	}

	return nil
}

// leaderboardKey 生成缓存Key
// 使用冒号分隔命名空间，便于管理和监控
func leaderboardKey(sortBy leaderboard.SortKey) string {
	return fmt.Sprintf("leaderboard:%s", sortBy)
}
