package leaderboard

import (
	apperrors "github.com/jflippa/boxing/pkg/errors"
)

// 排行榜领域错误定义
var (
	// ErrInvalidSortKey 排序维度不合法
	ErrInvalidSortKey = apperrors.New(apperrors.ErrCodeInvalidParams, "排序字段只能是wins或win_pct")
)
