package leaderboard

import (
	"context"
	"sort"

	"github.com/jflippa/boxing/internal/domain/boxer"
)

// Service 排行榜领域服务接口
// 设计说明:
// 1. 排行榜是拳击手聚合之上的读侧视图,不持有自己的存储
// 2. 排序在内存完成而非SQL:榜单是存量数据的纯函数,
//    便于单测,也避免排序规则散落在SQL里
type Service interface {
	// GetLeaderboard 计算排行榜
	// 业务规则:
	// - 排序维度必须是wins或win_pct(调用方通过ParseSortKey解析原始参数)
	// - 只统计有比赛记录的拳击手(fights > 0)
	// - 按选定维度降序,同值时按ID升序(保证结果确定性)
	// - 没有符合条件的选手时返回空列表(不是错误)
	GetLeaderboard(ctx context.Context, sortBy SortKey) ([]*Row, error)
}

// service 领域服务实现
type service struct {
	boxerRepo boxer.Repository
}

// NewService 创建排行榜领域服务
func NewService(boxerRepo boxer.Repository) Service {
	return &service{boxerRepo: boxerRepo}
}

// GetLeaderboard 计算排行榜
func (s *service) GetLeaderboard(ctx context.Context, sortBy SortKey) ([]*Row, error) {
	// 1. 排序维度校验(防御性检查,正常路径已在解析时拦截)
	if !sortBy.Valid() {
		return nil, ErrInvalidSortKey
	}

	// 2. 拉取有比赛记录的拳击手
	boxers, err := s.boxerRepo.ListWithFights(ctx)
	if err != nil {
		return nil, err
	}

	// 3. 构建读模型(派生字段在此计算)
	rows := make([]*Row, 0, len(boxers))
	for _, b := range boxers {
		rows = append(rows, NewRow(b))
	}

	// 4. 按选定维度降序,同值按ID升序
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch sortBy {
		case SortByWinPct:
			if a.WinPct != b.WinPct {
				return a.WinPct > b.WinPct
			}
		default: // SortByWins
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
		}
		return a.ID < b.ID
	})

	return rows, nil
}
