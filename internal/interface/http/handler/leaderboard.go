package handler

import (
	"github.com/gin-gonic/gin"

	appleaderboard "github.com/jflippa/boxing/internal/application/leaderboard"
	"github.com/jflippa/boxing/internal/interface/http/dto"
	"github.com/jflippa/boxing/pkg/response"
)

// LeaderboardHandler 排行榜HTTP处理器
type LeaderboardHandler struct {
	getLeaderboardUseCase *appleaderboard.GetLeaderboardUseCase
}

// NewLeaderboardHandler 创建排行榜处理器
func NewLeaderboardHandler(getLeaderboardUseCase *appleaderboard.GetLeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{
		getLeaderboardUseCase: getLeaderboardUseCase,
	}
}

// GetLeaderboard 查询排行榜
// @Summary      查询排行榜
// @Description  返回按胜场数或胜率降序的拳击手榜单,从未比赛的拳击手不上榜
// @Tags         排行榜
// @Produce      json
// @Param        sort_by query string false "排序维度(wins | win_pct),缺省wins"
// @Success      200 {object} response.Response{data=dto.LeaderboardResponse}
// @Failure      400 {object} response.Response "排序维度不合法"
// @Router       /api/v1/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	// 1. 参数绑定(query参数)
	var req dto.GetLeaderboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	result, err := h.getLeaderboardUseCase.Execute(c.Request.Context(), appleaderboard.GetLeaderboardRequest{
		SortBy: req.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	list := make([]dto.LeaderboardRowResponse, len(result.List))
	for i, row := range result.List {
		list[i] = dto.LeaderboardRowResponse{
			ID:          row.ID,
			Name:        row.Name,
			Weight:      row.Weight,
			Height:      row.Height,
			Reach:       row.Reach,
			Age:         row.Age,
			WeightClass: row.WeightClass,
			Fights:      row.Fights,
			Wins:        row.Wins,
			WinPct:      row.WinPct,
		}
	}
	response.Success(c, &dto.LeaderboardResponse{
		SortBy: result.SortBy,
		Total:  result.Total,
		List:   list,
	})
}
