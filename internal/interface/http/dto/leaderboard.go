package dto

// GetLeaderboardRequest HTTP排行榜查询请求
// sort_by不在binding层做oneof校验:合法取值属于业务规则,
// 由领域层统一解析,非法值返回参数错误码而不是绑定错误码
type GetLeaderboardRequest struct {
	SortBy string `form:"sort_by" example:"wins"` // wins | win_pct,缺省wins
}

// LeaderboardRowResponse HTTP排行榜行
type LeaderboardRowResponse struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Muhammad Ali"`
	Weight      float64 `json:"weight" example:"210"`
	Height      float64 `json:"height" example:"75"`
	Reach       float64 `json:"reach" example:"78"`
	Age         int     `json:"age" example:"32"`
	WeightClass string  `json:"weight_class" example:"HEAVYWEIGHT"`
	Fights      int     `json:"fights" example:"61"`
	Wins        int     `json:"wins" example:"56"`
	WinPct      float64 `json:"win_pct" example:"91.8"` // 胜率(百分比,保留1位小数)
}

// LeaderboardResponse HTTP排行榜响应
type LeaderboardResponse struct {
	SortBy string                   `json:"sort_by" example:"wins"`
	Total  int                      `json:"total" example:"10"`
	List   []LeaderboardRowResponse `json:"list"`
}
