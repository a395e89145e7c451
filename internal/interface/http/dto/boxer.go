package dto

// CreateBoxerRequest HTTP注册请求
// binding tag说明:
// - 数值字段和姓名不加required/min等约束
// - 合法范围(体重>=125、年龄18-40等)是业务规则,统一由领域层按
//   固定顺序校验;零值请求也要进入领域层,拿到对应维度的错误提示
type CreateBoxerRequest struct {
	Name   string  `json:"name" example:"Muhammad Ali"`
	Weight float64 `json:"weight" example:"210"` // 体重(磅)
	Height float64 `json:"height" example:"75"`  // 身高(英寸)
	Reach  float64 `json:"reach" example:"78"`   // 臂展(英寸)
	Age    int     `json:"age" example:"32"`
}

// RecordFightRequest HTTP登记比赛结果请求
// result的合法取值(win/loss)同样由领域层解析校验
type RecordFightRequest struct {
	Result string `json:"result" example:"win"` // win | loss
}

// BoxerResponse HTTP拳击手响应
// 注册/查询/登记比赛结果共用
type BoxerResponse struct {
	ID          uint    `json:"id" example:"1"`
	Name        string  `json:"name" example:"Muhammad Ali"`
	Weight      float64 `json:"weight" example:"210"`
	Height      float64 `json:"height" example:"75"`
	Reach       float64 `json:"reach" example:"78"`
	Age         int     `json:"age" example:"32"`
	WeightClass string  `json:"weight_class" example:"HEAVYWEIGHT"` // 由体重派生
	Fights      int     `json:"fights" example:"61"`
	Wins        int     `json:"wins" example:"56"`
	CreatedAt   string  `json:"created_at" example:"2024-01-15 10:30:00"`
}
