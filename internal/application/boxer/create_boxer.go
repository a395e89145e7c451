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

// tracerName 应用层Span的Tracer名称
const tracerName = "boxing-api"

// CreateBoxerUseCase 拳击手注册用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 输入输出使用DTO(Data Transfer Object),与HTTP层解耦
// 3. 字段校验与查重由领域服务负责,应用层只编排流程
// 4. 名册变更后让排行榜缓存失效(榜单是全量推导的读视图,无法增量更新)
type CreateBoxerUseCase struct {
	boxerService boxer.Service
	cache        *redis.LeaderboardCache
	cacheCB      *circuitbreaker.CircuitBreaker
}

// NewCreateBoxerUseCase 创建注册用例
func NewCreateBoxerUseCase(
	boxerService boxer.Service,
	cache *redis.LeaderboardCache,
	cacheCB *circuitbreaker.CircuitBreaker,
) *CreateBoxerUseCase {
	return &CreateBoxerUseCase{
		boxerService: boxerService,
		cache:        cache,
		cacheCB:      cacheCB,
	}
}

// CreateBoxerRequest 注册请求DTO
type CreateBoxerRequest struct {
	Name   string  // 姓名(存储前去除首尾空白)
	Weight float64 // 体重(磅),必须>=125
	Height float64 // 身高,必须>0
	Reach  float64 // 臂展,必须>0
	Age    int     // 年龄,必须在18-40之间
}

// BoxerResponse 拳击手响应DTO
// 注册/查询/登记比赛结果共用同一个投影
type BoxerResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Height      float64 `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"` // 派生属性,由体重实时计算
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
	CreatedAt   string  `json:"created_at"`
}

// newBoxerResponse 领域实体 → 应用层DTO
// 说明:不直接返回领域实体,领域模型变更不影响API契约
func newBoxerResponse(b *boxer.Boxer) *BoxerResponse {
	return &BoxerResponse{
		ID:          b.ID,
		Name:        b.Name,
		Weight:      b.Weight,
		Height:      b.Height,
		Reach:       b.Reach,
		Age:         b.Age,
		WeightClass: string(b.WeightClass()),
		Fights:      b.Fights,
		Wins:        b.Wins,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Execute 执行注册用例
// 学习要点:
// 1. 应用层不直接操作Repository,通过领域服务间接操作
// 2. 校验顺序(体重→身高→臂展→年龄→姓名)与错误类型由领域服务保证
// 3. 指标/日志/缓存失效等横切关注点收敛在应用层,领域层保持纯净
func (uc *CreateBoxerUseCase) Execute(ctx context.Context, req CreateBoxerRequest) (*BoxerResponse, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateBoxer")
	defer span.End()

	// 1. 调用领域服务注册拳击手
	// 领域服务会处理:字段校验、姓名trim、查重(含数据库唯一索引兜底)
	b, err := uc.boxerService.CreateBoxer(ctx, req.Name, req.Weight, req.Height, req.Reach, req.Age)
	if err != nil {
		return nil, err
	}

	// 2. 名册已变化,让排行榜缓存失效
	invalidateLeaderboard(ctx, uc.cache, uc.cacheCB)

	// 3. 记录业务指标与日志
	metrics.BoxersCreatedTotal.Inc()
	logger.Info("拳击手注册成功",
		zap.Uint("boxer_id", b.ID),
		zap.String("name", b.Name),
		zap.String("weight_class", string(b.WeightClass())),
	)

	// 4. 构建响应DTO
	return newBoxerResponse(b), nil
}
