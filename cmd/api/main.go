package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/jflippa/boxing/docs" // swag生成的API文档
	appboxer "github.com/jflippa/boxing/internal/application/boxer"
	appleaderboard "github.com/jflippa/boxing/internal/application/leaderboard"
	"github.com/jflippa/boxing/internal/domain/boxer"
	"github.com/jflippa/boxing/internal/domain/leaderboard"
	"github.com/jflippa/boxing/internal/infrastructure/config"
	"github.com/jflippa/boxing/internal/infrastructure/persistence/mysql"
	"github.com/jflippa/boxing/internal/infrastructure/persistence/redis"
	"github.com/jflippa/boxing/internal/interface/http/handler"
	"github.com/jflippa/boxing/internal/interface/http/middleware"
	"github.com/jflippa/boxing/pkg/circuitbreaker"
	"github.com/jflippa/boxing/pkg/logger"
	"github.com/jflippa/boxing/pkg/metrics"
	"github.com/jflippa/boxing/pkg/response"
	"github.com/jflippa/boxing/pkg/tracing"
)

// @title           Boxing API
// @version         1.0
// @description     拳击手名册与排行榜服务：注册/查询/删除拳击手、登记比赛结果、查询胜场与胜率排行榜
// @host            localhost:8080
// @BasePath        /

// main 主程序入口
// 说明：手动依赖注入（wire.go中有等价的Wire版本，运行wire gen后可切换）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if _, err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - 排行榜缓存: %v\n", cfg.Cache.Enabled)

	// 3. 初始化Prometheus指标
	metrics.InitMetrics()

	// 4. 初始化分布式追踪（可选）
	if cfg.Trace.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Trace.ServiceName, cfg.Trace.Endpoint)
		if err != nil {
			log.Fatalf("初始化追踪失败: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Warn("关闭追踪失败", zap.Error(err))
			}
		}()
		fmt.Printf("✓ 追踪已启用（端点: %s）\n", cfg.Trace.Endpoint)
	}

	// 5. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 6. 初始化Redis与排行榜缓存（可选）
	// 缓存未启用时cache/cacheCB为nil，用例内部会跳过缓存逻辑
	var (
		leaderboardCache *redis.LeaderboardCache
		cacheCB          *circuitbreaker.CircuitBreaker
	)
	if cfg.Cache.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		leaderboardCache = redis.NewLeaderboardCache(redisClient, cfg.Cache.LeaderboardTTL)
		cacheCB = newCacheBreaker()
		fmt.Printf("✓ 排行榜缓存已启用（TTL: %v）\n", cfg.Cache.LeaderboardTTL)
	}

	// 7. 依赖注入（手动组装）
	// 学习要点：依赖注入链
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	boxerRepo := mysql.NewBoxerRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	boxerService := boxer.NewService(boxerRepo)
	leaderboardService := leaderboard.NewService(boxerRepo)

	// 应用层
	createBoxerUseCase := appboxer.NewCreateBoxerUseCase(boxerService, leaderboardCache, cacheCB)
	getBoxerUseCase := appboxer.NewGetBoxerUseCase(boxerService)
	deleteBoxerUseCase := appboxer.NewDeleteBoxerUseCase(boxerService, leaderboardCache, cacheCB)
	recordFightUseCase := appboxer.NewRecordFightUseCase(boxerService, txManager, leaderboardCache, cacheCB)
	getLeaderboardUseCase := appleaderboard.NewGetLeaderboardUseCase(leaderboardService, leaderboardCache, cacheCB)

	// 接口层
	boxerHandler := handler.NewBoxerHandler(createBoxerUseCase, getBoxerUseCase, deleteBoxerUseCase, recordFightUseCase)
	leaderboardHandler := handler.NewLeaderboardHandler(getLeaderboardUseCase)

	// 8. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics()) // HTTP指标采集
	if cfg.Trace.Enabled {
		r.Use(middleware.Tracing()) // 每个请求开启根Span
	}

	// 9. 注册路由
	registerRoutes(r, boxerHandler, leaderboardHandler)

	// 10. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/health\n", addr)
	fmt.Printf("   注册拳击手: POST http://localhost%s/api/v1/boxers\n", addr)
	fmt.Printf("   登记比赛: POST http://localhost%s/api/v1/boxers/{id}/fights\n", addr)
	fmt.Printf("   排行榜: GET http://localhost%s/api/v1/leaderboard?sort_by=wins\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// newCacheBreaker 创建排行榜缓存熔断器
// 策略：连续5次失败熔断，30秒后进入半开，半开状态放行3个探测请求
func newCacheBreaker() *circuitbreaker.CircuitBreaker {
	cb := circuitbreaker.NewCircuitBreaker("leaderboard-cache", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	// 状态变化时记日志并更新指标
	cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		logger.Warn("熔断器状态变化",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
		metrics.CircuitBreakerState.With(prometheus.Labels{"name": name}).Set(float64(to))
	})

	return cb
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, boxerHandler *handler.BoxerHandler, leaderboardHandler *handler.LeaderboardHandler) {
	// 健康检查
	// /healthcheck是历史路径，保留兼容旧的探活配置
	healthHandler := func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	}
	r.GET("/ping", healthHandler)
	r.GET("/health", healthHandler)
	r.GET("/healthcheck", healthHandler)

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 拳击手模块
		boxers := v1.Group("/boxers")
		{
			boxers.POST("", boxerHandler.CreateBoxer)              // ✅ 注册拳击手
			boxers.GET("/:id", boxerHandler.GetBoxerByID)          // ✅ 按ID查询
			boxers.GET("/name/:name", boxerHandler.GetBoxerByName) // ✅ 按姓名查询
			boxers.DELETE("/:id", boxerHandler.DeleteBoxer)        // ✅ 删除拳击手
			boxers.POST("/:id/fights", boxerHandler.RecordFight)   // ✅ 登记比赛结果
		}

		// 排行榜模块
		v1.GET("/leaderboard", leaderboardHandler.GetLeaderboard) // ✅ 查询排行榜
	}
}
