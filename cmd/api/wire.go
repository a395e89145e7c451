//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入（如Spring的@Autowired）不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如NewBoxerRepository）
// - Injector: 声明最终要构造的目标类型（如*gin.Engine）
// - wire.Build(): 告诉Wire如何组装依赖链

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"

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
	"github.com/jflippa/boxing/pkg/metrics"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================
// 教学说明：
// ProviderSet 将相关的 Provider 分组，便于管理和复用
// 例如：基础设施层的所有Provider放在一起

// infrastructureSet 基础设施层依赖
// 包含：配置加载、数据库连接、排行榜缓存（可选）、缓存熔断器
var infrastructureSet = wire.NewSet(
	config.Load,             // 加载配置文件
	mysql.NewDB,             // 创建MySQL连接
	provideLeaderboardCache, // 排行榜缓存（未启用时为nil）
	provideCacheBreaker,     // 缓存熔断器（未启用时为nil）
)

// repositorySet 仓储层依赖
// 包含：所有Repository的构造函数
var repositorySet = wire.NewSet(
	mysql.NewBoxerRepository, // 拳击手仓储
	mysql.NewTxManager,       // 事务管理器
)

// domainSet 领域层依赖
// 包含：所有领域服务的构造函数
var domainSet = wire.NewSet(
	boxer.NewService,       // 拳击手领域服务
	leaderboard.NewService, // 排行榜领域服务
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	appboxer.NewCreateBoxerUseCase,          // 注册拳击手用例
	appboxer.NewGetBoxerUseCase,             // 查询拳击手用例
	appboxer.NewDeleteBoxerUseCase,          // 删除拳击手用例
	appboxer.NewRecordFightUseCase,          // 登记比赛结果用例
	appleaderboard.NewGetLeaderboardUseCase, // 排行榜查询用例
)

// handlerSet HTTP处理器依赖
// 包含：所有Handler的构造函数
var handlerSet = wire.NewSet(
	handler.NewBoxerHandler,       // 拳击手处理器
	handler.NewLeaderboardHandler, // 排行榜处理器
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 教学说明：
// 有些依赖不能直接用构造函数提供（如按配置开关决定是否创建）
// 这时需要编写自定义Provider函数

// provideLeaderboardCache 按配置创建排行榜缓存
// 教学要点：缓存是可选依赖，未启用时返回nil
// 用例内部对nil缓存做了保护，Wire不关心值是否为nil
func provideLeaderboardCache(cfg *config.Config) (*redis.LeaderboardCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewLeaderboardCache(client, cfg.Cache.LeaderboardTTL), nil
}

// provideCacheBreaker 按配置创建缓存熔断器
// 复用main.go中的newCacheBreaker（同属main包）
func provideCacheBreaker(cfg *config.Config) *circuitbreaker.CircuitBreaker {
	if !cfg.Cache.Enabled {
		return nil
	}
	return newCacheBreaker()
}

// provideGinEngine 创建并配置Gin引擎
// 教学要点：
// 1. Gin引擎需要注册中间件和所有路由
// 2. 路由注册需要所有的Handler，Wire会自动注入
// 3. 路由表复用main.go中的registerRoutes（同属main包）
func provideGinEngine(
	cfg *config.Config,
	boxerHandler *handler.BoxerHandler,
	leaderboardHandler *handler.LeaderboardHandler,
) *gin.Engine {
	metrics.InitMetrics()

	// 设置运行模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Trace.Enabled {
		r.Use(middleware.Tracing())
	}

	registerRoutes(r, boxerHandler, leaderboardHandler)

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================
// 教学说明：
// InitializeApp是Wire的入口函数（Injector）
//
// wire.Build() 告诉Wire需要哪些Provider来构建*gin.Engine
// Wire会自动分析依赖关系：
//
// 依赖链示例：
// *gin.Engine 需要 → *handler.BoxerHandler
// *handler.BoxerHandler 需要 → *appboxer.CreateBoxerUseCase
// *appboxer.CreateBoxerUseCase 需要 → boxer.Service
// boxer.Service 需要 → boxer.Repository
// boxer.Repository 需要 → *gorm.DB
// *gorm.DB 需要 → *config.Config
//
// Wire会按正确的顺序调用所有构造函数

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎
// 错误：如果任何依赖创建失败
//
// 教学说明：
// Wire Injector函数的返回值有限制：
// - 第一个返回值：要构造的目标类型（*gin.Engine）
// - 第二个返回值（可选）：只能是error或cleanup函数
// - 不能返回多个业务对象，如果需要Config可以在provideGinEngine中处理
func InitializeApp() (*gin.Engine, error) {
	// wire.Build 的参数是所有的 Provider
	// Wire会在编译期分析依赖关系，生成初始化代码
	wire.Build(
		// 基础设施层
		infrastructureSet,

		// 仓储层
		repositorySet,

		// 领域层
		domainSet,

		// 应用层
		applicationSet,

		// 接口层
		handlerSet,

		// Gin引擎
		provideGinEngine,
	)

	// 返回值类型必须与wire.Build的最终产出一致
	// Wire会在wire_gen.go中生成实际的初始化代码
	// 这里的返回值是占位符，实际运行时会被wire_gen.go替代
	return nil, nil
}
