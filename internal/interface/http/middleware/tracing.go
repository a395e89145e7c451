package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jflippa/boxing/pkg/tracing"
)

// Tracing 分布式追踪中间件
//
// 教学要点：
// 1. 每个HTTP请求开启一个根Span，应用层/基础设施层的Span都挂在它下面
// 2. 带Span的Context必须写回c.Request，后续代码通过c.Request.Context()取到
// 3. Span命名用"方法 + 路由模板"（如POST /api/v1/boxers），与指标的path口径一致
// 4. 5xx响应把Span标记为Error，便于在Jaeger里过滤失败请求
//
// 使用方式：
//
//	r.Use(middleware.Tracing())
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 步骤1: 用路由模板命名Span
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		spanName := c.Request.Method + " " + route

		// 步骤2: 开启根Span并注入Context
		ctx, span := tracing.StartSpan(c.Request.Context(), "boxing-http", spanName)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		// 步骤3: 处理请求
		c.Next()

		// 步骤4: 记录HTTP维度属性
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
		if c.Writer.Status() >= 500 {
			span.SetStatus(codes.Error, "server error")
		}
	}
}
