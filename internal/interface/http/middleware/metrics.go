package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jflippa/boxing/pkg/metrics"
)

// Metrics HTTP指标采集中间件
//
// 教学要点：
// 1. path标签用路由模板(c.FullPath())而不是实际URL
//    实际URL带具体ID（/api/v1/boxers/42），会导致标签基数爆炸
// 2. Gauge在请求开始时Inc、结束时Dec，反映瞬时并发量
// 3. 状态码要在c.Next()之后读取，此时Handler已写入响应
//
// 使用方式：
//
//	r.Use(middleware.Metrics())
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 步骤1: 取路由模板作为path标签
		// 未匹配到路由时FullPath为空串，统一归到unmatched，避免恶意路径打爆标签
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		// 步骤2: 记录开始时间与并发数
		start := time.Now()
		metrics.HTTPRequestsInProgress.Inc()

		// 步骤3: 处理请求
		c.Next()

		// 步骤4: 记录请求总数与耗时
		metrics.HTTPRequestsInProgress.Dec()

		metrics.HTTPRequestsTotal.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}).Inc()

		metrics.HTTPRequestDuration.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
		}).Observe(time.Since(start).Seconds())
	}
}
