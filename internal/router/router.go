package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/samarth/internal/handler"
	"github.com/ashwinyue/samarth/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.AuthMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "samarth"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Query 问答
		queries := v1.Group("/query")
		{
			queries.POST("/ask", h.Query.Ask)
			queries.GET("/datasets", h.Query.ListDatasets)
			queries.GET("/recent", h.Query.RecentQueries)
		}
	}

	return r
}
