// Package http_server 提供 HTTP 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件与路由
package http_server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/WhiteCrowZero/MinTieba/internal/handler"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/logger"
	"github.com/WhiteCrowZero/MinTieba/internal/router"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
)

// Init 初始化 HTTP 服务器并返回 Gin 引擎实例
// handlers: 依赖注入的 handler 聚合对象
// svc: 服务聚合对象，路由层从中取鉴权器
func Init(handlers *handler.Handlers, svc *service.Services) *gin.Engine {
	// 空白引擎，中间件自行控制
	engine := gin.New()

	// Zap 日志与 Panic 恢复中间件，替代 Gin 默认实现
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	// CORS 跨域规则
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"} // 生产环境应指定具体域名
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS 重定向中间件（由 Nginx 处理 SSL 时保持注释）
	// engine.Use(middleware.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))

	// 注册业务路由
	rt := router.NewRouter(handlers, svc)
	rt.RegisterRoutes(engine)

	return engine
}
