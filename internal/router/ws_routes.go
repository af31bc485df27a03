package router

import (
	"github.com/gin-gonic/gin"

	"github.com/WhiteCrowZero/MinTieba/internal/handler"
)

// RegisterWebSocketRoutes 注册 WebSocket 连接路由
// 连接身份取自 JWT，客户端不能伪造他人身份建连
func (rt *Router) RegisterWebSocketRoutes(g *gin.RouterGroup) {
	g.GET("/ws", handler.WsConnectHandler)
}
