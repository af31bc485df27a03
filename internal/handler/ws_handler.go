// 本文件处理通知推送 WebSocket 连接相关的 API 请求
package handler

import (
	"net/http"

	"github.com/WhiteCrowZero/MinTieba/internal/gateway/websocket"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// WsConnectHandler 建立通知推送 WebSocket 连接
// GET /ws/connect
// 功能:
//   - 将 HTTP 连接升级为 WebSocket 连接
//   - 注册客户端到在线用户列表，接收通知与私信实时推送
//
// 连接身份取自 JWT 中间件写入的 user_id，不信任客户端参数
func WsConnectHandler(c *gin.Context) {
	userUuid := c.GetString("user_id")
	if userUuid == "" {
		c.JSON(http.StatusOK, gin.H{
			"code": errorx.CodeUnauthorized,
			"msg":  "请先登录",
		})
		return
	}
	websocket.NewClientInit(c, userUuid)
}
