package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes 注册私信与通知相关路由
func (rt *Router) RegisterMessageRoutes(g *gin.RouterGroup) {
	g.POST("/message/sendMessage", rt.handlers.Message.SendMessage)
	g.GET("/message/getThreads", rt.handlers.Message.GetThreads)
	g.GET("/message/getMessages", rt.handlers.Message.GetMessages)

	g.GET("/notification/getNotifications", rt.handlers.Message.GetNotifications)
	g.POST("/notification/markRead", rt.handlers.Message.MarkNotificationRead)
	g.POST("/notification/markAllRead", rt.handlers.Message.MarkAllNotificationsRead)
}
