// 本文件处理私信与通知相关的 API 请求
package handler

import (
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler 私信与通知请求处理器
type MessageHandler struct {
	messageSvc      service.MessageService
	notificationSvc service.NotificationService
}

// NewMessageHandler 创建私信处理器实例
func NewMessageHandler(messageSvc service.MessageService, notificationSvc service.NotificationService) *MessageHandler {
	return &MessageHandler{
		messageSvc:      messageSvc,
		notificationSvc: notificationSvc,
	}
}

// SendMessage 发送私信
// POST /message/sendMessage
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.messageSvc.SendMessage(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetThreads 查看私信会话列表
// GET /message/getThreads
func (h *MessageHandler) GetThreads(c *gin.Context) {
	data, err := h.messageSvc.GetThreads(middleware.GetPrincipal(c).UserUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMessages 分页查看会话内私信
// GET /message/getMessages?thread_uuid=xxx&page=1&page_size=20
func (h *MessageHandler) GetMessages(c *gin.Context) {
	var req request.GetMessageListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.messageSvc.GetMessages(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetNotifications 分页查询通知列表
// GET /notification/getNotifications?page=1&page_size=20
func (h *MessageHandler) GetNotifications(c *gin.Context) {
	var req request.GetNotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.notificationSvc.GetNotifications(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// MarkNotificationRead 标记单条通知已读
// POST /notification/markRead
func (h *MessageHandler) MarkNotificationRead(c *gin.Context) {
	var req request.MarkNotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.notificationSvc.MarkRead(middleware.GetPrincipal(c).UserUuid, req.NotificationUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// MarkAllNotificationsRead 标记全部通知已读
// POST /notification/markAllRead
func (h *MessageHandler) MarkAllNotificationsRead(c *gin.Context) {
	if err := h.notificationSvc.MarkAllRead(middleware.GetPrincipal(c).UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
