// Package notification 实现站内通知业务逻辑
//
// 通知链路：业务服务调用 Notify 投递事件到 Kafka，
// 消费端经 HandleEvent 落库并生成推送载荷，由 websocket 网关推给在线用户。
// Kafka 未启用时退化为同步落库加直接推送。
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/config"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/mq"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/random"
)

// notificationService 站内通知业务逻辑实现
type notificationService struct {
	repos *repository.Repositories
}

// NewNotificationService 构造函数
func NewNotificationService(repos *repository.Repositories) *notificationService {
	return &notificationService{repos: repos}
}

// Notify 发送站内通知，尽力而为，失败只记日志不影响主流程
func (s *notificationService) Notify(receiverUuid, senderUuid, notifyType, content, targetUuid string) {
	event := mq.NotificationEvent{
		ReceiverUuid: receiverUuid,
		SenderUuid:   senderUuid,
		Type:         notifyType,
		Content:      content,
		TargetUuid:   targetUuid,
	}

	if config.GetConfig().KafkaConfig.Enabled {
		payload, err := json.Marshal(event)
		if err != nil {
			zap.L().Error(err.Error())
			return
		}
		if err := mq.KafkaService.WriteNotification(context.Background(), []byte(receiverUuid), payload); err != nil {
			zap.L().Error("投递通知事件失败", zap.Error(err))
		}
		return
	}

	// Kafka 未启用：同步落库并直接推送
	payload, err := s.HandleEvent(event)
	if err != nil {
		zap.L().Error("通知落库失败", zap.Error(err))
		return
	}
	if pusher := mq.GetNotificationPusher(); pusher != nil {
		pusher.PushToUser(receiverUuid, payload)
	}
}

// HandleEvent 通知事件落库，返回推送给接收方的载荷
// 作为 mq.NotificationHandler 注入通知消费者
func (s *notificationService) HandleEvent(event mq.NotificationEvent) ([]byte, error) {
	notification := model.Notification{
		Uuid:         fmt.Sprintf("N%s", random.GetNowAndLenRandomString(11)),
		ReceiverUuid: event.ReceiverUuid,
		SenderUuid:   event.SenderUuid,
		Type:         event.Type,
		Content:      event.Content,
		TargetUuid:   event.TargetUuid,
	}
	if err := s.repos.Notification.Create(&notification); err != nil {
		return nil, err
	}

	rsp := respond.NotificationRespond{
		Uuid:       notification.Uuid,
		SenderUuid: notification.SenderUuid,
		Type:       notification.Type,
		Content:    notification.Content,
		TargetUuid: notification.TargetUuid,
		IsRead:     0,
		CreatedAt:  notification.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	return json.Marshal(rsp)
}

// GetNotifications 分页查询通知列表及未读数
func (s *notificationService) GetNotifications(receiverUuid string, req request.GetNotificationListRequest) (*respond.GetNotificationListWrapper, error) {
	notifications, total, err := s.repos.Notification.FindByReceiver(receiverUuid, req.Page, req.PageSize)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	unread, err := s.repos.Notification.CountUnread(receiverUuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	list := make([]respond.NotificationRespond, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, respond.NotificationRespond{
			Uuid:       n.Uuid,
			SenderUuid: n.SenderUuid,
			Type:       n.Type,
			Content:    n.Content,
			TargetUuid: n.TargetUuid,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return &respond.GetNotificationListWrapper{
		List:   list,
		Total:  total,
		Unread: unread,
	}, nil
}

// MarkRead 标记单条通知已读，只能操作本人的通知
func (s *notificationService) MarkRead(receiverUuid, notificationUuid string) error {
	if err := s.repos.Notification.MarkRead(notificationUuid, receiverUuid); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "通知不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// MarkAllRead 标记全部通知已读
func (s *notificationService) MarkAllRead(receiverUuid string) error {
	if err := s.repos.Notification.MarkAllRead(receiverUuid); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}
