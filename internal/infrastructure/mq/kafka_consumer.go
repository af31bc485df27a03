// 本文件实现两个 Kafka 主题的消费循环：
//   - 通知事件：落库后向在线用户实时推送
//   - 成员关系异步切换：执行切换事务（重试在服务层的互斥锁内完成）
package mq

import (
	"encoding/json"

	"go.uber.org/zap"
)

// NotificationEvent 通知主题的事件载荷
type NotificationEvent struct {
	ReceiverUuid string `json:"receiver_uuid"` // 接收人
	SenderUuid   string `json:"sender_uuid"`   // 触发人，系统通知为空
	Type         string `json:"type"`          // 通知类型
	Content      string `json:"content"`       // 通知内容
	TargetUuid   string `json:"target_uuid"`   // 关联对象 uuid
}

// MemberToggleEvent 成员切换主题的事件载荷
type MemberToggleEvent struct {
	ForumUuid string `json:"forum_uuid"`
	UserUuid  string `json:"user_uuid"`
}

// NotificationHandler 通知落库回调，由服务层注入
// 返回落库后的通知 JSON，用于实时推送
type NotificationHandler func(event NotificationEvent) ([]byte, error)

// ToggleHandler 成员切换回调，由服务层注入
// 内部执行完整的切换事务（行锁 + 状态转移 + 计数更新），
// 瞬时失败的重试和互斥锁的释放也在回调内完成
type ToggleHandler func(forumUuid, userUuid string) error

// StartNotificationConsumer 启动通知消费循环（阻塞，应在独立 goroutine 中运行）
func StartNotificationConsumer(handler NotificationHandler) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("notification consumer panic", zap.Any("recover", r))
			go StartNotificationConsumer(handler) // 重启
		}
	}()

	for {
		kafkaMessage, err := KafkaService.NotificationReader.ReadMessage(ctx)
		if err != nil {
			zap.L().Error("read notification message failed", zap.Error(err))
			continue
		}

		var event NotificationEvent
		if err := json.Unmarshal(kafkaMessage.Value, &event); err != nil {
			zap.L().Error("unmarshal notification event failed",
				zap.ByteString("value", kafkaMessage.Value), zap.Error(err))
			continue
		}

		payload, err := handler(event)
		if err != nil {
			zap.L().Error("handle notification event failed",
				zap.String("receiver", event.ReceiverUuid), zap.Error(err))
			continue
		}

		// 在线用户实时推送，离线用户登录后拉取
		if pusher := GetNotificationPusher(); pusher != nil {
			if !pusher.PushToUser(event.ReceiverUuid, payload) {
				zap.L().Debug("receiver offline, notification stored only",
					zap.String("receiver", event.ReceiverUuid))
			}
		}
	}
}

// StartToggleConsumer 启动成员切换消费循环（阻塞，应在独立 goroutine 中运行）
// 重试由回调在互斥锁内完成，这里对最终失败的事件丢弃并告警，
// 计数偏差由对账任务兜底修正
func StartToggleConsumer(handler ToggleHandler) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("toggle consumer panic", zap.Any("recover", r))
			go StartToggleConsumer(handler) // 重启
		}
	}()

	for {
		kafkaMessage, err := KafkaService.ToggleReader.ReadMessage(ctx)
		if err != nil {
			zap.L().Error("read toggle message failed", zap.Error(err))
			continue
		}

		var event MemberToggleEvent
		if err := json.Unmarshal(kafkaMessage.Value, &event); err != nil {
			zap.L().Error("unmarshal toggle event failed",
				zap.ByteString("value", kafkaMessage.Value), zap.Error(err))
			continue
		}

		if err := handler(event.ForumUuid, event.UserUuid); err != nil {
			zap.L().Error("toggle membership dropped",
				zap.String("forum_uuid", event.ForumUuid),
				zap.String("user_uuid", event.UserUuid),
				zap.Error(err))
		}
	}
}
