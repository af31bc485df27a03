package mq

// NotificationPusher 通知推送接口
// 用于解耦 MQ 层和 Gateway 层的依赖关系：
// 消费者只需知道"有个东西能向用户推送"，不需要知道 websocket 细节
type NotificationPusher interface {
	// PushToUser 向指定在线用户推送通知（JSON bytes）
	// 用户不在线时返回 false，通知仍会落库，登录后拉取
	PushToUser(userUuid string, payload []byte) bool
}

// notificationPusher 存储注入的 NotificationPusher 实现
var notificationPusher NotificationPusher

// SetNotificationPusher 注入 NotificationPusher 实现
func SetNotificationPusher(pusher NotificationPusher) {
	notificationPusher = pusher
}

// GetNotificationPusher 获取 NotificationPusher 实现
func GetNotificationPusher() NotificationPusher {
	return notificationPusher
}
