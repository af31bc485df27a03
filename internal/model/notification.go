package model

import (
	"gorm.io/gorm"
)

// 通知类型
const (
	NotificationTypeLike    = "like"    // 点赞通知
	NotificationTypeComment = "comment" // 评论/回复通知
	NotificationTypeFollow  = "follow"  // 关注通知
	NotificationTypeSystem  = "system"  // 系统通知（封禁、角色变更等）
)

// Notification 站内通知
// 写入后通过 websocket 实时推送给在线用户，离线用户登录后拉取
type Notification struct {
	gorm.Model
	Uuid         string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:通知唯一id"`
	ReceiverUuid string `gorm:"column:receiver_uuid;index;type:char(20);not null;comment:接收人uuid"`
	SenderUuid   string `gorm:"column:sender_uuid;type:char(20);comment:触发人uuid，系统通知为空"`
	Type         string `gorm:"column:type;type:varchar(10);not null;comment:通知类型"`
	Content      string `gorm:"column:content;type:varchar(500);not null;comment:通知内容"`
	TargetUuid   string `gorm:"column:target_uuid;type:char(20);comment:关联对象uuid（帖子/评论等）"`
	IsRead       int8   `gorm:"column:is_read;index;default:0;comment:是否已读，0.未读，1.已读"`
}

func (Notification) TableName() string {
	return "notification"
}
