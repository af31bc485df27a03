package model

import (
	"gorm.io/gorm"
)

// MessageThread 私信会话
// 两个用户之间唯一一条会话，UserA/UserB 按 uuid 字典序归一化存储
type MessageThread struct {
	gorm.Model
	Uuid      string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:会话唯一id"`
	UserAUuid string `gorm:"column:user_a_uuid;index:idx_thread_pair,unique;type:char(20);not null;comment:用户A uuid（字典序较小）"`
	UserBUuid string `gorm:"column:user_b_uuid;index:idx_thread_pair,unique;type:char(20);not null;comment:用户B uuid"`
}

func (MessageThread) TableName() string {
	return "message_thread"
}

// PrivateMessage 私信
// Content 存储 AES-GCM 加密后的密文（base64），读取时由服务层解密
type PrivateMessage struct {
	gorm.Model
	Uuid       string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:私信唯一id"`
	ThreadUuid string `gorm:"column:thread_uuid;index;type:char(20);not null;comment:会话uuid"`
	SenderUuid string `gorm:"column:sender_uuid;type:char(20);not null;comment:发送人uuid"`
	Content    string `gorm:"column:content;type:text;not null;comment:密文内容"`
	IsRead     int8   `gorm:"column:is_read;default:0;comment:是否已读，0.未读，1.已读"`
}

func (PrivateMessage) TableName() string {
	return "private_message"
}
