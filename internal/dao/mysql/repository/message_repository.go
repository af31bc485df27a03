// Package repository 提供数据访问层的具体实现
// 本文件实现 MessageRepository 接口，处理私信会话与消息的数据库操作
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// messageRepository MessageRepository 接口的实现
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建 MessageRepository 实例
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindThread 查找两用户间的会话
// 入参已由服务层按字典序归一化为 (userA < userB)
func (r *messageRepository) FindThread(userA, userB string) (*model.MessageThread, error) {
	var thread model.MessageThread
	if err := r.db.Where("user_a_uuid = ? AND user_b_uuid = ?", userA, userB).
		First(&thread).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话 userA=%s userB=%s", userA, userB)
	}
	return &thread, nil
}

// FindThreadByUuid 根据 UUID 查找会话
func (r *messageRepository) FindThreadByUuid(uuid string) (*model.MessageThread, error) {
	var thread model.MessageThread
	if err := r.db.Where("uuid = ?", uuid).First(&thread).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话 uuid=%s", uuid)
	}
	return &thread, nil
}

// FindThreadsByUser 查找用户参与的所有会话，按更新时间倒序
func (r *messageRepository) FindThreadsByUser(userUuid string) ([]model.MessageThread, error) {
	var threads []model.MessageThread
	if err := r.db.Where("user_a_uuid = ? OR user_b_uuid = ?", userUuid, userUuid).
		Order("updated_at DESC").Find(&threads).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户会话 user=%s", userUuid)
	}
	return threads, nil
}

// CreateThread 创建会话
func (r *messageRepository) CreateThread(thread *model.MessageThread) error {
	if err := r.db.Create(thread).Error; err != nil {
		return wrapDBError(err, "创建会话")
	}
	return nil
}

// CreateMessage 创建私信
func (r *messageRepository) CreateMessage(message *model.PrivateMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "创建私信")
	}
	return nil
}

// FindMessagesByThread 分页查询会话内私信，按时间倒序
func (r *messageRepository) FindMessagesByThread(threadUuid string, page, pageSize int) ([]model.PrivateMessage, int64, error) {
	var messages []model.PrivateMessage
	var total int64
	if err := r.db.Model(&model.PrivateMessage{}).
		Where("thread_uuid = ?", threadUuid).Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计私信 thread=%s", threadUuid)
	}
	if err := r.db.Where("thread_uuid = ?", threadUuid).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&messages).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询私信 thread=%s", threadUuid)
	}
	return messages, total, nil
}

// MarkThreadRead 将会话内对方发送的私信标记已读
func (r *messageRepository) MarkThreadRead(threadUuid, readerUuid string) error {
	if err := r.db.Model(&model.PrivateMessage{}).
		Where("thread_uuid = ? AND sender_uuid != ? AND is_read = 0", threadUuid, readerUuid).
		Update("is_read", 1).Error; err != nil {
		return wrapDBErrorf(err, "标记私信已读 thread=%s", threadUuid)
	}
	return nil
}
