// Package repository 提供数据访问层的具体实现
// 本文件实现 NotificationRepository 接口
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// notificationRepository NotificationRepository 接口的实现
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建 NotificationRepository 实例
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 创建通知
func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return wrapDBError(err, "创建通知")
	}
	return nil
}

// FindByReceiver 分页查询用户通知，按时间倒序
func (r *notificationRepository) FindByReceiver(receiverUuid string, page, pageSize int) ([]model.Notification, int64, error) {
	var notifications []model.Notification
	var total int64
	if err := r.db.Model(&model.Notification{}).
		Where("receiver_uuid = ?", receiverUuid).Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计通知 receiver=%s", receiverUuid)
	}
	if err := r.db.Where("receiver_uuid = ?", receiverUuid).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&notifications).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询通知 receiver=%s", receiverUuid)
	}
	return notifications, total, nil
}

// CountUnread 统计未读通知数
func (r *notificationRepository) CountUnread(receiverUuid string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Notification{}).
		Where("receiver_uuid = ? AND is_read = 0", receiverUuid).
		Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计未读通知 receiver=%s", receiverUuid)
	}
	return count, nil
}

// MarkRead 标记单条通知已读
// 附带 receiver 条件，防止越权标记他人通知
func (r *notificationRepository) MarkRead(uuid string, receiverUuid string) error {
	if err := r.db.Model(&model.Notification{}).
		Where("uuid = ? AND receiver_uuid = ?", uuid, receiverUuid).
		Update("is_read", 1).Error; err != nil {
		return wrapDBErrorf(err, "标记通知已读 uuid=%s", uuid)
	}
	return nil
}

// MarkAllRead 标记用户全部通知已读
func (r *notificationRepository) MarkAllRead(receiverUuid string) error {
	if err := r.db.Model(&model.Notification{}).
		Where("receiver_uuid = ? AND is_read = 0", receiverUuid).
		Update("is_read", 1).Error; err != nil {
		return wrapDBErrorf(err, "标记全部已读 receiver=%s", receiverUuid)
	}
	return nil
}
