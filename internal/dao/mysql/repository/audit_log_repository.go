// Package repository 提供数据访问层的具体实现
// 本文件实现 AuditLogRepository 接口，审计日志只增不改
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// auditLogRepository AuditLogRepository 接口的实现
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository 创建 AuditLogRepository 实例
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create 追加审计日志
func (r *auditLogRepository) Create(log *model.ForumMemberAuditLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return wrapDBError(err, "创建审计日志")
	}
	return nil
}

// FindByForumUuid 按贴吧分页查询审计日志，按时间倒序
func (r *auditLogRepository) FindByForumUuid(forumUuid string, page, pageSize int) ([]model.ForumMemberAuditLog, int64, error) {
	var logs []model.ForumMemberAuditLog
	var total int64
	if err := r.db.Model(&model.ForumMemberAuditLog{}).
		Where("forum_uuid = ?", forumUuid).Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计审计日志 forum_uuid=%s", forumUuid)
	}
	if err := r.db.Where("forum_uuid = ?", forumUuid).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&logs).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询审计日志 forum_uuid=%s", forumUuid)
	}
	return logs, total, nil
}

// FindByTargetUuid 查询某用户在某贴吧被操作的审计日志
func (r *auditLogRepository) FindByTargetUuid(forumUuid, targetUuid string) ([]model.ForumMemberAuditLog, error) {
	var logs []model.ForumMemberAuditLog
	if err := r.db.Where("forum_uuid = ? AND target_uuid = ?", forumUuid, targetUuid).
		Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户审计日志 forum_uuid=%s target_uuid=%s", forumUuid, targetUuid)
	}
	return logs, nil
}
