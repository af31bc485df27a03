// Package repository 提供数据访问层的具体实现
// 本文件实现 ForumMemberRepository 接口，处理贴吧成员关系的数据库操作
//
// 成员关系是软删除复用行模型：退出时软删除，重新加入时恢复同一行。
// 因此查询分两类：默认查询只看在吧成员，Unscoped 查询包含已退出记录，
// 用于区分"从未加入"和"退出后重新加入"
package repository

import (
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// forumMemberRepository ForumMemberRepository 接口的实现
type forumMemberRepository struct {
	db *gorm.DB
}

// NewForumMemberRepository 创建 ForumMemberRepository 实例
func NewForumMemberRepository(db *gorm.DB) ForumMemberRepository {
	return &forumMemberRepository{db: db}
}

// FindByForumAndUser 查找在吧成员（不含已退出）
func (r *forumMemberRepository) FindByForumAndUser(forumUuid, userUuid string) (*model.ForumMember, error) {
	var member model.ForumMember
	if err := r.db.Where("forum_uuid = ? AND user_uuid = ?", forumUuid, userUuid).
		First(&member).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询贴吧成员 forum_uuid=%s user_uuid=%s", forumUuid, userUuid)
	}
	return &member, nil
}

// FindByForumAndUserUnscoped 查找成员记录（含已退出的软删除行）
func (r *forumMemberRepository) FindByForumAndUserUnscoped(forumUuid, userUuid string) (*model.ForumMember, error) {
	var member model.ForumMember
	if err := r.db.Unscoped().
		Where("forum_uuid = ? AND user_uuid = ?", forumUuid, userUuid).
		First(&member).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询贴吧成员(含已退出) forum_uuid=%s user_uuid=%s", forumUuid, userUuid)
	}
	return &member, nil
}

// FindByForumUuid 查找贴吧所有在吧成员
func (r *forumMemberRepository) FindByForumUuid(forumUuid string) ([]model.ForumMember, error) {
	var members []model.ForumMember
	if err := r.db.Where("forum_uuid = ?", forumUuid).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询贴吧成员列表 forum_uuid=%s", forumUuid)
	}
	return members, nil
}

// FindByUserUuid 查找用户加入的所有贴吧成员记录
func (r *forumMemberRepository) FindByUserUuid(userUuid string) ([]model.ForumMember, error) {
	var members []model.ForumMember
	if err := r.db.Where("user_uuid = ?", userUuid).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户加入的贴吧 user_uuid=%s", userUuid)
	}
	return members, nil
}

// Create 新建成员记录
func (r *forumMemberRepository) Create(member *model.ForumMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建贴吧成员")
	}
	return nil
}

// Restore 恢复软删除的成员记录并刷新加入时间
// 只清除 deleted_at 和刷新 joined_at，role_type 和封禁状态保持原值
func (r *forumMemberRepository) Restore(id uint, joinedAt time.Time) error {
	if err := r.db.Unscoped().Model(&model.ForumMember{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"joined_at":  joinedAt,
		}).Error; err != nil {
		return wrapDBErrorf(err, "恢复贴吧成员 id=%d", id)
	}
	return nil
}

// SoftDelete 软删除成员记录（退出）
func (r *forumMemberRepository) SoftDelete(id uint) error {
	if err := r.db.Delete(&model.ForumMember{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除贴吧成员 id=%d", id)
	}
	return nil
}

// UpdateRole 更新成员角色
func (r *forumMemberRepository) UpdateRole(id uint, roleType string) error {
	if err := r.db.Model(&model.ForumMember{}).Where("id = ?", id).
		Update("role_type", roleType).Error; err != nil {
		return wrapDBErrorf(err, "更新成员角色 id=%d", id)
	}
	return nil
}

// UpdateBan 更新封禁状态
func (r *forumMemberRepository) UpdateBan(id uint, isBanned int8, bannedUntil *time.Time) error {
	updates := map[string]interface{}{
		"is_banned":    isBanned,
		"banned_until": bannedUntil,
	}
	if err := r.db.Model(&model.ForumMember{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return wrapDBErrorf(err, "更新封禁状态 id=%d", id)
	}
	return nil
}

// CountActiveByForum 统计在吧成员数
// 对账任务以此重算 member_cnt
func (r *forumMemberRepository) CountActiveByForum(forumUuid string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.ForumMember{}).
		Where("forum_uuid = ?", forumUuid).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计贴吧成员数 forum_uuid=%s", forumUuid)
	}
	return count, nil
}
