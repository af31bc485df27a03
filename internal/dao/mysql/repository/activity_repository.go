// Package repository 提供数据访问层的具体实现
// 本文件实现 ActivityRepository 接口，处理吧内签到活跃度的数据库操作
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activityRepository ActivityRepository 接口的实现
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository 创建 ActivityRepository 实例
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// FindByForumAndUser 查找活跃度记录
func (r *activityRepository) FindByForumAndUser(forumUuid, userUuid string) (*model.ForumActivity, error) {
	var activity model.ForumActivity
	if err := r.db.Where("forum_uuid = ? AND user_uuid = ?", forumUuid, userUuid).
		First(&activity).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询活跃度 forum_uuid=%s user_uuid=%s", forumUuid, userUuid)
	}
	return &activity, nil
}

// FindByForumAndUserForUpdate 查找活跃度记录并加行锁
// 并发签到按 (forum, user) 行锁串行化，调用方必须处于事务中
func (r *activityRepository) FindByForumAndUserForUpdate(forumUuid, userUuid string) (*model.ForumActivity, error) {
	var activity model.ForumActivity
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("forum_uuid = ? AND user_uuid = ?", forumUuid, userUuid).
		First(&activity).Error; err != nil {
		return nil, wrapDBErrorf(err, "锁定活跃度 forum_uuid=%s user_uuid=%s", forumUuid, userUuid)
	}
	return &activity, nil
}

// Create 新建活跃度记录
func (r *activityRepository) Create(activity *model.ForumActivity) error {
	if err := r.db.Create(activity).Error; err != nil {
		return wrapDBError(err, "创建活跃度记录")
	}
	return nil
}

// Update 更新活跃度记录
func (r *activityRepository) Update(activity *model.ForumActivity) error {
	if err := r.db.Save(activity).Error; err != nil {
		return wrapDBErrorf(err, "更新活跃度 forum_uuid=%s user_uuid=%s", activity.ForumUuid, activity.UserUuid)
	}
	return nil
}
