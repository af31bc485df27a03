// Package repository 提供数据访问层的具体实现
// 本文件实现 CommentRepository 接口
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// commentRepository CommentRepository 接口的实现
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建 CommentRepository 实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// FindByUuid 根据 UUID 查找评论
func (r *commentRepository) FindByUuid(uuid string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Where("uuid = ?", uuid).First(&comment).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询评论 uuid=%s", uuid)
	}
	return &comment, nil
}

// GetCommentList 按帖子分页获取一级评论，按时间正序（楼层顺序）
func (r *commentRepository) GetCommentList(postUuid string, page, pageSize int) ([]model.Comment, int64, error) {
	var comments []model.Comment
	var total int64
	query := r.db.Model(&model.Comment{}).
		Where("post_uuid = ? AND parent_uuid = '' AND status = 0", postUuid)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计评论 post_uuid=%s", postUuid)
	}
	if err := r.db.Where("post_uuid = ? AND parent_uuid = '' AND status = 0", postUuid).
		Order("created_at ASC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&comments).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询评论 post_uuid=%s", postUuid)
	}
	return comments, total, nil
}

// FindReplies 查找某评论下的回复
func (r *commentRepository) FindReplies(parentUuid string) ([]model.Comment, error) {
	var replies []model.Comment
	if err := r.db.Where("parent_uuid = ? AND status = 0", parentUuid).
		Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询回复 parent_uuid=%s", parentUuid)
	}
	return replies, nil
}

// Create 创建评论
func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return wrapDBError(err, "创建评论")
	}
	return nil
}

// SoftDelete 软删除评论
func (r *commentRepository) SoftDelete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Comment{}).Error; err != nil {
		return wrapDBErrorf(err, "删除评论 uuid=%s", uuid)
	}
	return nil
}

// IncrementLikeCount 点赞数增减（原子更新）
func (r *commentRepository) IncrementLikeCount(uuid string, delta int) error {
	if err := r.db.Model(&model.Comment{}).Where("uuid = ?", uuid).
		UpdateColumn("like_cnt", gorm.Expr("like_cnt + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新评论点赞数 uuid=%s", uuid)
	}
	return nil
}
