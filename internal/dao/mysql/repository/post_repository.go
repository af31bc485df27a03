// Package repository 提供数据访问层的具体实现
// 本文件实现 PostRepository 接口
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// postRepository PostRepository 接口的实现
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建 PostRepository 实例
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindByUuid 根据 UUID 查找帖子
func (r *postRepository) FindByUuid(uuid string) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("uuid = ?", uuid).First(&post).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询帖子 uuid=%s", uuid)
	}
	return &post, nil
}

// GetPostList 按贴吧分页获取帖子列表，置顶优先，其余按时间倒序
func (r *postRepository) GetPostList(forumUuid string, page, pageSize int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64
	query := r.db.Model(&model.Post{}).Where("forum_uuid = ? AND status = 0", forumUuid)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计帖子 forum_uuid=%s", forumUuid)
	}
	if err := r.db.Where("forum_uuid = ? AND status = 0", forumUuid).
		Order("is_pinned DESC, created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "分页查询帖子 forum_uuid=%s", forumUuid)
	}
	return posts, total, nil
}

// FindByAuthorUuid 查找用户发布的帖子
func (r *postRepository) FindByAuthorUuid(authorUuid string, page, pageSize int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64
	query := r.db.Model(&model.Post{}).Where("author_uuid = ? AND status = 0", authorUuid)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计用户帖子 author_uuid=%s", authorUuid)
	}
	if err := r.db.Where("author_uuid = ? AND status = 0", authorUuid).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询用户帖子 author_uuid=%s", authorUuid)
	}
	return posts, total, nil
}

// Create 创建帖子
func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return wrapDBError(err, "创建帖子")
	}
	return nil
}

// Update 更新帖子
func (r *postRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return wrapDBErrorf(err, "更新帖子 uuid=%s", post.Uuid)
	}
	return nil
}

// SoftDelete 软删除帖子
func (r *postRepository) SoftDelete(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Post{}).Error; err != nil {
		return wrapDBErrorf(err, "删除帖子 uuid=%s", uuid)
	}
	return nil
}

// IncrementViewCount 浏览数 +1（原子更新）
func (r *postRepository) IncrementViewCount(uuid string) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).
		UpdateColumn("view_cnt", gorm.Expr("view_cnt + ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "增加浏览数 uuid=%s", uuid)
	}
	return nil
}

// IncrementLikeCount 点赞数增减（原子更新）
func (r *postRepository) IncrementLikeCount(uuid string, delta int) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).
		UpdateColumn("like_cnt", gorm.Expr("like_cnt + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新点赞数 uuid=%s", uuid)
	}
	return nil
}

// IncrementCommentCount 评论数增减（原子更新）
func (r *postRepository) IncrementCommentCount(uuid string, delta int) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).
		UpdateColumn("comment_cnt", gorm.Expr("comment_cnt + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新评论数 uuid=%s", uuid)
	}
	return nil
}

// UpdatePinned 更新置顶状态
func (r *postRepository) UpdatePinned(uuid string, isPinned int8) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).
		Update("is_pinned", isPinned).Error; err != nil {
		return wrapDBErrorf(err, "更新置顶状态 uuid=%s", uuid)
	}
	return nil
}

// UpdateStatus 更新帖子状态
func (r *postRepository) UpdateStatus(uuid string, status int8) error {
	if err := r.db.Model(&model.Post{}).Where("uuid = ?", uuid).
		Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新帖子状态 uuid=%s", uuid)
	}
	return nil
}
