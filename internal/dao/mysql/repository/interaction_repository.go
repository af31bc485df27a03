// Package repository 提供数据访问层的具体实现
// 本文件实现 InteractionRepository 接口，覆盖点赞、收藏、关注三类互动。
// 点赞与关注都是软删除复用行模型：取消即软删除，再次操作恢复原行
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// interactionRepository InteractionRepository 接口的实现
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository 创建 InteractionRepository 实例
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// ==================== 点赞 ====================

// FindLikeUnscoped 查找点赞记录（含软删除）
func (r *interactionRepository) FindLikeUnscoped(userUuid, targetType, targetUuid string) (*model.LikeRecord, error) {
	var record model.LikeRecord
	if err := r.db.Unscoped().
		Where("user_uuid = ? AND target_type = ? AND target_uuid = ?", userUuid, targetType, targetUuid).
		First(&record).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询点赞记录 user_uuid=%s target=%s/%s", userUuid, targetType, targetUuid)
	}
	return &record, nil
}

// CreateLike 新建点赞记录
func (r *interactionRepository) CreateLike(record *model.LikeRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return wrapDBError(err, "创建点赞记录")
	}
	return nil
}

// RestoreLike 恢复软删除的点赞记录
func (r *interactionRepository) RestoreLike(id uint) error {
	if err := r.db.Unscoped().Model(&model.LikeRecord{}).Where("id = ?", id).
		Update("deleted_at", nil).Error; err != nil {
		return wrapDBErrorf(err, "恢复点赞记录 id=%d", id)
	}
	return nil
}

// SoftDeleteLike 软删除点赞记录（取消点赞）
func (r *interactionRepository) SoftDeleteLike(id uint) error {
	if err := r.db.Delete(&model.LikeRecord{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除点赞记录 id=%d", id)
	}
	return nil
}

// ==================== 收藏 ====================

// FindFolderByUuid 查找收藏夹
func (r *interactionRepository) FindFolderByUuid(uuid string) (*model.CollectionFolder, error) {
	var folder model.CollectionFolder
	if err := r.db.Where("uuid = ?", uuid).First(&folder).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收藏夹 uuid=%s", uuid)
	}
	return &folder, nil
}

// FindFoldersByUserUuid 查找用户的收藏夹列表
func (r *interactionRepository) FindFoldersByUserUuid(userUuid string) ([]model.CollectionFolder, error) {
	var folders []model.CollectionFolder
	if err := r.db.Where("user_uuid = ?", userUuid).Find(&folders).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收藏夹列表 user_uuid=%s", userUuid)
	}
	return folders, nil
}

// CreateFolder 创建收藏夹
func (r *interactionRepository) CreateFolder(folder *model.CollectionFolder) error {
	if err := r.db.Create(folder).Error; err != nil {
		return wrapDBError(err, "创建收藏夹")
	}
	return nil
}

// SoftDeleteFolder 软删除收藏夹及其条目
func (r *interactionRepository) SoftDeleteFolder(uuid string) error {
	if err := r.db.Where("folder_uuid = ?", uuid).Delete(&model.CollectionItem{}).Error; err != nil {
		return wrapDBErrorf(err, "删除收藏夹条目 folder_uuid=%s", uuid)
	}
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.CollectionFolder{}).Error; err != nil {
		return wrapDBErrorf(err, "删除收藏夹 uuid=%s", uuid)
	}
	return nil
}

// FindItem 查找收藏条目
func (r *interactionRepository) FindItem(folderUuid, postUuid string) (*model.CollectionItem, error) {
	var item model.CollectionItem
	if err := r.db.Where("folder_uuid = ? AND post_uuid = ?", folderUuid, postUuid).
		First(&item).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收藏条目 folder_uuid=%s post_uuid=%s", folderUuid, postUuid)
	}
	return &item, nil
}

// FindItemsByFolder 分页查找收藏夹条目，按时间倒序
func (r *interactionRepository) FindItemsByFolder(folderUuid string, page, pageSize int) ([]model.CollectionItem, int64, error) {
	var items []model.CollectionItem
	var total int64
	if err := r.db.Model(&model.CollectionItem{}).
		Where("folder_uuid = ?", folderUuid).Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计收藏条目 folder_uuid=%s", folderUuid)
	}
	if err := r.db.Where("folder_uuid = ?", folderUuid).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&items).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询收藏条目 folder_uuid=%s", folderUuid)
	}
	return items, total, nil
}

// CreateItem 添加收藏条目
func (r *interactionRepository) CreateItem(item *model.CollectionItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return wrapDBError(err, "创建收藏条目")
	}
	return nil
}

// DeleteItem 移除收藏条目
func (r *interactionRepository) DeleteItem(folderUuid, postUuid string) error {
	if err := r.db.Where("folder_uuid = ? AND post_uuid = ?", folderUuid, postUuid).
		Delete(&model.CollectionItem{}).Error; err != nil {
		return wrapDBErrorf(err, "删除收藏条目 folder_uuid=%s post_uuid=%s", folderUuid, postUuid)
	}
	return nil
}

// IncrementItemCount 收藏夹条目数增减（原子更新）
func (r *interactionRepository) IncrementItemCount(folderUuid string, delta int) error {
	if err := r.db.Model(&model.CollectionFolder{}).Where("uuid = ?", folderUuid).
		UpdateColumn("item_cnt", gorm.Expr("item_cnt + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新收藏夹条目数 uuid=%s", folderUuid)
	}
	return nil
}

// ==================== 关注 ====================

// FindFollowUnscoped 查找关注记录（含软删除）
func (r *interactionRepository) FindFollowUnscoped(followerUuid, followeeUuid string) (*model.UserFollow, error) {
	var follow model.UserFollow
	if err := r.db.Unscoped().
		Where("follower_uuid = ? AND followee_uuid = ?", followerUuid, followeeUuid).
		First(&follow).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询关注记录 follower=%s followee=%s", followerUuid, followeeUuid)
	}
	return &follow, nil
}

// CreateFollow 新建关注记录
func (r *interactionRepository) CreateFollow(follow *model.UserFollow) error {
	if err := r.db.Create(follow).Error; err != nil {
		return wrapDBError(err, "创建关注记录")
	}
	return nil
}

// RestoreFollow 恢复软删除的关注记录
func (r *interactionRepository) RestoreFollow(id uint) error {
	if err := r.db.Unscoped().Model(&model.UserFollow{}).Where("id = ?", id).
		Update("deleted_at", nil).Error; err != nil {
		return wrapDBErrorf(err, "恢复关注记录 id=%d", id)
	}
	return nil
}

// SoftDeleteFollow 软删除关注记录（取关）
func (r *interactionRepository) SoftDeleteFollow(id uint) error {
	if err := r.db.Delete(&model.UserFollow{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除关注记录 id=%d", id)
	}
	return nil
}

// FindFollowees 查找用户关注的人
func (r *interactionRepository) FindFollowees(followerUuid string) ([]model.UserFollow, error) {
	var follows []model.UserFollow
	if err := r.db.Where("follower_uuid = ?", followerUuid).Find(&follows).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询关注列表 follower=%s", followerUuid)
	}
	return follows, nil
}

// FindFollowers 查找用户的粉丝
func (r *interactionRepository) FindFollowers(followeeUuid string) ([]model.UserFollow, error) {
	var follows []model.UserFollow
	if err := r.db.Where("followee_uuid = ?", followeeUuid).Find(&follows).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询粉丝列表 followee=%s", followeeUuid)
	}
	return follows, nil
}

// IsMutualFollow 判断两个用户是否互相关注
func (r *interactionRepository) IsMutualFollow(userA, userB string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.UserFollow{}).
		Where("(follower_uuid = ? AND followee_uuid = ?) OR (follower_uuid = ? AND followee_uuid = ?)",
			userA, userB, userB, userA).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询互关状态 userA=%s userB=%s", userA, userB)
	}
	return count == 2, nil
}
