// Package repository 提供数据访问层的具体实现
// 本文件实现 ForumRepository 接口，处理贴吧及分类的数据库操作
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forumRepository ForumRepository 接口的实现
type forumRepository struct {
	db *gorm.DB
}

// NewForumRepository 创建 ForumRepository 实例
func NewForumRepository(db *gorm.DB) ForumRepository {
	return &forumRepository{db: db}
}

// FindByUuid 根据 UUID 查找贴吧
func (r *forumRepository) FindByUuid(uuid string) (*model.Forum, error) {
	var forum model.Forum
	if err := r.db.Where("uuid = ?", uuid).First(&forum).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询贴吧 uuid=%s", uuid)
	}
	return &forum, nil
}

// FindByUuidForUpdate 根据 UUID 查找贴吧并加行锁
// 生成 SELECT ... FOR UPDATE，锁随事务提交释放。
// 成员关系的读-判-写序列以此锁串行化，调用方必须处于事务中
func (r *forumRepository) FindByUuidForUpdate(uuid string) (*model.Forum, error) {
	var forum model.Forum
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("uuid = ?", uuid).First(&forum).Error; err != nil {
		return nil, wrapDBErrorf(err, "锁定贴吧 uuid=%s", uuid)
	}
	return &forum, nil
}

// FindByName 根据名称查找贴吧
func (r *forumRepository) FindByName(name string) (*model.Forum, error) {
	var forum model.Forum
	if err := r.db.Where("name = ?", name).First(&forum).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询贴吧 name=%s", name)
	}
	return &forum, nil
}

// GetForumList 分页获取贴吧列表
func (r *forumRepository) GetForumList(page, pageSize int) ([]model.Forum, int64, error) {
	var forums []model.Forum
	var total int64
	if err := r.db.Model(&model.Forum{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "统计贴吧数量")
	}
	if err := r.db.Order("member_cnt DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&forums).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询贴吧")
	}
	return forums, total, nil
}

// FindByOwnerUuid 查找用户创建的贴吧
func (r *forumRepository) FindByOwnerUuid(ownerUuid string) ([]model.Forum, error) {
	var forums []model.Forum
	if err := r.db.Where("owner_uuid = ?", ownerUuid).Find(&forums).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户贴吧 owner_uuid=%s", ownerUuid)
	}
	return forums, nil
}

// Create 创建贴吧
func (r *forumRepository) Create(forum *model.Forum) error {
	if err := r.db.Create(forum).Error; err != nil {
		return wrapDBError(err, "创建贴吧")
	}
	return nil
}

// UpdateInfo 更新贴吧简介和头像
// 只更新指定列，避免回写事务开始时读到的旧计数器
func (r *forumRepository) UpdateInfo(uuid, description, avatar string) error {
	if err := r.db.Model(&model.Forum{}).Where("uuid = ?", uuid).
		Updates(map[string]interface{}{"description": description, "avatar": avatar}).Error; err != nil {
		return wrapDBErrorf(err, "更新贴吧信息 uuid=%s", uuid)
	}
	return nil
}

// UpdateOwner 更新吧主（转让）
func (r *forumRepository) UpdateOwner(uuid, ownerUuid string) error {
	if err := r.db.Model(&model.Forum{}).Where("uuid = ?", uuid).
		Update("owner_uuid", ownerUuid).Error; err != nil {
		return wrapDBErrorf(err, "更新吧主 uuid=%s", uuid)
	}
	return nil
}

// UpdateStatus 更新贴吧状态
func (r *forumRepository) UpdateStatus(uuid string, status int8) error {
	if err := r.db.Model(&model.Forum{}).Where("uuid = ?", uuid).
		Update("status", status).Error; err != nil {
		return wrapDBErrorf(err, "更新贴吧状态 uuid=%s", uuid)
	}
	return nil
}

// IncrementMemberCount 成员数 +1
// 使用 gorm.Expr 生成 member_cnt = member_cnt + 1，
// 原子更新而非读-改-写，并发切换时不会丢失计数
func (r *forumRepository) IncrementMemberCount(uuid string) error {
	if err := r.db.Model(&model.Forum{}).Where("uuid = ?", uuid).
		UpdateColumn("member_cnt", gorm.Expr("member_cnt + ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "增加成员数 uuid=%s", uuid)
	}
	return nil
}

// DecrementMemberCount 成员数 -1（原子更新）
func (r *forumRepository) DecrementMemberCount(uuid string) error {
	if err := r.db.Model(&model.Forum{}).Where("uuid = ?", uuid).
		UpdateColumn("member_cnt", gorm.Expr("member_cnt - ?", 1)).Error; err != nil {
		return wrapDBErrorf(err, "减少成员数 uuid=%s", uuid)
	}
	return nil
}

// SetMemberCount 重置成员数，计数对账任务使用
func (r *forumRepository) SetMemberCount(uuid string, count int) error {
	if err := r.db.Model(&model.Forum{}).Where("uuid = ?", uuid).
		UpdateColumn("member_cnt", count).Error; err != nil {
		return wrapDBErrorf(err, "重置成员数 uuid=%s", uuid)
	}
	return nil
}

// IncrementPostCount 帖子数增减（原子更新）
func (r *forumRepository) IncrementPostCount(uuid string, delta int) error {
	if err := r.db.Model(&model.Forum{}).Where("uuid = ?", uuid).
		UpdateColumn("post_cnt", gorm.Expr("post_cnt + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新帖子数 uuid=%s", uuid)
	}
	return nil
}

// FindAllUuids 查找所有贴吧 UUID
func (r *forumRepository) FindAllUuids() ([]string, error) {
	var uuids []string
	if err := r.db.Model(&model.Forum{}).Pluck("uuid", &uuids).Error; err != nil {
		return nil, wrapDBError(err, "查询贴吧uuid列表")
	}
	return uuids, nil
}

// FindCategories 查找所有分类
func (r *forumRepository) FindCategories() ([]model.ForumCategory, error) {
	var categories []model.ForumCategory
	if err := r.db.Order("sort_order DESC").Find(&categories).Error; err != nil {
		return nil, wrapDBError(err, "查询分类列表")
	}
	return categories, nil
}

// CreateCategory 创建分类
func (r *forumRepository) CreateCategory(category *model.ForumCategory) error {
	if err := r.db.Create(category).Error; err != nil {
		return wrapDBError(err, "创建分类")
	}
	return nil
}

// BindCategory 绑定贴吧到分类
func (r *forumRepository) BindCategory(forumUuid string, categoryId uint) error {
	mapping := model.ForumCategoryMap{ForumUuid: forumUuid, CategoryId: categoryId}
	if err := r.db.Create(&mapping).Error; err != nil {
		return wrapDBErrorf(err, "绑定分类 forum_uuid=%s category_id=%d", forumUuid, categoryId)
	}
	return nil
}
