// Package repository 提供数据访问层的具体实现
// 本文件实现 UserRepository 接口，处理账号、资料和登录历史的数据库操作
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// userRepository UserRepository 接口的实现
type userRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUuid 根据 UUID 查找账号
func (r *userRepository) FindByUuid(uuid string) (*model.UserAccount, error) {
	var user model.UserAccount
	if err := r.db.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByTelephone 根据手机号查找账号
func (r *userRepository) FindByTelephone(telephone string) (*model.UserAccount, error) {
	var user model.UserAccount
	if err := r.db.Where("telephone = ?", telephone).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 telephone=%s", telephone)
	}
	return &user, nil
}

// FindByUuids 批量根据 UUID 查找账号
func (r *userRepository) FindByUuids(uuids []string) ([]model.UserAccount, error) {
	var users []model.UserAccount
	if len(uuids) == 0 {
		return users, nil
	}
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "批量查询用户")
	}
	return users, nil
}

// Create 创建账号
func (r *userRepository) Create(user *model.UserAccount) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// Update 更新账号信息
func (r *userRepository) Update(user *model.UserAccount) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBErrorf(err, "更新用户 uuid=%s", user.Uuid)
	}
	return nil
}

// UpdateStatusByUuids 批量更新账号状态（启用/禁用）
func (r *userRepository) UpdateStatusByUuids(uuids []string, status int8) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Model(&model.UserAccount{}).Where("uuid IN ?", uuids).
		Update("status", status).Error; err != nil {
		return wrapDBError(err, "批量更新用户状态")
	}
	return nil
}

// FindProfileByUserUuid 查找用户资料
func (r *userRepository) FindProfileByUserUuid(userUuid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := r.db.Where("user_uuid = ?", userUuid).First(&profile).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户资料 user_uuid=%s", userUuid)
	}
	return &profile, nil
}

// FindProfilesByUserUuids 批量查找用户资料
func (r *userRepository) FindProfilesByUserUuids(userUuids []string) ([]model.UserProfile, error) {
	var profiles []model.UserProfile
	if len(userUuids) == 0 {
		return profiles, nil
	}
	if err := r.db.Where("user_uuid IN ?", userUuids).Find(&profiles).Error; err != nil {
		return nil, wrapDBError(err, "批量查询用户资料")
	}
	return profiles, nil
}

// CreateProfile 创建用户资料
func (r *userRepository) CreateProfile(profile *model.UserProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return wrapDBError(err, "创建用户资料")
	}
	return nil
}

// UpdateProfile 更新用户资料
func (r *userRepository) UpdateProfile(profile *model.UserProfile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return wrapDBErrorf(err, "更新用户资料 user_uuid=%s", profile.UserUuid)
	}
	return nil
}

// IncrementFollowCnt 关注数增减
// 使用 gorm.Expr 原子更新，避免并发下丢失更新
func (r *userRepository) IncrementFollowCnt(userUuid string, delta int) error {
	if err := r.db.Model(&model.UserProfile{}).Where("user_uuid = ?", userUuid).
		UpdateColumn("follow_cnt", gorm.Expr("follow_cnt + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新关注数 user_uuid=%s", userUuid)
	}
	return nil
}

// IncrementFansCnt 粉丝数增减
func (r *userRepository) IncrementFansCnt(userUuid string, delta int) error {
	if err := r.db.Model(&model.UserProfile{}).Where("user_uuid = ?", userUuid).
		UpdateColumn("fans_cnt", gorm.Expr("fans_cnt + ?", delta)).Error; err != nil {
		return wrapDBErrorf(err, "更新粉丝数 user_uuid=%s", userUuid)
	}
	return nil
}

// CreateLoginHistory 追加登录历史
func (r *userRepository) CreateLoginHistory(history *model.UserLoginHistory) error {
	if err := r.db.Create(history).Error; err != nil {
		return wrapDBError(err, "创建登录历史")
	}
	return nil
}
