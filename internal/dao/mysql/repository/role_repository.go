// Package repository 提供数据访问层的具体实现
// 本文件实现 RoleRepository 接口，处理角色、权限及授权关系的数据库操作
package repository

import (
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// roleRepository RoleRepository 接口的实现
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建 RoleRepository 实例
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// FindById 根据 ID 查找角色
func (r *roleRepository) FindById(id uint) (*model.Role, error) {
	var role model.Role
	if err := r.db.First(&role, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询角色 id=%d", id)
	}
	return &role, nil
}

// FindByName 根据名称查找角色
func (r *roleRepository) FindByName(name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询角色 name=%s", name)
	}
	return &role, nil
}

// FindAll 查找所有角色
func (r *roleRepository) FindAll() ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.Order("level DESC").Find(&roles).Error; err != nil {
		return nil, wrapDBError(err, "查询角色列表")
	}
	return roles, nil
}

// CreateRole 创建角色
func (r *roleRepository) CreateRole(role *model.Role) error {
	if err := r.db.Create(role).Error; err != nil {
		return wrapDBError(err, "创建角色")
	}
	return nil
}

// FindPermissionByCode 根据权限码查找权限
func (r *roleRepository) FindPermissionByCode(code string) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.Where("code = ?", code).First(&permission).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询权限 code=%s", code)
	}
	return &permission, nil
}

// CreatePermission 创建权限
func (r *roleRepository) CreatePermission(permission *model.Permission) error {
	if err := r.db.Create(permission).Error; err != nil {
		return wrapDBError(err, "创建权限")
	}
	return nil
}

// FindAllPermissions 查找所有权限点
func (r *roleRepository) FindAllPermissions() ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.Order("code ASC").Find(&permissions).Error; err != nil {
		return nil, wrapDBError(err, "查询权限列表")
	}
	return permissions, nil
}

// HasPermission 判断角色是否拥有指定权限码
// 单条 JOIN 查询，鉴权热路径上避免两次往返
func (r *roleRepository) HasPermission(roleId uint, code string) (bool, error) {
	var count int64
	if err := r.db.Table("role_permission_map").
		Joins("JOIN permission ON permission.id = role_permission_map.permission_id").
		Where("role_permission_map.role_id = ? AND permission.code = ?", roleId, code).
		Where("role_permission_map.deleted_at IS NULL AND permission.deleted_at IS NULL").
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询角色权限 role_id=%d code=%s", roleId, code)
	}
	return count > 0, nil
}

// GrantPermission 为角色授予权限
func (r *roleRepository) GrantPermission(roleId, permissionId uint) error {
	mapping := model.RolePermissionMap{RoleId: roleId, PermissionId: permissionId}
	if err := r.db.Create(&mapping).Error; err != nil {
		return wrapDBErrorf(err, "授予权限 role_id=%d permission_id=%d", roleId, permissionId)
	}
	return nil
}

// RevokePermission 撤销角色的权限
func (r *roleRepository) RevokePermission(roleId, permissionId uint) error {
	if err := r.db.Where("role_id = ? AND permission_id = ?", roleId, permissionId).
		Delete(&model.RolePermissionMap{}).Error; err != nil {
		return wrapDBErrorf(err, "撤销权限 role_id=%d permission_id=%d", roleId, permissionId)
	}
	return nil
}

// FindPermissionsByRoleId 查找角色的全部权限
func (r *roleRepository) FindPermissionsByRoleId(roleId uint) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.Table("permission").
		Joins("JOIN role_permission_map ON role_permission_map.permission_id = permission.id").
		Where("role_permission_map.role_id = ? AND role_permission_map.deleted_at IS NULL", roleId).
		Where("permission.deleted_at IS NULL").
		Find(&permissions).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询角色权限列表 role_id=%d", roleId)
	}
	return permissions, nil
}
