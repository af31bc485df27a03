// Package model 定义数据库实体模型
// 本文件定义 RBAC 权限体系模型：角色、权限以及角色-权限关联
package model

import (
	"gorm.io/gorm"
)

// Role 角色模型
// 角色按等级排序，等级 >= 100 的角色视为超级管理员，
// 拥有全部权限，鉴权时直接放行
type Role struct {
	gorm.Model

	// Name 角色名称，如 "普通用户"、"版主"、"超级管理员"
	Name string `gorm:"column:name;uniqueIndex;type:varchar(32);not null;comment:角色名称"`

	// Level 角色等级，数值越大权限越高
	// 等级 >= 100 时拥有所有权限
	Level int `gorm:"column:level;not null;default:0;comment:角色等级"`

	// Description 角色描述
	Description string `gorm:"column:description;type:varchar(255);comment:角色描述"`
}

func (Role) TableName() string {
	return "role"
}

// Permission 权限模型
// 每条权限由唯一的权限码标识，如 "post.delete"、"forum.manage"
type Permission struct {
	gorm.Model

	// Code 权限码，鉴权时按此查找
	Code string `gorm:"column:code;uniqueIndex;type:varchar(64);not null;comment:权限码"`

	// Name 权限名称（展示用）
	Name string `gorm:"column:name;type:varchar(64);not null;comment:权限名称"`

	// Description 权限描述
	Description string `gorm:"column:description;type:varchar(255);comment:权限描述"`
}

func (Permission) TableName() string {
	return "permission"
}

// RolePermissionMap 角色-权限关联表
// 一个角色可以拥有多个权限，一个权限可以授予多个角色
type RolePermissionMap struct {
	gorm.Model

	RoleId       uint `gorm:"column:role_id;index:idx_role_perm,unique;not null;comment:角色id"`
	PermissionId uint `gorm:"column:permission_id;index:idx_role_perm,unique;not null;comment:权限id"`
}

func (RolePermissionMap) TableName() string {
	return "role_permission_map"
}
