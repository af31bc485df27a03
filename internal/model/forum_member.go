// Package model 定义数据库实体模型
// 本文件定义贴吧成员关系、审计日志与签到活跃度模型
//
// 成员关系采用软删除复用同一行的方式表示加入/退出：
//   - 无记录           => 从未加入
//   - DeletedAt 为空   => 当前在吧
//   - DeletedAt 非空   => 已退出（再次加入时恢复本行，不新建）
package model

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// 成员角色取值
const (
	MemberRoleOwner  = "owner"  // 吧主，创建贴吧时自动分配，不可通过改角色接口授予
	MemberRoleAdmin  = "admin"  // 吧务
	MemberRoleMember = "member" // 普通成员
)

// 审计动作取值
const (
	AuditActionRoleChange = "role_change" // 角色变更
	AuditActionBan        = "ban"         // 封禁
	AuditActionUnban      = "unban"       // 解封
)

// ForumMember 贴吧成员关系
// (forum_uuid, user_uuid) 唯一；退出后软删除，重新加入时恢复原行，
// role_type 在退出/重新加入间保留
type ForumMember struct {
	gorm.Model

	ForumUuid string `gorm:"column:forum_uuid;index:idx_forum_user,unique;type:char(20);not null;comment:贴吧uuid"`
	UserUuid  string `gorm:"column:user_uuid;index:idx_forum_user,unique;type:char(20);not null;comment:用户uuid"`

	// RoleType 吧内角色：owner / admin / member
	RoleType string `gorm:"column:role_type;type:varchar(10);not null;default:member;comment:吧内角色"`

	// JoinedAt 最近一次加入时间，重新加入时刷新
	JoinedAt time.Time `gorm:"column:joined_at;type:datetime;not null;comment:加入时间"`

	// IsBanned 是否被封禁（封禁期间不可发帖回帖，但仍是成员）
	IsBanned int8 `gorm:"column:is_banned;not null;default:0;comment:是否封禁，0.否，1.是"`

	// BannedUntil 封禁截止时间，空表示未封禁或永久封禁
	BannedUntil sql.NullTime `gorm:"column:banned_until;type:datetime;comment:封禁截止时间"`
}

func (ForumMember) TableName() string {
	return "forum_member"
}

// IsActive 当前是否在吧（未被软删除）
func (m *ForumMember) IsActive() bool {
	return !m.DeletedAt.Valid
}

// IsAdminRole 是否拥有吧务及以上角色
func (m *ForumMember) IsAdminRole() bool {
	return m.RoleType == MemberRoleOwner || m.RoleType == MemberRoleAdmin
}

// IsBanActive 指定时刻是否处于封禁中
// 截止时间为空视为永久封禁
func (m *ForumMember) IsBanActive(now time.Time) bool {
	if m.IsBanned == 0 {
		return false
	}
	if !m.BannedUntil.Valid {
		return true
	}
	return m.BannedUntil.Time.After(now)
}

// ForumMemberAuditLog 成员管理审计日志
// 每次角色变更、封禁、解封都追加一条记录，只增不改，
// 下游的管理后台依赖这张表做操作回溯
type ForumMemberAuditLog struct {
	gorm.Model

	ForumUuid    string `gorm:"column:forum_uuid;index;type:char(20);not null;comment:贴吧uuid"`
	OperatorUuid string `gorm:"column:operator_uuid;type:char(20);not null;comment:操作人uuid"`
	TargetUuid   string `gorm:"column:target_uuid;index;type:char(20);not null;comment:被操作人uuid"`

	// Action 动作类型：role_change / ban / unban
	Action string `gorm:"column:action;type:varchar(20);not null;comment:动作类型"`

	// OldValue 变更前的值（角色变更时为旧角色，封禁时为旧状态）
	OldValue string `gorm:"column:old_value;type:varchar(50);comment:变更前"`

	// NewValue 变更后的值
	NewValue string `gorm:"column:new_value;type:varchar(50);comment:变更后"`

	// Reason 操作原因，封禁时必填
	Reason string `gorm:"column:reason;type:varchar(255);comment:操作原因"`
}

func (ForumMemberAuditLog) TableName() string {
	return "forum_member_audit_log"
}

// ForumActivity 吧内活跃度（签到）
// 每个 (forum, user) 一行，随签到更新经验、等级与连续签到天数
type ForumActivity struct {
	gorm.Model

	ForumUuid string `gorm:"column:forum_uuid;index:idx_activity_forum_user,unique;type:char(20);not null;comment:贴吧uuid"`
	UserUuid  string `gorm:"column:user_uuid;index:idx_activity_forum_user,unique;type:char(20);not null;comment:用户uuid"`

	// ExpPoints 吧内累计经验值
	ExpPoints int `gorm:"column:exp_points;not null;default:0;comment:经验值"`

	// Level 吧内等级：1 + exp/100
	Level int `gorm:"column:level;not null;default:1;comment:等级"`

	// Streak 连续签到天数
	Streak int `gorm:"column:streak;not null;default:0;comment:连续签到天数"`

	// LastSignInAt 最近一次签到时间，按自然日判断是否重复签到
	LastSignInAt sql.NullTime `gorm:"column:last_sign_in_at;type:datetime;comment:最近签到时间"`
}

func (ForumActivity) TableName() string {
	return "forum_activity"
}

// SignedInOn 是否已在指定日期签到（按本地自然日比较）
func (a *ForumActivity) SignedInOn(day time.Time) bool {
	if !a.LastSignInAt.Valid {
		return false
	}
	y1, m1, d1 := a.LastSignInAt.Time.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
