// Package model 定义数据库实体模型
// 本文件定义用户账号、用户资料和登录历史模型
package model

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt" // 密码哈希库
	"gorm.io/gorm"
)

// 资料可见性取值
const (
	VisibilityPublic    = "public"    // 所有人可见
	VisibilityFollowers = "followers" // 仅互相关注可见
	VisibilityPrivate   = "private"   // 仅自己可见
)

// UserAccount 用户账号模型
// 账号与资料分表存储：账号表只存认证相关字段
type UserAccount struct {
	gorm.Model

	// Uuid 用户唯一标识
	// 格式：U + 13位时间戳随机字符串
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:用户唯一id"`

	// Telephone 手机号码，用于登录验证
	Telephone string `gorm:"column:telephone;index;not null;type:char(11);comment:电话"`

	// Email 邮箱地址（可选）
	Email string `gorm:"column:email;type:char(30);comment:邮箱"`

	// Password 密码（已哈希）
	// 存储 bcrypt 哈希后的密码，不存储明文
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// RoleId 用户全局角色
	RoleId uint `gorm:"column:role_id;index;not null;default:1;comment:角色id"`

	// Status 账号状态
	// 0=正常, 1=禁用
	Status int8 `gorm:"column:status;index;not null;comment:状态，0.正常，1.禁用"`

	// LastOnlineAt 上次登录时间
	LastOnlineAt sql.NullTime `gorm:"column:last_online_at;type:datetime;comment:上次登录时间"`

	// RawPassword 明文密码（不存入数据库）
	// 用于接收前端传来的明文密码，在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

func (UserAccount) TableName() string {
	return "user_account"
}

// BeforeSave GORM Hook：在创建和更新前自动调用
// 将 RawPassword 明文密码加密后存入 Password 字段
func (u *UserAccount) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashed)
	}
	return nil
}

// CheckPassword 校验明文密码是否与哈希匹配
func (u *UserAccount) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw)) == nil
}

// UserProfile 用户资料模型
// 与 UserAccount 一对一，按 user_uuid 关联
type UserProfile struct {
	gorm.Model

	UserUuid string `gorm:"column:user_uuid;uniqueIndex;type:char(20);not null;comment:用户uuid"`

	// Nickname 用户昵称
	Nickname string `gorm:"column:nickname;type:varchar(20);not null;comment:昵称"`

	// Avatar 用户头像 URL
	Avatar string `gorm:"column:avatar;type:char(255);default:https://cube.elemecdn.com/0/88/03b0d39583f48206768a7534e55bcpng.png;not null;comment:头像"`

	// Gender 性别，0=男, 1=女
	Gender int8 `gorm:"column:gender;comment:性别，0.男，1.女"`

	// Signature 个性签名
	Signature string `gorm:"column:signature;type:varchar(100);comment:个性签名"`

	// Birthday 生日，格式 YYYYMMDD
	Birthday string `gorm:"column:birthday;type:char(8);comment:生日"`

	// Visibility 资料可见性：public / followers / private
	Visibility string `gorm:"column:visibility;type:varchar(10);not null;default:public;comment:资料可见性"`

	// CollectionVisibility 收藏夹可见性：public / followers / private
	CollectionVisibility string `gorm:"column:collection_visibility;type:varchar(10);not null;default:public;comment:收藏夹可见性"`

	// FollowCnt 关注数
	FollowCnt int `gorm:"column:follow_cnt;not null;default:0;comment:关注数"`

	// FansCnt 粉丝数
	FansCnt int `gorm:"column:fans_cnt;not null;default:0;comment:粉丝数"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}

// UserLoginHistory 登录历史，登录成功后追加记录
type UserLoginHistory struct {
	gorm.Model

	UserUuid  string `gorm:"column:user_uuid;index;type:char(20);not null;comment:用户uuid"`
	LoginIp   string `gorm:"column:login_ip;type:varchar(45);comment:登录ip"`
	UserAgent string `gorm:"column:user_agent;type:varchar(255);comment:客户端标识"`
}

func (UserLoginHistory) TableName() string {
	return "user_login_history"
}
