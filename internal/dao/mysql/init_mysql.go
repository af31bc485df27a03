// Package mysql 提供数据访问层的初始化和全局数据库实例管理
// 负责建立 MySQL 连接、自动迁移表结构、初始化 Repository 层
package mysql

import (
	"fmt"

	"github.com/WhiteCrowZero/MinTieba/internal/config"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"go.uber.org/zap"                  // 日志库
	mysqldriver "gorm.io/driver/mysql" // GORM MySQL 驱动
	"gorm.io/gorm"                     // GORM ORM 框架
)

// Init 初始化数据库连接并返回 Repository 层实例
// 执行步骤：
//  1. 从配置读取 MySQL 连接信息
//  2. 构建 DSN（Data Source Name）连接字符串
//  3. 使用 GORM 建立数据库连接
//  4. 执行 AutoMigrate 自动迁移表结构
//  5. 创建并返回 Repository 实例
//
// 返回: Repository 实例集合
func Init() *repository.Repositories {
	// 获取配置
	conf := config.GetConfig()

	// 构建 MySQL DSN 连接字符串
	// 格式：user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	// 使用 GORM 打开数据库连接
	// TranslateError 将驱动错误翻译为 gorm 的方言无关错误，
	// 唯一约束冲突由此产生 gorm.ErrDuplicatedKey，供仓库层映射为业务冲突码
	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		// 连接失败，记录致命错误并退出程序
		zap.L().Fatal(err.Error())
	}

	// AutoMigrate 自动迁移表结构
	// 如果表不存在则创建，如果字段变更则更新结构
	// 注意：不会删除已有字段或数据
	err = db.AutoMigrate(
		&model.Role{},                // 角色表
		&model.Permission{},          // 权限表
		&model.RolePermissionMap{},   // 角色-权限关联表
		&model.UserAccount{},         // 用户账号表
		&model.UserProfile{},         // 用户资料表
		&model.UserLoginHistory{},    // 登录历史表
		&model.Forum{},               // 贴吧表
		&model.ForumCategory{},       // 贴吧分类表
		&model.ForumCategoryMap{},    // 贴吧-分类关联表
		&model.ForumMember{},         // 贴吧成员表
		&model.ForumMemberAuditLog{}, // 成员审计日志表
		&model.ForumActivity{},       // 吧内活跃度表
		&model.Post{},                // 帖子表
		&model.Comment{},             // 评论表
		&model.LikeRecord{},          // 点赞记录表
		&model.CollectionFolder{},    // 收藏夹表
		&model.CollectionItem{},      // 收藏条目表
		&model.UserFollow{},          // 关注关系表
		&model.Notification{},        // 通知表
		&model.MessageThread{},       // 私信会话表
		&model.PrivateMessage{},      // 私信表
		&model.Report{},              // 举报表
	)
	if err != nil {
		// 迁移失败，记录致命错误并退出程序
		zap.L().Fatal(err.Error())
	}

	// 创建并返回 Repository 实例集合
	return repository.NewRepositories(db)
}
