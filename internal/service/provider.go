// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	myredis "github.com/WhiteCrowZero/MinTieba/internal/dao/redis"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/sms"
	"github.com/WhiteCrowZero/MinTieba/internal/service/forum"
	"github.com/WhiteCrowZero/MinTieba/internal/service/interaction"
	"github.com/WhiteCrowZero/MinTieba/internal/service/member"
	"github.com/WhiteCrowZero/MinTieba/internal/service/message"
	"github.com/WhiteCrowZero/MinTieba/internal/service/notification"
	"github.com/WhiteCrowZero/MinTieba/internal/service/post"
	"github.com/WhiteCrowZero/MinTieba/internal/service/rbac"
	"github.com/WhiteCrowZero/MinTieba/internal/service/report"
	"github.com/WhiteCrowZero/MinTieba/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过 service.Svc 访问各个 Service
type Services struct {
	User         UserService         // 用户 Service
	Rbac         RbacService         // 角色权限 Service
	Forum        ForumService        // 贴吧 Service
	Member       MemberService       // 贴吧成员 Service
	Post         PostService         // 帖子评论 Service
	Interaction  InteractionService  // 互动 Service
	Notification NotificationService // 通知 Service
	Message      MessageService      // 私信 Service
	Report       ReportService       // 举报 Service

	// Authorizer 权限点鉴权器，供路由中间件使用
	Authorizer authz.Authorizer
	// ForumAuthorizer 贴吧管理资格鉴权器，供路由中间件使用
	ForumAuthorizer authz.ForumAuthorizer
}

// NewServices 创建并注入所有 Service 实例
// 依赖注入流程：
//  1. 基于 Repository 构建鉴权器与可见性检查器
//  2. 先创建通知 Service（被多个业务 Service 依赖）
//  3. 创建其余 Service 并聚合
func NewServices(repos *repository.Repositories, cacheService myredis.AsyncCacheService, smsService sms.SmsService) *Services {
	authorizer := authz.NewAuthorizer(repos.Role)
	forumAuthorizer := authz.NewForumAuthorizer(repos.ForumMember)
	visibility := authz.NewProfileVisibilityChecker(repos.Interaction)

	notificationSvc := notification.NewNotificationService(repos)
	userSvc := user.NewUserService(repos, cacheService, smsService, visibility)
	rbacSvc := rbac.NewRbacService(repos)
	forumSvc := forum.NewForumService(repos, cacheService)
	memberSvc := member.NewMemberService(repos, cacheService, notificationSvc)
	postSvc := post.NewPostService(repos, notificationSvc, forumAuthorizer)
	interactionSvc := interaction.NewInteractionService(repos, notificationSvc, visibility)
	messageSvc := message.NewMessageService(repos)
	reportSvc := report.NewReportService(repos, notificationSvc)

	return &Services{
		User:            userSvc,
		Rbac:            rbacSvc,
		Forum:           forumSvc,
		Member:          memberSvc,
		Post:            postSvc,
		Interaction:     interactionSvc,
		Notification:    notificationSvc,
		Message:         messageSvc,
		Report:          reportSvc,
		Authorizer:      authorizer,
		ForumAuthorizer: forumAuthorizer,
	}
}

// Svc 全局 Services 实例
// Handler 层通过 service.Svc.Member.ToggleMembership() 等方式调用
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 初始化之后
func InitServices(repos *repository.Repositories, cacheService myredis.AsyncCacheService, smsService sms.SmsService) {
	Svc = NewServices(repos, cacheService, smsService)
}
