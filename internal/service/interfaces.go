// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/mq"
)

// UserService 用户业务接口
// 处理注册、登录、令牌刷新与资料管理
type UserService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录
	Login(req request.LoginRequest, clientIp, userAgent string) (*respond.LoginRespond, error)
	// SmsLogin 短信验证码登录
	SmsLogin(req request.SmsLoginRequest, clientIp, userAgent string) (*respond.LoginRespond, error)
	// SendSmsCode 发送短信验证码
	SendSmsCode(telephone string) error
	// RefreshToken 刷新双 Token
	RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error)
	// LoadPrincipal 加载鉴权主体（供鉴权中间件使用）
	LoadPrincipal(userUuid string) (authz.Principal, error)
	// Logout 退出登录，使 Refresh Token 失效
	Logout(userUuid string) error
	// ResetPassword 修改密码并踢掉登录态
	ResetPassword(userUuid string, req request.ResetPasswordRequest) error
	// DestroyAccount 注销账号（匿名化）
	DestroyAccount(userUuid string) error
	// GetUserInfo 查看本人账号信息
	GetUserInfo(userUuid string) (*respond.GetUserInfoRespond, error)
	// UpdateUserInfo 更新账号信息
	UpdateUserInfo(userUuid string, req request.UpdateUserInfoRequest) error
	// GetProfile 查看用户资料（按可见性过滤）
	GetProfile(viewer authz.Principal, targetUuid string) (*respond.GetProfileRespond, error)
	// UpdateProfile 更新本人资料
	UpdateProfile(userUuid string, req request.UpdateProfileRequest) error
	// UpdateVisibility 更新资料可见性
	UpdateVisibility(userUuid string, req request.UpdateVisibilityRequest) error
}

// RbacService 角色权限管理接口
type RbacService interface {
	// CreateRole 创建角色
	CreateRole(req request.CreateRoleRequest) error
	// GetRoles 查询所有角色
	GetRoles() ([]respond.RoleRespond, error)
	// CreatePermission 创建权限点
	CreatePermission(req request.CreatePermissionRequest) error
	// GetPermissions 查询所有权限点
	GetPermissions() ([]respond.PermissionRespond, error)
	// GrantPermission 为角色授予权限
	GrantPermission(req request.GrantPermissionRequest) error
	// RevokePermission 撤销角色的权限
	RevokePermission(req request.GrantPermissionRequest) error
	// GetRolePermissions 查询角色拥有的权限
	GetRolePermissions(roleId uint) ([]respond.PermissionRespond, error)
}

// ForumService 贴吧业务接口
type ForumService interface {
	// CreateForum 创建贴吧（同事务创建吧主成员行）
	CreateForum(creatorUuid string, req request.CreateForumRequest) (*respond.ForumRespond, error)
	// UpdateForum 更新贴吧信息
	UpdateForum(operator authz.Principal, req request.UpdateForumRequest) error
	// DismissForum 解散贴吧（置为封禁状态）
	DismissForum(operator authz.Principal, forumUuid string) error
	// GetForumInfo 获取贴吧信息
	GetForumInfo(forumUuid string) (*respond.ForumRespond, error)
	// GetForumList 分页获取贴吧列表
	GetForumList(req request.GetForumListRequest) (*respond.GetForumListWrapper, error)
	// GetMyForums 获取用户加入的贴吧
	GetMyForums(userUuid string) ([]respond.ForumRespond, error)
	// GetCategories 获取分类列表
	GetCategories() ([]respond.CategoryRespond, error)
	// CreateCategory 创建分类
	CreateCategory(req request.CreateCategoryRequest) error
}

// MemberService 贴吧成员业务接口
// 成员关系的加入/退出/角色/封禁状态机与签到活跃度
type MemberService interface {
	// ToggleMembership 加入/退出切换（同步路径，贴吧行锁内执行）
	ToggleMembership(userUuid string, req request.ToggleMembershipRequest) (*respond.ToggleMembershipRespond, error)
	// AsyncToggleMembership 异步切换（互斥锁去重后投递 Kafka）
	AsyncToggleMembership(userUuid, forumUuid string) error
	// ApplyToggle 消费端执行异步切换
	ApplyToggle(forumUuid, userUuid string) error
	// ChangeMemberRole 变更成员角色
	ChangeMemberRole(operator authz.Principal, req request.ChangeMemberRoleRequest) error
	// BanMember 封禁成员
	BanMember(operator authz.Principal, req request.BanMemberRequest) error
	// UnbanMember 解封成员
	UnbanMember(operator authz.Principal, req request.UnbanMemberRequest) error
	// SignIn 吧内签到
	SignIn(userUuid, forumUuid string) (*respond.SignInRespond, error)
	// GetMemberList 获取在吧成员列表
	GetMemberList(forumUuid string) ([]respond.MemberRespond, error)
	// GetAuditLogs 分页查询审计日志
	GetAuditLogs(req request.GetAuditLogRequest) (*respond.GetAuditLogWrapper, error)
	// ReconcileMemberCounts 成员计数对账
	ReconcileMemberCounts() error
	// StartReconciler 启动周期性对账协程
	StartReconciler(interval time.Duration)
}

// PostService 帖子与评论业务接口
type PostService interface {
	// CreatePost 发帖
	CreatePost(authorUuid string, req request.CreatePostRequest) (*respond.PostRespond, error)
	// UpdatePost 编辑帖子
	UpdatePost(operatorUuid string, req request.UpdatePostRequest) error
	// DeletePost 删除帖子
	DeletePost(operator authz.Principal, postUuid string) error
	// GetPost 获取帖子详情
	GetPost(postUuid string) (*respond.PostRespond, error)
	// GetPostList 分页获取帖子列表
	GetPostList(req request.GetPostListRequest) (*respond.GetPostListWrapper, error)
	// PinPost 置顶/取消置顶
	PinPost(operator authz.Principal, req request.PinPostRequest) error
	// CreateComment 发表评论
	CreateComment(authorUuid string, req request.CreateCommentRequest) (*respond.CommentRespond, error)
	// DeleteComment 删除评论
	DeleteComment(operator authz.Principal, commentUuid string) error
	// GetCommentList 分页获取评论
	GetCommentList(req request.GetCommentListRequest) (*respond.GetCommentListWrapper, error)
}

// InteractionService 互动业务接口：点赞、收藏、关注
type InteractionService interface {
	// ToggleLike 点赞/取消点赞切换
	ToggleLike(userUuid string, req request.ToggleLikeRequest) (*respond.ToggleLikeRespond, error)
	// CreateFolder 创建收藏夹
	CreateFolder(userUuid string, req request.CreateFolderRequest) (*respond.FolderRespond, error)
	// GetFolders 查看收藏夹列表
	GetFolders(viewer authz.Principal, ownerUuid string) ([]respond.FolderRespond, error)
	// CollectPost 收藏帖子
	CollectPost(userUuid string, req request.CollectPostRequest) error
	// UncollectPost 取消收藏
	UncollectPost(userUuid string, req request.UncollectPostRequest) error
	// GetFolderItems 查看收藏夹内容
	GetFolderItems(viewer authz.Principal, folderUuid string, page, pageSize int) (*respond.GetPostListWrapper, error)
	// ToggleFollow 关注/取关切换
	ToggleFollow(userUuid string, req request.ToggleFollowRequest) (*respond.ToggleFollowRespond, error)
	// GetFollowees 查看关注列表
	GetFollowees(userUuid string) ([]respond.GetProfileRespond, error)
	// GetFollowers 查看粉丝列表
	GetFollowers(userUuid string) ([]respond.GetProfileRespond, error)
}

// NotificationService 站内通知业务接口
type NotificationService interface {
	// Notify 发送站内通知（尽力而为）
	Notify(receiverUuid, senderUuid, notifyType, content, targetUuid string)
	// HandleEvent 通知事件落库（供 Kafka 消费者使用）
	HandleEvent(event mq.NotificationEvent) ([]byte, error)
	// GetNotifications 分页查询通知
	GetNotifications(receiverUuid string, req request.GetNotificationListRequest) (*respond.GetNotificationListWrapper, error)
	// MarkRead 标记单条已读
	MarkRead(receiverUuid, notificationUuid string) error
	// MarkAllRead 标记全部已读
	MarkAllRead(receiverUuid string) error
}

// MessageService 私信业务接口
type MessageService interface {
	// SendMessage 发送私信（加密落库）
	SendMessage(senderUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error)
	// GetThreads 查看会话列表
	GetThreads(userUuid string) ([]respond.ThreadRespond, error)
	// GetMessages 查看会话内私信（解密）
	GetMessages(userUuid string, req request.GetMessageListRequest) (*respond.GetMessageListWrapper, error)
}

// ReportService 举报业务接口
type ReportService interface {
	// CreateReport 提交举报
	CreateReport(reporterUuid string, req request.CreateReportRequest) error
	// GetPendingReports 查询待处理举报
	GetPendingReports(page, pageSize int) (*respond.GetReportListWrapper, error)
	// HandleReport 处理举报
	HandleReport(handlerUuid string, req request.HandleReportRequest) error
}
