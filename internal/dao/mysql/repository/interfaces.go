// Package repository 定义数据访问层接口和聚合结构
package repository

import (
	"time"

	"github.com/WhiteCrowZero/MinTieba/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
// 覆盖账号、资料和登录历史
type UserRepository interface {
	// FindByUuid 根据 UUID 查找账号
	FindByUuid(uuid string) (*model.UserAccount, error)
	// FindByTelephone 根据手机号查找账号
	FindByTelephone(telephone string) (*model.UserAccount, error)
	// FindByUuids 批量根据 UUID 查找账号
	FindByUuids(uuids []string) ([]model.UserAccount, error)
	// Create 创建账号
	Create(user *model.UserAccount) error
	// Update 更新账号信息
	Update(user *model.UserAccount) error
	// UpdateStatusByUuids 批量更新账号状态（启用/禁用）
	UpdateStatusByUuids(uuids []string, status int8) error
	// FindProfileByUserUuid 查找用户资料
	FindProfileByUserUuid(userUuid string) (*model.UserProfile, error)
	// FindProfilesByUserUuids 批量查找用户资料
	FindProfilesByUserUuids(userUuids []string) ([]model.UserProfile, error)
	// CreateProfile 创建用户资料
	CreateProfile(profile *model.UserProfile) error
	// UpdateProfile 更新用户资料
	UpdateProfile(profile *model.UserProfile) error
	// IncrementFollowCnt 关注数增减（delta 可为负）
	IncrementFollowCnt(userUuid string, delta int) error
	// IncrementFansCnt 粉丝数增减（delta 可为负）
	IncrementFansCnt(userUuid string, delta int) error
	// CreateLoginHistory 追加登录历史
	CreateLoginHistory(history *model.UserLoginHistory) error
}

// RoleRepository RBAC 数据访问接口
// 覆盖角色、权限及角色-权限关联
type RoleRepository interface {
	// FindById 根据 ID 查找角色
	FindById(id uint) (*model.Role, error)
	// FindByName 根据名称查找角色
	FindByName(name string) (*model.Role, error)
	// FindAll 查找所有角色
	FindAll() ([]model.Role, error)
	// CreateRole 创建角色
	CreateRole(role *model.Role) error
	// FindPermissionByCode 根据权限码查找权限
	FindPermissionByCode(code string) (*model.Permission, error)
	// CreatePermission 创建权限
	CreatePermission(permission *model.Permission) error
	// FindAllPermissions 查找所有权限点
	FindAllPermissions() ([]model.Permission, error)
	// HasPermission 判断角色是否拥有指定权限码
	// 通过 role_permission_map 与 permission 联表查询
	HasPermission(roleId uint, code string) (bool, error)
	// GrantPermission 为角色授予权限
	GrantPermission(roleId, permissionId uint) error
	// RevokePermission 撤销角色的权限
	RevokePermission(roleId, permissionId uint) error
	// FindPermissionsByRoleId 查找角色的全部权限
	FindPermissionsByRoleId(roleId uint) ([]model.Permission, error)
}

// ForumRepository 贴吧数据访问接口
type ForumRepository interface {
	// FindByUuid 根据 UUID 查找贴吧
	FindByUuid(uuid string) (*model.Forum, error)
	// FindByUuidForUpdate 根据 UUID 查找贴吧并加行锁（SELECT ... FOR UPDATE）
	// 必须在事务内调用，用于成员关系读-判-写序列的并发控制
	FindByUuidForUpdate(uuid string) (*model.Forum, error)
	// FindByName 根据名称查找贴吧
	FindByName(name string) (*model.Forum, error)
	// GetForumList 分页获取贴吧列表
	GetForumList(page, pageSize int) ([]model.Forum, int64, error)
	// FindByOwnerUuid 查找用户创建的贴吧
	FindByOwnerUuid(ownerUuid string) ([]model.Forum, error)
	// Create 创建贴吧
	Create(forum *model.Forum) error
	// UpdateInfo 更新贴吧简介和头像
	// 只更新指定列，不回写计数器等并发维护的字段
	UpdateInfo(uuid, description, avatar string) error
	// UpdateOwner 更新吧主（转让）
	UpdateOwner(uuid, ownerUuid string) error
	// UpdateStatus 更新贴吧状态（解散/恢复）
	UpdateStatus(uuid string, status int8) error
	// IncrementMemberCount 成员数 +1（原子更新）
	IncrementMemberCount(uuid string) error
	// DecrementMemberCount 成员数 -1（原子更新）
	DecrementMemberCount(uuid string) error
	// SetMemberCount 重置成员数（对账用）
	SetMemberCount(uuid string, count int) error
	// IncrementPostCount 帖子数增减（delta 可为负）
	IncrementPostCount(uuid string, delta int) error
	// FindAllUuids 查找所有贴吧 UUID（对账任务遍历用）
	FindAllUuids() ([]string, error)
	// FindCategories 查找所有分类
	FindCategories() ([]model.ForumCategory, error)
	// CreateCategory 创建分类
	CreateCategory(category *model.ForumCategory) error
	// BindCategory 绑定贴吧到分类
	BindCategory(forumUuid string, categoryId uint) error
}

// ForumMemberRepository 贴吧成员数据访问接口
// 成员关系为软删除复用行模型：查询时需区分是否包含已退出记录
type ForumMemberRepository interface {
	// FindByForumAndUser 查找在吧成员（不含已退出）
	FindByForumAndUser(forumUuid, userUuid string) (*model.ForumMember, error)
	// FindByForumAndUserUnscoped 查找成员记录（含已退出的软删除行）
	// 用于区分"从未加入"和"退出后重新加入"
	FindByForumAndUserUnscoped(forumUuid, userUuid string) (*model.ForumMember, error)
	// FindByForumUuid 查找贴吧所有在吧成员
	FindByForumUuid(forumUuid string) ([]model.ForumMember, error)
	// FindByUserUuid 查找用户加入的所有贴吧成员记录
	FindByUserUuid(userUuid string) ([]model.ForumMember, error)
	// Create 新建成员记录
	Create(member *model.ForumMember) error
	// Restore 恢复软删除的成员记录并刷新加入时间
	// 角色保持退出前的值不变
	Restore(id uint, joinedAt time.Time) error
	// SoftDelete 软删除成员记录（退出）
	SoftDelete(id uint) error
	// UpdateRole 更新成员角色
	UpdateRole(id uint, roleType string) error
	// UpdateBan 更新封禁状态
	UpdateBan(id uint, isBanned int8, bannedUntil *time.Time) error
	// CountActiveByForum 统计在吧成员数（对账用）
	CountActiveByForum(forumUuid string) (int64, error)
}

// AuditLogRepository 成员管理审计日志数据访问接口
// 日志只增不改
type AuditLogRepository interface {
	// Create 追加审计日志
	Create(log *model.ForumMemberAuditLog) error
	// FindByForumUuid 按贴吧分页查询审计日志，按时间倒序
	FindByForumUuid(forumUuid string, page, pageSize int) ([]model.ForumMemberAuditLog, int64, error)
	// FindByTargetUuid 查询某用户被操作的审计日志
	FindByTargetUuid(forumUuid, targetUuid string) ([]model.ForumMemberAuditLog, error)
}

// ActivityRepository 吧内活跃度（签到）数据访问接口
type ActivityRepository interface {
	// FindByForumAndUser 查找活跃度记录
	FindByForumAndUser(forumUuid, userUuid string) (*model.ForumActivity, error)
	// FindByForumAndUserForUpdate 查找活跃度记录并加行锁
	// 必须在事务内调用，防止并发签到重复计分
	FindByForumAndUserForUpdate(forumUuid, userUuid string) (*model.ForumActivity, error)
	// Create 新建活跃度记录
	Create(activity *model.ForumActivity) error
	// Update 更新活跃度记录
	Update(activity *model.ForumActivity) error
}

// PostRepository 帖子数据访问接口
type PostRepository interface {
	// FindByUuid 根据 UUID 查找帖子
	FindByUuid(uuid string) (*model.Post, error)
	// GetPostList 按贴吧分页获取帖子列表，置顶优先
	GetPostList(forumUuid string, page, pageSize int) ([]model.Post, int64, error)
	// FindByAuthorUuid 查找用户发布的帖子
	FindByAuthorUuid(authorUuid string, page, pageSize int) ([]model.Post, int64, error)
	// Create 创建帖子
	Create(post *model.Post) error
	// Update 更新帖子
	Update(post *model.Post) error
	// SoftDelete 软删除帖子
	SoftDelete(uuid string) error
	// IncrementViewCount 浏览数 +1
	IncrementViewCount(uuid string) error
	// IncrementLikeCount 点赞数增减（delta 可为负）
	IncrementLikeCount(uuid string, delta int) error
	// IncrementCommentCount 评论数增减（delta 可为负）
	IncrementCommentCount(uuid string, delta int) error
	// UpdatePinned 更新置顶状态
	UpdatePinned(uuid string, isPinned int8) error
	// UpdateStatus 更新帖子状态（隐藏/恢复）
	UpdateStatus(uuid string, status int8) error
}

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	// FindByUuid 根据 UUID 查找评论
	FindByUuid(uuid string) (*model.Comment, error)
	// GetCommentList 按帖子分页获取一级评论
	GetCommentList(postUuid string, page, pageSize int) ([]model.Comment, int64, error)
	// FindReplies 查找某评论下的回复
	FindReplies(parentUuid string) ([]model.Comment, error)
	// Create 创建评论
	Create(comment *model.Comment) error
	// SoftDelete 软删除评论
	SoftDelete(uuid string) error
	// IncrementLikeCount 点赞数增减（delta 可为负）
	IncrementLikeCount(uuid string, delta int) error
}

// InteractionRepository 互动数据访问接口
// 覆盖点赞、收藏和关注
type InteractionRepository interface {
	// FindLikeUnscoped 查找点赞记录（含软删除）
	FindLikeUnscoped(userUuid, targetType, targetUuid string) (*model.LikeRecord, error)
	// CreateLike 新建点赞记录
	CreateLike(record *model.LikeRecord) error
	// RestoreLike 恢复软删除的点赞记录
	RestoreLike(id uint) error
	// SoftDeleteLike 软删除点赞记录（取消点赞）
	SoftDeleteLike(id uint) error
	// FindFolderByUuid 查找收藏夹
	FindFolderByUuid(uuid string) (*model.CollectionFolder, error)
	// FindFoldersByUserUuid 查找用户的收藏夹列表
	FindFoldersByUserUuid(userUuid string) ([]model.CollectionFolder, error)
	// CreateFolder 创建收藏夹
	CreateFolder(folder *model.CollectionFolder) error
	// SoftDeleteFolder 软删除收藏夹及其条目
	SoftDeleteFolder(uuid string) error
	// FindItem 查找收藏条目
	FindItem(folderUuid, postUuid string) (*model.CollectionItem, error)
	// FindItemsByFolder 分页查找收藏夹条目
	FindItemsByFolder(folderUuid string, page, pageSize int) ([]model.CollectionItem, int64, error)
	// CreateItem 添加收藏条目
	CreateItem(item *model.CollectionItem) error
	// DeleteItem 移除收藏条目
	DeleteItem(folderUuid, postUuid string) error
	// IncrementItemCount 收藏夹条目数增减（delta 可为负）
	IncrementItemCount(folderUuid string, delta int) error
	// FindFollowUnscoped 查找关注记录（含软删除）
	FindFollowUnscoped(followerUuid, followeeUuid string) (*model.UserFollow, error)
	// CreateFollow 新建关注记录
	CreateFollow(follow *model.UserFollow) error
	// RestoreFollow 恢复软删除的关注记录
	RestoreFollow(id uint) error
	// SoftDeleteFollow 软删除关注记录（取关）
	SoftDeleteFollow(id uint) error
	// FindFollowees 查找用户关注的人
	FindFollowees(followerUuid string) ([]model.UserFollow, error)
	// FindFollowers 查找用户的粉丝
	FindFollowers(followeeUuid string) ([]model.UserFollow, error)
	// IsMutualFollow 判断两个用户是否互相关注
	IsMutualFollow(userA, userB string) (bool, error)
}

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	// Create 创建通知
	Create(notification *model.Notification) error
	// FindByReceiver 分页查询用户通知，按时间倒序
	FindByReceiver(receiverUuid string, page, pageSize int) ([]model.Notification, int64, error)
	// CountUnread 统计未读通知数
	CountUnread(receiverUuid string) (int64, error)
	// MarkRead 标记单条通知已读
	MarkRead(uuid string, receiverUuid string) error
	// MarkAllRead 标记用户全部通知已读
	MarkAllRead(receiverUuid string) error
}

// MessageRepository 私信数据访问接口
type MessageRepository interface {
	// FindThread 查找两用户间的会话（入参已按字典序归一化）
	FindThread(userA, userB string) (*model.MessageThread, error)
	// FindThreadByUuid 根据 UUID 查找会话
	FindThreadByUuid(uuid string) (*model.MessageThread, error)
	// FindThreadsByUser 查找用户参与的所有会话
	FindThreadsByUser(userUuid string) ([]model.MessageThread, error)
	// CreateThread 创建会话
	CreateThread(thread *model.MessageThread) error
	// CreateMessage 创建私信
	CreateMessage(message *model.PrivateMessage) error
	// FindMessagesByThread 分页查询会话内私信，按时间倒序
	FindMessagesByThread(threadUuid string, page, pageSize int) ([]model.PrivateMessage, int64, error)
	// MarkThreadRead 将会话内对方发送的私信标记已读
	MarkThreadRead(threadUuid, readerUuid string) error
}

// ReportRepository 举报数据访问接口
type ReportRepository interface {
	// Create 创建举报
	Create(report *model.Report) error
	// FindByUuid 根据 UUID 查找举报
	FindByUuid(uuid string) (*model.Report, error)
	// FindPending 分页查询待处理举报
	FindPending(page, pageSize int) ([]model.Report, int64, error)
	// UpdateStatus 更新举报处理结果
	UpdateStatus(uuid string, status int8, handlerUuid, handleNote string) error
}

// ==================== Repository 聚合 ====================

// Repositories 所有 Repository 的聚合结构
// 服务层通过该结构访问数据层，事务内通过 Transaction 获取事务副本
type Repositories struct {
	db *gorm.DB

	User         UserRepository
	Role         RoleRepository
	Forum        ForumRepository
	ForumMember  ForumMemberRepository
	AuditLog     AuditLogRepository
	Activity     ActivityRepository
	Post         PostRepository
	Comment      CommentRepository
	Interaction  InteractionRepository
	Notification NotificationRepository
	Message      MessageRepository
	Report       ReportRepository
}

// NewRepositories 创建 Repository 聚合实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:           db,
		User:         NewUserRepository(db),
		Role:         NewRoleRepository(db),
		Forum:        NewForumRepository(db),
		ForumMember:  NewForumMemberRepository(db),
		AuditLog:     NewAuditLogRepository(db),
		Activity:     NewActivityRepository(db),
		Post:         NewPostRepository(db),
		Comment:      NewCommentRepository(db),
		Interaction:  NewInteractionRepository(db),
		Notification: NewNotificationRepository(db),
		Message:      NewMessageRepository(db),
		Report:       NewReportRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
// 返回: 操作错误（如有错误会自动回滚）
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	// 未绑定 db 时直接执行回调（内存实现没有事务语义）
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
