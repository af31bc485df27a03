package request

// ToggleMembershipRequest 加入/退出贴吧切换请求
// 同一接口按当前成员状态决定执行加入、重新加入还是退出
type ToggleMembershipRequest struct {
	ForumUuid string `json:"forum_uuid" binding:"required"`
}

// ChangeMemberRoleRequest 变更成员吧内角色请求
type ChangeMemberRoleRequest struct {
	ForumUuid  string `json:"forum_uuid" binding:"required"`
	TargetUuid string `json:"target_uuid" binding:"required"`
	RoleType   string `json:"role_type" binding:"required,oneof=owner admin member"`
}

// BanMemberRequest 封禁成员请求
type BanMemberRequest struct {
	ForumUuid  string `json:"forum_uuid" binding:"required"`
	TargetUuid string `json:"target_uuid" binding:"required"`
	Reason     string `json:"reason" binding:"required,max=255"`
	// BanDays 封禁天数，0 表示永久
	BanDays int `json:"ban_days" binding:"min=0,max=365"`
}

// UnbanMemberRequest 解封成员请求
type UnbanMemberRequest struct {
	ForumUuid  string `json:"forum_uuid" binding:"required"`
	TargetUuid string `json:"target_uuid" binding:"required"`
	Reason     string `json:"reason" binding:"max=255"`
}

// SignInRequest 吧内签到请求
type SignInRequest struct {
	ForumUuid string `json:"forum_uuid" binding:"required"`
}

// GetAuditLogRequest 分页查询审计日志请求
type GetAuditLogRequest struct {
	ForumUuid string `json:"forum_uuid" form:"forum_uuid" binding:"required"`
	Page      int    `json:"page" form:"page" binding:"min=1"`
	PageSize  int    `json:"page_size" form:"page_size" binding:"min=1,max=100"`
}
