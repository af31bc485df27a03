package respond

// ToggleMembershipRespond 成员切换响应
// Detail 为本次实际发生的转移：joined / rejoined / left
type ToggleMembershipRespond struct {
	Detail    string `json:"detail"`
	ForumUuid string `json:"forum_uuid"`
	RoleType  string `json:"role_type,omitempty"`
	MemberCnt int    `json:"member_cnt"`
}

// MemberRespond 贴吧成员响应
type MemberRespond struct {
	UserUuid    string `json:"user_uuid"`
	Nickname    string `json:"nickname"`
	Avatar      string `json:"avatar"`
	RoleType    string `json:"role_type"`
	IsBanned    int8   `json:"is_banned"`
	BannedUntil string `json:"banned_until,omitempty"`
	JoinedAt    string `json:"joined_at"`
}

// ActivityRespond 吧内活跃度响应
type ActivityRespond struct {
	ForumUuid    string `json:"forum_uuid"`
	ExpPoints    int    `json:"exp_points"`
	Level        int    `json:"level"`
	Streak       int    `json:"streak"`
	LastSignInAt string `json:"last_sign_in_at,omitempty"`
}

// SignInRespond 签到响应
// 当日已签到时 Detail 为 "already signed in today"，GainedExp 为 0
type SignInRespond struct {
	Detail    string          `json:"detail"`
	GainedExp int             `json:"gained_exp"`
	Activity  ActivityRespond `json:"activity"`
}

// AuditLogRespond 审计日志响应
type AuditLogRespond struct {
	ForumUuid    string `json:"forum_uuid"`
	OperatorUuid string `json:"operator_uuid"`
	TargetUuid   string `json:"target_uuid"`
	Action       string `json:"action"`
	OldValue     string `json:"old_value"`
	NewValue     string `json:"new_value"`
	Reason       string `json:"reason"`
	CreatedAt    string `json:"created_at"`
}

// GetAuditLogWrapper 分页审计日志响应
type GetAuditLogWrapper struct {
	List  []AuditLogRespond `json:"list"`
	Total int64             `json:"total"`
}
