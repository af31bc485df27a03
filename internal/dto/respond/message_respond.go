package respond

// NotificationRespond 通知响应
type NotificationRespond struct {
	Uuid       string `json:"uuid"`
	SenderUuid string `json:"sender_uuid,omitempty"`
	Type       string `json:"type"`
	Content    string `json:"content"`
	TargetUuid string `json:"target_uuid,omitempty"`
	IsRead     int8   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

// GetNotificationListWrapper 分页通知列表响应
type GetNotificationListWrapper struct {
	List   []NotificationRespond `json:"list"`
	Total  int64                 `json:"total"`
	Unread int64                 `json:"unread"`
}

// ThreadRespond 私信会话响应
type ThreadRespond struct {
	Uuid      string `json:"uuid"`
	PeerUuid  string `json:"peer_uuid"`
	UpdatedAt string `json:"updated_at"`
}

// MessageRespond 私信响应（Content 为解密后的明文）
type MessageRespond struct {
	Uuid       string `json:"uuid"`
	ThreadUuid string `json:"thread_uuid"`
	SenderUuid string `json:"sender_uuid"`
	Content    string `json:"content"`
	IsRead     int8   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

// GetMessageListWrapper 分页私信列表响应
type GetMessageListWrapper struct {
	List  []MessageRespond `json:"list"`
	Total int64            `json:"total"`
}

// ReportRespond 举报响应
type ReportRespond struct {
	Uuid         string `json:"uuid"`
	ReporterUuid string `json:"reporter_uuid"`
	TargetType   string `json:"target_type"`
	TargetUuid   string `json:"target_uuid"`
	Reason       string `json:"reason"`
	Status       int8   `json:"status"`
	HandlerUuid  string `json:"handler_uuid,omitempty"`
	HandleNote   string `json:"handle_note,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// GetReportListWrapper 分页举报列表响应
type GetReportListWrapper struct {
	List  []ReportRespond `json:"list"`
	Total int64           `json:"total"`
}
