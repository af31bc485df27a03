package request

// SendMessageRequest 发送私信请求
type SendMessageRequest struct {
	ReceiverUuid string `json:"receiver_uuid" binding:"required"`
	Content      string `json:"content" binding:"required,max=2000"`
}

// GetMessageListRequest 分页获取会话私信请求
type GetMessageListRequest struct {
	ThreadUuid string `json:"thread_uuid" form:"thread_uuid" binding:"required"`
	Page       int    `json:"page" form:"page" binding:"min=1"`
	PageSize   int    `json:"page_size" form:"page_size" binding:"min=1,max=100"`
}

// GetNotificationListRequest 分页获取通知请求
type GetNotificationListRequest struct {
	Page     int `json:"page" form:"page" binding:"min=1"`
	PageSize int `json:"page_size" form:"page_size" binding:"min=1,max=100"`
}

// MarkNotificationReadRequest 标记通知已读请求
type MarkNotificationReadRequest struct {
	NotificationUuid string `json:"notification_uuid" binding:"required"`
}

// CreateReportRequest 提交举报请求
type CreateReportRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=post comment"`
	TargetUuid string `json:"target_uuid" binding:"required"`
	Reason     string `json:"reason" binding:"required,max=255"`
}

// HandleReportRequest 处理举报请求
type HandleReportRequest struct {
	ReportUuid string `json:"report_uuid" binding:"required"`
	Status     int8   `json:"status" binding:"oneof=1 2"`
	HandleNote string `json:"handle_note" binding:"max=255"`
}
