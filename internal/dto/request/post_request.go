package request

// CreatePostRequest 发帖请求
type CreatePostRequest struct {
	ForumUuid string `json:"forum_uuid" binding:"required"`
	Title     string `json:"title" binding:"required,max=100"`
	Content   string `json:"content" binding:"required"`
}

// UpdatePostRequest 编辑帖子请求
type UpdatePostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
	Title    string `json:"title" binding:"required,max=100"`
	Content  string `json:"content" binding:"required"`
}

// GetPostListRequest 分页获取帖子列表请求
type GetPostListRequest struct {
	ForumUuid string `json:"forum_uuid" form:"forum_uuid" binding:"required"`
	Page      int    `json:"page" form:"page" binding:"min=1"`
	PageSize  int    `json:"page_size" form:"page_size" binding:"min=1,max=100"`
}

// PinPostRequest 置顶/取消置顶帖子请求
type PinPostRequest struct {
	PostUuid string `json:"post_uuid" binding:"required"`
	IsPinned int8   `json:"is_pinned" binding:"oneof=0 1"`
}

// CreateCommentRequest 发表评论请求
// ParentUuid 非空时为楼中楼回复
type CreateCommentRequest struct {
	PostUuid   string `json:"post_uuid" binding:"required"`
	ParentUuid string `json:"parent_uuid"`
	Content    string `json:"content" binding:"required,max=1000"`
}

// GetCommentListRequest 分页获取评论请求
type GetCommentListRequest struct {
	PostUuid string `json:"post_uuid" form:"post_uuid" binding:"required"`
	Page     int    `json:"page" form:"page" binding:"min=1"`
	PageSize int    `json:"page_size" form:"page_size" binding:"min=1,max=100"`
}
