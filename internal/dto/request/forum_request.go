package request

// CreateForumRequest 创建贴吧请求
type CreateForumRequest struct {
	Name        string `json:"name" binding:"required,max=30"`
	Description string `json:"description" binding:"max=500"`
	Avatar      string `json:"avatar"`
	CategoryId  uint   `json:"category_id"`
}

// UpdateForumRequest 更新贴吧信息请求
type UpdateForumRequest struct {
	ForumUuid   string `json:"forum_uuid" binding:"required"`
	Description string `json:"description" binding:"max=500"`
	Avatar      string `json:"avatar"`
}

// DismissForumRequest 解散贴吧请求
type DismissForumRequest struct {
	ForumUuid string `json:"forum_uuid" binding:"required"`
}

// GetForumListRequest 分页获取贴吧列表请求
type GetForumListRequest struct {
	Page     int `json:"page" form:"page" binding:"min=1"`
	PageSize int `json:"page_size" form:"page_size" binding:"min=1,max=100"`
}

// CreateCategoryRequest 创建贴吧分类请求
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,max=30"`
	SortOrder int    `json:"sort_order"`
}
