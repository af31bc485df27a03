package respond

// ForumRespond 贴吧信息响应
type ForumRespond struct {
	Uuid        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	OwnerUuid   string `json:"owner_uuid"`
	MemberCnt   int    `json:"member_cnt"`
	PostCnt     int    `json:"post_cnt"`
	Status      int8   `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// GetForumListWrapper 分页贴吧列表响应
type GetForumListWrapper struct {
	List  []ForumRespond `json:"list"`
	Total int64          `json:"total"`
}

// CategoryRespond 贴吧分类响应
type CategoryRespond struct {
	Id        uint   `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}
