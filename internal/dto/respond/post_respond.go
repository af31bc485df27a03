package respond

// PostRespond 帖子响应
type PostRespond struct {
	Uuid       string `json:"uuid"`
	ForumUuid  string `json:"forum_uuid"`
	AuthorUuid string `json:"author_uuid"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ViewCnt    int    `json:"view_cnt"`
	LikeCnt    int    `json:"like_cnt"`
	CommentCnt int    `json:"comment_cnt"`
	IsPinned   int8   `json:"is_pinned"`
	CreatedAt  string `json:"created_at"`
}

// GetPostListWrapper 分页帖子列表响应
type GetPostListWrapper struct {
	List  []PostRespond `json:"list"`
	Total int64         `json:"total"`
}

// CommentRespond 评论响应
type CommentRespond struct {
	Uuid       string           `json:"uuid"`
	PostUuid   string           `json:"post_uuid"`
	AuthorUuid string           `json:"author_uuid"`
	ParentUuid string           `json:"parent_uuid,omitempty"`
	Content    string           `json:"content"`
	LikeCnt    int              `json:"like_cnt"`
	CreatedAt  string           `json:"created_at"`
	Replies    []CommentRespond `json:"replies,omitempty"`
}

// GetCommentListWrapper 分页评论列表响应
type GetCommentListWrapper struct {
	List  []CommentRespond `json:"list"`
	Total int64            `json:"total"`
}

// ToggleLikeRespond 点赞切换响应
type ToggleLikeRespond struct {
	Liked   bool `json:"liked"`
	LikeCnt int  `json:"like_cnt"`
}

// ToggleFollowRespond 关注切换响应
type ToggleFollowRespond struct {
	Following bool `json:"following"`
}

// FolderRespond 收藏夹响应
type FolderRespond struct {
	Uuid      string `json:"uuid"`
	Name      string `json:"name"`
	ItemCnt   int    `json:"item_cnt"`
	CreatedAt string `json:"created_at"`
}
