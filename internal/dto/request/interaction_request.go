package request

// ToggleLikeRequest 点赞/取消点赞切换请求
type ToggleLikeRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=post comment"`
	TargetUuid string `json:"target_uuid" binding:"required"`
}

// CreateFolderRequest 创建收藏夹请求
type CreateFolderRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}

// CollectPostRequest 收藏帖子请求
type CollectPostRequest struct {
	FolderUuid string `json:"folder_uuid" binding:"required"`
	PostUuid   string `json:"post_uuid" binding:"required"`
}

// UncollectPostRequest 取消收藏请求
type UncollectPostRequest struct {
	FolderUuid string `json:"folder_uuid" binding:"required"`
	PostUuid   string `json:"post_uuid" binding:"required"`
}

// ToggleFollowRequest 关注/取关切换请求
type ToggleFollowRequest struct {
	TargetUuid string `json:"target_uuid" binding:"required"`
}
