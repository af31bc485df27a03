// 本文件处理帖子与评论相关的 API 请求
package handler

import (
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// PostHandler 帖子请求处理器
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler 创建帖子处理器实例
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// CreatePost 发帖
// POST /post/createPost
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req request.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.CreatePost(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdatePost 编辑帖子
// POST /post/updatePost
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req request.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.UpdatePost(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeletePost 删除帖子
// POST /post/deletePost
func (h *PostHandler) DeletePost(c *gin.Context) {
	postUuid := c.Query("post_uuid")
	if postUuid == "" {
		postUuid = c.PostForm("post_uuid")
	}
	if postUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	if err := h.postSvc.DeletePost(middleware.GetPrincipal(c), postUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetPost 获取帖子详情
// GET /post/getPost?post_uuid=xxx
func (h *PostHandler) GetPost(c *gin.Context) {
	postUuid := c.Query("post_uuid")
	if postUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.postSvc.GetPost(postUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetPostList 分页获取贴吧帖子列表
// GET /post/getPostList?forum_uuid=xxx&page=1&page_size=20
func (h *PostHandler) GetPostList(c *gin.Context) {
	var req request.GetPostListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.GetPostList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// PinPost 置顶/取消置顶帖子（吧务接口）
// POST /post/pinPost
func (h *PostHandler) PinPost(c *gin.Context) {
	var req request.PinPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.postSvc.PinPost(middleware.GetPrincipal(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CreateComment 发表评论
// POST /comment/createComment
func (h *PostHandler) CreateComment(c *gin.Context) {
	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.CreateComment(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteComment 删除评论
// POST /comment/deleteComment
func (h *PostHandler) DeleteComment(c *gin.Context) {
	commentUuid := c.Query("comment_uuid")
	if commentUuid == "" {
		commentUuid = c.PostForm("comment_uuid")
	}
	if commentUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	if err := h.postSvc.DeleteComment(middleware.GetPrincipal(c), commentUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetCommentList 分页获取评论列表
// GET /comment/getCommentList?post_uuid=xxx&page=1&page_size=20
func (h *PostHandler) GetCommentList(c *gin.Context) {
	var req request.GetCommentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.postSvc.GetCommentList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
