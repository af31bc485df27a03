// 本文件处理贴吧相关的 API 请求
package handler

import (
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ForumHandler 贴吧请求处理器
type ForumHandler struct {
	forumSvc service.ForumService
}

// NewForumHandler 创建贴吧处理器实例
func NewForumHandler(forumSvc service.ForumService) *ForumHandler {
	return &ForumHandler{forumSvc: forumSvc}
}

// CreateForum 创建贴吧
// POST /forum/createForum
func (h *ForumHandler) CreateForum(c *gin.Context) {
	var req request.CreateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.forumSvc.CreateForum(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateForum 更新贴吧信息
// POST /forum/updateForum
func (h *ForumHandler) UpdateForum(c *gin.Context) {
	var req request.UpdateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.forumSvc.UpdateForum(middleware.GetPrincipal(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DismissForum 解散贴吧
// POST /forum/dismissForum
func (h *ForumHandler) DismissForum(c *gin.Context) {
	var req request.DismissForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.forumSvc.DismissForum(middleware.GetPrincipal(c), req.ForumUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetForumInfo 获取贴吧信息
// GET /forum/getForumInfo?forum_uuid=xxx
func (h *ForumHandler) GetForumInfo(c *gin.Context) {
	forumUuid := c.Query("forum_uuid")
	if forumUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.forumSvc.GetForumInfo(forumUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetForumList 分页获取贴吧列表
// GET /forum/getForumList?page=1&page_size=20
func (h *ForumHandler) GetForumList(c *gin.Context) {
	var req request.GetForumListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.forumSvc.GetForumList(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyForums 获取我加入的贴吧
// GET /forum/getMyForums
func (h *ForumHandler) GetMyForums(c *gin.Context) {
	data, err := h.forumSvc.GetMyForums(middleware.GetPrincipal(c).UserUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetCategories 获取分类列表
// GET /forum/getCategories
func (h *ForumHandler) GetCategories(c *gin.Context) {
	data, err := h.forumSvc.GetCategories()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateCategory 创建分类（平台管理接口）
// POST /admin/forum/createCategory
func (h *ForumHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.forumSvc.CreateCategory(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
