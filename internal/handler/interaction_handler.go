// 本文件处理互动相关的 API 请求：点赞、收藏、关注
package handler

import (
	"strconv"

	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// InteractionHandler 互动请求处理器
type InteractionHandler struct {
	interactionSvc service.InteractionService
}

// NewInteractionHandler 创建互动处理器实例
func NewInteractionHandler(interactionSvc service.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionSvc: interactionSvc}
}

// ToggleLike 点赞/取消点赞切换
// POST /interaction/toggleLike
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	var req request.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.interactionSvc.ToggleLike(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateFolder 创建收藏夹
// POST /interaction/createFolder
func (h *InteractionHandler) CreateFolder(c *gin.Context) {
	var req request.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.interactionSvc.CreateFolder(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFolders 查看收藏夹列表
// GET /interaction/getFolders?user_uuid=xxx
func (h *InteractionHandler) GetFolders(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	ownerUuid := c.Query("user_uuid")
	if ownerUuid == "" {
		ownerUuid = principal.UserUuid
	}
	data, err := h.interactionSvc.GetFolders(principal, ownerUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CollectPost 收藏帖子
// POST /interaction/collectPost
func (h *InteractionHandler) CollectPost(c *gin.Context) {
	var req request.CollectPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.interactionSvc.CollectPost(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UncollectPost 取消收藏
// POST /interaction/uncollectPost
func (h *InteractionHandler) UncollectPost(c *gin.Context) {
	var req request.UncollectPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.interactionSvc.UncollectPost(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetFolderItems 分页查看收藏夹内容
// GET /interaction/getFolderItems?folder_uuid=xxx&page=1&page_size=20
func (h *InteractionHandler) GetFolderItems(c *gin.Context) {
	folderUuid := c.Query("folder_uuid")
	if folderUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	data, err := h.interactionSvc.GetFolderItems(middleware.GetPrincipal(c), folderUuid, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ToggleFollow 关注/取关切换
// POST /interaction/toggleFollow
func (h *InteractionHandler) ToggleFollow(c *gin.Context) {
	var req request.ToggleFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.interactionSvc.ToggleFollow(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFollowees 查看关注列表
// GET /interaction/getFollowees?user_uuid=xxx
func (h *InteractionHandler) GetFollowees(c *gin.Context) {
	userUuid := c.Query("user_uuid")
	if userUuid == "" {
		userUuid = middleware.GetPrincipal(c).UserUuid
	}
	data, err := h.interactionSvc.GetFollowees(userUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFollowers 查看粉丝列表
// GET /interaction/getFollowers?user_uuid=xxx
func (h *InteractionHandler) GetFollowers(c *gin.Context) {
	userUuid := c.Query("user_uuid")
	if userUuid == "" {
		userUuid = middleware.GetPrincipal(c).UserUuid
	}
	data, err := h.interactionSvc.GetFollowers(userUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
