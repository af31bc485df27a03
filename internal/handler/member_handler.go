// 本文件处理贴吧成员关系相关的 API 请求：
// 加入/退出切换、角色变更、封禁解封、签到与审计日志
package handler

import (
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// MemberHandler 贴吧成员请求处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

// NewMemberHandler 创建成员处理器实例
func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// ToggleMembership 加入/退出贴吧切换（同步路径）
// POST /forum/toggleMembership
func (h *MemberHandler) ToggleMembership(c *gin.Context) {
	var req request.ToggleMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.ToggleMembership(middleware.GetPrincipal(c).UserUuid, req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AsyncToggleMembership 异步加入/退出切换
// POST /forum/asyncToggleMembership
// 请求立即返回"已受理"，实际切换由消费端执行
func (h *MemberHandler) AsyncToggleMembership(c *gin.Context) {
	var req request.ToggleMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.AsyncToggleMembership(middleware.GetPrincipal(c).UserUuid, req.ForumUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"detail": "accepted"})
}

// ChangeMemberRole 变更成员吧内角色
// POST /forum/changeMemberRole
func (h *MemberHandler) ChangeMemberRole(c *gin.Context) {
	var req request.ChangeMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.ChangeMemberRole(middleware.GetPrincipal(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// BanMember 封禁成员
// POST /forum/banMember
func (h *MemberHandler) BanMember(c *gin.Context) {
	var req request.BanMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.BanMember(middleware.GetPrincipal(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UnbanMember 解封成员
// POST /forum/unbanMember
func (h *MemberHandler) UnbanMember(c *gin.Context) {
	var req request.UnbanMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.memberSvc.UnbanMember(middleware.GetPrincipal(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SignIn 吧内签到
// POST /forum/signIn
func (h *MemberHandler) SignIn(c *gin.Context) {
	var req request.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.SignIn(middleware.GetPrincipal(c).UserUuid, req.ForumUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMemberList 获取在吧成员列表
// GET /forum/getMemberList?forum_uuid=xxx
func (h *MemberHandler) GetMemberList(c *gin.Context) {
	forumUuid := c.Query("forum_uuid")
	if forumUuid == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.memberSvc.GetMemberList(forumUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetAuditLogs 分页查询成员管理审计日志（吧务接口）
// GET /forum/getAuditLogs?forum_uuid=xxx&page=1&page_size=20
func (h *MemberHandler) GetAuditLogs(c *gin.Context) {
	var req request.GetAuditLogRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.memberSvc.GetAuditLogs(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
