// 本文件处理角色权限管理相关的 API 请求（平台管理接口）
package handler

import (
	"strconv"

	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// RbacHandler 角色权限请求处理器
type RbacHandler struct {
	rbacSvc service.RbacService
}

// NewRbacHandler 创建角色权限处理器实例
func NewRbacHandler(rbacSvc service.RbacService) *RbacHandler {
	return &RbacHandler{rbacSvc: rbacSvc}
}

// CreateRole 创建角色
// POST /admin/rbac/createRole
func (h *RbacHandler) CreateRole(c *gin.Context) {
	var req request.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.rbacSvc.CreateRole(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetRoles 查询所有角色
// GET /admin/rbac/getRoles
func (h *RbacHandler) GetRoles(c *gin.Context) {
	data, err := h.rbacSvc.GetRoles()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreatePermission 创建权限点
// POST /admin/rbac/createPermission
func (h *RbacHandler) CreatePermission(c *gin.Context) {
	var req request.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.rbacSvc.CreatePermission(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetPermissions 查询所有权限点
// GET /admin/rbac/getPermissions
func (h *RbacHandler) GetPermissions(c *gin.Context) {
	data, err := h.rbacSvc.GetPermissions()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GrantPermission 为角色授予权限
// POST /admin/rbac/grantPermission
func (h *RbacHandler) GrantPermission(c *gin.Context) {
	var req request.GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.rbacSvc.GrantPermission(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RevokePermission 撤销角色的权限
// POST /admin/rbac/revokePermission
func (h *RbacHandler) RevokePermission(c *gin.Context) {
	var req request.GrantPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.rbacSvc.RevokePermission(req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetRolePermissions 查询角色拥有的权限
// GET /admin/rbac/getRolePermissions?role_id=1
func (h *RbacHandler) GetRolePermissions(c *gin.Context) {
	roleId, err := strconv.ParseUint(c.Query("role_id"), 10, 32)
	if err != nil {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.rbacSvc.GetRolePermissions(uint(roleId))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
