// Package handler 提供 HTTP 请求处理器
// 本文件处理用户账号与资料相关的 API 请求
package handler

import (
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
// 通过构造函数注入 UserService，遵循依赖倒置原则
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register 用户注册
// POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login 密码登录
// POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Login(req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SmsLogin 短信验证码登录
// POST /user/smsLogin
func (h *UserHandler) SmsLogin(c *gin.Context) {
	var req request.SmsLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.SmsLogin(req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SendSmsCode 发送短信验证码
// POST /user/sendSmsCode
func (h *UserHandler) SendSmsCode(c *gin.Context) {
	var req request.SendSmsCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.SendSmsCode(req.Telephone); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RefreshToken 刷新双 Token
// POST /auth/refreshToken
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.RefreshToken(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Logout 退出登录
// POST /user/logout
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.userSvc.Logout(middleware.GetPrincipal(c).UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ResetPassword 修改密码
// POST /user/resetPassword
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.ResetPassword(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DestroyAccount 注销账号
// POST /user/destroyAccount
func (h *UserHandler) DestroyAccount(c *gin.Context) {
	if err := h.userSvc.DestroyAccount(middleware.GetPrincipal(c).UserUuid); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetUserInfo 查看本人账号信息
// GET /user/getUserInfo
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	data, err := h.userSvc.GetUserInfo(middleware.GetPrincipal(c).UserUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateUserInfo 更新账号信息
// POST /user/updateUserInfo
func (h *UserHandler) UpdateUserInfo(c *gin.Context) {
	var req request.UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.UpdateUserInfo(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetProfile 查看用户资料（按可见性过滤）
// GET /user/getProfile?user_uuid=xxx
func (h *UserHandler) GetProfile(c *gin.Context) {
	targetUuid := c.Query("user_uuid")
	if targetUuid == "" {
		targetUuid = middleware.GetPrincipal(c).UserUuid
	}
	data, err := h.userSvc.GetProfile(middleware.GetPrincipal(c), targetUuid)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateProfile 更新本人资料
// POST /user/updateProfile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.UpdateProfile(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UpdateVisibility 更新资料可见性
// POST /user/updateVisibility
func (h *UserHandler) UpdateVisibility(c *gin.Context) {
	var req request.UpdateVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.UpdateVisibility(middleware.GetPrincipal(c).UserUuid, req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
