package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes 注册无需认证的路由
func (rt *Router) RegisterPublicRoutes(r *gin.Engine) {
	r.POST("/register", rt.handlers.User.Register)
	r.POST("/login", rt.handlers.User.Login)
	r.POST("/user/smsLogin", rt.handlers.User.SmsLogin)
	r.POST("/user/sendSmsCode", rt.handlers.User.SendSmsCode)
	r.POST("/auth/refreshToken", rt.handlers.User.RefreshToken)
}

// RegisterUserRoutes 注册用户账号与资料相关路由
func (rt *Router) RegisterUserRoutes(g *gin.RouterGroup) {
	g.POST("/user/logout", rt.handlers.User.Logout)
	g.POST("/user/resetPassword", rt.handlers.User.ResetPassword)
	g.POST("/user/destroyAccount", rt.handlers.User.DestroyAccount)
	g.GET("/user/getUserInfo", rt.handlers.User.GetUserInfo)
	g.POST("/user/updateUserInfo", rt.handlers.User.UpdateUserInfo)
	g.GET("/user/getProfile", rt.handlers.User.GetProfile)
	g.POST("/user/updateProfile", rt.handlers.User.UpdateProfile)
	g.POST("/user/updateVisibility", rt.handlers.User.UpdateVisibility)
}
