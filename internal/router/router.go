// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/handler"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
	"github.com/WhiteCrowZero/MinTieba/internal/service"
)

// policy 平台管理操作的权限码映射表
// 未登记的操作不做权限码拦截（由 ActionPolicy 记录配置警告）
var policy = authz.ActionPolicy{
	"rbac.manage":     "platform.rbac.manage",
	"category.manage": "platform.category.manage",
	"report.handle":   "platform.report.handle",
}

// Router 路由注册器
// 持有 Handler 聚合与鉴权器，统一挂载认证/鉴权中间件
type Router struct {
	handlers        *handler.Handlers
	authorizer      authz.Authorizer
	forumAuthorizer authz.ForumAuthorizer
	loadPrincipal   middleware.PrincipalLoader
}

// NewRouter 创建路由注册器
func NewRouter(handlers *handler.Handlers, svc *service.Services) *Router {
	return &Router{
		handlers:        handlers,
		authorizer:      svc.Authorizer,
		forumAuthorizer: svc.ForumAuthorizer,
		loadPrincipal:   svc.User.LoadPrincipal,
	}
}

// RegisterRoutes 注册所有路由
// 在 http_server.Init() 中调用，按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	// 公开路由（无需认证）
	rt.RegisterPublicRoutes(r)

	// 认证路由组：JWT 校验后加载鉴权主体
	authed := r.Group("")
	authed.Use(middleware.JWTAuth(), middleware.LoadPrincipal(rt.loadPrincipal))
	{
		rt.RegisterUserRoutes(authed)
		rt.RegisterForumRoutes(authed)
		rt.RegisterPostRoutes(authed)
		rt.RegisterInteractionRoutes(authed)
		rt.RegisterMessageRoutes(authed)
		rt.RegisterAdminRoutes(authed)
		rt.RegisterWebSocketRoutes(authed)
	}
}
