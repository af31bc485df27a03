package router

import (
	"github.com/gin-gonic/gin"

	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
)

// RegisterAdminRoutes 注册平台管理路由
// 角色权限管理、分类管理、举报处理按 policy 中的权限码拦截
func (rt *Router) RegisterAdminRoutes(g *gin.RouterGroup) {
	rbac := g.Group("", middleware.RequirePermission(rt.authorizer, policy.Resolve("rbac", "rbac.manage")))
	{
		rbac.POST("/rbac/createRole", rt.handlers.Rbac.CreateRole)
		rbac.GET("/rbac/getRoles", rt.handlers.Rbac.GetRoles)
		rbac.POST("/rbac/createPermission", rt.handlers.Rbac.CreatePermission)
		rbac.GET("/rbac/getPermissions", rt.handlers.Rbac.GetPermissions)
		rbac.POST("/rbac/grantPermission", rt.handlers.Rbac.GrantPermission)
		rbac.POST("/rbac/revokePermission", rt.handlers.Rbac.RevokePermission)
		rbac.GET("/rbac/getRolePermissions", rt.handlers.Rbac.GetRolePermissions)
	}

	category := g.Group("", middleware.RequirePermission(rt.authorizer, policy.Resolve("category", "category.manage")))
	{
		category.POST("/forum/createCategory", rt.handlers.Forum.CreateCategory)
	}

	// 举报提交对所有登录用户开放，处理与查询仅限平台管理员
	g.POST("/report/createReport", rt.handlers.Report.CreateReport)
	report := g.Group("", middleware.RequirePermission(rt.authorizer, policy.Resolve("report", "report.handle")))
	{
		report.GET("/report/getPendingReports", rt.handlers.Report.GetPendingReports)
		report.POST("/report/handleReport", rt.handlers.Report.HandleReport)
	}
}
