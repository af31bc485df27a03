package router

import (
	"github.com/gin-gonic/gin"

	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/middleware"
)

// RegisterForumRoutes 注册贴吧与成员相关路由
// 成员管理类操作（改角色、封禁、审计日志）额外要求贴吧管理员身份
func (rt *Router) RegisterForumRoutes(g *gin.RouterGroup) {
	g.POST("/forum/createForum", rt.handlers.Forum.CreateForum)
	g.POST("/forum/updateForum", rt.handlers.Forum.UpdateForum)
	g.POST("/forum/dismissForum", rt.handlers.Forum.DismissForum)
	g.GET("/forum/getForumInfo", rt.handlers.Forum.GetForumInfo)
	g.GET("/forum/getForumList", rt.handlers.Forum.GetForumList)
	g.GET("/forum/getMyForums", rt.handlers.Forum.GetMyForums)
	g.GET("/forum/getCategories", rt.handlers.Forum.GetCategories)

	// 成员操作
	g.POST("/forum/toggleMembership", rt.handlers.Member.ToggleMembership)
	g.POST("/forum/asyncToggleMembership", rt.handlers.Member.AsyncToggleMembership)
	g.POST("/forum/signIn", rt.handlers.Member.SignIn)
	g.GET("/forum/getMemberList", rt.handlers.Member.GetMemberList)

	// 成员管理（贴吧管理员）
	admin := g.Group("", middleware.RequireForumAdmin(rt.forumAuthorizer, "forum_uuid"))
	{
		admin.POST("/forum/changeMemberRole", rt.handlers.Member.ChangeMemberRole)
		admin.POST("/forum/banMember", rt.handlers.Member.BanMember)
		admin.POST("/forum/unbanMember", rt.handlers.Member.UnbanMember)
		admin.GET("/forum/getAuditLogs", rt.handlers.Member.GetAuditLogs)
	}
}
