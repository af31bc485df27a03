package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterInteractionRoutes 注册点赞、收藏、关注相关路由
func (rt *Router) RegisterInteractionRoutes(g *gin.RouterGroup) {
	g.POST("/interaction/toggleLike", rt.handlers.Interaction.ToggleLike)

	g.POST("/collection/createFolder", rt.handlers.Interaction.CreateFolder)
	g.GET("/collection/getFolders", rt.handlers.Interaction.GetFolders)
	g.POST("/collection/collectPost", rt.handlers.Interaction.CollectPost)
	g.POST("/collection/uncollectPost", rt.handlers.Interaction.UncollectPost)
	g.GET("/collection/getFolderItems", rt.handlers.Interaction.GetFolderItems)

	g.POST("/follow/toggleFollow", rt.handlers.Interaction.ToggleFollow)
	g.GET("/follow/getFollowees", rt.handlers.Interaction.GetFollowees)
	g.GET("/follow/getFollowers", rt.handlers.Interaction.GetFollowers)
}
