package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPostRoutes 注册帖子与评论相关路由
func (rt *Router) RegisterPostRoutes(g *gin.RouterGroup) {
	g.POST("/post/createPost", rt.handlers.Post.CreatePost)
	g.POST("/post/updatePost", rt.handlers.Post.UpdatePost)
	g.POST("/post/deletePost", rt.handlers.Post.DeletePost)
	g.GET("/post/getPost", rt.handlers.Post.GetPost)
	g.GET("/post/getPostList", rt.handlers.Post.GetPostList)
	g.POST("/post/pinPost", rt.handlers.Post.PinPost)

	g.POST("/comment/createComment", rt.handlers.Post.CreateComment)
	g.POST("/comment/deleteComment", rt.handlers.Post.DeleteComment)
	g.GET("/comment/getCommentList", rt.handlers.Post.GetCommentList)
}
