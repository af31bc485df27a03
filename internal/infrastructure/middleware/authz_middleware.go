// 本文件提供鉴权中间件：在 JWTAuth 之后加载鉴权主体，
// 并按权限码或吧内管理身份拦截请求
package middleware

import (
	"net/http"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// principalKey 上下文中鉴权主体的键名
const principalKey = "principal"

// PrincipalLoader 根据用户 uuid 加载鉴权主体（账号角色等级等）
// 由服务层提供实现，中间件不直接依赖数据层
type PrincipalLoader func(userUuid string) (authz.Principal, error)

// LoadPrincipal 加载鉴权主体中间件
// 必须挂在 JWTAuth 之后；未登录路由不挂载本中间件，
// 此时 GetPrincipal 返回零值主体（Authenticated=false）
func LoadPrincipal(loader PrincipalLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userUuid := c.GetString("user_id")
		if userUuid == "" {
			c.Next()
			return
		}
		principal, err := loader(userUuid)
		if err != nil {
			zap.L().Error("load principal failed", zap.String("user_uuid", userUuid), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "用户状态异常，请重新登录",
			})
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal 从上下文取出鉴权主体
// 未加载时返回零值（视为未登录）
func GetPrincipal(c *gin.Context) authz.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(authz.Principal); ok {
			return p
		}
	}
	return authz.Principal{}
}

// RequirePermission 权限码拦截中间件
// 鉴权失败返回 403，判定出错返回 500
func RequirePermission(authorizer authz.Authorizer, permissionCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		ok, err := authorizer.CanAct(principal, permissionCode)
		if err != nil {
			zap.L().Error("permission check failed",
				zap.String("permission_code", permissionCode), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code": errorx.CodeServerBusy,
				"msg":  "服务繁忙",
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": errorx.CodeForbidden,
				"msg":  "没有操作权限",
			})
			return
		}
		c.Next()
	}
}

// RequireForumAdmin 吧内管理权限拦截中间件
// 依次从路径参数和查询参数解析贴吧 uuid；两处都取不到时
// 交由 ForumAuthorizer 的未解析默认策略处理（放行，
// 由后续对象级校验兜底）
func RequireForumAdmin(forumAuthorizer authz.ForumAuthorizer, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		forumUuid := c.Param(paramName)
		if forumUuid == "" {
			forumUuid = c.Query(paramName)
		}

		principal := GetPrincipal(c)
		ok, err := forumAuthorizer.CanManageForum(principal, forumUuid)
		if err != nil {
			zap.L().Error("forum admin check failed",
				zap.String("forum_uuid", forumUuid), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code": errorx.CodeServerBusy,
				"msg":  "服务繁忙",
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code": errorx.CodeForbidden,
				"msg":  "需要吧务权限",
			})
			return
		}
		c.Next()
	}
}
