// Package authz 实现权限判定引擎
//
// 三层判定相互独立：
//  1. Authorizer      —— 全局权限码判定（角色等级旁路 + 显式授权查询）
//  2. ForumAuthorizer —— 吧内管理权限判定（吧务/吧主或平台超管）
//  3. 资料可见性判定   —— 基于用户隐私设置的三态可见性
package authz

import (
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/pkg/constants"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"

	"go.uber.org/zap"
)

// Principal 鉴权主体
// 从 JWT 中间件解析出的当前请求用户，未登录请求使用零值（Authenticated=false）
type Principal struct {
	UserUuid      string // 用户 uuid
	RoleId        uint   // 全局角色 id
	RoleLevel     int    // 角色等级
	Authenticated bool   // 是否已登录
}

// IsSuperAdmin 角色等级达到超管门槛
func (p Principal) IsSuperAdmin() bool {
	return p.Authenticated && p.RoleLevel >= constants.SUPER_ADMIN_LEVEL
}

// Authorizer 权限判定接口
// 判定主体能否执行携带指定权限码的操作
type Authorizer interface {
	// CanAct 判定主体能否执行权限码对应的操作
	// permissionCode 为空表示操作未声明权限要求，直接放行
	CanAct(principal Principal, permissionCode string) (bool, error)
}

// roleAuthorizer Authorizer 的默认实现，基于角色-权限关联表
type roleAuthorizer struct {
	roleRepo repository.RoleRepository
}

// NewAuthorizer 创建默认权限判定器
func NewAuthorizer(roleRepo repository.RoleRepository) Authorizer {
	return &roleAuthorizer{roleRepo: roleRepo}
}

// CanAct 权限判定
// 判定顺序（顺序即语义，不可调换）：
//  1. 未声明权限码的操作直接放行
//  2. 未登录主体对任何声明了权限码的操作一律拒绝
//  3. 角色等级 >= 100 直接放行，不查询授权表
//  4. 查询 role_permission_map 是否存在对应授权
func (a *roleAuthorizer) CanAct(principal Principal, permissionCode string) (bool, error) {
	if permissionCode == "" {
		return true, nil
	}
	if !principal.Authenticated {
		return false, nil
	}
	// 超管旁路必须先于授权表查询
	if principal.RoleLevel >= constants.SUPER_ADMIN_LEVEL {
		return true, nil
	}
	ok, err := a.roleRepo.HasPermission(principal.RoleId, permissionCode)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// ForumAuthorizer 吧内管理权限判定接口
type ForumAuthorizer interface {
	// CanManageForum 判定主体能否管理指定贴吧
	// forumUuid 为空表示无法从请求解析出目标贴吧，此时默认放行，
	// 把拒绝的机会留给后续的对象级校验；贴吧已解析但成员关系不存在
	// 则拒绝。两侧行为不对称，依赖方不应将放行当作成员身份的证明
	CanManageForum(principal Principal, forumUuid string) (bool, error)
}

// forumAuthorizer ForumAuthorizer 的默认实现
type forumAuthorizer struct {
	memberRepo repository.ForumMemberRepository
}

// NewForumAuthorizer 创建吧内管理权限判定器
func NewForumAuthorizer(memberRepo repository.ForumMemberRepository) ForumAuthorizer {
	return &forumAuthorizer{memberRepo: memberRepo}
}

// CanManageForum 吧内管理权限判定
func (a *forumAuthorizer) CanManageForum(principal Principal, forumUuid string) (bool, error) {
	// 无法解析目标贴吧：默认放行
	if forumUuid == "" {
		return true, nil
	}
	if !principal.Authenticated {
		return false, nil
	}
	// 平台超管直接放行
	if principal.IsSuperAdmin() {
		return true, nil
	}
	member, err := a.memberRepo.FindByForumAndUser(forumUuid, principal.UserUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			// 贴吧已解析但不是在吧成员：拒绝
			return false, nil
		}
		return false, err
	}
	return member.IsAdminRole(), nil
}

// ActionPolicy 操作名到权限码的映射表
// 资源按操作名声明权限要求，未声明的操作放行
type ActionPolicy map[string]string

// Resolve 解析操作名对应的权限码
// 操作名未在映射表中登记时记录配置警告并返回空权限码（放行），
// 这是配置问题而非安全事件
func (p ActionPolicy) Resolve(resource, action string) string {
	if p == nil {
		return ""
	}
	code, ok := p[action]
	if !ok {
		zap.L().Warn("action declared without permission code mapping",
			zap.String("resource", resource),
			zap.String("action", action))
		return ""
	}
	return code
}
