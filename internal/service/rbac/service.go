// Package rbac 实现角色与权限管理业务逻辑
// 鉴权判定本身在 internal/authz，本服务只负责角色/权限/关联的维护
package rbac

import (
	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
)

// rbacService 角色权限管理实现
type rbacService struct {
	repos *repository.Repositories
}

// NewRbacService 构造函数
func NewRbacService(repos *repository.Repositories) *rbacService {
	return &rbacService{repos: repos}
}

// CreateRole 创建角色
func (s *rbacService) CreateRole(req request.CreateRoleRequest) error {
	if _, err := s.repos.Role.FindByName(req.Name); err == nil {
		return errorx.New(errorx.CodeConflict, "角色已存在")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	role := model.Role{
		Name:        req.Name,
		Level:       req.Level,
		Description: req.Description,
	}
	if err := s.repos.Role.CreateRole(&role); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// GetRoles 查询所有角色
func (s *rbacService) GetRoles() ([]respond.RoleRespond, error) {
	roles, err := s.repos.Role.FindAll()
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.RoleRespond, 0, len(roles))
	for _, r := range roles {
		rspList = append(rspList, respond.RoleRespond{
			Id:          r.ID,
			Name:        r.Name,
			Level:       r.Level,
			Description: r.Description,
		})
	}
	return rspList, nil
}

// CreatePermission 创建权限点
func (s *rbacService) CreatePermission(req request.CreatePermissionRequest) error {
	if _, err := s.repos.Role.FindPermissionByCode(req.Code); err == nil {
		return errorx.New(errorx.CodeConflict, "权限码已存在")
	} else if !errorx.IsNotFound(err) {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	permission := model.Permission{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repos.Role.CreatePermission(&permission); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// GetPermissions 查询所有权限点
func (s *rbacService) GetPermissions() ([]respond.PermissionRespond, error) {
	permissions, err := s.repos.Role.FindAllPermissions()
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.PermissionRespond, 0, len(permissions))
	for _, p := range permissions {
		rspList = append(rspList, respond.PermissionRespond{
			Id:          p.ID,
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	return rspList, nil
}

// resolve 根据角色 id 与权限码定位实体
func (s *rbacService) resolve(roleId uint, permissionCode string) (*model.Role, *model.Permission, error) {
	role, err := s.repos.Role.FindById(roleId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, nil, errorx.New(errorx.CodeNotFound, "角色不存在")
		}
		zap.L().Error(err.Error())
		return nil, nil, errorx.ErrServerBusy
	}
	permission, err := s.repos.Role.FindPermissionByCode(permissionCode)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, nil, errorx.New(errorx.CodeNotFound, "权限码不存在")
		}
		zap.L().Error(err.Error())
		return nil, nil, errorx.ErrServerBusy
	}
	return role, permission, nil
}

// GrantPermission 为角色授予权限
func (s *rbacService) GrantPermission(req request.GrantPermissionRequest) error {
	role, permission, err := s.resolve(req.RoleId, req.PermissionCode)
	if err != nil {
		return err
	}
	if err := s.repos.Role.GrantPermission(role.ID, permission.ID); err != nil {
		if errorx.GetCode(err) == errorx.CodeConflict {
			return errorx.New(errorx.CodeConflict, "该角色已拥有此权限")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// RevokePermission 撤销角色的权限
func (s *rbacService) RevokePermission(req request.GrantPermissionRequest) error {
	role, permission, err := s.resolve(req.RoleId, req.PermissionCode)
	if err != nil {
		return err
	}
	if err := s.repos.Role.RevokePermission(role.ID, permission.ID); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// GetRolePermissions 查询角色拥有的全部权限
func (s *rbacService) GetRolePermissions(roleId uint) ([]respond.PermissionRespond, error) {
	permissions, err := s.repos.Role.FindPermissionsByRoleId(roleId)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rspList := make([]respond.PermissionRespond, 0, len(permissions))
	for _, p := range permissions {
		rspList = append(rspList, respond.PermissionRespond{
			Id:          p.ID,
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	return rspList, nil
}
