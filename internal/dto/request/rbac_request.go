package request

// CreateRoleRequest 创建角色请求
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=32"`
	Level       int    `json:"level" binding:"min=0"`
	Description string `json:"description" binding:"max=255"`
}

// CreatePermissionRequest 创建权限请求
type CreatePermissionRequest struct {
	Code        string `json:"code" binding:"required,max=64"`
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description" binding:"max=255"`
}

// GrantPermissionRequest 授予/撤销角色权限请求
type GrantPermissionRequest struct {
	RoleId         uint   `json:"role_id" binding:"required"`
	PermissionCode string `json:"permission_code" binding:"required"`
}
