package respond

// RoleRespond 角色响应
type RoleRespond struct {
	Id          uint   `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// PermissionRespond 权限响应
type PermissionRespond struct {
	Id          uint   `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
