package respond

// LoginRespond 用户登录响应
type LoginRespond struct {
	Uuid         string `json:"uuid"`
	Nickname     string `json:"nickname"`
	Telephone    string `json:"telephone"`
	Avatar       string `json:"avatar"`
	RoleName     string `json:"role_name"`
	RoleLevel    int    `json:"role_level"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRespond 用户注册响应
type RegisterRespond struct {
	Uuid         string `json:"uuid"`
	Nickname     string `json:"nickname"`
	Telephone    string `json:"telephone"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRespond 刷新令牌响应
type RefreshTokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// GetUserInfoRespond 本人账号信息响应
// 仅返回给账号本人，包含资料接口不暴露的账号字段
type GetUserInfoRespond struct {
	Uuid         string `json:"uuid"`
	Telephone    string `json:"telephone"`
	Email        string `json:"email,omitempty"`
	RoleName     string `json:"role_name"`
	RoleLevel    int    `json:"role_level"`
	Status       int8   `json:"status"`
	LastOnlineAt string `json:"last_online_at,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// GetProfileRespond 用户资料响应
// 可见性受限时只返回 Uuid/Nickname/Avatar 和 Restricted=true
type GetProfileRespond struct {
	Uuid       string `json:"uuid"`
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	Gender     int8   `json:"gender,omitempty"`
	Signature  string `json:"signature,omitempty"`
	Birthday   string `json:"birthday,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	FollowCnt  int    `json:"follow_cnt,omitempty"`
	FansCnt    int    `json:"fans_cnt,omitempty"`
	Restricted bool   `json:"restricted"`
}
