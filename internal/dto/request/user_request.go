package request

// RegisterRequest 用户注册请求
type RegisterRequest struct {
	Telephone string `json:"telephone" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	Nickname  string `json:"nickname" binding:"required"`
	SmsCode   string `json:"sms_code" binding:"required,len=6"`
}

// LoginRequest 用户密码登录请求
type LoginRequest struct {
	Telephone string `json:"telephone" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

// SmsLoginRequest 短信验证码登录请求
type SmsLoginRequest struct {
	Telephone string `json:"telephone" binding:"required"`
	SmsCode   string `json:"sms_code" binding:"required,len=6"`
}

// SendSmsCodeRequest 发送短信验证码请求
type SendSmsCodeRequest struct {
	Telephone string `json:"telephone" binding:"required"`
}

// RefreshTokenRequest 刷新令牌请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ResetPasswordRequest 修改密码请求
type ResetPasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,min=6"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// UpdateUserInfoRequest 更新账号信息请求
type UpdateUserInfoRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// UpdateProfileRequest 更新用户资料请求
type UpdateProfileRequest struct {
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Gender    int8   `json:"gender" binding:"oneof=0 1"`
	Signature string `json:"signature"`
	Birthday  string `json:"birthday"`
}

// UpdateVisibilityRequest 更新资料可见性请求
type UpdateVisibilityRequest struct {
	Visibility           string `json:"visibility" binding:"omitempty,oneof=public followers private"`
	CollectionVisibility string `json:"collection_visibility" binding:"omitempty,oneof=public followers private"`
}
