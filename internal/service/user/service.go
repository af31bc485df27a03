// Package user 实现用户账号与资料业务逻辑
package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/WhiteCrowZero/MinTieba/internal/authz"
	"github.com/WhiteCrowZero/MinTieba/internal/dao/mysql/repository"
	myredis "github.com/WhiteCrowZero/MinTieba/internal/dao/redis"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/request"
	"github.com/WhiteCrowZero/MinTieba/internal/dto/respond"
	"github.com/WhiteCrowZero/MinTieba/internal/infrastructure/sms"
	"github.com/WhiteCrowZero/MinTieba/internal/model"
	"github.com/WhiteCrowZero/MinTieba/pkg/constants"
	"github.com/WhiteCrowZero/MinTieba/pkg/errorx"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/jwt"
	"github.com/WhiteCrowZero/MinTieba/pkg/util/random"
)

// userService 用户业务逻辑实现
type userService struct {
	repos      *repository.Repositories
	cache      myredis.AsyncCacheService
	smsService sms.SmsService
	visibility authz.ProfileVisibilityChecker
}

// NewUserService 构造函数，注入所有依赖
func NewUserService(repos *repository.Repositories, cacheService myredis.AsyncCacheService,
	smsService sms.SmsService, visibility authz.ProfileVisibilityChecker) *userService {
	return &userService{
		repos:      repos,
		cache:      cacheService,
		smsService: smsService,
		visibility: visibility,
	}
}

// checkTelephoneValid 检验电话是否有效
func (u *userService) checkTelephoneValid(telephone string) bool {
	pattern := `^1([38][0-9]|14[579]|5[^4]|16[6]|7[1-35-8]|9[189])\d{8}$`
	match, err := regexp.MatchString(pattern, telephone)
	if err != nil {
		zap.L().Error(err.Error())
	}
	return match
}

// checkSmsCode 校验并消费短信验证码
func (u *userService) checkSmsCode(telephone, smsCode string) error {
	ctx := context.Background()
	key := "auth_code_" + telephone
	code, err := u.cache.Get(ctx, key)
	if err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if code == "" || code != smsCode {
		return errorx.New(errorx.CodeInvalidParam, "验证码不正确，请重试")
	}
	if err := u.cache.Delete(ctx, key); err != nil {
		zap.L().Error(err.Error())
	}
	return nil
}

// issueTokens 签发双 Token 并将 Refresh Token ID 存入 Redis 实现单点互踢
func (u *userService) issueTokens(userUuid string) (accessToken, refreshToken string, err error) {
	accessToken, err = jwt.GenerateAccessToken(userUuid)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(userUuid)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return "", "", errorx.ErrServerBusy
	}
	redisKey := "user_token:" + userUuid
	expiry := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err := u.cache.Set(context.Background(), redisKey, tokenID, expiry); err != nil {
		// 不阻塞登录流程，仅记录日志
		zap.L().Error("存储 Token ID 到 Redis 失败", zap.Error(err))
	}
	return accessToken, refreshToken, nil
}

// SendSmsCode 发送短信验证码
func (u *userService) SendSmsCode(telephone string) error {
	if !u.checkTelephoneValid(telephone) {
		return errorx.New(errorx.CodeInvalidParam, "手机号格式不正确")
	}
	return u.smsService.SendVerificationCode(telephone)
}

// Register 用户注册
// 账号与资料在同一事务内创建
func (u *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if !u.checkTelephoneValid(req.Telephone) {
		return nil, errorx.New(errorx.CodeInvalidParam, "手机号格式不正确")
	}
	if err := u.checkSmsCode(req.Telephone, req.SmsCode); err != nil {
		return nil, err
	}

	if _, err := u.repos.User.FindByTelephone(req.Telephone); err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "该手机号已注册，请直接登录")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	account := model.UserAccount{
		Uuid:        fmt.Sprintf("U%s", random.GetNowAndLenRandomString(11)),
		Telephone:   req.Telephone,
		RawPassword: req.Password,
		RoleId:      1,
	}
	err := u.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.User.Create(&account); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		profile := model.UserProfile{
			UserUuid:             account.Uuid,
			Nickname:             req.Nickname,
			Visibility:           model.VisibilityPublic,
			CollectionVisibility: model.VisibilityPublic,
		}
		if err := txRepos.User.CreateProfile(&profile); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := u.issueTokens(account.Uuid)
	if err != nil {
		return nil, err
	}
	return &respond.RegisterRespond{
		Uuid:         account.Uuid,
		Nickname:     req.Nickname,
		Telephone:    account.Telephone,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// buildLoginRespond 登录成功后的统一响应构建
func (u *userService) buildLoginRespond(user *model.UserAccount) (*respond.LoginRespond, error) {
	accessToken, refreshToken, err := u.issueTokens(user.Uuid)
	if err != nil {
		return nil, err
	}

	rsp := &respond.LoginRespond{
		Uuid:         user.Uuid,
		Telephone:    user.Telephone,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	if profile, err := u.repos.User.FindProfileByUserUuid(user.Uuid); err == nil {
		rsp.Nickname = profile.Nickname
		rsp.Avatar = profile.Avatar
	}
	if role, err := u.repos.Role.FindById(user.RoleId); err == nil {
		rsp.RoleName = role.Name
		rsp.RoleLevel = role.Level
	}
	return rsp, nil
}

// recordLogin 登录成功后追加登录历史并刷新在线时间
func (u *userService) recordLogin(user *model.UserAccount, clientIp, userAgent string) {
	history := model.UserLoginHistory{
		UserUuid:  user.Uuid,
		LoginIp:   clientIp,
		UserAgent: userAgent,
	}
	if err := u.repos.User.CreateLoginHistory(&history); err != nil {
		zap.L().Error("记录登录历史失败", zap.Error(err))
	}
	user.LastOnlineAt.Time = time.Now()
	user.LastOnlineAt.Valid = true
	if err := u.repos.User.Update(user); err != nil {
		zap.L().Error("刷新在线时间失败", zap.Error(err))
	}
}

// Login 密码登录
func (u *userService) Login(req request.LoginRequest, clientIp, userAgent string) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByTelephone(req.Telephone)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在，请注册")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "账号已被禁用")
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "密码不正确，请重试")
	}

	rsp, err := u.buildLoginRespond(user)
	if err != nil {
		return nil, err
	}
	u.recordLogin(user, clientIp, userAgent)
	return rsp, nil
}

// SmsLogin 验证码登录
func (u *userService) SmsLogin(req request.SmsLoginRequest, clientIp, userAgent string) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByTelephone(req.Telephone)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在，请注册")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "账号已被禁用")
	}
	if err := u.checkSmsCode(req.Telephone, req.SmsCode); err != nil {
		return nil, err
	}

	rsp, err := u.buildLoginRespond(user)
	if err != nil {
		return nil, err
	}
	u.recordLogin(user, clientIp, userAgent)
	return rsp, nil
}

// RefreshToken 用 Refresh Token 换取新的双 Token
// 校验 Redis 中的 Token ID，实现单点互踢：旧设备的 Refresh Token 换取后失效
func (u *userService) RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 已过期或无效，请重新登录")
	}
	if claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "请使用 Refresh Token 刷新")
	}

	redisKey := "user_token:" + claims.UserID
	storedTokenID, err := u.cache.Get(context.Background(), redisKey)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if storedTokenID == "" || storedTokenID != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "登录状态已失效，请重新登录")
	}

	accessToken, refreshToken, err := u.issueTokens(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// LoadPrincipal 加载鉴权主体
// 供鉴权中间件使用，聚合账号角色信息
func (u *userService) LoadPrincipal(userUuid string) (authz.Principal, error) {
	user, err := u.repos.User.FindByUuid(userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return authz.Principal{}, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return authz.Principal{}, errorx.ErrServerBusy
	}
	if user.Status != 0 {
		return authz.Principal{}, errorx.New(errorx.CodeForbidden, "账号已被禁用")
	}

	principal := authz.Principal{
		UserUuid:      user.Uuid,
		RoleId:        user.RoleId,
		Authenticated: true,
	}
	if role, err := u.repos.Role.FindById(user.RoleId); err == nil {
		principal.RoleLevel = role.Level
	}
	return principal, nil
}

// GetUserInfo 查看本人账号信息
// 与资料接口分开：账号字段（手机号、角色、状态）只返回给本人
func (u *userService) GetUserInfo(userUuid string) (*respond.GetUserInfoRespond, error) {
	user, err := u.repos.User.FindByUuid(userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	rsp := &respond.GetUserInfoRespond{
		Uuid:      user.Uuid,
		Telephone: user.Telephone,
		Email:     user.Email,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if user.LastOnlineAt.Valid {
		rsp.LastOnlineAt = user.LastOnlineAt.Time.Format("2006-01-02 15:04:05")
	}
	if role, err := u.repos.Role.FindById(user.RoleId); err == nil {
		rsp.RoleName = role.Name
		rsp.RoleLevel = role.Level
	}
	return rsp, nil
}

// UpdateUserInfo 更新账号信息
func (u *userService) UpdateUserInfo(userUuid string, req request.UpdateUserInfoRequest) error {
	user, err := u.repos.User.FindByUuid(userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if err := u.repos.User.Update(user); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// Logout 退出登录
// 删除 Redis 中的 Token ID，已签发的 Refresh Token 随之失效
func (u *userService) Logout(userUuid string) error {
	if err := u.cache.Delete(context.Background(), "user_token:"+userUuid); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// ResetPassword 修改密码
// 校验旧密码后写入新密码，并踢掉全部登录态
func (u *userService) ResetPassword(userUuid string, req request.ResetPasswordRequest) error {
	user, err := u.repos.User.FindByUuid(userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.OldPassword) {
		return errorx.New(errorx.CodeInvalidPassword, "原密码不正确")
	}

	user.RawPassword = req.NewPassword
	if err := u.repos.User.Update(user); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return u.Logout(userUuid)
}

// DestroyAccount 注销账号
// 账号匿名化而非物理删除：资料清空、状态置为禁用，
// 已发布的内容保留但作者显示为已注销用户
func (u *userService) DestroyAccount(userUuid string) error {
	err := u.repos.Transaction(func(txRepos *repository.Repositories) error {
		user, err := txRepos.User.FindByUuid(userUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeUserNotExist, "用户不存在")
			}
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		user.Status = 1
		user.Email = ""
		if err := txRepos.User.Update(user); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}

		profile, err := txRepos.User.FindProfileByUserUuid(userUuid)
		if err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		profile.Nickname = "已注销用户"
		profile.Avatar = ""
		profile.Signature = ""
		profile.Birthday = ""
		profile.Visibility = model.VisibilityPrivate
		profile.CollectionVisibility = model.VisibilityPrivate
		if err := txRepos.User.UpdateProfile(profile); err != nil {
			zap.L().Error(err.Error())
			return errorx.ErrServerBusy
		}
		return nil
	})
	if err != nil {
		return err
	}
	return u.Logout(userUuid)
}

// GetProfile 查看用户资料
// 按资料可见性过滤：受限时仅返回昵称与头像
func (u *userService) GetProfile(viewer authz.Principal, targetUuid string) (*respond.GetProfileRespond, error) {
	profile, err := u.repos.User.FindProfileByUserUuid(targetUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	visible, err := u.visibility.CanViewProfile(viewer, targetUuid, profile.Visibility)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !visible {
		return &respond.GetProfileRespond{
			Uuid:       targetUuid,
			Nickname:   profile.Nickname,
			Avatar:     profile.Avatar,
			Restricted: true,
		}, nil
	}

	return &respond.GetProfileRespond{
		Uuid:       targetUuid,
		Nickname:   profile.Nickname,
		Avatar:     profile.Avatar,
		Gender:     profile.Gender,
		Signature:  profile.Signature,
		Birthday:   profile.Birthday,
		Visibility: profile.Visibility,
		FollowCnt:  profile.FollowCnt,
		FansCnt:    profile.FansCnt,
		Restricted: false,
	}, nil
}

// UpdateProfile 更新本人资料
func (u *userService) UpdateProfile(userUuid string, req request.UpdateProfileRequest) error {
	profile, err := u.repos.User.FindProfileByUserUuid(userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if req.Nickname != "" {
		profile.Nickname = req.Nickname
	}
	if req.Avatar != "" {
		profile.Avatar = req.Avatar
	}
	if req.Signature != "" {
		profile.Signature = req.Signature
	}
	if req.Birthday != "" {
		profile.Birthday = req.Birthday
	}
	profile.Gender = req.Gender

	if err := u.repos.User.UpdateProfile(profile); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}

// UpdateVisibility 更新资料可见性设置
func (u *userService) UpdateVisibility(userUuid string, req request.UpdateVisibilityRequest) error {
	profile, err := u.repos.User.FindProfileByUserUuid(userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}

	if req.Visibility != "" {
		profile.Visibility = req.Visibility
	}
	if req.CollectionVisibility != "" {
		profile.CollectionVisibility = req.CollectionVisibility
	}
	if err := u.repos.User.UpdateProfile(profile); err != nil {
		zap.L().Error(err.Error())
		return errorx.ErrServerBusy
	}
	return nil
}
