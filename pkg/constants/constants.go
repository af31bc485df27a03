package constants

const (
	CHANNEL_SIZE               = 100 // 通道大小
	REDIS_TIMEOUT              = 1   // redis timeout (分钟)
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天

	SUPER_ADMIN_LEVEL = 100 // 角色等级达到该值即为平台超级管理员，跳过所有权限点校验

	SIGN_IN_BASE_EXP = 10 // 签到基础经验
	SIGN_IN_MIN_EXP  = 30 // 单次签到最低经验
	LEVEL_EXP_STEP   = 100 // 每升一级所需经验

	TOGGLE_MAX_RETRIES   = 3 // 异步切换成员关系的最大重试次数
	TOGGLE_RETRY_BACKOFF = 5 // 异步重试间隔（秒）

	MEMBER_COUNT_RECONCILE_MINUTES = 10 // 成员计数对账周期（分钟）
)
